package datastructure

import (
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/iotaledger/hive.go/stringify"

	"github.com/iotaledger/memlist/packages/memory"
)

// region Events ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Events is a container that acts as a dictionary for the events of a LinkedList.
type Events struct {
	// NodeAdded is triggered after a new Node was linked into the list.
	NodeAdded *event.Event[*NodeEvent]

	// NodeRemoved is triggered after a Node was unlinked from the list.
	NodeRemoved *event.Event[*NodeEvent]
}

func newEvents() *Events {
	return &Events{
		NodeAdded:   event.New[*NodeEvent](),
		NodeRemoved: event.New[*NodeEvent](),
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region NodeEvent ////////////////////////////////////////////////////////////////////////////////////////////////////

// NodeEvent is the payload of the Events of a LinkedList.
type NodeEvent struct {
	// Index is the position the Node was added at or removed from.
	Index int

	// Block is the memory.Block of the affected Node.
	Block memory.Block
}

// String returns a human-readable version of the NodeEvent.
func (n *NodeEvent) String() string {
	return stringify.Struct("NodeEvent",
		stringify.StructField("index", n.Index),
		stringify.StructField("block", n.Block.String()),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
