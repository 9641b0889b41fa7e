package listscript

import (
	"github.com/iotaledger/hive.go/stringify"

	"github.com/iotaledger/memlist/packages/memory"
)

// Verb names the list operation of a Command.
type Verb string

const (
	// AddFirst prepends a block: "addFirst <base> <length>".
	AddFirst Verb = "addFirst"
	// AddLast appends a block: "addLast <base> <length>".
	AddLast Verb = "addLast"
	// Add inserts a block at an index: "add <index> <base> <length>".
	Add Verb = "add"
	// Remove removes the block at an index: "remove <index>".
	Remove Verb = "remove"
	// RemoveBlock removes the first equal block: "removeBlock <base> <length>".
	RemoveBlock Verb = "removeBlock"
	// Get logs the block at an index: "get <index>".
	Get Verb = "get"
	// IndexOf logs the index of the first equal block: "indexOf <base> <length>".
	IndexOf Verb = "indexOf"
	// Print logs the whole list: "print".
	Print Verb = "print"
)

type layout struct {
	index bool
	block bool
}

func (l layout) arguments() (count int) {
	if l.index {
		count++
	}
	if l.block {
		count += 2
	}

	return count
}

var layouts = map[Verb]layout{
	AddFirst:    {block: true},
	AddLast:     {block: true},
	Add:         {index: true, block: true},
	Remove:      {index: true},
	RemoveBlock: {block: true},
	Get:         {index: true},
	IndexOf:     {block: true},
	Print:       {},
}

// Command is a single parsed line of a script.
type Command struct {
	Line  int
	Verb  Verb
	Index int
	Block memory.Block
}

// String returns a human-readable version of the Command.
func (c *Command) String() string {
	structBuilder := stringify.StructBuilder("Command")
	structBuilder.AddField(stringify.StructField("line", c.Line))
	structBuilder.AddField(stringify.StructField("verb", string(c.Verb)))

	commandLayout := layouts[c.Verb]
	if commandLayout.index {
		structBuilder.AddField(stringify.StructField("index", c.Index))
	}
	if commandLayout.block {
		structBuilder.AddField(stringify.StructField("block", c.Block.String()))
	}

	return structBuilder.String()
}
