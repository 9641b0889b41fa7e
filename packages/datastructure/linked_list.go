package datastructure

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/memlist/packages/memory"
)

// NotFound is the index that IndexOf returns for blocks that are not part of the list.
const NotFound = -1

// region LinkedList ///////////////////////////////////////////////////////////////////////////////////////////////////

// LinkedList is a singly linked list of memory.Blocks that keeps track of its first and last Node and its size.
//
// A LinkedList has a single owner and is not safe for concurrent use. The zero value is an empty list that does not
// trigger any Events.
type LinkedList struct {
	// Events contains all the events that are triggered by the LinkedList.
	Events *Events

	first *Node
	last  *Node
	size  int
}

// New returns an empty LinkedList.
func New() *LinkedList {
	return &LinkedList{
		Events: newEvents(),
	}
}

// GetFirst returns the first Node of the list or nil if the list is empty.
func (l *LinkedList) GetFirst() *Node {
	return l.first
}

// GetLast returns the last Node of the list or nil if the list is empty.
func (l *LinkedList) GetLast() *Node {
	return l.last
}

// GetSize returns the number of Nodes in the list.
func (l *LinkedList) GetSize() int {
	return l.size
}

// GetNode returns the Node at the given index. The returned Node is part of the live chain, so it can be handed to
// RemoveNode.
func (l *LinkedList) GetNode(index int) (node *Node, err error) {
	if err = l.checkElementIndex(index); err != nil {
		return nil, err
	}

	if index == l.size-1 {
		return l.last, nil
	}

	return l.nodeAt(index), nil
}

// Add inserts a new Node for the block so that it ends up at the given index. An index of 0 adds the block to the
// front and an index equal to the size appends it, both in constant time.
func (l *LinkedList) Add(index int, block memory.Block) error {
	if index < 0 || index > l.size {
		return errors.Wrapf(ErrIndexOutOfRange, "illegal index %d for insertion into list of size %d", index, l.size)
	}

	switch index {
	case 0:
		l.AddFirst(block)
	case l.size:
		l.AddLast(block)
	default:
		prev := l.nodeAt(index - 1)

		node := newNode(block)
		node.next = prev.next
		prev.next = node
		l.size++

		l.triggerNodeAdded(index, block)
	}

	return nil
}

// AddFirst adds a new Node for the block to the beginning of the list.
func (l *LinkedList) AddFirst(block memory.Block) {
	node := newNode(block)
	node.next = l.first
	l.first = node
	if l.last == nil {
		l.last = node
	}
	l.size++

	l.triggerNodeAdded(0, block)
}

// AddLast adds a new Node for the block to the end of the list.
func (l *LinkedList) AddLast(block memory.Block) {
	node := newNode(block)
	if l.last == nil {
		l.first = node
	} else {
		l.last.next = node
	}
	l.last = node
	l.size++

	l.triggerNodeAdded(l.size-1, block)
}

// GetBlock returns the memory.Block at the given index.
func (l *LinkedList) GetBlock(index int) (block memory.Block, err error) {
	if err = l.checkElementIndex(index); err != nil {
		return memory.Block{}, err
	}

	return l.nodeAt(index).block, nil
}

// IndexOf returns the index of the first Node whose block equals the given one or NotFound if there is none.
func (l *LinkedList) IndexOf(block memory.Block) int {
	index := 0
	for node := l.first; node != nil; node = node.next {
		if node.block.Equal(block) {
			return index
		}
		index++
	}

	return NotFound
}

// RemoveNode unlinks the given Node from the list. Nodes are matched by identity, so equal blocks stored in other
// Nodes are left alone. Removing a Node that is not part of the list (or nil) leaves the list unchanged.
func (l *LinkedList) RemoveNode(node *Node) {
	if node == nil || l.first == nil {
		return
	}

	if l.first == node {
		l.first = node.next
		if l.first == nil {
			l.last = nil
		}
		l.unlinked(0, node)

		return
	}

	index := 1
	for prev, current := l.first, l.first.next; current != nil; prev, current = current, current.next {
		if current == node {
			prev.next = current.next
			if current == l.last {
				l.last = prev
			}
			l.unlinked(index, node)

			return
		}
		index++
	}
}

// RemoveIndex removes the Node at the given index.
func (l *LinkedList) RemoveIndex(index int) error {
	node, err := l.GetNode(index)
	if err != nil {
		return err
	}

	l.RemoveNode(node)

	return nil
}

// RemoveBlock removes the first Node whose block equals the given one.
func (l *LinkedList) RemoveBlock(block memory.Block) error {
	index := l.IndexOf(block)
	if index == NotFound {
		return errors.Wrapf(ErrBlockNotFound, "failed to remove %s", block)
	}

	return l.RemoveIndex(index)
}

// ForEach calls the callback for every Node, starting with the first one. If the callback returns false the
// iteration stops and ForEach returns false.
func (l *LinkedList) ForEach(callback func(node *Node) bool) bool {
	for node := l.first; node != nil; node = node.next {
		if !callback(node) {
			return false
		}
	}

	return true
}

// Blocks returns the blocks of the list in order.
func (l *LinkedList) Blocks() (blocks []memory.Block) {
	blocks = make([]memory.Block, 0, l.size)
	l.ForEach(func(node *Node) bool {
		blocks = append(blocks, node.block)
		return true
	})

	return blocks
}

// Iterator returns a ListIterator that starts at the current first Node.
func (l *LinkedList) Iterator() *ListIterator {
	return &ListIterator{
		current: l.first,
	}
}

// String returns the blocks of the list, each followed by a single space.
func (l *LinkedList) String() string {
	var builder strings.Builder
	l.ForEach(func(node *Node) bool {
		builder.WriteString(node.block.String())
		builder.WriteByte(' ')
		return true
	})

	return builder.String()
}

func (l *LinkedList) checkElementIndex(index int) error {
	if index < 0 || index >= l.size {
		return errors.Wrapf(ErrIndexOutOfRange, "illegal index %d for list of size %d", index, l.size)
	}

	return nil
}

// nodeAt walks from the first Node. The index must be valid.
func (l *LinkedList) nodeAt(index int) *Node {
	node := l.first
	for i := 0; i < index; i++ {
		node = node.next
	}

	return node
}

func (l *LinkedList) unlinked(index int, node *Node) {
	node.next = nil
	l.size--

	if l.Events != nil {
		l.Events.NodeRemoved.Trigger(&NodeEvent{Index: index, Block: node.block})
	}
}

func (l *LinkedList) triggerNodeAdded(index int, block memory.Block) {
	if l.Events != nil {
		l.Events.NodeAdded.Trigger(&NodeEvent{Index: index, Block: block})
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ListIterator /////////////////////////////////////////////////////////////////////////////////////////////////

// ListIterator walks the blocks of a LinkedList from front to back. Modifying the list while it is being iterated
// results in undefined behavior.
type ListIterator struct {
	current *Node
}

// HasNext returns true if Next will return another block.
func (i *ListIterator) HasNext() bool {
	return i.current != nil
}

// Next returns the next block or ErrNoSuchElement if the iterator is exhausted.
func (i *ListIterator) Next() (block memory.Block, err error) {
	if i.current == nil {
		return memory.Block{}, ErrNoSuchElement
	}

	block = i.current.block
	i.current = i.current.next

	return block, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
