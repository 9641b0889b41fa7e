package datastructure

import (
	"github.com/iotaledger/memlist/packages/memory"
)

// Node is a single cell of a LinkedList. Two Nodes are only considered equal if they are the same cell, even if they
// hold equal blocks.
type Node struct {
	block memory.Block
	next  *Node
}

func newNode(block memory.Block) *Node {
	return &Node{
		block: block,
	}
}

// Block returns the memory.Block that is stored in the Node.
func (n *Node) Block() memory.Block {
	return n.block
}

// Next returns the following Node in the chain or nil if the Node is the last one (or was removed from its list).
func (n *Node) Next() *Node {
	return n.next
}

// String returns a human-readable version of the Node.
func (n *Node) String() string {
	return n.block.String()
}
