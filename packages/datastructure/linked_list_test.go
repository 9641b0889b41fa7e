package datastructure

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/memlist/packages/memory"
)

var (
	blockA = memory.NewBlock(0, 10)
	blockB = memory.NewBlock(10, 20)
	blockC = memory.NewBlock(30, 5)
	blockD = memory.NewBlock(35, 65)
)

func TestLinkedList_AddFirstAddLast(t *testing.T) {
	list := New()

	list.AddLast(blockA)
	assertConsistent(t, list)
	list.AddLast(blockB)
	assertConsistent(t, list)
	list.AddFirst(blockC)
	assertConsistent(t, list)

	assert.Equal(t, []memory.Block{blockC, blockA, blockB}, list.Blocks())
	assert.Equal(t, 3, list.GetSize())
	assert.Equal(t, blockC, list.GetFirst().Block())
	assert.Equal(t, blockB, list.GetLast().Block())
}

func TestLinkedList_AddFirstOnEmptyList(t *testing.T) {
	list := New()
	list.AddFirst(blockA)

	require.NotNil(t, list.GetFirst())
	assert.Same(t, list.GetFirst(), list.GetLast())
	assert.Nil(t, list.GetLast().Next())
	assertConsistent(t, list)
}

func TestLinkedList_Add(t *testing.T) {
	list := New()

	require.NoError(t, list.Add(0, blockB))
	require.NoError(t, list.Add(0, blockA))
	require.NoError(t, list.Add(2, blockD))
	require.NoError(t, list.Add(2, blockC))
	assertConsistent(t, list)

	assert.Equal(t, []memory.Block{blockA, blockB, blockC, blockD}, list.Blocks())

	block, err := list.GetBlock(0)
	require.NoError(t, err)
	assert.Equal(t, blockA, block)

	require.NoError(t, list.Add(list.GetSize(), blockB))
	block, err = list.GetBlock(list.GetSize() - 1)
	require.NoError(t, err)
	assert.Equal(t, blockB, block)
	assert.Equal(t, blockB, list.GetLast().Block())
	assertConsistent(t, list)
}

func TestLinkedList_AddOutOfRange(t *testing.T) {
	list := New()

	assert.True(t, errors.Is(list.Add(-1, blockA), ErrIndexOutOfRange))
	assert.True(t, errors.Is(list.Add(1, blockA), ErrIndexOutOfRange))
	assert.Equal(t, 0, list.GetSize())

	list.AddLast(blockA)
	assert.True(t, errors.Is(list.Add(2, blockB), ErrIndexOutOfRange))
	assert.Equal(t, []memory.Block{blockA}, list.Blocks())
	assertConsistent(t, list)
}

func TestLinkedList_IndexOutOfRange(t *testing.T) {
	for _, list := range []*LinkedList{New(), newTestList(blockA, blockB, blockC)} {
		for _, index := range []int{-1, list.GetSize()} {
			_, err := list.GetNode(index)
			assert.True(t, errors.Is(err, ErrIndexOutOfRange))

			_, err = list.GetBlock(index)
			assert.True(t, errors.Is(err, ErrIndexOutOfRange))

			assert.True(t, errors.Is(list.RemoveIndex(index), ErrIndexOutOfRange))
		}
		assertConsistent(t, list)
	}
}

func TestLinkedList_GetNode(t *testing.T) {
	list := newTestList(blockA, blockB, blockC)

	for index, expected := range []memory.Block{blockA, blockB, blockC} {
		node, err := list.GetNode(index)
		require.NoError(t, err)
		assert.Equal(t, expected, node.Block())
	}

	last, err := list.GetNode(2)
	require.NoError(t, err)
	assert.Same(t, list.GetLast(), last)
}

func TestLinkedList_RoundTrip(t *testing.T) {
	blocks := make([]memory.Block, 0, 50)
	list := New()
	for i := 0; i < 50; i++ {
		block := memory.NewBlock(i*8, 8)
		blocks = append(blocks, block)
		list.AddLast(block)
	}
	assertConsistent(t, list)

	for i, expected := range blocks {
		block, err := list.GetBlock(i)
		require.NoError(t, err)
		assert.Equal(t, expected, block)
	}
}

func TestLinkedList_IndexOf(t *testing.T) {
	assert.Equal(t, NotFound, New().IndexOf(blockA))

	list := newTestList(blockA, blockB, blockC, blockB)
	assert.Equal(t, 0, list.IndexOf(blockA))
	assert.Equal(t, 1, list.IndexOf(blockB))
	assert.Equal(t, 2, list.IndexOf(memory.NewBlock(30, 5)))
	assert.Equal(t, NotFound, list.IndexOf(blockD))
}

func TestLinkedList_RemoveNode(t *testing.T) {
	list := newTestList(blockA, blockB, blockC)
	last := list.GetLast()

	node, err := list.GetNode(1)
	require.NoError(t, err)
	list.RemoveNode(node)

	assert.Equal(t, []memory.Block{blockA, blockC}, list.Blocks())
	assert.Equal(t, 2, list.GetSize())
	assert.Same(t, last, list.GetLast())
	assertConsistent(t, list)
}

func TestLinkedList_RemoveNodeByIdentity(t *testing.T) {
	list := newTestList(blockB, blockA, blockB)

	second, err := list.GetNode(2)
	require.NoError(t, err)
	list.RemoveNode(second)

	assert.Equal(t, []memory.Block{blockB, blockA}, list.Blocks())
	assert.Equal(t, blockA, list.GetLast().Block())
	assertConsistent(t, list)
}

func TestLinkedList_RemoveNodeNotInList(t *testing.T) {
	list := newTestList(blockA, blockB)
	other := newTestList(blockA)

	list.RemoveNode(other.GetFirst())
	list.RemoveNode(nil)
	New().RemoveNode(other.GetFirst())

	assert.Equal(t, []memory.Block{blockA, blockB}, list.Blocks())
	assert.Equal(t, 1, other.GetSize())
	assertConsistent(t, list)
	assertConsistent(t, other)
}

func TestLinkedList_RemoveIndex(t *testing.T) {
	list := newTestList(blockA, blockB, blockC)
	middle := list.GetFirst().Next()

	require.NoError(t, list.RemoveIndex(2))
	assert.Same(t, middle, list.GetLast())
	assert.Nil(t, list.GetLast().Next())
	assertConsistent(t, list)

	require.NoError(t, list.RemoveIndex(0))
	assert.Same(t, middle, list.GetFirst())
	assertConsistent(t, list)
}

func TestLinkedList_RemoveBlock(t *testing.T) {
	list := newTestList(blockA, blockB, blockC, blockB)

	require.NoError(t, list.RemoveBlock(blockB))
	assert.Equal(t, []memory.Block{blockA, blockC, blockB}, list.Blocks())

	err := list.RemoveBlock(blockD)
	assert.True(t, errors.Is(err, ErrBlockNotFound))
	assert.Equal(t, 3, list.GetSize())
	assertConsistent(t, list)
}

func TestLinkedList_Drain(t *testing.T) {
	list := newTestList(blockA, blockB, blockC, blockD)

	for list.GetSize() > 0 {
		require.NoError(t, list.RemoveIndex(0))
		assertConsistent(t, list)
	}

	assert.Nil(t, list.GetFirst())
	assert.Nil(t, list.GetLast())
}

func TestLinkedList_Iterator(t *testing.T) {
	list := newTestList(blockA, blockB, blockC)

	iterator := list.Iterator()
	var blocks []memory.Block
	for iterator.HasNext() {
		block, err := iterator.Next()
		require.NoError(t, err)
		blocks = append(blocks, block)
	}
	assert.Equal(t, list.Blocks(), blocks)

	_, err := iterator.Next()
	assert.True(t, errors.Is(err, ErrNoSuchElement))

	// a fresh iterator starts at the front again
	block, err := list.Iterator().Next()
	require.NoError(t, err)
	assert.Equal(t, blockA, block)

	_, err = New().Iterator().Next()
	assert.True(t, errors.Is(err, ErrNoSuchElement))
}

func TestLinkedList_ForEach(t *testing.T) {
	list := newTestList(blockA, blockB, blockC)

	visited := 0
	assert.False(t, list.ForEach(func(node *Node) bool {
		visited++
		return visited < 2
	}))
	assert.Equal(t, 2, visited)
	assert.True(t, list.ForEach(func(*Node) bool { return true }))
}

func TestLinkedList_String(t *testing.T) {
	assert.Equal(t, "", New().String())
	assert.Equal(t, "(0 , 10) (10 , 20) ", newTestList(blockA, blockB).String())
}

func TestLinkedList_ZeroValue(t *testing.T) {
	var list LinkedList

	list.AddLast(blockA)
	require.NoError(t, list.Add(0, blockB))
	require.NoError(t, list.RemoveBlock(blockA))

	assert.Equal(t, []memory.Block{blockB}, list.Blocks())
	assertConsistent(t, &list)
}

func TestLinkedList_Events(t *testing.T) {
	list := New()

	var added, removed []*NodeEvent
	list.Events.NodeAdded.Attach(event.NewClosure(func(nodeEvent *NodeEvent) {
		added = append(added, nodeEvent)
	}))
	list.Events.NodeRemoved.Attach(event.NewClosure(func(nodeEvent *NodeEvent) {
		removed = append(removed, nodeEvent)
	}))

	list.AddLast(blockA)
	list.AddLast(blockC)
	require.NoError(t, list.Add(1, blockB))
	list.AddFirst(blockD)
	require.Len(t, added, 4)
	assert.Equal(t, &NodeEvent{Index: 0, Block: blockA}, added[0])
	assert.Equal(t, &NodeEvent{Index: 1, Block: blockC}, added[1])
	assert.Equal(t, &NodeEvent{Index: 1, Block: blockB}, added[2])
	assert.Equal(t, &NodeEvent{Index: 0, Block: blockD}, added[3])

	require.NoError(t, list.RemoveBlock(blockC))
	list.RemoveNode(newNode(blockA))
	require.Error(t, list.RemoveIndex(5))
	require.Len(t, removed, 1)
	assert.Equal(t, &NodeEvent{Index: 3, Block: blockC}, removed[0])
}

func newTestList(blocks ...memory.Block) *LinkedList {
	list := New()
	for _, block := range blocks {
		list.AddLast(block)
	}

	return list
}

// assertConsistent checks that first, last and size describe the same acyclic chain.
func assertConsistent(t *testing.T, list *LinkedList) {
	t.Helper()

	if list.GetSize() == 0 {
		assert.Nil(t, list.GetFirst())
		assert.Nil(t, list.GetLast())
		return
	}
	require.NotNil(t, list.GetFirst())
	require.NotNil(t, list.GetLast())

	count := 0
	var tail *Node
	for node := list.GetFirst(); node != nil && count <= list.GetSize(); node = node.Next() {
		tail = node
		count++
	}
	assert.Equal(t, list.GetSize(), count)
	assert.Same(t, list.GetLast(), tail)
	assert.Nil(t, list.GetLast().Next())
}
