package datastructure

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrIndexOutOfRange is returned if an index lies outside of the positions that are valid for an operation.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrBlockNotFound is returned if a block that should be removed is not part of the list.
	ErrBlockNotFound = errors.New("block not found")
	// ErrNoSuchElement is returned by an exhausted ListIterator.
	ErrNoSuchElement = errors.New("element does not exist")
)
