package memory

import "github.com/cockroachdb/errors"

// ErrInvalidBlock is returned if a Block can not be created from its textual fields.
var ErrInvalidBlock = errors.New("invalid memory block")
