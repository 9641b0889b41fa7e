package listscript

import "github.com/cockroachdb/errors"

// ErrInvalidCommand is returned if a line of a script can not be parsed into a Command.
var ErrInvalidCommand = errors.New("invalid command")
