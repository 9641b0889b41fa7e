package memory

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// region Block ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Block describes a contiguous region of the simulated memory by its base address and its length.
type Block struct {
	BaseAddress int
	Length      int
}

// NewBlock creates a Block that starts at baseAddress and spans length words.
func NewBlock(baseAddress, length int) Block {
	return Block{
		BaseAddress: baseAddress,
		Length:      length,
	}
}

// ParseBlock creates a Block from the decimal representation of its base address and length.
func ParseBlock(baseAddress, length string) (block Block, err error) {
	if block.BaseAddress, err = strconv.Atoi(baseAddress); err != nil {
		return Block{}, errors.Wrapf(ErrInvalidBlock, "failed to parse base address %q: %s", baseAddress, err)
	}
	if block.Length, err = strconv.Atoi(length); err != nil {
		return Block{}, errors.Wrapf(ErrInvalidBlock, "failed to parse length %q: %s", length, err)
	}
	if block.BaseAddress < 0 {
		return Block{}, errors.Wrapf(ErrInvalidBlock, "base address %d is negative", block.BaseAddress)
	}
	if block.Length <= 0 {
		return Block{}, errors.Wrapf(ErrInvalidBlock, "length %d is not positive", block.Length)
	}

	return block, nil
}

// Equal returns true if both Blocks describe the same region.
func (b Block) Equal(other Block) bool {
	return b.BaseAddress == other.BaseAddress && b.Length == other.Length
}

// End returns the first address after the Block.
func (b Block) End() int {
	return b.BaseAddress + b.Length
}

// String returns a human-readable version of the Block.
func (b Block) String() string {
	return "(" + strconv.Itoa(b.BaseAddress) + " , " + strconv.Itoa(b.Length) + ")"
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
