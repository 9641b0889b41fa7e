package main

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/memlist/packages/memory"
)

func TestParseInitialBlocks(t *testing.T) {
	blocks, err := parseInitialBlocks([]string{"0:100", " 100:28"})
	require.NoError(t, err)
	assert.Equal(t, []memory.Block{memory.NewBlock(0, 100), memory.NewBlock(100, 28)}, blocks)

	for _, value := range []string{"100", "a:1", "1:0"} {
		_, err = parseInitialBlocks([]string{value})
		assert.True(t, errors.Is(err, memory.ErrInvalidBlock), "%q should be rejected", value)
	}
}
