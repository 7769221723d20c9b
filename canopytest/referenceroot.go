package canopytest

import (
	"testing"

	"github.com/canopyhash/canopy/cnhash"
	"github.com/stretchr/testify/require"
)

// ReferenceRoot re-derives the expected root digest for blocks
// with a straight-line level walk over plain digest slices,
// independent of the canopy package internals.
// Tests use it to cross-check [github.com/canopyhash/canopy.Build]
// on inputs too large for hand-written expectations.
func ReferenceRoot(t *testing.T, h cnhash.Hasher, blocks [][]byte) []byte {
	if len(blocks) == 0 {
		return nil
	}

	level := make([][]byte, len(blocks))
	for i, b := range blocks {
		d, err := h.AppendSum(nil, b)
		require.NoError(t, err)
		level[i] = d
	}

	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}

		next := make([][]byte, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			in := append(append([]byte(nil), level[i]...), level[i+1]...)
			d, err := h.AppendSum(nil, in)
			require.NoError(t, err)
			next = append(next, d)
		}

		level = next
	}

	return level[0]
}
