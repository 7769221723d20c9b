package canopytest

import (
	"crypto/sha256"
	"math/rand/v2"
	"testing"
)

// Blocks returns n pseudorandom blocks of sz bytes each,
// derived from a seed based on the test name,
// so repeated runs of the same test see the same blocks.
func Blocks(t *testing.T, n, sz int) [][]byte {
	// Sha256 happens to be the right size for the chacha8 seed,
	// and this fits well anyway since that means
	// we are not limited by the length of any particular test name.
	seed := sha256.Sum256([]byte(t.Name()))
	chacha := rand.NewChaCha8(seed)

	out := make([][]byte, n)
	for i := range out {
		b := make([]byte, sz)
		if _, err := chacha.Read(b); err != nil {
			panic(err)
		}
		out[i] = b
	}

	return out
}
