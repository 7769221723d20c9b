package cnsha256_test

import (
	"crypto/sha256"
	"testing"

	"github.com/canopyhash/canopy/cnhash"
	"github.com/canopyhash/canopy/cnhash/cnhashtest"
	"github.com/canopyhash/canopy/cnhash/cnsha256"
	"github.com/stretchr/testify/require"
)

func TestHasherCompliance(t *testing.T) {
	t.Parallel()

	cnhashtest.TestHasherCompliance(t, func() cnhash.Hasher {
		return cnsha256.Hasher{}
	})
}

func TestHasher_matchesSum256(t *testing.T) {
	t.Parallel()

	var h cnsha256.Hasher

	got, err := h.AppendSum(nil, []byte("known_input"))
	require.NoError(t, err)

	want := sha256.Sum256([]byte("known_input"))
	require.Equal(t, want[:], got)

	require.Equal(t, sha256.Size, h.Size())
	require.Equal(t, cnsha256.HashSize, h.Size())
}
