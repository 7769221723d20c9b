package cnsha256

import (
	"crypto/sha256"
)

const HashSize = sha256.Size

// Hasher is a [github.com/canopyhash/canopy/cnhash.Hasher]
// backed by SHA256 hashes.
type Hasher struct{}

func (Hasher) AppendSum(dst, in []byte) ([]byte, error) {
	h := sha256.New()
	_, _ = h.Write(in)
	return h.Sum(dst), nil
}

func (Hasher) Size() int {
	return HashSize
}
