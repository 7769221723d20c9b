package cnhash

// Hasher is the user-defined digest function injected into tree construction.
// The tree builder passes raw block data through AppendSum to create leaf
// digests, and passes concatenated child digests through it to create node
// digests.
//
// To be allocation-efficient, the Hasher implementation
// must append its output to dst instead of creating a new byte slice.
// Hasher must not retain references to the dst or in slices.
//
// AppendSum must be deterministic: the same input bytes
// must always produce the same digest.
// Furthermore, Hasher methods must be safe to call concurrently.
type Hasher interface {
	// AppendSum appends the digest of in to dst
	// and returns the extended slice.
	// A returned error indicates the underlying primitive failed;
	// callers treat that as fatal for the operation in progress.
	AppendSum(dst, in []byte) ([]byte, error)

	// Size returns the fixed length, in bytes,
	// of every digest produced by AppendSum.
	Size() int
}
