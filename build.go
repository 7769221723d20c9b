package canopy

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/canopyhash/canopy/cnhash"
)

// BuildConfig is the configuration for [Build].
type BuildConfig struct {
	// Hasher produces every leaf and node digest. Required.
	Hasher cnhash.Hasher

	// RootOnly discards the intermediate node structure
	// once the root digest is known,
	// for callers that only re-derive and compare roots.
	// The original blocks are retained either way.
	RootOnly bool
}

// Build commits to the given ordered blocks and returns the resulting tree.
//
// Build is total over finite inputs:
// an empty sequence yields a tree with no root,
// and a single block yields a root equal to that block's digest,
// with no internal node wrapping it.
//
// Levels with an odd number of nodes (beyond one) are completed
// by duplicating the last node;
// the duplicate reuses the existing digest
// and the underlying data is never hashed again.
//
// The returned tree retains the blocks slice for later re-derivation,
// so the caller must not modify it or its elements afterwards.
//
// The only failure mode is the injected hasher failing,
// in which case Build returns a [HashError] and no partial tree.
func Build(blocks [][]byte, cfg BuildConfig) (*Tree, error) {
	if cfg.Hasher == nil {
		panic(fmt.Errorf("BUG: BuildConfig.Hasher must not be nil"))
	}

	t := &Tree{
		blocks: blocks,
		padded: bitset.New(0),
	}

	if len(blocks) == 0 {
		return t, nil
	}

	h := cfg.Hasher
	size := h.Size()

	level := make([]*Node, len(blocks))
	for i, b := range blocks {
		d, err := h.AppendSum(make([]byte, 0, size), b)
		if err != nil {
			return nil, HashError{Index: i, Err: err}
		}
		level[i] = &Node{Digest: d}
	}

	// Scratch buffer for the concatenated child digests,
	// reused across every pair.
	scratch := make([]byte, 0, 2*size)

	for lvl := 0; len(level) > 1; lvl++ {
		if len(level)%2 != 0 {
			// Reuse the node itself rather than re-deriving anything;
			// its digest contribution is idempotent
			// and the shared child stays visible to shape audits.
			level = append(level, level[len(level)-1])
			t.padded.Set(uint(lvl))
		}

		next := make([]*Node, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			left, right := level[i], level[i+1]

			scratch = append(scratch[:0], left.Digest...)
			scratch = append(scratch, right.Digest...)

			d, err := h.AppendSum(make([]byte, 0, size), scratch)
			if err != nil {
				return nil, HashError{Level: lvl + 1, Index: i / 2, Err: err}
			}

			next = append(next, &Node{
				Digest: d,
				Left:   left,
				Right:  right,
			})
		}

		level = next
		t.height = lvl + 2
	}

	if t.height == 0 {
		// Single block: the leaf is the root.
		t.height = 1
	}

	root := level[0]
	t.rootDigest = root.Digest
	if !cfg.RootOnly {
		t.root = root
	}

	return t, nil
}

// Root returns the root digest for the given ordered blocks
// without retaining any tree structure.
// The result is identical to building a full tree
// and reading its [*Tree.RootDigest];
// in particular it is nil for an empty input.
func Root(blocks [][]byte, h cnhash.Hasher) ([]byte, error) {
	t, err := Build(blocks, BuildConfig{Hasher: h, RootOnly: true})
	if err != nil {
		return nil, err
	}

	return t.RootDigest(), nil
}
