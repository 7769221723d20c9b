package canopy

import (
	"bytes"

	"github.com/bits-and-blooms/bitset"
	"github.com/canopyhash/canopy/cnhash"
)

// Tree is the commitment to one ordered sequence of blocks,
// produced by [Build].
//
// A Tree is immutable after construction
// and is safe to share by read-only reference.
// It retains the original blocks so that the root digest
// can be re-derived later with [*Tree.Verify].
type Tree struct {
	// Root of the node structure.
	// Nil when the tree is empty or was built with [BuildConfig.RootOnly].
	root *Node

	// Digest of the root node. Nil only when the tree is empty.
	rootDigest []byte

	// The original input blocks, in input order, before any parity padding.
	blocks [][]byte

	// Bit i is set when level i had an odd number of nodes
	// and its last node was duplicated to complete a pair.
	padded *bitset.BitSet

	// Number of reduction levels including the leaf level.
	// Zero when the tree is empty.
	height int
}

// RootDigest returns the digest committing to all blocks in order.
//
// For a tree built from no blocks there is no root;
// the returned sentinel for that case is nil.
func (t *Tree) RootDigest() []byte {
	return t.rootDigest
}

// Root returns the root node of the retained structure.
// It is nil when the tree is empty
// or when the tree was built with [BuildConfig.RootOnly].
func (t *Tree) Root() *Node {
	return t.root
}

// LeafCount returns the number of original input blocks.
// Nodes duplicated for parity are never counted.
func (t *Tree) LeafCount() int {
	return len(t.blocks)
}

// Block returns the original block at index i.
// The caller must not modify the returned slice.
func (t *Tree) Block(i int) []byte {
	return t.blocks[i]
}

// Height returns the number of reduction levels,
// counting the leaf level, that produced the root.
// It is zero for an empty tree and one for a single-block tree.
func (t *Tree) Height() int {
	return t.height
}

// PaddedLevels reports which reduction levels received parity padding:
// bit i is set when level i (zero being the leaf level)
// had an odd number of nodes and its last node was duplicated.
// An auditor of tree shape can recover every duplicated subtree from this.
//
// The caller must not modify the returned set.
func (t *Tree) PaddedLevels() *bitset.BitSet {
	return t.padded
}

// Verify re-derives the root digest from the retained blocks using h
// and reports whether it matches [*Tree.RootDigest].
// An empty tree verifies successfully against its nil sentinel.
//
// Verification with a hasher other than the one the tree was built with
// reports false, not an error.
func (t *Tree) Verify(h cnhash.Hasher) (bool, error) {
	root, err := Root(t.blocks, h)
	if err != nil {
		return false, err
	}

	return bytes.Equal(root, t.rootDigest), nil
}
