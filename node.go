package canopy

// Node is one unit of a built tree:
// either a leaf committing to one input block,
// or an internal node committing to the concatenation
// of its two children's digests.
//
// Nodes are created during [Build] and never modified afterwards.
// Callers must not modify the Digest slice or reassign children.
type Node struct {
	// The digest committing to this node's subtree.
	// For a leaf, it is the digest of the source block.
	// For an internal node, it is the digest of
	// the left child's digest followed by the right child's digest,
	// both at their fixed binary width.
	Digest []byte

	// Children of an internal node, in reduction order.
	// Both are nil on a leaf, and both are set on an internal node;
	// no node ever has exactly one child.
	//
	// When a level was padded for parity,
	// Left and Right may point at the same child.
	Left, Right *Node
}

// IsLeaf reports whether n commits to a single source block.
func (n *Node) IsLeaf() bool {
	return n.Left == nil
}
