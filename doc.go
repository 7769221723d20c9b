// Package canopy builds and verifies binary hash tree commitments
// over ordered sequences of opaque data blocks.
//
// A [Tree] commits to a block sequence and its order with a single root digest:
// each block becomes a leaf digest, and consecutive pairs of digests are
// repeatedly combined, duplicating the last node of an odd level,
// until one root remains.
// The same blocks in the same order always produce the same root,
// and any reordering produces a different one.
//
// The hashing primitive is not part of this package.
// It is injected through [github.com/canopyhash/canopy/cnhash.Hasher];
// a production SHA256 implementation lives in
// [github.com/canopyhash/canopy/cnhash/cnsha256].
package canopy
