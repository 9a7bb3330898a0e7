package merkle

// MerkleTree is a binary keccak256 merkle tree over 32-byte digests, kept in
// insertion order.
type MerkleTree struct {
	// Leaves contains the hashed leaves in input order
	Leaves [][32]byte

	// Root is the merkle root hash
	Root [32]byte

	// levels stores all tree levels for proof generation
	// levels[0] = leaves, levels[len-1] = root
	levels [][][32]byte
}

// MerkleProof represents a proof that a digest is included in the tree.
type MerkleProof struct {
	// LeafIndex is the position of the digest in the input
	LeafIndex uint64

	// Digest is the value being proven, before leaf hashing
	Digest [32]byte

	// Proof contains the sibling hashes from leaf to root
	// proof[0] is the sibling of the leaf, proof[len-1] is near the root
	Proof [][32]byte
}
