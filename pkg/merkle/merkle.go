// Package merkle builds binary keccak256 merkle trees over transaction
// digests so a batch can commit to its contents with a single root.
package merkle

import (
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
)

const (
	leafPrefix byte = 0x00
	nodePrefix byte = 0x01
)

// BuildMerkleTree creates a binary merkle tree from digests in the order given.
// If there's an odd number of nodes at any level, the last node is duplicated.
func BuildMerkleTree(digests [][32]byte) (*MerkleTree, error) {
	if len(digests) == 0 {
		return nil, fmt.Errorf("cannot build merkle tree from empty digest list")
	}

	leaves := make([][32]byte, len(digests))
	for i, d := range digests {
		leaves[i] = HashLeaf(d)
	}

	levels := make([][][32]byte, 0)
	levels = append(levels, leaves)

	currentLevel := leaves
	for len(currentLevel) > 1 {
		nextLevel := make([][32]byte, 0, (len(currentLevel)+1)/2)

		for i := 0; i < len(currentLevel); i += 2 {
			left := currentLevel[i]
			right := left
			if i+1 < len(currentLevel) {
				right = currentLevel[i+1]
			}
			nextLevel = append(nextLevel, hashPair(left, right))
		}

		levels = append(levels, nextLevel)
		currentLevel = nextLevel
	}

	return &MerkleTree{
		Leaves: leaves,
		Root:   currentLevel[0],
		levels: levels,
	}, nil
}

// GenerateProof creates a merkle proof for the digest at the given index.
func (mt *MerkleTree) GenerateProof(leafIndex int, digest [32]byte) (*MerkleProof, error) {
	if leafIndex < 0 || leafIndex >= len(mt.Leaves) {
		return nil, fmt.Errorf("leaf index %d out of bounds (tree has %d leaves)", leafIndex, len(mt.Leaves))
	}
	if HashLeaf(digest) != mt.Leaves[leafIndex] {
		return nil, fmt.Errorf("digest does not match leaf %d", leafIndex)
	}

	proof := make([][32]byte, 0, len(mt.levels)-1)
	index := leafIndex

	for level := 0; level < len(mt.levels)-1; level++ {
		currentLevel := mt.levels[level]

		siblingIndex := index + 1
		if index%2 == 1 {
			siblingIndex = index - 1
		}
		if siblingIndex >= len(currentLevel) {
			siblingIndex = index
		}

		proof = append(proof, currentLevel[siblingIndex])
		index = index / 2
	}

	return &MerkleProof{
		LeafIndex: uint64(leafIndex),
		Digest:    digest,
		Proof:     proof,
	}, nil
}

// IndexOf returns the first position of digest in the tree, or -1.
func (mt *MerkleTree) IndexOf(digest [32]byte) int {
	leaf := HashLeaf(digest)
	for i, l := range mt.Leaves {
		if l == leaf {
			return i
		}
	}
	return -1
}

// VerifyProof recomputes the root from the proof and compares it with root.
func VerifyProof(proof *MerkleProof, root [32]byte) bool {
	if proof == nil || len(proof.Proof) > 63 {
		return false
	}
	// an index past the tree width would alias a real leaf position
	if proof.LeafIndex >= uint64(1)<<len(proof.Proof) {
		return false
	}

	currentHash := HashLeaf(proof.Digest)
	index := proof.LeafIndex

	for _, siblingHash := range proof.Proof {
		if index%2 == 0 {
			currentHash = hashPair(currentHash, siblingHash)
		} else {
			currentHash = hashPair(siblingHash, currentHash)
		}
		index = index / 2
	}

	return currentHash == root
}

// HashLeaf computes keccak256(0x00 || digest). The prefix keeps a leaf from
// being presented as an interior node.
func HashLeaf(digest [32]byte) [32]byte {
	data := make([]byte, 0, 33)
	data = append(data, leafPrefix)
	data = append(data, digest[:]...)
	return [32]byte(crypto.Keccak256Hash(data))
}

// hashPair computes keccak256(0x01 || left || right).
func hashPair(left, right [32]byte) [32]byte {
	data := make([]byte, 0, 65)
	data = append(data, nodePrefix)
	data = append(data, left[:]...)
	data = append(data, right[:]...)
	return [32]byte(crypto.Keccak256Hash(data))
}
