package types

import (
	"fmt"

	"github.com/Layr-Labs/intent-signing-go/pkg/codec"
	"github.com/Layr-Labs/intent-signing-go/pkg/crypto"
	"github.com/Layr-Labs/intent-signing-go/pkg/intent"
	"github.com/Layr-Labs/intent-signing-go/pkg/merkle"
)

// AuthorityBatch commits to a contiguous run of executed transactions.
// Batches chain through PreviousDigest; TransactionsDigest is the merkle root
// of the transaction digests in execution order.
type AuthorityBatch struct {
	InitialSequenceNumber uint64
	NextSequenceNumber    uint64
	Size                  uint64
	PreviousDigest        [DigestLength]byte
	TransactionsDigest    [DigestLength]byte
}

// NewAuthorityBatch creates the batch following prev, or the first batch when
// prev is nil.
func NewAuthorityBatch(prev *AuthorityBatch, digests []TransactionDigest) (*AuthorityBatch, error) {
	tree, err := buildBatchTree(digests)
	if err != nil {
		return nil, err
	}

	batch := &AuthorityBatch{
		Size:               uint64(len(digests)),
		TransactionsDigest: tree.Root,
	}
	if prev != nil {
		prevDigest, err := prev.Digest()
		if err != nil {
			return nil, err
		}
		batch.InitialSequenceNumber = prev.NextSequenceNumber
		batch.PreviousDigest = prevDigest
	}
	batch.NextSequenceNumber = batch.InitialSequenceNumber + batch.Size
	return batch, nil
}

func buildBatchTree(digests []TransactionDigest) (*merkle.MerkleTree, error) {
	leaves := make([][32]byte, len(digests))
	for i, d := range digests {
		leaves[i] = d
	}
	tree, err := merkle.BuildMerkleTree(leaves)
	if err != nil {
		return nil, fmt.Errorf("failed to build batch merkle tree: %w", err)
	}
	return tree, nil
}

// Digest returns sha3_256("AuthorityBatch::" || canonical bytes).
func (b AuthorityBatch) Digest() ([DigestLength]byte, error) {
	encoded, err := b.MarshalCanonical()
	if err != nil {
		return [DigestLength]byte{}, err
	}
	return hashWithName("AuthorityBatch", encoded), nil
}

// IsSuccessorOf reports whether b directly follows prev.
func (b AuthorityBatch) IsSuccessorOf(prev AuthorityBatch) bool {
	prevDigest, err := prev.Digest()
	if err != nil {
		return false
	}
	return b.InitialSequenceNumber == prev.NextSequenceNumber && b.PreviousDigest == prevDigest
}

// ProveInclusion builds an inclusion proof for digest. digests must be the
// batch contents the root was built from.
func (b AuthorityBatch) ProveInclusion(digests []TransactionDigest, digest TransactionDigest) (*merkle.MerkleProof, error) {
	if uint64(len(digests)) != b.Size {
		return nil, fmt.Errorf("batch has %d transactions, got %d", b.Size, len(digests))
	}
	tree, err := buildBatchTree(digests)
	if err != nil {
		return nil, err
	}
	if tree.Root != b.TransactionsDigest {
		return nil, fmt.Errorf("digests do not match the batch root")
	}
	index := tree.IndexOf(digest)
	if index < 0 {
		return nil, fmt.Errorf("transaction %s is not in the batch", digest)
	}
	return tree.GenerateProof(index, digest)
}

// VerifyInclusion checks that proof places a transaction inside this batch.
func (b AuthorityBatch) VerifyInclusion(proof *merkle.MerkleProof) bool {
	if proof == nil || proof.LeafIndex >= b.Size {
		return false
	}
	return merkle.VerifyProof(proof, b.TransactionsDigest)
}

func (b AuthorityBatch) MarshalCanonical() ([]byte, error) {
	return codec.Marshal(b)
}

func (b *AuthorityBatch) UnmarshalCanonical(data []byte) error {
	return codec.Unmarshal(data, b)
}

// SignedAuthorityBatch is a batch signed by the validator that produced it
type SignedAuthorityBatch struct {
	Batch     AuthorityBatch
	Authority crypto.AuthorityPublicKeyBytes
	Signature crypto.AuthoritySignature
}

func NewSignedAuthorityBatch(batch *AuthorityBatch, kp *crypto.AuthorityKeyPair, chainId intent.ChainId) *SignedAuthorityBatch {
	return &SignedAuthorityBatch{
		Batch:     *batch,
		Authority: kp.PublicKey(),
		Signature: crypto.NewAuthoritySignatureSecure(*batch, intent.ForChain(chainId, intent.IntentScope_AuthorityBatch), kp),
	}
}

func (s *SignedAuthorityBatch) Verify(chainId intent.ChainId, expectedAuthority crypto.AuthorityPublicKeyBytes) error {
	if s.Authority != expectedAuthority {
		return crypto.ErrVerification
	}
	return crypto.VerifyAuthoritySecure(s.Batch, intent.ForChain(chainId, intent.IntentScope_AuthorityBatch), s.Signature, s.Authority)
}
