package types

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Layr-Labs/intent-signing-go/pkg/crypto"
	"github.com/Layr-Labs/intent-signing-go/pkg/intent"
)

func randomDigests(t *testing.T, n int) []TransactionDigest {
	t.Helper()
	digests := make([]TransactionDigest, n)
	for i := range digests {
		_, err := rand.Read(digests[i][:])
		require.NoError(t, err)
	}
	return digests
}

func Test_AuthorityBatchChain(t *testing.T) {
	first, err := NewAuthorityBatch(nil, randomDigests(t, 3))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), first.InitialSequenceNumber)
	assert.Equal(t, uint64(3), first.NextSequenceNumber)
	assert.Equal(t, uint64(3), first.Size)
	assert.Equal(t, [DigestLength]byte{}, first.PreviousDigest)

	second, err := NewAuthorityBatch(first, randomDigests(t, 5))
	require.NoError(t, err)
	assert.Equal(t, uint64(3), second.InitialSequenceNumber)
	assert.Equal(t, uint64(8), second.NextSequenceNumber)
	assert.True(t, second.IsSuccessorOf(*first))
	assert.False(t, first.IsSuccessorOf(*second))

	_, err = NewAuthorityBatch(second, nil)
	assert.Error(t, err)
}

func Test_AuthorityBatchInclusion(t *testing.T) {
	digests := randomDigests(t, 7)
	batch, err := NewAuthorityBatch(nil, digests)
	require.NoError(t, err)

	for _, d := range digests {
		proof, err := batch.ProveInclusion(digests, d)
		require.NoError(t, err)
		assert.True(t, batch.VerifyInclusion(proof))
	}

	outsider := randomDigests(t, 1)[0]
	_, err = batch.ProveInclusion(digests, outsider)
	assert.Error(t, err)

	proof, err := batch.ProveInclusion(digests, digests[2])
	require.NoError(t, err)
	proof.Digest = outsider
	assert.False(t, batch.VerifyInclusion(proof))

	other, err := NewAuthorityBatch(nil, randomDigests(t, 7))
	require.NoError(t, err)
	proof, err = batch.ProveInclusion(digests, digests[2])
	require.NoError(t, err)
	assert.False(t, other.VerifyInclusion(proof))

	_, err = batch.ProveInclusion(digests[:6], digests[0])
	assert.Error(t, err)
}

func Test_SignedAuthorityBatch(t *testing.T) {
	kp, err := crypto.GenerateAuthorityKeyPair()
	require.NoError(t, err)
	batch, err := NewAuthorityBatch(nil, randomDigests(t, 4))
	require.NoError(t, err)

	signed := NewSignedAuthorityBatch(batch, kp, intent.ChainId_Devnet)
	require.NoError(t, signed.Verify(intent.ChainId_Devnet, kp.PublicKey()))
	assert.ErrorIs(t, signed.Verify(intent.ChainId_Testnet, kp.PublicKey()), crypto.ErrVerification)

	tampered := *signed
	tampered.Batch.Size++
	assert.ErrorIs(t, tampered.Verify(intent.ChainId_Devnet, kp.PublicKey()), crypto.ErrVerification)

	// the same authority signature does not pass as a transaction countersignature
	assert.ErrorIs(t, crypto.VerifyAuthoritySecure(signed.Batch, intent.ForChain(intent.ChainId_Devnet, intent.IntentScope_TransactionData), signed.Signature, kp.PublicKey()), crypto.ErrVerification)
}
