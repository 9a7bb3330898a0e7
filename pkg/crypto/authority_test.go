package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Layr-Labs/intent-signing-go/pkg/intent"
)

func Test_AuthoritySignature(t *testing.T) {
	kp, err := GenerateAuthorityKeyPair()
	require.NoError(t, err)

	msg := intent.PersonalMessage{Message: []byte("Hello")}
	in := intent.ForChain(intent.ChainId_Testing, intent.IntentScope_PersonalMessage)
	sig := NewAuthoritySignatureSecure(msg, in, kp)

	require.NoError(t, VerifyAuthoritySecure(msg, in, sig, kp.PublicKey()))

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, sig, NewAuthoritySignatureSecure(msg, in, kp))
	})
	t.Run("different payload", func(t *testing.T) {
		other := intent.PersonalMessage{Message: []byte("Hellp")}
		assert.ErrorIs(t, VerifyAuthoritySecure(other, in, sig, kp.PublicKey()), ErrVerification)
	})
	t.Run("different intent", func(t *testing.T) {
		other := intent.ForChain(intent.ChainId_Testing, intent.IntentScope_AuthorityBatch)
		assert.ErrorIs(t, VerifyAuthoritySecure(msg, other, sig, kp.PublicKey()), ErrVerification)
	})
	t.Run("different key", func(t *testing.T) {
		other, err := GenerateAuthorityKeyPair()
		require.NoError(t, err)
		assert.ErrorIs(t, VerifyAuthoritySecure(msg, in, sig, other.PublicKey()), ErrVerification)
	})
	t.Run("malformed signature", func(t *testing.T) {
		assert.ErrorIs(t, VerifyAuthoritySecure(msg, in, AuthoritySignature{}, kp.PublicKey()), ErrVerification)
		tampered := sig
		tampered[10] ^= 0x01
		assert.ErrorIs(t, VerifyAuthoritySecure(msg, in, tampered, kp.PublicKey()), ErrVerification)
	})
	t.Run("malformed key", func(t *testing.T) {
		assert.ErrorIs(t, VerifyAuthoritySecure(msg, in, sig, AuthorityPublicKeyBytes{}), ErrVerification)
	})
	t.Run("broken payload", func(t *testing.T) {
		assert.Panics(t, func() { NewAuthoritySignatureSecure(brokenPayload{}, in, kp) })
		assert.ErrorIs(t, VerifyAuthoritySecure(brokenPayload{}, in, sig, kp.PublicKey()), ErrVerification)
	})
}

func Test_AuthorityKeyPairRestore(t *testing.T) {
	kp, err := GenerateAuthorityKeyPair()
	require.NoError(t, err)

	restored, err := NewAuthorityKeyPairFromBytes(kp.Bytes())
	require.NoError(t, err)
	assert.Equal(t, kp.PublicKey(), restored.PublicKey())

	seed := make([]byte, 32)
	seed[31] = 7
	a, err := NewAuthorityKeyPairFromSeed(seed)
	require.NoError(t, err)
	b, err := NewAuthorityKeyPairFromSeed(seed)
	require.NoError(t, err)
	assert.Equal(t, a.PublicKey(), b.PublicKey())

	_, err = NewAuthorityKeyPairFromBytes(make([]byte, AuthorityPrivateKeySize))
	assert.Error(t, err)

	parsed, err := ParseAuthorityPublicKey(kp.PublicKey().Hex())
	require.NoError(t, err)
	assert.Equal(t, kp.PublicKey(), parsed)
}

func Test_AggregateAuthoritySignatures(t *testing.T) {
	msg := intent.PersonalMessage{Message: []byte("checkpoint")}
	in := intent.ForChain(intent.ChainId_Testnet, intent.IntentScope_PersonalMessage)

	var (
		pks  []AuthorityPublicKeyBytes
		sigs []AuthoritySignature
	)
	for i := 0; i < 4; i++ {
		kp, err := GenerateAuthorityKeyPair()
		require.NoError(t, err)
		pks = append(pks, kp.PublicKey())
		sigs = append(sigs, NewAuthoritySignatureSecure(msg, in, kp))
	}

	agg, err := AggregateAuthoritySignatures(sigs)
	require.NoError(t, err)
	require.NoError(t, VerifyAggregateAuthoritySecure(msg, in, agg, pks))

	t.Run("missing signer", func(t *testing.T) {
		assert.ErrorIs(t, VerifyAggregateAuthoritySecure(msg, in, agg, pks[:3]), ErrVerification)
	})
	t.Run("partial aggregate", func(t *testing.T) {
		partial, err := AggregateAuthoritySignatures(sigs[:3])
		require.NoError(t, err)
		require.NoError(t, VerifyAggregateAuthoritySecure(msg, in, partial, pks[:3]))
		assert.ErrorIs(t, VerifyAggregateAuthoritySecure(msg, in, partial, pks), ErrVerification)
	})
	t.Run("no keys", func(t *testing.T) {
		assert.ErrorIs(t, VerifyAggregateAuthoritySecure(msg, in, agg, nil), ErrVerification)
	})
	t.Run("empty aggregate", func(t *testing.T) {
		_, err := AggregateAuthoritySignatures(nil)
		assert.Error(t, err)
	})
	t.Run("malformed member signature", func(t *testing.T) {
		_, err := AggregateAuthoritySignatures([]AuthoritySignature{sigs[0], {}})
		assert.Error(t, err)
	})
}

func Test_ProofOfPossession(t *testing.T) {
	kp, err := GenerateAuthorityKeyPair()
	require.NoError(t, err)
	account, err := GenerateEd25519KeyPair()
	require.NoError(t, err)
	addr := account.PublicKey().Address()

	pop := GenerateProofOfPossession(kp, addr, intent.ChainId_Mainnet)
	require.NoError(t, VerifyProofOfPossession(pop, kp.PublicKey(), addr, intent.ChainId_Mainnet))

	other, err := GenerateAuthorityKeyPair()
	require.NoError(t, err)

	assert.ErrorIs(t, VerifyProofOfPossession(pop, kp.PublicKey(), Address{}, intent.ChainId_Mainnet), ErrVerification)
	assert.ErrorIs(t, VerifyProofOfPossession(pop, other.PublicKey(), addr, intent.ChainId_Mainnet), ErrVerification)
	assert.ErrorIs(t, VerifyProofOfPossession(pop, kp.PublicKey(), addr, intent.ChainId_Testnet), ErrVerification)

	// a plain signature over the same fields under another scope is not a proof
	msg := ProofOfPossessionMessage{AuthorityPublicKey: kp.PublicKey(), Address: addr}
	wrongScope := NewAuthoritySignatureSecure(msg, intent.ForChain(intent.ChainId_Mainnet, intent.IntentScope_PersonalMessage), kp)
	assert.ErrorIs(t, VerifyProofOfPossession(wrongScope, kp.PublicKey(), addr, intent.ChainId_Mainnet), ErrVerification)
}
