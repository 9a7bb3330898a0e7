package localKeyGenerator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Layr-Labs/intent-signing-go/pkg/config"
	"github.com/Layr-Labs/intent-signing-go/pkg/crypto"
	"github.com/Layr-Labs/intent-signing-go/pkg/intent"
	"github.com/Layr-Labs/intent-signing-go/pkg/logger"
)

func setup() (*LocalKeyGenerator, error) {
	l, err := logger.NewLogger(&logger.LoggerConfig{
		Debug: true,
	})
	if err != nil {
		return nil, err
	}
	return NewLocalKeyGenerator(l), nil
}

func Test_LocalKeyGenerator(t *testing.T) {
	generator, err := setup()
	require.NoError(t, err)
	ctx := context.Background()

	for _, keyScheme := range []config.KeyScheme{config.KeySchemeEd25519, config.KeySchemeSecp256k1} {
		t.Run("Should generate "+keyScheme.String()+" account key", func(t *testing.T) {
			result, err := generator.GenerateKey(ctx, keyScheme, "test-key")
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(result.KeyId, "local-key-"))
			assert.Equal(t, "test-key", result.KeyName)
			assert.True(t, strings.HasPrefix(result.Address, "0x"))
			assert.Equal(t, 42, len(result.Address))

			scheme, err := config.ConvertKeySchemeToSignatureScheme(keyScheme)
			require.NoError(t, err)
			kp, err := crypto.KeyPairFromBytes(scheme, result.PrivateKey)
			require.NoError(t, err)
			assert.Equal(t, result.PublicKey, kp.PublicKey().Key)
			assert.Equal(t, result.Address, kp.PublicKey().Address().Hex())

			// the generated key signs and verifies end to end
			in := intent.ForChain(intent.ChainId_Testing, intent.IntentScope_PersonalMessage)
			msg := intent.PersonalMessage{Message: []byte("Hello")}
			sig, err := crypto.NewSignatureSecure(msg, in, kp)
			require.NoError(t, err)
			addr, err := crypto.ParseAddress(result.Address)
			require.NoError(t, err)
			require.NoError(t, crypto.VerifySecure(msg, in, sig, addr))
		})
	}

	t.Run("Should generate authority key", func(t *testing.T) {
		result, err := generator.GenerateKey(ctx, config.KeySchemeBLS12381, "validator")
		require.NoError(t, err)
		assert.Empty(t, result.Address)
		assert.Len(t, result.PublicKey, crypto.AuthorityPublicKeySize)

		kp, err := crypto.NewAuthorityKeyPairFromBytes(result.PrivateKey)
		require.NoError(t, err)
		pk := kp.PublicKey()
		assert.Equal(t, result.PublicKey, pk[:])

		pkHex, err := result.GetPublicKeyHex()
		require.NoError(t, err)
		assert.Equal(t, pk.Hex(), pkHex)
	})

	t.Run("Should generate unique key ids", func(t *testing.T) {
		a, err := generator.GenerateKey(ctx, config.KeySchemeEd25519, "a")
		require.NoError(t, err)
		b, err := generator.GenerateKey(ctx, config.KeySchemeEd25519, "b")
		require.NoError(t, err)
		assert.NotEqual(t, a.KeyId, b.KeyId)
		assert.NotEqual(t, a.PrivateKey, b.PrivateKey)
	})

	t.Run("Should reject unknown scheme", func(t *testing.T) {
		_, err := generator.GenerateKey(ctx, config.KeyScheme("rsa"), "bad")
		assert.Error(t, err)
	})

	t.Run("Should honor cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := generator.GenerateKey(cancelled, config.KeySchemeEd25519, "late")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
