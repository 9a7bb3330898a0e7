package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Layr-Labs/intent-signing-go/pkg/crypto"
	"github.com/Layr-Labs/intent-signing-go/pkg/intent"
)

const testKey = "0x0102030405060708091011121314151617181920212223242526272829303132"

func Test_KeyScheme(t *testing.T) {
	tests := []struct {
		scheme KeyScheme
		flag   uint8
	}{
		{KeySchemeEd25519, 0x00},
		{KeySchemeSecp256k1, 0x01},
		{KeySchemeBLS12381, 0x04},
	}
	for _, tt := range tests {
		t.Run(tt.scheme.String(), func(t *testing.T) {
			flag, err := tt.scheme.Flag()
			require.NoError(t, err)
			assert.Equal(t, tt.flag, flag)

			scheme, err := ConvertKeySchemeToSignatureScheme(tt.scheme)
			require.NoError(t, err)
			back, err := ConvertSignatureSchemeToKeyScheme(scheme)
			require.NoError(t, err)
			assert.Equal(t, tt.scheme, back)
		})
	}

	_, err := KeyScheme("rsa").Flag()
	assert.Error(t, err)
	_, err = ConvertSignatureSchemeToKeyScheme(crypto.SignatureScheme(0x09))
	assert.Error(t, err)

	k, err := ParseKeyScheme(" Secp256k1 ")
	require.NoError(t, err)
	assert.Equal(t, KeySchemeSecp256k1, k)
	_, err = ParseKeyScheme("bn254")
	assert.Error(t, err)

	assert.Equal(t, "ed25519, secp256k1, bls12381", GetSupportedKeySchemesString())
	assert.True(t, KeySchemeBLS12381.IsAuthority())
	assert.False(t, KeySchemeEd25519.IsAuthority())
}

func Test_SignerConfigValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c := &SignerConfig{
			ChainName:  intent.ChainName_Devnet,
			KeyScheme:  KeySchemeEd25519,
			PrivateKey: testKey,
		}
		require.NoError(t, c.Validate())
		assert.Equal(t, intent.ChainId_Devnet, c.ChainId)

		key, err := c.PrivateKeyBytes()
		require.NoError(t, err)
		assert.Len(t, key, 32)
	})

	t.Run("key without prefix", func(t *testing.T) {
		c := &SignerConfig{
			ChainName:  intent.ChainName_Mainnet,
			KeyScheme:  KeySchemeSecp256k1,
			PrivateKey: testKey[2:],
		}
		require.NoError(t, c.Validate())
		assert.Equal(t, intent.ChainId_Mainnet, c.ChainId)
	})

	t.Run("all fields missing", func(t *testing.T) {
		c := &SignerConfig{}
		err := c.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "chainName")
		assert.Contains(t, err.Error(), "keyScheme")
		assert.Contains(t, err.Error(), "privateKey")
	})

	t.Run("unsupported values", func(t *testing.T) {
		c := &SignerConfig{
			ChainName:  "sepolia",
			KeyScheme:  "bn254",
			PrivateKey: testKey,
		}
		err := c.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "chainName")
		assert.Contains(t, err.Error(), "keyScheme")
		assert.NotContains(t, err.Error(), "privateKey")
	})

	t.Run("bad key is not echoed", func(t *testing.T) {
		c := &SignerConfig{
			ChainName:  intent.ChainName_Testing,
			KeyScheme:  KeySchemeBLS12381,
			PrivateKey: "0xdeadbeef",
		}
		err := c.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "privateKey")
		assert.NotContains(t, err.Error(), "deadbeef")
	})
}
