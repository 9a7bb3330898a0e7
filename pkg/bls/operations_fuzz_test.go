package bls

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"
)

func FuzzSignVerifyRoundTripG1(f *testing.F) {
	f.Add([]byte("seed"), []byte("msg"))
	f.Add([]byte("seed"), []byte{})          // empty message
	f.Add([]byte("seed"), []byte{0, 1, 255}) // binary message

	f.Fuzz(func(t *testing.T, seed, msg []byte) {
		sum := sha256.Sum256(seed)
		sk, err := GeneratePrivateKeyFromSeed(sum[:])
		if err != nil {
			t.Skip("seed reduced to zero")
		}

		sig, err := sk.SignG1(msg)
		require.NoError(t, err)

		ok, err := VerifyG1(sk.GetPublicKeyG2(), msg, sig)
		require.NoError(t, err)
		require.True(t, ok)
	})
}

func FuzzSignVerifyWrongMessageG1(f *testing.F) {
	f.Add([]byte("seed"), []byte("msg1"), []byte("msg2"))

	f.Fuzz(func(t *testing.T, seed, msg, wrongMsg []byte) {
		if string(wrongMsg) == string(msg) {
			wrongMsg = append(append([]byte{}, msg...), 'X')
		}

		sum := sha256.Sum256(seed)
		sk, err := GeneratePrivateKeyFromSeed(sum[:])
		if err != nil {
			t.Skip("seed reduced to zero")
		}

		sig, err := sk.SignG1(msg)
		require.NoError(t, err)

		okWrong, err := VerifyG1(sk.GetPublicKeyG2(), wrongMsg, sig)
		require.NoError(t, err)
		require.False(t, okWrong, "signature should NOT verify for wrong message")
	})
}

func FuzzPrivateKeyBytesRoundTrip(f *testing.F) {
	f.Add([]byte("seed"))

	f.Fuzz(func(t *testing.T, seed []byte) {
		sum := sha256.Sum256(seed)
		sk, err := GeneratePrivateKeyFromSeed(sum[:])
		if err != nil {
			t.Skip("seed reduced to zero")
		}
		restored, err := NewPrivateKeyFromBytes(sk.Bytes())
		require.NoError(t, err)
		require.Equal(t, sk.Bytes(), restored.Bytes())
	})
}
