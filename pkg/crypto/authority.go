package crypto

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	"github.com/Layr-Labs/intent-signing-go/pkg/bls"
	"github.com/Layr-Labs/intent-signing-go/pkg/codec"
	"github.com/Layr-Labs/intent-signing-go/pkg/intent"
)

const (
	AuthorityPrivateKeySize = bls.PrivateKeySize
	AuthorityPublicKeySize  = bls.G2PointSize
	AuthoritySignatureSize  = bls.G1PointSize
)

// AuthorityPublicKeyBytes is a compressed BLS12-381 G2 public key. It is a
// comparable value so it can key committee maps.
type AuthorityPublicKeyBytes [AuthorityPublicKeySize]byte

// AuthoritySignature is a compressed BLS12-381 G1 signature.
type AuthoritySignature [AuthoritySignatureSize]byte

// AuthorityKeyPair is a validator signing key.
type AuthorityKeyPair struct {
	secret *bls.PrivateKey
	public AuthorityPublicKeyBytes
}

func GenerateAuthorityKeyPair() (*AuthorityKeyPair, error) {
	sk, err := bls.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("generating authority key: %w", err)
	}
	return newAuthorityKeyPair(sk), nil
}

// NewAuthorityKeyPairFromBytes restores a key pair from a big-endian scalar.
func NewAuthorityKeyPairFromBytes(secret []byte) (*AuthorityKeyPair, error) {
	sk, err := bls.NewPrivateKeyFromBytes(secret)
	if err != nil {
		return nil, fmt.Errorf("invalid authority private key: %w", err)
	}
	return newAuthorityKeyPair(sk), nil
}

// NewAuthorityKeyPairFromSeed derives a key pair deterministically from a
// seed of at least 32 bytes.
func NewAuthorityKeyPairFromSeed(seed []byte) (*AuthorityKeyPair, error) {
	sk, err := bls.GeneratePrivateKeyFromSeed(seed)
	if err != nil {
		return nil, fmt.Errorf("invalid authority seed: %w", err)
	}
	return newAuthorityKeyPair(sk), nil
}

func newAuthorityKeyPair(sk *bls.PrivateKey) *AuthorityKeyPair {
	var pk AuthorityPublicKeyBytes
	copy(pk[:], sk.GetPublicKeyG2().Bytes())
	return &AuthorityKeyPair{secret: sk, public: pk}
}

func (kp *AuthorityKeyPair) PublicKey() AuthorityPublicKeyBytes {
	return kp.public
}

// Bytes exports the secret scalar.
func (kp *AuthorityKeyPair) Bytes() []byte {
	return kp.secret.Bytes()
}

func (kp *AuthorityKeyPair) sign(msg []byte) (AuthoritySignature, error) {
	sig, err := kp.secret.SignG1(msg)
	if err != nil {
		return AuthoritySignature{}, err
	}
	var out AuthoritySignature
	copy(out[:], sig.Bytes())
	return out, nil
}

// NewAuthoritySignatureSecure signs the IntentMessage formed by value and in
// with a validator key. It panics if value cannot be encoded.
func NewAuthoritySignatureSecure[T codec.Encodable](value T, in intent.Intent, kp *AuthorityKeyPair) AuthoritySignature {
	msg, err := intent.NewIntentMessage(in, value).Bytes()
	if err != nil {
		panic(fmt.Sprintf("authority signing: payload encoding failed: %v", err))
	}
	sig, err := kp.sign(msg)
	if err != nil {
		// hash-to-curve with a fixed DST does not fail for any input
		panic(fmt.Sprintf("authority signing: %v", err))
	}
	return sig
}

// VerifyAuthoritySecure checks sig over the IntentMessage formed by value and
// in against pk. Every failure returns ErrVerification.
func VerifyAuthoritySecure[T codec.Encodable](value T, in intent.Intent, sig AuthoritySignature, pk AuthorityPublicKeyBytes) error {
	msg, err := intent.NewIntentMessage(in, value).Bytes()
	if err != nil {
		return ErrVerification
	}
	return verifyAuthority(msg, sig, pk)
}

func verifyAuthority(msg []byte, sig AuthoritySignature, pk AuthorityPublicKeyBytes) error {
	publicKey, err := bls.NewPublicKeyG2FromBytes(pk[:])
	if err != nil {
		return ErrVerification
	}
	signature, err := bls.NewSignatureG1FromBytes(sig[:])
	if err != nil {
		return ErrVerification
	}
	ok, err := bls.VerifyG1(publicKey, msg, signature)
	if err != nil || !ok {
		return ErrVerification
	}
	return nil
}

// AggregateAuthoritySignatures sums signatures over the same message into a
// single signature.
func AggregateAuthoritySignatures(sigs []AuthoritySignature) (AuthoritySignature, error) {
	if len(sigs) == 0 {
		return AuthoritySignature{}, errors.New("no authority signatures to aggregate")
	}
	parsed := make([]*bls.SignatureG1, 0, len(sigs))
	for i, sig := range sigs {
		s, err := bls.NewSignatureG1FromBytes(sig[:])
		if err != nil {
			return AuthoritySignature{}, fmt.Errorf("invalid authority signature at index %d: %w", i, err)
		}
		parsed = append(parsed, s)
	}
	agg, err := bls.AggregateG1(parsed)
	if err != nil {
		return AuthoritySignature{}, fmt.Errorf("failed to aggregate authority signatures: %w", err)
	}
	var out AuthoritySignature
	copy(out[:], agg.Bytes())
	return out, nil
}

// VerifyAggregateAuthoritySecure checks an aggregate of same-message
// signatures by pks. Callers must only pass keys whose proof of possession
// was verified.
func VerifyAggregateAuthoritySecure[T codec.Encodable](value T, in intent.Intent, sig AuthoritySignature, pks []AuthorityPublicKeyBytes) error {
	if len(pks) == 0 {
		return ErrVerification
	}
	msg, err := intent.NewIntentMessage(in, value).Bytes()
	if err != nil {
		return ErrVerification
	}
	parsed := make([]*bls.PublicKeyG2, 0, len(pks))
	for _, pk := range pks {
		p, err := bls.NewPublicKeyG2FromBytes(pk[:])
		if err != nil {
			return ErrVerification
		}
		parsed = append(parsed, p)
	}
	aggKey, err := bls.AggregatePublicKeysG2(parsed)
	if err != nil {
		return ErrVerification
	}
	var aggBytes AuthorityPublicKeyBytes
	copy(aggBytes[:], aggKey.Bytes())
	return verifyAuthority(msg, sig, aggBytes)
}

func (pk AuthorityPublicKeyBytes) Hex() string {
	return hexutil.Encode(pk[:])
}

func (pk AuthorityPublicKeyBytes) String() string {
	return pk.Hex()
}

// Compare orders keys bytewise, for deterministic committee iteration.
func (pk AuthorityPublicKeyBytes) Compare(other AuthorityPublicKeyBytes) int {
	return bytes.Compare(pk[:], other[:])
}

func ParseAuthorityPublicKey(s string) (AuthorityPublicKeyBytes, error) {
	decoded, err := hexutil.Decode(s)
	if err != nil {
		return AuthorityPublicKeyBytes{}, fmt.Errorf("invalid authority public key hex: %w", err)
	}
	if _, err := bls.NewPublicKeyG2FromBytes(decoded); err != nil {
		return AuthorityPublicKeyBytes{}, fmt.Errorf("invalid authority public key: %w", err)
	}
	var pk AuthorityPublicKeyBytes
	copy(pk[:], decoded)
	return pk, nil
}

func (s AuthoritySignature) Hex() string {
	return hexutil.Encode(s[:])
}

func (s AuthoritySignature) String() string {
	return s.Hex()
}

func ParseAuthoritySignature(str string) (AuthoritySignature, error) {
	decoded, err := hexutil.Decode(str)
	if err != nil {
		return AuthoritySignature{}, fmt.Errorf("invalid authority signature hex: %w", err)
	}
	if len(decoded) != AuthoritySignatureSize {
		return AuthoritySignature{}, fmt.Errorf("invalid authority signature length: %d wanted: %d", len(decoded), AuthoritySignatureSize)
	}
	var sig AuthoritySignature
	copy(sig[:], decoded)
	return sig, nil
}
