package crypto

import (
	"crypto/ed25519"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	"github.com/Layr-Labs/intent-signing-go/pkg/codec"
	"github.com/Layr-Labs/intent-signing-go/pkg/intent"
)

// Signature is an account signature over an IntentMessage:
//
//	[1 byte scheme flag][raw signature][public key]
//
// Carrying the public key lets a verifier derive the signer's address without
// any out-of-band key lookup.
type Signature []byte

// NewSignatureSecure signs the IntentMessage formed by value and in.
func NewSignatureSecure[T codec.Encodable](value T, in intent.Intent, kp KeyPair) (Signature, error) {
	if kp == nil {
		return nil, errors.Wrap(ErrSigning, "nil key pair")
	}
	scheme := kp.Scheme()
	if !scheme.IsAccountScheme() {
		return nil, errors.Wrapf(ErrSigning, "scheme %s cannot sign account messages", scheme)
	}

	msg, err := intent.NewIntentMessage(in, value).Bytes()
	if err != nil {
		return nil, errors.Wrapf(ErrSigning, "encoding intent message: %v", err)
	}

	raw, err := kp.Sign(msg)
	if err != nil {
		return nil, errors.Wrapf(ErrSigning, "%s: %v", scheme, err)
	}
	if len(raw) != scheme.signatureSize() {
		return nil, errors.Wrapf(ErrSigning, "%s produced a %d byte signature", scheme, len(raw))
	}

	pk := kp.PublicKey()
	sig := make(Signature, 0, 1+len(raw)+len(pk.Key))
	sig = append(sig, scheme.Flag())
	sig = append(sig, raw...)
	sig = append(sig, pk.Key...)
	return sig, nil
}

// VerifySecure checks that sig was produced by the owner of address over the
// IntentMessage formed by value and in. Every failure returns ErrVerification.
func VerifySecure[T codec.Encodable](value T, in intent.Intent, sig Signature, address Address) error {
	msg, err := intent.NewIntentMessage(in, value).Bytes()
	if err != nil {
		return ErrVerification
	}
	return sig.verify(msg, address)
}

func (s Signature) verify(msg []byte, address Address) error {
	scheme, raw, pk, err := s.split()
	if err != nil {
		return ErrVerification
	}
	if AddressFromPublicKey(pk) != address {
		return ErrVerification
	}

	var ok bool
	switch scheme {
	case SignatureScheme_Ed25519:
		ok = ed25519.Verify(ed25519.PublicKey(pk.Key), msg, raw)
	case SignatureScheme_Secp256k1:
		ok = verifySecp256k1(pk.Key, msg, raw)
	}
	if !ok {
		return ErrVerification
	}
	return nil
}

func (s Signature) split() (SignatureScheme, []byte, PublicKey, error) {
	if len(s) == 0 {
		return 0, nil, PublicKey{}, fmt.Errorf("empty signature")
	}
	scheme, err := SignatureSchemeFromFlag(s[0])
	if err != nil {
		return 0, nil, PublicKey{}, err
	}
	if !scheme.IsAccountScheme() {
		return 0, nil, PublicKey{}, fmt.Errorf("scheme %s is not an account scheme", scheme)
	}
	sigSize := scheme.signatureSize()
	if len(s) != 1+sigSize+scheme.publicKeySize() {
		return 0, nil, PublicKey{}, fmt.Errorf("invalid %s signature length: %d", scheme, len(s))
	}
	pk, err := NewPublicKey(scheme, s[1+sigSize:])
	if err != nil {
		return 0, nil, PublicKey{}, err
	}
	return scheme, s[1 : 1+sigSize], pk, nil
}

// Scheme returns the scheme flag of a well-formed signature.
func (s Signature) Scheme() (SignatureScheme, error) {
	scheme, _, _, err := s.split()
	return scheme, err
}

// PublicKey returns the embedded public key of a well-formed signature.
func (s Signature) PublicKey() (PublicKey, error) {
	_, _, pk, err := s.split()
	return pk, err
}

func (s Signature) Hex() string {
	return hexutil.Encode(s)
}

func (s Signature) MarshalText() ([]byte, error) {
	return []byte(s.Hex()), nil
}

func (s *Signature) UnmarshalText(text []byte) error {
	parsed, err := ParseSignature(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func ParseSignature(s string) (Signature, error) {
	decoded, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("invalid signature hex: %w", err)
	}
	if _, _, _, err := Signature(decoded).split(); err != nil {
		return nil, err
	}
	return Signature(decoded), nil
}
