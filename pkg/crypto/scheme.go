package crypto

import "fmt"

// SignatureScheme is the one-byte flag that prefixes account signatures and
// is hashed into addresses. Values are wire format and only ever appended.
type SignatureScheme uint8

const (
	SignatureScheme_Ed25519   SignatureScheme = 0x00
	SignatureScheme_Secp256k1 SignatureScheme = 0x01
	SignatureScheme_BLS12381  SignatureScheme = 0x04
)

func (s SignatureScheme) Flag() uint8 {
	return uint8(s)
}

func (s SignatureScheme) String() string {
	switch s {
	case SignatureScheme_Ed25519:
		return "ed25519"
	case SignatureScheme_Secp256k1:
		return "secp256k1"
	case SignatureScheme_BLS12381:
		return "bls12381"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// IsAccountScheme reports whether s can appear in an account Signature.
// BLS12381 is reserved for authority keys.
func (s SignatureScheme) IsAccountScheme() bool {
	return s == SignatureScheme_Ed25519 || s == SignatureScheme_Secp256k1
}

func (s SignatureScheme) publicKeySize() int {
	switch s {
	case SignatureScheme_Ed25519:
		return ed25519PublicKeySize
	case SignatureScheme_Secp256k1:
		return secp256k1PublicKeySize
	case SignatureScheme_BLS12381:
		return AuthorityPublicKeySize
	default:
		return 0
	}
}

func (s SignatureScheme) signatureSize() int {
	switch s {
	case SignatureScheme_Ed25519:
		return ed25519SignatureSize
	case SignatureScheme_Secp256k1:
		return secp256k1SignatureSize
	default:
		return 0
	}
}

func SignatureSchemeFromFlag(flag uint8) (SignatureScheme, error) {
	s := SignatureScheme(flag)
	switch s {
	case SignatureScheme_Ed25519, SignatureScheme_Secp256k1, SignatureScheme_BLS12381:
		return s, nil
	default:
		return 0, fmt.Errorf("unsupported signature scheme flag: %#x", flag)
	}
}
