package crypto

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/Layr-Labs/crypto-libs/pkg/ecdsa"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	ed25519PublicKeySize = ed25519.PublicKeySize
	ed25519SignatureSize = ed25519.SignatureSize

	// compressed secp256k1 point
	secp256k1PublicKeySize = 33
	// r || s || v, with v in {0, 1}
	secp256k1SignatureSize = 65

	secp256k1PrivateKeySize = 32
)

// KeyPair is an account signing key. Sign is the raw primitive over msg;
// domain separation is applied by NewSignatureSecure, not here.
type KeyPair interface {
	Scheme() SignatureScheme
	PublicKey() PublicKey
	Sign(msg []byte) ([]byte, error)
	// Bytes exports the secret key material. The caller owns its disposal.
	Bytes() []byte
}

// PublicKey is a scheme-tagged account public key.
type PublicKey struct {
	Scheme SignatureScheme
	Key    []byte
}

// NewPublicKey validates key for scheme.
func NewPublicKey(scheme SignatureScheme, key []byte) (PublicKey, error) {
	if !scheme.IsAccountScheme() {
		return PublicKey{}, fmt.Errorf("scheme %s is not an account scheme", scheme)
	}
	if len(key) != scheme.publicKeySize() {
		return PublicKey{}, fmt.Errorf("invalid %s public key length: %d wanted: %d", scheme, len(key), scheme.publicKeySize())
	}
	if scheme == SignatureScheme_Secp256k1 {
		if _, err := ethcrypto.DecompressPubkey(key); err != nil {
			return PublicKey{}, fmt.Errorf("invalid secp256k1 public key: %w", err)
		}
	}
	return PublicKey{Scheme: scheme, Key: bytes.Clone(key)}, nil
}

// Address derives the account address that owns this key.
func (pk PublicKey) Address() Address {
	return AddressFromPublicKey(pk)
}

func (pk PublicKey) Equal(other PublicKey) bool {
	return pk.Scheme == other.Scheme && bytes.Equal(pk.Key, other.Key)
}

func (pk PublicKey) String() string {
	return fmt.Sprintf("%s:%s", pk.Scheme, hexutil.Encode(pk.Key))
}

// GenerateKeyPair creates a fresh account key pair for scheme.
func GenerateKeyPair(scheme SignatureScheme) (KeyPair, error) {
	switch scheme {
	case SignatureScheme_Ed25519:
		return GenerateEd25519KeyPair()
	case SignatureScheme_Secp256k1:
		return GenerateSecp256k1KeyPair()
	default:
		return nil, fmt.Errorf("unsupported account key scheme: %s", scheme)
	}
}

// KeyPairFromBytes restores an account key pair from exported secret bytes.
func KeyPairFromBytes(scheme SignatureScheme, secret []byte) (KeyPair, error) {
	switch scheme {
	case SignatureScheme_Ed25519:
		return NewEd25519KeyPairFromSeed(secret)
	case SignatureScheme_Secp256k1:
		return NewSecp256k1KeyPairFromBytes(secret)
	default:
		return nil, fmt.Errorf("unsupported account key scheme: %s", scheme)
	}
}

// Ed25519KeyPair signs the intent message bytes directly.
type Ed25519KeyPair struct {
	key ed25519.PrivateKey
}

func GenerateEd25519KeyPair() (*Ed25519KeyPair, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating Ed25519 key: %w", err)
	}
	return &Ed25519KeyPair{key: priv}, nil
}

func NewEd25519KeyPairFromSeed(seed []byte) (*Ed25519KeyPair, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("invalid Ed25519 seed length: %d wanted: %d", len(seed), ed25519.SeedSize)
	}
	return &Ed25519KeyPair{key: ed25519.NewKeyFromSeed(seed)}, nil
}

func (kp *Ed25519KeyPair) Scheme() SignatureScheme {
	return SignatureScheme_Ed25519
}

func (kp *Ed25519KeyPair) PublicKey() PublicKey {
	pub := kp.key.Public().(ed25519.PublicKey)
	return PublicKey{Scheme: SignatureScheme_Ed25519, Key: bytes.Clone(pub)}
}

func (kp *Ed25519KeyPair) Sign(msg []byte) ([]byte, error) {
	if len(kp.key) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("invalid Ed25519 private key length: %d", len(kp.key))
	}
	return ed25519.Sign(kp.key, msg), nil
}

func (kp *Ed25519KeyPair) Bytes() []byte {
	return bytes.Clone(kp.key.Seed())
}

// Secp256k1KeyPair signs keccak256 of the intent message bytes and produces a
// recoverable signature.
type Secp256k1KeyPair struct {
	key    *ecdsa.PrivateKey
	public PublicKey
	secret []byte
}

func GenerateSecp256k1KeyPair() (*Secp256k1KeyPair, error) {
	key, err := ethcrypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("generating secp256k1 key: %w", err)
	}
	return NewSecp256k1KeyPairFromBytes(ethcrypto.FromECDSA(key))
}

func NewSecp256k1KeyPairFromBytes(secret []byte) (*Secp256k1KeyPair, error) {
	if len(secret) != secp256k1PrivateKeySize {
		return nil, fmt.Errorf("invalid secp256k1 private key length: %d wanted: %d", len(secret), secp256k1PrivateKeySize)
	}
	key, err := ecdsa.NewPrivateKeyFromBytes(secret)
	if err != nil {
		return nil, fmt.Errorf("error loading private key: %w", err)
	}

	uncompressed := key.Public().Bytes()
	// Some encodings omit the 0x04 prefix
	if len(uncompressed) == 64 {
		uncompressed = append([]byte{0x04}, uncompressed...)
	}
	pub, err := ethcrypto.UnmarshalPubkey(uncompressed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse secp256k1 public key: %w", err)
	}

	return &Secp256k1KeyPair{
		key: key,
		public: PublicKey{
			Scheme: SignatureScheme_Secp256k1,
			Key:    ethcrypto.CompressPubkey(pub),
		},
		secret: bytes.Clone(secret),
	}, nil
}

func (kp *Secp256k1KeyPair) Scheme() SignatureScheme {
	return SignatureScheme_Secp256k1
}

func (kp *Secp256k1KeyPair) PublicKey() PublicKey {
	return PublicKey{Scheme: SignatureScheme_Secp256k1, Key: bytes.Clone(kp.public.Key)}
}

func (kp *Secp256k1KeyPair) Sign(msg []byte) ([]byte, error) {
	hash := ethcrypto.Keccak256(msg)
	sig, err := kp.key.Sign(hash)
	if err != nil {
		return nil, fmt.Errorf("failed to sign message: %w", err)
	}
	raw := bytes.Clone(sig.Bytes())
	if len(raw) != secp256k1SignatureSize {
		return nil, fmt.Errorf("unexpected secp256k1 signature length: %d", len(raw))
	}
	// Normalize the Ethereum-style recovery byte
	if raw[64] >= 27 {
		raw[64] -= 27
	}
	return raw, nil
}

func (kp *Secp256k1KeyPair) Bytes() []byte {
	return bytes.Clone(kp.secret)
}

// verifySecp256k1 checks a recoverable signature over keccak256(msg). The key
// recovered from the signature must be the embedded key, and the signature
// must be in lower-s form.
func verifySecp256k1(compressedKey, msg, sig []byte) bool {
	if len(sig) != secp256k1SignatureSize || sig[64] > 1 {
		return false
	}
	hash := ethcrypto.Keccak256(msg)
	recovered, err := ethcrypto.SigToPub(hash, sig)
	if err != nil {
		return false
	}
	if !bytes.Equal(ethcrypto.CompressPubkey(recovered), compressedKey) {
		return false
	}
	return ethcrypto.VerifySignature(compressedKey, hash, sig[:64])
}
