// Package bls implements BLS signatures over BLS12-381 in the
// "minimal signature size" setting: signatures live in G1 (48 bytes) and
// public keys in G2 (96 bytes).
package bls

import (
	"errors"
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// SignatureDST is the hash-to-curve domain separation tag for G1 signatures
const SignatureDST = "BLS_SIG_BLS12381G1_XMD:SHA-256_SSWU_RO_NUL_"

var (
	// G1Generator is the generator point for G1
	G1Generator *G1Point
	// G2Generator is the generator point for G2
	G2Generator *G2Point
)

func init() {
	_, _, g1Gen, g2Gen := bls12381.Generators()
	G1Generator = NewG1Point(&g1Gen)
	G2Generator = NewG2Point(&g2Gen)
}

// ScalarMulG1 performs scalar multiplication on G1
func ScalarMulG1(point *G1Point, scalar *fr.Element) (*G1Point, error) {
	if point == nil || point.point == nil || scalar == nil {
		return nil, errors.New("nil point or scalar")
	}

	scalarBig := new(big.Int)
	scalar.BigInt(scalarBig)

	result := new(bls12381.G1Affine).ScalarMultiplication(point.point, scalarBig)
	return NewG1Point(result), nil
}

// ScalarMulG2 performs scalar multiplication on G2
func ScalarMulG2(point *G2Point, scalar *fr.Element) (*G2Point, error) {
	if point == nil || point.point == nil || scalar == nil {
		return nil, errors.New("nil point or scalar")
	}

	scalarBig := new(big.Int)
	scalar.BigInt(scalarBig)

	result := new(bls12381.G2Affine).ScalarMultiplication(point.point, scalarBig)
	return NewG2Point(result), nil
}

// AddG1 adds two G1 points
func AddG1(a, b *G1Point) (*G1Point, error) {
	if a == nil || a.point == nil || b == nil || b.point == nil {
		return nil, errors.New("nil point")
	}
	result := new(bls12381.G1Affine).Add(a.point, b.point)
	return NewG1Point(result), nil
}

// AddG2 adds two G2 points
func AddG2(a, b *G2Point) (*G2Point, error) {
	if a == nil || a.point == nil || b == nil || b.point == nil {
		return nil, errors.New("nil point")
	}
	result := new(bls12381.G2Affine).Add(a.point, b.point)
	return NewG2Point(result), nil
}

// HashToG1 hashes a message to a G1 point using proper hash-to-curve
func HashToG1(msg []byte) (*G1Point, error) {
	g1Point, err := bls12381.HashToG1(msg, []byte(SignatureDST))
	if err != nil {
		return nil, fmt.Errorf("failed to hash to G1: %w", err)
	}
	return NewG1Point(&g1Point), nil
}

// GeneratePrivateKey generates a random private key
func GeneratePrivateKey() (*PrivateKey, error) {
	scalar := new(fr.Element)
	for scalar.IsZero() {
		if _, err := scalar.SetRandom(); err != nil {
			return nil, fmt.Errorf("failed to generate random scalar: %w", err)
		}
	}
	return &PrivateKey{scalar: scalar}, nil
}

// GeneratePrivateKeyFromSeed generates a deterministic private key from seed
func GeneratePrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if len(seed) < 32 {
		return nil, fmt.Errorf("seed must be at least 32 bytes")
	}

	sk := new(big.Int).SetBytes(seed[:32])
	sk.Mod(sk, fr.Modulus())
	if sk.Sign() == 0 {
		return nil, fmt.Errorf("seed reduces to the zero scalar")
	}

	scalar := new(fr.Element)
	scalar.SetBigInt(sk)

	return &PrivateKey{scalar: scalar}, nil
}

// GetPublicKeyG2 derives the G2 public key from private key
func (sk *PrivateKey) GetPublicKeyG2() *PublicKeyG2 {
	pk, _ := ScalarMulG2(G2Generator, sk.scalar)
	return &PublicKeyG2{point: pk.point}
}

// SignG1 signs a message by hashing to G1 and multiplying by private key
func (sk *PrivateKey) SignG1(msg []byte) (*SignatureG1, error) {
	msgPoint, err := HashToG1(msg)
	if err != nil {
		return nil, err
	}
	sig, err := ScalarMulG1(msgPoint, sk.scalar)
	if err != nil {
		return nil, err
	}
	return &SignatureG1{point: sig.point}, nil
}

// VerifyG1 verifies a G1 signature using pairing check
// e(sig, G2Generator) == e(H(msg), pubkey)
func VerifyG1(pubkey *PublicKeyG2, msg []byte, sig *SignatureG1) (bool, error) {
	if pubkey == nil || pubkey.point == nil || sig == nil || sig.point == nil {
		return false, errors.New("nil public key or signature")
	}

	msgPoint, err := HashToG1(msg)
	if err != nil {
		return false, err
	}

	// e(sig, G2Gen) * e(-H(msg), pubkey) == 1
	var negMsg bls12381.G1Affine
	negMsg.Neg(msgPoint.point)

	ok, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{*sig.point, negMsg},
		[]bls12381.G2Affine{*G2Generator.point, *pubkey.point},
	)
	if err != nil {
		return false, fmt.Errorf("pairing check failed: %w", err)
	}
	return ok, nil
}

// AggregateG1 aggregates multiple G1 signatures
func AggregateG1(sigs []*SignatureG1) (*SignatureG1, error) {
	if len(sigs) == 0 {
		return nil, errors.New("no signatures to aggregate")
	}

	result := NewG1Point(new(bls12381.G1Affine).SetInfinity())
	for _, sig := range sigs {
		if sig == nil {
			return nil, errors.New("nil signature in aggregate")
		}
		var err error
		result, err = AddG1(result, NewG1Point(sig.point))
		if err != nil {
			return nil, err
		}
	}

	return &SignatureG1{point: result.point}, nil
}

// AggregatePublicKeysG2 sums public keys so that a same-message aggregate
// signature can be checked with a single pairing
func AggregatePublicKeysG2(pks []*PublicKeyG2) (*PublicKeyG2, error) {
	if len(pks) == 0 {
		return nil, errors.New("no public keys to aggregate")
	}

	result := NewG2Point(new(bls12381.G2Affine).SetInfinity())
	for _, pk := range pks {
		if pk == nil {
			return nil, errors.New("nil public key in aggregate")
		}
		var err error
		result, err = AddG2(result, NewG2Point(pk.point))
		if err != nil {
			return nil, err
		}
	}

	return &PublicKeyG2{point: result.point}, nil
}
