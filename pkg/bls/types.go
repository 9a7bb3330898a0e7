package bls

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

const (
	// PrivateKeySize is the size of a serialized scalar
	PrivateKeySize = fr.Bytes
	// G1PointSize is the size of a compressed G1 point (signatures)
	G1PointSize = bls12381.SizeOfG1AffineCompressed
	// G2PointSize is the size of a compressed G2 point (public keys)
	G2PointSize = bls12381.SizeOfG2AffineCompressed
)

// PrivateKey represents a BLS private key
type PrivateKey struct {
	scalar *fr.Element
}

// PublicKeyG2 represents a BLS public key in G2
type PublicKeyG2 struct {
	point *bls12381.G2Affine
}

// SignatureG1 represents a BLS signature in G1
type SignatureG1 struct {
	point *bls12381.G1Affine
}

// G1Point represents a point on the G1 curve with proper serialization
type G1Point struct {
	point *bls12381.G1Affine
}

// G2Point represents a point on the G2 curve with proper serialization
type G2Point struct {
	point *bls12381.G2Affine
}

// NewG1Point creates a new G1Point from a gnark G1Affine point
func NewG1Point(p *bls12381.G1Affine) *G1Point {
	return &G1Point{point: p}
}

// NewG2Point creates a new G2Point from a gnark G2Affine point
func NewG2Point(p *bls12381.G2Affine) *G2Point {
	return &G2Point{point: p}
}

// Marshal serializes the G1Point to bytes (compressed format)
func (p *G1Point) Marshal() []byte {
	if p.point == nil {
		return make([]byte, G1PointSize)
	}
	bytes := p.point.Bytes()
	return bytes[:]
}

// Marshal serializes the G2Point to bytes (compressed format)
func (p *G2Point) Marshal() []byte {
	if p.point == nil {
		return make([]byte, G2PointSize)
	}
	bytes := p.point.Bytes()
	return bytes[:]
}

// IsZero checks if the G1Point is the identity/zero point
func (p *G1Point) IsZero() bool {
	if p.point == nil {
		return true
	}
	return p.point.IsInfinity()
}

// IsZero checks if the G2Point is the identity/zero point
func (p *G2Point) IsZero() bool {
	if p.point == nil {
		return true
	}
	return p.point.IsInfinity()
}

// Equal checks if two G1Points are equal
func (p *G1Point) Equal(other *G1Point) bool {
	if p.point == nil || other.point == nil {
		return false
	}
	return p.point.Equal(other.point)
}

// Equal checks if two G2Points are equal
func (p *G2Point) Equal(other *G2Point) bool {
	if p.point == nil || other.point == nil {
		return false
	}
	return p.point.Equal(other.point)
}

// NewG1PointFromCompressedBytes creates a G1Point from compressed bytes.
// SetBytes checks that the point is on the curve and in the subgroup.
func NewG1PointFromCompressedBytes(compressedBytes []byte) (*G1Point, error) {
	if len(compressedBytes) != G1PointSize {
		return nil, fmt.Errorf("invalid G1 point length: %d wanted: %d", len(compressedBytes), G1PointSize)
	}
	point := new(bls12381.G1Affine)
	if _, err := point.SetBytes(compressedBytes); err != nil {
		return nil, err
	}
	return NewG1Point(point), nil
}

// NewG2PointFromCompressedBytes creates a G2Point from compressed bytes
func NewG2PointFromCompressedBytes(compressedBytes []byte) (*G2Point, error) {
	if len(compressedBytes) != G2PointSize {
		return nil, fmt.Errorf("invalid G2 point length: %d wanted: %d", len(compressedBytes), G2PointSize)
	}
	point := new(bls12381.G2Affine)
	if _, err := point.SetBytes(compressedBytes); err != nil {
		return nil, err
	}
	return NewG2Point(point), nil
}

// NewPrivateKeyFromBytes parses a big-endian scalar. Values outside the field
// and the zero scalar are rejected.
func NewPrivateKeyFromBytes(data []byte) (*PrivateKey, error) {
	if len(data) != PrivateKeySize {
		return nil, fmt.Errorf("invalid private key length: %d wanted: %d", len(data), PrivateKeySize)
	}
	scalar := new(fr.Element)
	if err := scalar.SetBytesCanonical(data); err != nil {
		return nil, fmt.Errorf("invalid private key scalar: %w", err)
	}
	if scalar.IsZero() {
		return nil, fmt.Errorf("private key scalar is zero")
	}
	return &PrivateKey{scalar: scalar}, nil
}

// Bytes returns the big-endian scalar
func (sk *PrivateKey) Bytes() []byte {
	bytes := sk.scalar.Bytes()
	return bytes[:]
}

// NewPublicKeyG2FromBytes parses a compressed G2 public key. The identity
// point is rejected since it would verify any signature of the identity.
func NewPublicKeyG2FromBytes(data []byte) (*PublicKeyG2, error) {
	p, err := NewG2PointFromCompressedBytes(data)
	if err != nil {
		return nil, err
	}
	if p.IsZero() {
		return nil, fmt.Errorf("public key is the identity point")
	}
	return &PublicKeyG2{point: p.point}, nil
}

// Bytes returns the compressed public key
func (pk *PublicKeyG2) Bytes() []byte {
	return NewG2Point(pk.point).Marshal()
}

// Equal checks if two public keys are the same point
func (pk *PublicKeyG2) Equal(other *PublicKeyG2) bool {
	return NewG2Point(pk.point).Equal(NewG2Point(other.point))
}

// NewSignatureG1FromBytes parses a compressed G1 signature
func NewSignatureG1FromBytes(data []byte) (*SignatureG1, error) {
	p, err := NewG1PointFromCompressedBytes(data)
	if err != nil {
		return nil, err
	}
	if p.IsZero() {
		return nil, fmt.Errorf("signature is the identity point")
	}
	return &SignatureG1{point: p.point}, nil
}

// Bytes returns the compressed signature
func (s *SignatureG1) Bytes() []byte {
	return NewG1Point(s.point).Marshal()
}
