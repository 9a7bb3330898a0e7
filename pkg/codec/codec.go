// Package codec is the canonical, deterministic byte encoding used for every
// value that gets signed. It is Ethereum RLP: a given logical value always
// produces the same bytes, and encodings are self-delimiting, so they compose
// by plain concatenation.
package codec

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
)

// Encodable is implemented by payloads that have a canonical byte form.
type Encodable interface {
	MarshalCanonical() ([]byte, error)
}

// Decodable is implemented by payload pointers that can be rebuilt from their
// canonical byte form.
type Decodable interface {
	UnmarshalCanonical(data []byte) error
}

// Marshal returns the canonical encoding of v.
func Marshal(v any) ([]byte, error) {
	encoded, err := rlp.EncodeToBytes(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %T: %w", v, err)
	}
	return encoded, nil
}

// Unmarshal decodes data into v. The input must hold exactly one value.
func Unmarshal(data []byte, v any) error {
	if err := rlp.DecodeBytes(data, v); err != nil {
		return fmt.Errorf("failed to decode %T: %w", v, err)
	}
	return nil
}

// Equal reports whether two values share the same canonical encoding.
func Equal(a, b Encodable) (bool, error) {
	ea, err := a.MarshalCanonical()
	if err != nil {
		return false, err
	}
	eb, err := b.MarshalCanonical()
	if err != nil {
		return false, err
	}
	return bytes.Equal(ea, eb), nil
}
