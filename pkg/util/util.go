package util

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

func Map[A any, B any](coll []A, mapper func(i A, index uint64) B) []B {
	out := make([]B, len(coll))
	for i, item := range coll {
		out[i] = mapper(item, uint64(i))
	}
	return out
}

func Reduce[A any, B any](coll []A, processor func(accum B, next A) B, initialState B) B {
	val := initialState
	for _, item := range coll {
		val = processor(val, item)
	}
	return val
}

// DecodeHexKey decodes hex key material of exactly size bytes. The 0x prefix
// is optional.
func DecodeHexKey(s string, size int) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("key cannot be empty")
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	decoded, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("invalid key hex: %w", err)
	}
	if len(decoded) != size {
		return nil, fmt.Errorf("key must be %d bytes (%d hex chars), got %d bytes", size, size*2, len(decoded))
	}
	return decoded, nil
}

// DecodeHexBytes decodes arbitrary hex data, with or without the 0x prefix.
func DecodeHexBytes(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	if s == "0x" {
		return []byte{}, nil
	}
	return hexutil.Decode(s)
}
