package util

import (
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"
)

func FuzzDecodeHexKeyRoundTrip(f *testing.F) {
	f.Add(make([]byte, 32), true)
	f.Add([]byte("seed"), false)

	f.Fuzz(func(t *testing.T, key []byte, prefixed bool) {
		if len(key) == 0 || len(key) > 128 {
			return
		}
		encoded := hexutil.Encode(key)
		if !prefixed {
			encoded = encoded[2:]
		}

		decoded, err := DecodeHexKey(encoded, len(key))
		require.NoError(t, err)
		require.Equal(t, key, decoded)

		_, err = DecodeHexKey(encoded, len(key)+1)
		require.Error(t, err)
	})
}

func FuzzMapReduceBasics(f *testing.F) {
	f.Add([]byte{1, 2, 3, 4, 5})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 256 {
			data = data[:256]
		}

		mapped := Map(data, func(b byte, idx uint64) int {
			return int(b) + int(idx%7)
		})
		require.Len(t, mapped, len(data))

		sum := Reduce(mapped, func(acc int, next int) int { return acc + next }, 0)
		manual := 0
		for _, v := range mapped {
			manual += v
		}
		require.Equal(t, manual, sum)
	})
}
