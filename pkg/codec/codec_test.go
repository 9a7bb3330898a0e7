package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string
	Amount uint64
	Data   []byte
}

func (s sample) MarshalCanonical() ([]byte, error) {
	return Marshal(s)
}

func Test_MarshalDeterministic(t *testing.T) {
	v := sample{Name: "coin", Amount: 42, Data: []byte{1, 2, 3}}

	first, err := Marshal(v)
	require.NoError(t, err)
	second, err := Marshal(v)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func Test_UnmarshalRoundTrip(t *testing.T) {
	v := sample{Name: "coin", Amount: 42, Data: []byte{1, 2, 3}}
	encoded, err := Marshal(v)
	require.NoError(t, err)

	var out sample
	require.NoError(t, Unmarshal(encoded, &out))
	require.Equal(t, v, out)
}

func Test_UnmarshalRejectsTrailingBytes(t *testing.T) {
	encoded, err := Marshal(sample{Name: "coin"})
	require.NoError(t, err)

	var out sample
	require.Error(t, Unmarshal(append(encoded, 0x00), &out))
}

func Test_ConcatenationIsUnambiguous(t *testing.T) {
	a, err := Marshal(sample{Name: "a", Data: []byte("bc")})
	require.NoError(t, err)
	b, err := Marshal(sample{Name: "ab", Data: []byte("c")})
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func Test_Equal(t *testing.T) {
	same, err := Equal(sample{Name: "x", Amount: 1}, sample{Name: "x", Amount: 1})
	require.NoError(t, err)
	require.True(t, same)

	different, err := Equal(sample{Name: "x", Amount: 1}, sample{Name: "x", Amount: 2})
	require.NoError(t, err)
	require.False(t, different)
}
