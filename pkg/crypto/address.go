package crypto

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/sha3"
)

const AddressLength = 20

// Address identifies an account: the first 20 bytes of
// sha3_256(scheme flag || public key). Including the flag keeps equal key
// bytes under different schemes from colliding.
type Address [AddressLength]byte

func AddressFromPublicKey(pk PublicKey) Address {
	hasher := sha3.New256()
	hasher.Write([]byte{pk.Scheme.Flag()})
	hasher.Write(pk.Key)
	digest := hasher.Sum(nil)

	var addr Address
	copy(addr[:], digest[:AddressLength])
	return addr
}

// ParseAddress accepts a hex address with or without the 0x prefix.
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	decoded, err := hexutil.Decode(s)
	if err != nil {
		return Address{}, fmt.Errorf("invalid address hex: %w", err)
	}
	if len(decoded) != AddressLength {
		return Address{}, fmt.Errorf("invalid address length: %d wanted: %d", len(decoded), AddressLength)
	}
	var addr Address
	copy(addr[:], decoded)
	return addr, nil
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) Hex() string {
	return hexutil.Encode(a[:])
}

func (a Address) String() string {
	return a.Hex()
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Hex()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a Address) IsZero() bool {
	return a == Address{}
}
