package keyGenerator

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/Layr-Labs/intent-signing-go/pkg/config"
)

// GeneratedKey is freshly generated key material. Address is empty for
// authority keys, which do not own accounts.
type GeneratedKey struct {
	KeyId      string
	KeyName    string
	KeyScheme  config.KeyScheme
	PrivateKey []byte
	PublicKey  []byte
	Address    string
}

func (gk *GeneratedKey) GetPrivateKeyHex() (string, error) {
	if len(gk.PrivateKey) == 0 {
		return "", fmt.Errorf("private key is empty")
	}
	return hexutil.Encode(gk.PrivateKey), nil
}

func (gk *GeneratedKey) GetPublicKeyHex() (string, error) {
	if len(gk.PublicKey) == 0 {
		return "", fmt.Errorf("public key is empty")
	}
	return hexutil.Encode(gk.PublicKey), nil
}

type IKeyGenerator interface {
	GenerateKey(ctx context.Context, keyScheme config.KeyScheme, keyName string) (*GeneratedKey, error)
}
