package localKeyGenerator

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Layr-Labs/intent-signing-go/internal/keyGenerator"
	"github.com/Layr-Labs/intent-signing-go/pkg/config"
	"github.com/Layr-Labs/intent-signing-go/pkg/crypto"
)

// LocalKeyGenerator generates keys in process. It does not retain them.
type LocalKeyGenerator struct {
	logger *zap.Logger
}

var _ keyGenerator.IKeyGenerator = (*LocalKeyGenerator)(nil)

func NewLocalKeyGenerator(logger *zap.Logger) *LocalKeyGenerator {
	return &LocalKeyGenerator{
		logger: logger,
	}
}

func (l *LocalKeyGenerator) GenerateKey(ctx context.Context, keyScheme config.KeyScheme, keyName string) (*keyGenerator.GeneratedKey, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	keyId := fmt.Sprintf("local-key-%s", uuid.New().String())
	generated := &keyGenerator.GeneratedKey{
		KeyId:     keyId,
		KeyName:   keyName,
		KeyScheme: keyScheme,
	}

	if keyScheme.IsAuthority() {
		kp, err := crypto.GenerateAuthorityKeyPair()
		if err != nil {
			return nil, fmt.Errorf("failed to generate %s key: %w", keyScheme, err)
		}
		pk := kp.PublicKey()
		generated.PrivateKey = kp.Bytes()
		generated.PublicKey = pk[:]
	} else {
		scheme, err := config.ConvertKeySchemeToSignatureScheme(keyScheme)
		if err != nil {
			return nil, err
		}
		kp, err := crypto.GenerateKeyPair(scheme)
		if err != nil {
			return nil, fmt.Errorf("failed to generate %s key: %w", keyScheme, err)
		}
		generated.PrivateKey = kp.Bytes()
		generated.PublicKey = kp.PublicKey().Key
		generated.Address = kp.PublicKey().Address().Hex()
	}

	l.logger.Info("Generated local key",
		zap.String("keyName", keyName),
		zap.String("keyId", keyId),
		zap.String("keyScheme", keyScheme.String()),
		zap.String("address", generated.Address),
	)
	return generated, nil
}
