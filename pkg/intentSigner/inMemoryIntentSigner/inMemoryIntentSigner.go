package inMemoryIntentSigner

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Layr-Labs/intent-signing-go/pkg/crypto"
	"github.com/Layr-Labs/intent-signing-go/pkg/intent"
	"github.com/Layr-Labs/intent-signing-go/pkg/intentSigner"
	"github.com/Layr-Labs/intent-signing-go/pkg/types"
)

type InMemoryIntentSigner struct {
	logger  *zap.Logger
	keyPair crypto.KeyPair
	chainId intent.ChainId
}

var _ intentSigner.IIntentSigner = (*InMemoryIntentSigner)(nil)

func NewEd25519InMemoryIntentSigner(
	privateKey []byte,
	chainId intent.ChainId,
	logger *zap.Logger,
) (*InMemoryIntentSigner, error) {
	kp, err := crypto.NewEd25519KeyPairFromSeed(privateKey)
	if err != nil {
		return nil, fmt.Errorf("error loading private key: %w", err)
	}
	return NewInMemoryIntentSigner(kp, chainId, logger), nil
}

func NewSecp256k1InMemoryIntentSigner(
	privateKey []byte,
	chainId intent.ChainId,
	logger *zap.Logger,
) (*InMemoryIntentSigner, error) {
	kp, err := crypto.NewSecp256k1KeyPairFromBytes(privateKey)
	if err != nil {
		return nil, fmt.Errorf("error loading private key: %w", err)
	}
	return NewInMemoryIntentSigner(kp, chainId, logger), nil
}

func NewInMemoryIntentSigner(
	kp crypto.KeyPair,
	chainId intent.ChainId,
	logger *zap.Logger,
) *InMemoryIntentSigner {
	return &InMemoryIntentSigner{
		logger:  logger,
		keyPair: kp,
		chainId: chainId,
	}
}

func (s *InMemoryIntentSigner) Address() crypto.Address {
	return s.keyPair.PublicKey().Address()
}

func (s *InMemoryIntentSigner) ChainId() intent.ChainId {
	return s.chainId
}

func (s *InMemoryIntentSigner) SignPersonalMessage(message []byte) (*intentSigner.SignedPersonalMessage, error) {
	in := intent.ForChain(s.chainId, intent.IntentScope_PersonalMessage)
	sig, err := crypto.NewSignatureSecure(intent.PersonalMessage{Message: message}, in, s.keyPair)
	if err != nil {
		s.logger.Sugar().Errorw("Failed to sign personal message",
			"address", s.Address().Hex(),
			"error", err,
		)
		return nil, err
	}
	s.logger.Sugar().Debugw("Signed personal message",
		"address", s.Address().Hex(),
		"intent", in.String(),
		"messageLength", len(message),
	)
	return &intentSigner.SignedPersonalMessage{
		Message:   message,
		Address:   s.Address(),
		Signature: sig,
	}, nil
}

func (s *InMemoryIntentSigner) SignTransaction(data *types.TransactionData) (*types.Transaction, error) {
	in := intent.ForChain(s.chainId, intent.IntentScope_TransactionData)
	tx, err := types.NewTransaction(data, s.keyPair, in)
	if err != nil {
		s.logger.Sugar().Errorw("Failed to sign transaction",
			"address", s.Address().Hex(),
			"error", err,
		)
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}
	digest, err := tx.Digest()
	if err != nil {
		return nil, err
	}
	s.logger.Sugar().Infow("Signed transaction",
		"address", s.Address().Hex(),
		"intent", in.String(),
		"kind", data.Kind.String(),
		"digest", digest.Hex(),
	)
	return tx, nil
}

// VerifyPersonalMessage checks that signed.Address signed signed.Message for chainId
func VerifyPersonalMessage(chainId intent.ChainId, signed *intentSigner.SignedPersonalMessage) error {
	if signed == nil {
		return crypto.ErrVerification
	}
	in := intent.ForChain(chainId, intent.IntentScope_PersonalMessage)
	return crypto.VerifySecure(intent.PersonalMessage{Message: signed.Message}, in, signed.Signature, signed.Address)
}
