package inMemoryIntentSigner

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Layr-Labs/intent-signing-go/pkg/crypto"
	"github.com/Layr-Labs/intent-signing-go/pkg/intent"
	"github.com/Layr-Labs/intent-signing-go/pkg/intentSigner"
	"github.com/Layr-Labs/intent-signing-go/pkg/types"
)

type InMemoryAuthoritySigner struct {
	logger  *zap.Logger
	keyPair *crypto.AuthorityKeyPair
	chainId intent.ChainId
}

var _ intentSigner.IAuthoritySigner = (*InMemoryAuthoritySigner)(nil)

func NewAuthorityInMemorySigner(
	privateKey []byte,
	chainId intent.ChainId,
	logger *zap.Logger,
) (*InMemoryAuthoritySigner, error) {
	kp, err := crypto.NewAuthorityKeyPairFromBytes(privateKey)
	if err != nil {
		return nil, fmt.Errorf("error loading private key: %w", err)
	}
	return &InMemoryAuthoritySigner{
		logger:  logger,
		keyPair: kp,
		chainId: chainId,
	}, nil
}

func (s *InMemoryAuthoritySigner) PublicKey() crypto.AuthorityPublicKeyBytes {
	return s.keyPair.PublicKey()
}

func (s *InMemoryAuthoritySigner) ProofOfPossession(address crypto.Address) crypto.AuthoritySignature {
	return crypto.GenerateProofOfPossession(s.keyPair, address, s.chainId)
}

// SignTransaction countersigns tx after checking the sender's signature.
func (s *InMemoryAuthoritySigner) SignTransaction(tx *types.Transaction) (*types.SignedTransaction, error) {
	in := intent.ForChain(s.chainId, intent.IntentScope_TransactionData)
	if err := tx.VerifySender(in); err != nil {
		s.logger.Sugar().Warnw("Rejected transaction with invalid sender signature",
			"sender", tx.Data.Sender.Hex(),
			"intent", in.String(),
		)
		return nil, err
	}
	signed := types.NewSignedTransaction(tx, s.keyPair, in)
	s.logger.Debug("Countersigned transaction",
		zap.String("authority", s.PublicKey().Hex()),
		zap.String("sender", tx.Data.Sender.Hex()),
	)
	return signed, nil
}

func (s *InMemoryAuthoritySigner) SignBatch(batch *types.AuthorityBatch) crypto.AuthoritySignature {
	signed := types.NewSignedAuthorityBatch(batch, s.keyPair, s.chainId)
	s.logger.Debug("Signed authority batch",
		zap.String("authority", s.PublicKey().Hex()),
		zap.Uint64("initialSequenceNumber", batch.InitialSequenceNumber),
		zap.Uint64("size", batch.Size),
	)
	return signed.Signature
}
