package intentSigner

import (
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/Layr-Labs/intent-signing-go/pkg/crypto"
	"github.com/Layr-Labs/intent-signing-go/pkg/types"
)

// SignedPersonalMessage is a personal message with the signature that
// attests to it. All fields encode as 0x-prefixed hex in JSON.
type SignedPersonalMessage struct {
	Message   hexutil.Bytes    `json:"message"`
	Address   crypto.Address   `json:"address"`
	Signature crypto.Signature `json:"signature"`
}

// IIntentSigner signs account payloads for a single chain
type IIntentSigner interface {
	Address() crypto.Address
	SignPersonalMessage(message []byte) (*SignedPersonalMessage, error)
	SignTransaction(data *types.TransactionData) (*types.Transaction, error)
}

// IAuthoritySigner signs as a validator for a single chain
type IAuthoritySigner interface {
	PublicKey() crypto.AuthorityPublicKeyBytes
	ProofOfPossession(address crypto.Address) crypto.AuthoritySignature
	SignTransaction(tx *types.Transaction) (*types.SignedTransaction, error)
	SignBatch(batch *types.AuthorityBatch) crypto.AuthoritySignature
}
