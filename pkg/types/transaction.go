package types

import (
	"fmt"

	"github.com/Layr-Labs/intent-signing-go/pkg/codec"
	"github.com/Layr-Labs/intent-signing-go/pkg/crypto"
	"github.com/Layr-Labs/intent-signing-go/pkg/intent"
)

// Transaction is TransactionData with the sender's signature.
type Transaction struct {
	Data        TransactionData
	TxSignature crypto.Signature
}

// NewTransaction signs data with kp, which must own data.Sender.
func NewTransaction(data *TransactionData, kp crypto.KeyPair, in intent.Intent) (*Transaction, error) {
	if data == nil {
		return nil, fmt.Errorf("transaction data is nil")
	}
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("invalid transaction data: %w", err)
	}
	if kp.PublicKey().Address() != data.Sender {
		return nil, fmt.Errorf("key pair address %s is not the sender %s", kp.PublicKey().Address(), data.Sender)
	}
	sig, err := crypto.NewSignatureSecure(*data, in, kp)
	if err != nil {
		return nil, err
	}
	return &Transaction{Data: *data, TxSignature: sig}, nil
}

// VerifySender checks that the transaction was signed by Data.Sender under in.
func (t *Transaction) VerifySender(in intent.Intent) error {
	return crypto.VerifySecure(t.Data, in, t.TxSignature, t.Data.Sender)
}

func (t *Transaction) Digest() (TransactionDigest, error) {
	return t.Data.Digest()
}

func (t Transaction) MarshalCanonical() ([]byte, error) {
	if err := t.Data.Kind.Validate(); err != nil {
		return nil, err
	}
	return codec.Marshal(t)
}

func (t *Transaction) UnmarshalCanonical(data []byte) error {
	var decoded Transaction
	if err := codec.Unmarshal(data, &decoded); err != nil {
		return err
	}
	if err := decoded.Data.Kind.Validate(); err != nil {
		return err
	}
	*t = decoded
	return nil
}
