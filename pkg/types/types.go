// Package types holds the payloads that accounts and authorities sign.
//
// Every payload implements codec.Encodable so it can travel inside an
// intent.IntentMessage.
package types

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/sha3"

	"github.com/Layr-Labs/intent-signing-go/pkg/codec"
	"github.com/Layr-Labs/intent-signing-go/pkg/crypto"
)

const (
	ObjectIDLength = 20
	DigestLength   = 32
)

// ObjectID identifies an on-chain object
type ObjectID [ObjectIDLength]byte

func (id ObjectID) Hex() string {
	return hexutil.Encode(id[:])
}

// ObjectDigest is the content hash of an object version
type ObjectDigest [DigestLength]byte

// ObjectRef points at one version of an object
type ObjectRef struct {
	ObjectID ObjectID
	Version  uint64
	Digest   ObjectDigest
}

// TransactionDigest identifies a transaction
type TransactionDigest [DigestLength]byte

func (d TransactionDigest) Hex() string {
	return hexutil.Encode(d[:])
}

func (d TransactionDigest) String() string {
	return d.Hex()
}

// TransferObject moves ownership of an object to Recipient
type TransferObject struct {
	Recipient crypto.Address
	ObjectRef ObjectRef
}

// TransferSui pays Amount from the gas coin to Recipient. A nil Amount moves
// the whole gas coin.
type TransferSui struct {
	Recipient crypto.Address
	Amount    *uint64 `rlp:"nil"`
}

// TransactionKind is a tagged union. Exactly one field is set.
type TransactionKind struct {
	TransferObject *TransferObject `rlp:"nil"`
	TransferSui    *TransferSui    `rlp:"nil"`
}

func (k TransactionKind) Validate() error {
	set := 0
	if k.TransferObject != nil {
		set++
	}
	if k.TransferSui != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("transaction kind must set exactly one variant, got %d", set)
	}
	// a zero amount would encode the same as an absent one
	if k.TransferSui != nil && k.TransferSui.Amount != nil && *k.TransferSui.Amount == 0 {
		return fmt.Errorf("transfer amount must be greater than zero when set")
	}
	return nil
}

func (k TransactionKind) String() string {
	switch {
	case k.TransferObject != nil:
		return "transfer-object"
	case k.TransferSui != nil:
		return "transfer-sui"
	default:
		return "invalid"
	}
}

// TransactionData is what a sender signs under IntentScope_TransactionData.
type TransactionData struct {
	Kind       TransactionKind
	Sender     crypto.Address
	GasPayment ObjectRef
	GasBudget  uint64
}

func NewTransferSui(sender, recipient crypto.Address, amount *uint64, gasPayment ObjectRef, gasBudget uint64) *TransactionData {
	return &TransactionData{
		Kind: TransactionKind{
			TransferSui: &TransferSui{Recipient: recipient, Amount: amount},
		},
		Sender:     sender,
		GasPayment: gasPayment,
		GasBudget:  gasBudget,
	}
}

func NewTransferObject(sender, recipient crypto.Address, object ObjectRef, gasPayment ObjectRef, gasBudget uint64) *TransactionData {
	return &TransactionData{
		Kind: TransactionKind{
			TransferObject: &TransferObject{Recipient: recipient, ObjectRef: object},
		},
		Sender:     sender,
		GasPayment: gasPayment,
		GasBudget:  gasBudget,
	}
}

func (d TransactionData) Validate() error {
	if err := d.Kind.Validate(); err != nil {
		return err
	}
	if d.GasBudget == 0 {
		return fmt.Errorf("gas budget must be greater than zero")
	}
	return nil
}

func (d TransactionData) MarshalCanonical() ([]byte, error) {
	if err := d.Kind.Validate(); err != nil {
		return nil, err
	}
	return codec.Marshal(d)
}

func (d *TransactionData) UnmarshalCanonical(data []byte) error {
	var decoded TransactionData
	if err := codec.Unmarshal(data, &decoded); err != nil {
		return err
	}
	if err := decoded.Kind.Validate(); err != nil {
		return err
	}
	*d = decoded
	return nil
}

// Digest returns sha3_256("TransactionData::" || canonical bytes).
func (d TransactionData) Digest() (TransactionDigest, error) {
	encoded, err := d.MarshalCanonical()
	if err != nil {
		return TransactionDigest{}, fmt.Errorf("failed to encode transaction data: %w", err)
	}
	return hashWithName("TransactionData", encoded), nil
}

func hashWithName(name string, encoded []byte) [DigestLength]byte {
	hasher := sha3.New256()
	hasher.Write([]byte(name + "::"))
	hasher.Write(encoded)
	var out [DigestLength]byte
	copy(out[:], hasher.Sum(nil))
	return out
}
