package types

import (
	"fmt"

	"github.com/Layr-Labs/intent-signing-go/pkg/codec"
	"github.com/Layr-Labs/intent-signing-go/pkg/crypto"
	"github.com/Layr-Labs/intent-signing-go/pkg/intent"
)

// AuthSignInfo is one validator's signature over a transaction's data
type AuthSignInfo struct {
	Authority crypto.AuthorityPublicKeyBytes
	Signature crypto.AuthoritySignature
}

// SignedTransaction is a transaction countersigned by a single validator
type SignedTransaction struct {
	Transaction  Transaction
	AuthSignInfo AuthSignInfo
}

// NewSignedTransaction countersigns tx with an authority key. The sender
// signature is not checked here.
func NewSignedTransaction(tx *Transaction, kp *crypto.AuthorityKeyPair, in intent.Intent) *SignedTransaction {
	return &SignedTransaction{
		Transaction: *tx,
		AuthSignInfo: AuthSignInfo{
			Authority: kp.PublicKey(),
			Signature: crypto.NewAuthoritySignatureSecure(tx.Data, in, kp),
		},
	}
}

// Verify checks the sender signature and the countersignature of
// expectedAuthority.
func (s *SignedTransaction) Verify(in intent.Intent, expectedAuthority crypto.AuthorityPublicKeyBytes) error {
	if s.AuthSignInfo.Authority != expectedAuthority {
		return crypto.ErrVerification
	}
	if err := s.Transaction.VerifySender(in); err != nil {
		return err
	}
	return crypto.VerifyAuthoritySecure(s.Transaction.Data, in, s.AuthSignInfo.Signature, s.AuthSignInfo.Authority)
}

func (s SignedTransaction) MarshalCanonical() ([]byte, error) {
	return codec.Marshal(s)
}

func (s *SignedTransaction) UnmarshalCanonical(data []byte) error {
	return codec.Unmarshal(data, s)
}

// AuthorityQuorumSignInfo is an aggregate signature by a set of validators
type AuthorityQuorumSignInfo struct {
	Signers   []crypto.AuthorityPublicKeyBytes
	Signature crypto.AuthoritySignature
}

// CertifiedTransaction is a transaction signed by a quorum of the committee
type CertifiedTransaction struct {
	Transaction             Transaction
	AuthorityQuorumSignInfo AuthorityQuorumSignInfo
}

// NewCertifiedTransaction aggregates validator signatures over the same
// transaction into a certificate. Every signature is checked first.
func NewCertifiedTransaction(signed []*SignedTransaction, committee *Committee, in intent.Intent) (*CertifiedTransaction, error) {
	if committee == nil {
		return nil, fmt.Errorf("committee is nil")
	}
	if len(signed) == 0 {
		return nil, fmt.Errorf("no signed transactions to certify")
	}
	first := signed[0].Transaction

	var (
		signers = make([]crypto.AuthorityPublicKeyBytes, 0, len(signed))
		sigs    = make([]crypto.AuthoritySignature, 0, len(signed))
		seen    = make(map[crypto.AuthorityPublicKeyBytes]struct{}, len(signed))
	)
	for _, s := range signed {
		same, err := codec.Equal(s.Transaction, first)
		if err != nil {
			return nil, err
		}
		if !same {
			return nil, fmt.Errorf("signed transactions do not carry the same transaction")
		}
		authority := s.AuthSignInfo.Authority
		if !committee.IsMember(authority) {
			return nil, fmt.Errorf("signer %s is not a committee member", authority)
		}
		if _, ok := seen[authority]; ok {
			return nil, fmt.Errorf("duplicate signature from %s", authority)
		}
		if err := s.Verify(in, authority); err != nil {
			return nil, fmt.Errorf("signature from %s: %w", authority, err)
		}
		seen[authority] = struct{}{}
		signers = append(signers, authority)
		sigs = append(sigs, s.AuthSignInfo.Signature)
	}
	if stake := committee.StakeOf(signers); stake < committee.QuorumThreshold() {
		return nil, fmt.Errorf("signers hold %d stake, quorum requires %d", stake, committee.QuorumThreshold())
	}

	agg, err := crypto.AggregateAuthoritySignatures(sigs)
	if err != nil {
		return nil, err
	}
	return &CertifiedTransaction{
		Transaction: first,
		AuthorityQuorumSignInfo: AuthorityQuorumSignInfo{
			Signers:   signers,
			Signature: agg,
		},
	}, nil
}

// Verify checks the sender signature and that a quorum of distinct committee
// members signed the transaction data.
func (c *CertifiedTransaction) Verify(in intent.Intent, committee *Committee) error {
	if committee == nil {
		return crypto.ErrVerification
	}
	if err := c.Transaction.VerifySender(in); err != nil {
		return err
	}

	signers := c.AuthorityQuorumSignInfo.Signers
	seen := make(map[crypto.AuthorityPublicKeyBytes]struct{}, len(signers))
	for _, pk := range signers {
		if _, ok := seen[pk]; ok {
			return crypto.ErrVerification
		}
		if !committee.IsMember(pk) {
			return crypto.ErrVerification
		}
		seen[pk] = struct{}{}
	}
	if committee.StakeOf(signers) < committee.QuorumThreshold() {
		return crypto.ErrVerification
	}
	return crypto.VerifyAggregateAuthoritySecure(c.Transaction.Data, in, c.AuthorityQuorumSignInfo.Signature, signers)
}

func (c CertifiedTransaction) MarshalCanonical() ([]byte, error) {
	return codec.Marshal(c)
}

func (c *CertifiedTransaction) UnmarshalCanonical(data []byte) error {
	return codec.Unmarshal(data, c)
}
