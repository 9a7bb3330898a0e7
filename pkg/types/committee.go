package types

import (
	"fmt"
	"slices"

	"github.com/Layr-Labs/intent-signing-go/pkg/crypto"
	"github.com/Layr-Labs/intent-signing-go/pkg/intent"
	"github.com/Layr-Labs/intent-signing-go/pkg/util"
)

// CommitteeMember is a validator candidate together with the proof that it
// holds its authority key.
type CommitteeMember struct {
	PublicKey         crypto.AuthorityPublicKeyBytes
	Address           crypto.Address
	Stake             uint64
	ProofOfPossession crypto.AuthoritySignature
}

// Committee is the stake-weighted validator set of an epoch.
type Committee struct {
	Epoch      uint64
	members    map[crypto.AuthorityPublicKeyBytes]uint64
	totalStake uint64
}

// NewCommittee admits every member after checking its proof of possession on
// chainId. Duplicate keys and zero stake are rejected.
func NewCommittee(epoch uint64, chainId intent.ChainId, members []CommitteeMember) (*Committee, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("committee must have at least one member")
	}
	c := &Committee{
		Epoch:   epoch,
		members: make(map[crypto.AuthorityPublicKeyBytes]uint64, len(members)),
	}
	for _, m := range members {
		if m.Stake == 0 {
			return nil, fmt.Errorf("member %s has zero stake", m.PublicKey)
		}
		if _, ok := c.members[m.PublicKey]; ok {
			return nil, fmt.Errorf("duplicate committee member %s", m.PublicKey)
		}
		if err := crypto.VerifyProofOfPossession(m.ProofOfPossession, m.PublicKey, m.Address, chainId); err != nil {
			return nil, fmt.Errorf("invalid proof of possession for %s: %w", m.PublicKey, err)
		}
		if c.totalStake+m.Stake < c.totalStake {
			return nil, fmt.Errorf("total committee stake overflows")
		}
		c.members[m.PublicKey] = m.Stake
		c.totalStake += m.Stake
	}
	return c, nil
}

func (c *Committee) Weight(pk crypto.AuthorityPublicKeyBytes) uint64 {
	return c.members[pk]
}

func (c *Committee) IsMember(pk crypto.AuthorityPublicKeyBytes) bool {
	_, ok := c.members[pk]
	return ok
}

func (c *Committee) TotalStake() uint64 {
	return c.totalStake
}

// StakeOf sums the weight of signers. Non-members weigh zero, and each key
// is counted as often as it appears.
func (c *Committee) StakeOf(signers []crypto.AuthorityPublicKeyBytes) uint64 {
	return util.Reduce(signers, func(stake uint64, pk crypto.AuthorityPublicKeyBytes) uint64 {
		return stake + c.Weight(pk)
	}, 0)
}

// QuorumThreshold is the smallest stake strictly above two thirds of the total.
func (c *Committee) QuorumThreshold() uint64 {
	return c.totalStake/3*2 + (c.totalStake%3)*2/3 + 1
}

// Members returns the member keys in byte order
func (c *Committee) Members() []crypto.AuthorityPublicKeyBytes {
	keys := make([]crypto.AuthorityPublicKeyBytes, 0, len(c.members))
	for pk := range c.members {
		keys = append(keys, pk)
	}
	slices.SortFunc(keys, func(a, b crypto.AuthorityPublicKeyBytes) int {
		return a.Compare(b)
	})
	return keys
}
