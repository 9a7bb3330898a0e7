package crypto

import (
	"github.com/Layr-Labs/intent-signing-go/pkg/codec"
	"github.com/Layr-Labs/intent-signing-go/pkg/intent"
)

// ProofOfPossessionMessage binds an authority key to the account that
// operates it. Signing it proves knowledge of the secret key, which keeps a
// rogue key from cancelling honest keys out of an aggregate.
type ProofOfPossessionMessage struct {
	AuthorityPublicKey AuthorityPublicKeyBytes
	Address            Address
}

func (m ProofOfPossessionMessage) MarshalCanonical() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *ProofOfPossessionMessage) UnmarshalCanonical(data []byte) error {
	return codec.Unmarshal(data, m)
}

func GenerateProofOfPossession(kp *AuthorityKeyPair, address Address, chainId intent.ChainId) AuthoritySignature {
	msg := ProofOfPossessionMessage{
		AuthorityPublicKey: kp.PublicKey(),
		Address:            address,
	}
	return NewAuthoritySignatureSecure(msg, intent.ForChain(chainId, intent.IntentScope_ProofOfPossession), kp)
}

func VerifyProofOfPossession(pop AuthoritySignature, pk AuthorityPublicKeyBytes, address Address, chainId intent.ChainId) error {
	msg := ProofOfPossessionMessage{
		AuthorityPublicKey: pk,
		Address:            address,
	}
	return VerifyAuthoritySecure(msg, intent.ForChain(chainId, intent.IntentScope_ProofOfPossession), pop, pk)
}
