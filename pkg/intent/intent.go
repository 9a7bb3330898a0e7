// Package intent implements domain separation for signed messages.
//
// Every signature in the network is produced over an IntentMessage: a 3-byte
// Intent prefix followed by the canonical encoding of the payload. The prefix
// pins the protocol version, the target chain and the payload scope, so bytes
// signed for one purpose or network never verify for another.
//
// Discriminant values below are wire format. They are assigned once and never
// renumbered; new values are only ever appended.
package intent

import (
	"fmt"
	"strings"
)

// IntentLength is the size in bytes of an encoded Intent.
const IntentLength = 3

type IntentVersion uint8

const (
	IntentVersion_V0 IntentVersion = 0
)

var intentVersionNames = map[IntentVersion]string{
	IntentVersion_V0: "v0",
}

func (v IntentVersion) String() string {
	if name, ok := intentVersionNames[v]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", uint8(v))
}

func (v IntentVersion) IsKnown() bool {
	_, ok := intentVersionNames[v]
	return ok
}

// ChainId identifies the network a signature is valid on.
type ChainId uint8

const (
	ChainId_Testing ChainId = 0
	ChainId_Devnet  ChainId = 1
	ChainId_Testnet ChainId = 2
	ChainId_Mainnet ChainId = 3
)

type ChainName string

const (
	ChainName_Testing ChainName = "testing"
	ChainName_Devnet  ChainName = "devnet"
	ChainName_Testnet ChainName = "testnet"
	ChainName_Mainnet ChainName = "mainnet"
)

var ChainIdToName = map[ChainId]ChainName{
	ChainId_Testing: ChainName_Testing,
	ChainId_Devnet:  ChainName_Devnet,
	ChainId_Testnet: ChainName_Testnet,
	ChainId_Mainnet: ChainName_Mainnet,
}

var ChainNameToId = map[ChainName]ChainId{
	ChainName_Testing: ChainId_Testing,
	ChainName_Devnet:  ChainId_Devnet,
	ChainName_Testnet: ChainId_Testnet,
	ChainName_Mainnet: ChainId_Mainnet,
}

func (c ChainId) String() string {
	if name, ok := ChainIdToName[c]; ok {
		return string(name)
	}
	return fmt.Sprintf("unknown(%d)", uint8(c))
}

func (c ChainId) IsKnown() bool {
	_, ok := ChainIdToName[c]
	return ok
}

// ParseChainId maps a chain name (case-insensitive) to its ChainId.
func ParseChainId(name string) (ChainId, error) {
	id, ok := ChainNameToId[ChainName(strings.ToLower(strings.TrimSpace(name)))]
	if !ok {
		return 0, fmt.Errorf("unsupported chain %q. Supported: %s", name, SupportedChainNames())
	}
	return id, nil
}

// SupportedChainNames returns the chain names in discriminant order, for CLI help.
func SupportedChainNames() string {
	names := make([]string, 0, len(ChainIdToName))
	for id := ChainId(0); int(id) < len(ChainIdToName); id++ {
		names = append(names, string(ChainIdToName[id]))
	}
	return strings.Join(names, ", ")
}

// IntentScope identifies what kind of payload was signed.
type IntentScope uint8

const (
	IntentScope_TransactionData    IntentScope = 0
	IntentScope_TransactionEffects IntentScope = 1
	IntentScope_AuthorityBatch     IntentScope = 2
	IntentScope_CheckpointSummary  IntentScope = 3
	IntentScope_PersonalMessage    IntentScope = 4
	IntentScope_ProofOfPossession  IntentScope = 5
)

var intentScopeNames = map[IntentScope]string{
	IntentScope_TransactionData:    "transaction-data",
	IntentScope_TransactionEffects: "transaction-effects",
	IntentScope_AuthorityBatch:     "authority-batch",
	IntentScope_CheckpointSummary:  "checkpoint-summary",
	IntentScope_PersonalMessage:    "personal-message",
	IntentScope_ProofOfPossession:  "proof-of-possession",
}

func (s IntentScope) String() string {
	if name, ok := intentScopeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", uint8(s))
}

func (s IntentScope) IsKnown() bool {
	_, ok := intentScopeNames[s]
	return ok
}

// ParseIntentScope maps a scope name such as "personal-message" to its IntentScope.
func ParseIntentScope(name string) (IntentScope, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for scope, scopeName := range intentScopeNames {
		if scopeName == normalized {
			return scope, nil
		}
	}
	return 0, fmt.Errorf("unsupported intent scope %q", name)
}

// Intent is the domain a signature is bound to.
type Intent struct {
	Version IntentVersion
	ChainId ChainId
	Scope   IntentScope
}

func NewIntent(version IntentVersion, chainId ChainId, scope IntentScope) Intent {
	return Intent{
		Version: version,
		ChainId: chainId,
		Scope:   scope,
	}
}

// DefaultIntent is the domain of the network's primary signed message kind:
// transaction data at the current version on the testing chain.
func DefaultIntent() Intent {
	return NewIntent(IntentVersion_V0, ChainId_Testing, IntentScope_TransactionData)
}

// ForChain returns the current-version intent for scope on chainId.
func ForChain(chainId ChainId, scope IntentScope) Intent {
	return NewIntent(IntentVersion_V0, chainId, scope)
}

// Bytes returns the canonical encoding: [version, chainId, scope].
func (i Intent) Bytes() []byte {
	return []byte{uint8(i.Version), uint8(i.ChainId), uint8(i.Scope)}
}

func (i Intent) String() string {
	return fmt.Sprintf("%s/%s/%s", i.Version, i.ChainId, i.Scope)
}

// ParseIntent decodes a 3-byte intent prefix, rejecting discriminants this
// release does not know about.
func ParseIntent(data []byte) (Intent, error) {
	if len(data) != IntentLength {
		return Intent{}, fmt.Errorf("invalid intent length: %d wanted: %d", len(data), IntentLength)
	}
	i := NewIntent(IntentVersion(data[0]), ChainId(data[1]), IntentScope(data[2]))
	if !i.Version.IsKnown() {
		return Intent{}, fmt.Errorf("unknown intent version: %d", data[0])
	}
	if !i.ChainId.IsKnown() {
		return Intent{}, fmt.Errorf("unknown chain id: %d", data[1])
	}
	if !i.Scope.IsKnown() {
		return Intent{}, fmt.Errorf("unknown intent scope: %d", data[2])
	}
	return i, nil
}
