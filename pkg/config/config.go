package config

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/Layr-Labs/intent-signing-go/pkg/crypto"
	"github.com/Layr-Labs/intent-signing-go/pkg/intent"
	"github.com/Layr-Labs/intent-signing-go/pkg/util"
)

// Environment variable names for signer configuration
const (
	EnvIntentChain      = "INTENT_CHAIN"
	EnvIntentKeyScheme  = "INTENT_KEY_SCHEME"
	EnvIntentPrivateKey = "INTENT_PRIVATE_KEY"
	EnvIntentVerbose    = "INTENT_VERBOSE"
)

type KeyScheme string

func (k KeyScheme) String() string {
	return string(k)
}

// Flag returns the signature scheme flag of the key scheme
func (k KeyScheme) Flag() (uint8, error) {
	scheme, err := ConvertKeySchemeToSignatureScheme(k)
	if err != nil {
		return 0, err
	}
	return scheme.Flag(), nil
}

// PrivateKeySize is the length in bytes of exported secret keys for the scheme
func (k KeyScheme) PrivateKeySize() (int, error) {
	switch k {
	case KeySchemeEd25519, KeySchemeSecp256k1:
		return 32, nil
	case KeySchemeBLS12381:
		return crypto.AuthorityPrivateKeySize, nil
	default:
		return 0, fmt.Errorf("unsupported key scheme: %s", k)
	}
}

// IsAuthority reports whether keys of this scheme sign as a validator
func (k KeyScheme) IsAuthority() bool {
	return k == KeySchemeBLS12381
}

const (
	KeySchemeEd25519   KeyScheme = "ed25519"
	KeySchemeSecp256k1 KeyScheme = "secp256k1"
	KeySchemeBLS12381  KeyScheme = "bls12381"
)

var supportedKeySchemes = []KeyScheme{
	KeySchemeEd25519,
	KeySchemeSecp256k1,
	KeySchemeBLS12381,
}

func ConvertKeySchemeToSignatureScheme(k KeyScheme) (crypto.SignatureScheme, error) {
	switch k {
	case KeySchemeEd25519:
		return crypto.SignatureScheme_Ed25519, nil
	case KeySchemeSecp256k1:
		return crypto.SignatureScheme_Secp256k1, nil
	case KeySchemeBLS12381:
		return crypto.SignatureScheme_BLS12381, nil
	default:
		return 0, fmt.Errorf("unsupported key scheme: %s", k)
	}
}

func ConvertSignatureSchemeToKeyScheme(scheme crypto.SignatureScheme) (KeyScheme, error) {
	switch scheme {
	case crypto.SignatureScheme_Ed25519:
		return KeySchemeEd25519, nil
	case crypto.SignatureScheme_Secp256k1:
		return KeySchemeSecp256k1, nil
	case crypto.SignatureScheme_BLS12381:
		return KeySchemeBLS12381, nil
	default:
		return "", fmt.Errorf("unsupported signature scheme: %s", scheme)
	}
}

// ParseKeyScheme maps a case-insensitive scheme name to a KeyScheme
func ParseKeyScheme(name string) (KeyScheme, error) {
	k := KeyScheme(strings.ToLower(strings.TrimSpace(name)))
	if _, err := ConvertKeySchemeToSignatureScheme(k); err != nil {
		return "", fmt.Errorf("unsupported key scheme %q. Supported: %s", name, GetSupportedKeySchemesString())
	}
	return k, nil
}

// GetSupportedKeySchemesString returns supported key schemes for CLI help
func GetSupportedKeySchemesString() string {
	return strings.Join(util.Map(supportedKeySchemes, func(k KeyScheme, _ uint64) string {
		return k.String()
	}), ", ")
}

// SignerConfig is the configuration of an intent signer
type SignerConfig struct {
	ChainName  intent.ChainName `json:"chain_name"`
	KeyScheme  KeyScheme        `json:"key_scheme"`
	PrivateKey string           `json:"private_key"` // hex, 0x prefix optional
	Verbose    bool             `json:"verbose"`

	// populated by Validate
	ChainId intent.ChainId `json:"-"`
}

// Validate checks every field and reports all problems together. On success
// ChainId is resolved from ChainName.
func (c *SignerConfig) Validate() error {
	var allErrors field.ErrorList

	chainId, err := intent.ParseChainId(string(c.ChainName))
	if c.ChainName == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("chainName"), "chainName is required"))
	} else if err != nil {
		allErrors = append(allErrors, field.NotSupported(field.NewPath("chainName"), c.ChainName, supportedChainNames()))
	}

	keySchemeValid := true
	if c.KeyScheme == "" {
		keySchemeValid = false
		allErrors = append(allErrors, field.Required(field.NewPath("keyScheme"), "keyScheme is required"))
	} else if _, err := ConvertKeySchemeToSignatureScheme(c.KeyScheme); err != nil {
		keySchemeValid = false
		allErrors = append(allErrors, field.NotSupported(field.NewPath("keyScheme"), c.KeyScheme, util.Map(supportedKeySchemes, func(k KeyScheme, _ uint64) string {
			return k.String()
		})))
	}

	if c.PrivateKey == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("privateKey"), "privateKey is required"))
	} else if keySchemeValid {
		size, _ := c.KeyScheme.PrivateKeySize()
		if _, err := util.DecodeHexKey(c.PrivateKey, size); err != nil {
			// never echo the key itself
			allErrors = append(allErrors, field.Invalid(field.NewPath("privateKey"), "<redacted>", err.Error()))
		}
	}

	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	c.ChainId = chainId
	return nil
}

// PrivateKeyBytes decodes the configured private key. Call Validate first.
func (c *SignerConfig) PrivateKeyBytes() ([]byte, error) {
	size, err := c.KeyScheme.PrivateKeySize()
	if err != nil {
		return nil, err
	}
	return util.DecodeHexKey(c.PrivateKey, size)
}

func supportedChainNames() []string {
	return strings.Split(intent.SupportedChainNames(), ", ")
}
