package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/Layr-Labs/intent-signing-go/internal/keyGenerator/localKeyGenerator"
	"github.com/Layr-Labs/intent-signing-go/pkg/config"
	"github.com/Layr-Labs/intent-signing-go/pkg/crypto"
	"github.com/Layr-Labs/intent-signing-go/pkg/intent"
	"github.com/Layr-Labs/intent-signing-go/pkg/intentSigner"
	"github.com/Layr-Labs/intent-signing-go/pkg/intentSigner/inMemoryIntentSigner"
	"github.com/Layr-Labs/intent-signing-go/pkg/logger"
	"github.com/Layr-Labs/intent-signing-go/pkg/util"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	chainFlag := &cli.StringFlag{
		Name:    "chain",
		Usage:   fmt.Sprintf("Chain the signature is bound to (%s)", intent.SupportedChainNames()),
		Value:   string(intent.ChainName_Testing),
		EnvVars: []string{config.EnvIntentChain},
	}
	messageFlag := &cli.StringFlag{
		Name:     "message",
		Usage:    "Personal message (as string)",
		Required: true,
	}
	hexFlag := &cli.BoolFlag{
		Name:  "hex",
		Usage: "Treat --message as hex encoded bytes",
	}

	return &cli.App{
		Name:  "intent-signer",
		Usage: "Sign and verify intent-scoped messages",
		Description: `Produces and checks domain separated signatures.

Every signature covers a 3 byte intent (version, chain, scope) followed by the
canonical encoding of the payload, so a signature made for one chain or payload
kind never verifies for another.`,
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Enable debug logging",
				EnvVars: []string{config.EnvIntentVerbose},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "keygen",
				Usage: "Generate a new key pair",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "key-scheme",
						Usage:   fmt.Sprintf("Key scheme (%s)", config.GetSupportedKeySchemesString()),
						Value:   string(config.KeySchemeEd25519),
						EnvVars: []string{config.EnvIntentKeyScheme},
					},
					&cli.StringFlag{
						Name:  "name",
						Usage: "Label recorded with the generated key",
						Value: "intent-signer",
					},
				},
				Action: keygenCommand,
			},
			{
				Name:  "encode-message",
				Usage: "Print the exact bytes signed for a personal message",
				Flags: []cli.Flag{
					chainFlag,
					messageFlag,
					hexFlag,
					&cli.StringFlag{
						Name:  "scope",
						Usage: "Intent scope",
						Value: intent.IntentScope_PersonalMessage.String(),
					},
				},
				Action: encodeMessageCommand,
			},
			{
				Name:  "sign-message",
				Usage: "Sign a personal message with an account key",
				Flags: []cli.Flag{
					chainFlag,
					messageFlag,
					hexFlag,
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print the signed message as JSON",
					},
					&cli.StringFlag{
						Name:    "key-scheme",
						Usage:   "Account key scheme (ed25519, secp256k1)",
						Value:   string(config.KeySchemeEd25519),
						EnvVars: []string{config.EnvIntentKeyScheme},
					},
					&cli.StringFlag{
						Name:     "private-key",
						Usage:    "Private key (hex)",
						EnvVars:  []string{config.EnvIntentPrivateKey},
						Required: true,
					},
				},
				Action: signMessageCommand,
			},
			{
				Name:  "verify-message",
				Usage: "Verify a personal message signature",
				Flags: []cli.Flag{
					chainFlag,
					&cli.StringFlag{
						Name:  "signed-message",
						Usage: "Signed message as printed by sign-message --json. Replaces --message, --signature and --address",
					},
					&cli.StringFlag{
						Name:  "message",
						Usage: "Personal message (as string)",
					},
					hexFlag,
					&cli.StringFlag{
						Name:  "signature",
						Usage: "Signature (hex)",
					},
					&cli.StringFlag{
						Name:  "address",
						Usage: "Expected signer address (hex)",
					},
				},
				Action: verifyMessageCommand,
			},
			{
				Name:  "proof-of-possession",
				Usage: "Prove ownership of an authority key for an account address",
				Flags: []cli.Flag{
					chainFlag,
					&cli.StringFlag{
						Name:     "private-key",
						Usage:    "Authority private key (hex)",
						EnvVars:  []string{config.EnvIntentPrivateKey},
						Required: true,
					},
					&cli.StringFlag{
						Name:     "address",
						Usage:    "Account address operating the authority (hex)",
						Required: true,
					},
				},
				Action: proofOfPossessionCommand,
			},
		},
	}
}

func newLogger(c *cli.Context) (*zap.Logger, error) {
	return logger.NewLogger(&logger.LoggerConfig{Debug: c.Bool("verbose")})
}

func messageBytes(c *cli.Context) ([]byte, error) {
	if !c.Bool("hex") {
		return []byte(c.String("message")), nil
	}
	decoded, err := util.DecodeHexBytes(c.String("message"))
	if err != nil {
		return nil, fmt.Errorf("invalid message hex: %w", err)
	}
	return decoded, nil
}

func keygenCommand(c *cli.Context) error {
	keyScheme, err := config.ParseKeyScheme(c.String("key-scheme"))
	if err != nil {
		return err
	}

	l, err := newLogger(c)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	generated, err := localKeyGenerator.NewLocalKeyGenerator(l).GenerateKey(c.Context, keyScheme, c.String("name"))
	if err != nil {
		return err
	}
	privateKey, err := generated.GetPrivateKeyHex()
	if err != nil {
		return err
	}
	publicKey, err := generated.GetPublicKeyHex()
	if err != nil {
		return err
	}

	out := c.App.Writer
	fmt.Fprintf(out, "Key ID: %s\n", generated.KeyId)
	fmt.Fprintf(out, "Key scheme: %s\n", generated.KeyScheme)
	fmt.Fprintf(out, "Private key: %s\n", privateKey)
	fmt.Fprintf(out, "Public key: %s\n", publicKey)
	if generated.Address != "" {
		fmt.Fprintf(out, "Address: %s\n", generated.Address)
	}
	return nil
}

func encodeMessageCommand(c *cli.Context) error {
	chainId, err := intent.ParseChainId(c.String("chain"))
	if err != nil {
		return err
	}
	scope, err := intent.ParseIntentScope(c.String("scope"))
	if err != nil {
		return err
	}

	message, err := messageBytes(c)
	if err != nil {
		return err
	}

	in := intent.ForChain(chainId, scope)
	encoded, err := intent.NewIntentMessage(in, intent.PersonalMessage{Message: message}).Bytes()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Intent: %s\n", in)
	fmt.Fprintf(c.App.Writer, "Bytes: %s\n", hexutil.Encode(encoded))
	return nil
}

func signMessageCommand(c *cli.Context) error {
	cfg := &config.SignerConfig{
		ChainName:  intent.ChainName(c.String("chain")),
		KeyScheme:  config.KeyScheme(c.String("key-scheme")),
		PrivateKey: c.String("private-key"),
		Verbose:    c.Bool("verbose"),
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid signer configuration: %w", err)
	}
	if cfg.KeyScheme.IsAuthority() {
		return fmt.Errorf("key scheme %s cannot sign personal messages", cfg.KeyScheme)
	}
	message, err := messageBytes(c)
	if err != nil {
		return err
	}

	l, err := newLogger(c)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	key, err := cfg.PrivateKeyBytes()
	if err != nil {
		return err
	}

	var signer *inMemoryIntentSigner.InMemoryIntentSigner
	switch cfg.KeyScheme {
	case config.KeySchemeEd25519:
		signer, err = inMemoryIntentSigner.NewEd25519InMemoryIntentSigner(key, cfg.ChainId, l)
	case config.KeySchemeSecp256k1:
		signer, err = inMemoryIntentSigner.NewSecp256k1InMemoryIntentSigner(key, cfg.ChainId, l)
	}
	if err != nil {
		return err
	}

	signed, err := signer.SignPersonalMessage(message)
	if err != nil {
		return err
	}
	if c.Bool("json") {
		encoded, err := json.Marshal(signed)
		if err != nil {
			return fmt.Errorf("failed to encode signed message: %w", err)
		}
		fmt.Fprintln(c.App.Writer, string(encoded))
		return nil
	}
	fmt.Fprintf(c.App.Writer, "Address: %s\n", signed.Address.Hex())
	fmt.Fprintf(c.App.Writer, "Signature: %s\n", signed.Signature.Hex())
	return nil
}

func verifyMessageCommand(c *cli.Context) error {
	chainId, err := intent.ParseChainId(c.String("chain"))
	if err != nil {
		return err
	}
	signed, err := signedMessageFromFlags(c)
	if err != nil {
		return err
	}

	if err := inMemoryIntentSigner.VerifyPersonalMessage(chainId, signed); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "Signature is valid")
	return nil
}

func signedMessageFromFlags(c *cli.Context) (*intentSigner.SignedPersonalMessage, error) {
	if raw := c.String("signed-message"); raw != "" {
		signed := &intentSigner.SignedPersonalMessage{}
		if err := json.Unmarshal([]byte(raw), signed); err != nil {
			return nil, fmt.Errorf("invalid signed message: %w", err)
		}
		return signed, nil
	}

	for _, name := range []string{"message", "signature", "address"} {
		if !c.IsSet(name) {
			return nil, fmt.Errorf("--%s is required without --signed-message", name)
		}
	}
	message, err := messageBytes(c)
	if err != nil {
		return nil, err
	}
	sig, err := crypto.ParseSignature(c.String("signature"))
	if err != nil {
		return nil, err
	}
	address, err := crypto.ParseAddress(c.String("address"))
	if err != nil {
		return nil, err
	}
	return &intentSigner.SignedPersonalMessage{
		Message:   message,
		Address:   address,
		Signature: sig,
	}, nil
}

func proofOfPossessionCommand(c *cli.Context) error {
	cfg := &config.SignerConfig{
		ChainName:  intent.ChainName(c.String("chain")),
		KeyScheme:  config.KeySchemeBLS12381,
		PrivateKey: c.String("private-key"),
		Verbose:    c.Bool("verbose"),
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid signer configuration: %w", err)
	}
	address, err := crypto.ParseAddress(c.String("address"))
	if err != nil {
		return err
	}

	l, err := newLogger(c)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	key, err := cfg.PrivateKeyBytes()
	if err != nil {
		return err
	}
	signer, err := inMemoryIntentSigner.NewAuthorityInMemorySigner(key, cfg.ChainId, l)
	if err != nil {
		return err
	}

	pop := signer.ProofOfPossession(address)
	fmt.Fprintf(c.App.Writer, "Public key: %s\n", signer.PublicKey().Hex())
	fmt.Fprintf(c.App.Writer, "Proof of possession: %s\n", pop.Hex())
	return nil
}
