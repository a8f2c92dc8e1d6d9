package wallet

import (
	"errors"
	"strings"
)

var (
	// ErrNullMnemonic ...
	ErrNullMnemonic = errors.New("mnemonic is null")
	// ErrNullSeed ...
	ErrNullSeed = errors.New("seed is null")
	// ErrNullPassphrase ...
	ErrNullPassphrase = errors.New("passphrase must not be null")
	// ErrNullPlainText ...
	ErrNullPlainText = errors.New("text to encrypt must not be null")
	// ErrNullCypherText ...
	ErrNullCypherText = errors.New("cypher to decrypt must not be null")
	// ErrNullDerivationPath ...
	ErrNullDerivationPath = errors.New("derivation path must not be null")
	// ErrNullRecentBlockhash ...
	ErrNullRecentBlockhash = errors.New("recent blockhash must not be null")
	// ErrNullTransaction ...
	ErrNullTransaction = errors.New("transaction must not be null")

	// ErrInvalidMnemonic ...
	ErrInvalidMnemonic = errors.New("mnemonic is invalid")
	// ErrInvalidEntropySize ...
	ErrInvalidEntropySize = errors.New(
		"entropy size must be a multiple of 32 in the range [128,256]",
	)
	// ErrInvalidCypherText ...
	ErrInvalidCypherText = errors.New("cypher must be in base64 format")
	// ErrInvalidPassphrase is returned when a cyphertext does not open with
	// the provided passphrase. The ciphertext is authenticated, so a wrong
	// passphrase can never yield a silently wrong plaintext.
	ErrInvalidPassphrase = errors.New("invalid passphrase or corrupted cypher")
	// ErrInvalidDerivationPath ...
	ErrInvalidDerivationPath = errors.New("invalid derivation path")
	// ErrMalformedDerivationPath ...
	ErrMalformedDerivationPath = errors.New(
		"path must not start or end with a '/' and " +
			"can optionally start with 'm/' for absolute paths",
	)
	// ErrNotHardenedDerivationPath is returned when any level of an ed25519
	// derivation path is not hardened. The curve admits hardened child key
	// derivation only.
	ErrNotHardenedDerivationPath = errors.New(
		"every level of an ed25519 derivation path must be hardened (suffix \"'\")",
	)
	// ErrOutOfRangeDerivationPathAccount ...
	ErrOutOfRangeDerivationPathAccount = errors.New(
		"account index must be in hardened range [0, 2^31)",
	)
	// ErrInvalidAddress ...
	ErrInvalidAddress = errors.New("address must be a base58 encoded 32-byte public key")
	// ErrInvalidSecretKey ...
	ErrInvalidSecretKey = errors.New("secret key must be a base58 encoded 64-byte expanded key")
	// ErrInvalidRecentBlockhash ...
	ErrInvalidRecentBlockhash = errors.New("recent blockhash must be a base58 encoded 32-byte value")
	// ErrZeroTransferAmount ...
	ErrZeroTransferAmount = errors.New("transfer amount must not be zero")
	// ErrUnknownSigner is returned when trying to sign a transaction with a
	// key that is not listed among the message's required signers.
	ErrUnknownSigner = errors.New("signing key is not a required signer of the transaction")
	// ErrMissingSignature ...
	ErrMissingSignature = errors.New("transaction is missing one or more signatures")
)

// Wallet holds the mnemonic and the seed of a hierarchical deterministic
// wallet and allows to derive the signing key pair of any of its accounts.
type Wallet struct {
	mnemonic string
	seed     []byte
}

// NewWalletOpts is the struct given to the NewWallet method
type NewWalletOpts struct {
	EntropySize int
}

func (o NewWalletOpts) validate() error {
	if o.EntropySize < 128 || o.EntropySize > 256 || o.EntropySize%32 != 0 {
		return ErrInvalidEntropySize
	}
	return nil
}

// NewWallet creates a new wallet with a freshly generated mnemonic
func NewWallet(opts NewWalletOpts) (*Wallet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	mnemonic, err := generateMnemonic(opts.EntropySize)
	if err != nil {
		return nil, err
	}

	return &Wallet{
		mnemonic: mnemonic,
		seed:     generateSeedFromMnemonic(mnemonic, ""),
	}, nil
}

// NewWalletFromMnemonicOpts is the struct given to the NewWalletFromMnemonic method
type NewWalletFromMnemonicOpts struct {
	Mnemonic string
	// Passphrase is the optional BIP39 passphrase, not the encryption password.
	Passphrase string
}

func (o NewWalletFromMnemonicOpts) validate() error {
	if len(strings.TrimSpace(o.Mnemonic)) <= 0 {
		return ErrNullMnemonic
	}
	if !isMnemonicValid(o.Mnemonic) {
		return ErrInvalidMnemonic
	}
	return nil
}

// NewWalletFromMnemonic restores a wallet from an existing mnemonic. The
// mnemonic is validated against the wordlist and its checksum.
func NewWalletFromMnemonic(opts NewWalletFromMnemonicOpts) (*Wallet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Wallet{
		mnemonic: opts.Mnemonic,
		seed:     generateSeedFromMnemonic(opts.Mnemonic, opts.Passphrase),
	}, nil
}

func (w *Wallet) validate() error {
	if len(w.mnemonic) <= 0 {
		return ErrNullMnemonic
	}
	if !isMnemonicValid(w.mnemonic) {
		return ErrInvalidMnemonic
	}
	if len(w.seed) <= 0 {
		return ErrNullSeed
	}
	return nil
}

// Mnemonic is the getter for the wallet's mnemonic
func (w *Wallet) Mnemonic() (string, error) {
	if err := w.validate(); err != nil {
		return "", err
	}
	return w.mnemonic, nil
}

// Zero wipes the wallet's seed. The wallet is unusable afterwards.
func (w *Wallet) Zero() {
	zeroBytes(w.seed)
	w.seed = nil
	w.mnemonic = ""
}
