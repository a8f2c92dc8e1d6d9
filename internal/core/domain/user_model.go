package domain

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/cryptilo/cryptilo-daemon/pkg/wallet"
)

// PrimaryWalletName is the name given to the wallet created at registration.
const PrimaryWalletName = "Main Wallet"

// User is the aggregate owning everything derived from one recovery phrase:
// the password gate, the encrypted phrase itself and the list of derived
// wallets. Nothing secret is ever stored in plain text.
type User struct {
	Username          string
	PasswordHash      []byte
	EncryptedMnemonic string
	// NextWalletIndex is the derivation account the next wallet will be
	// created at. It only ever grows, so removed wallets never get their
	// index reassigned.
	NextWalletIndex uint32
	Wallets         []WalletRecord
	CreatedAt       time.Time
}

// WalletRecord is a single derived wallet of a user. The signing key is
// stored base58-encoded and encrypted under the user's password.
type WalletRecord struct {
	Index        uint32
	Name         string
	PublicKey    string
	EncryptedKey string
	CreatedAt    time.Time
}

// NewUser registers a new user: it hashes the password, encrypts the recovery
// phrase under it and creates the primary wallet at derivation account 0.
func NewUser(username, mnemonic, password string) (*User, error) {
	if len(username) <= 0 {
		return nil, ErrNullUsername
	}
	if len(password) <= 0 {
		return nil, ErrNullPassword
	}

	w, err := wallet.NewWalletFromMnemonic(wallet.NewWalletFromMnemonicOpts{
		Mnemonic: mnemonic,
	})
	if err != nil {
		return nil, err
	}
	defer w.Zero()

	encryptedMnemonic, err := wallet.Encrypt(wallet.EncryptOpts{
		PlainText:  mnemonic,
		Passphrase: password,
	})
	if err != nil {
		return nil, err
	}

	primary, err := newWalletRecord(w, 0, PrimaryWalletName, password)
	if err != nil {
		return nil, err
	}

	return &User{
		Username:          username,
		PasswordHash:      btcutil.Hash160([]byte(password)),
		EncryptedMnemonic: encryptedMnemonic,
		NextWalletIndex:   1,
		Wallets:           []WalletRecord{*primary},
		CreatedAt:         time.Now(),
	}, nil
}

func newWalletRecord(w *wallet.Wallet, index uint32, name, password string) (*WalletRecord, error) {
	keyPair, err := w.DeriveSigningKeyPair(wallet.DeriveSigningKeyPairOpts{
		Account: index,
	})
	if err != nil {
		return nil, err
	}
	defer keyPair.Zero()

	encryptedKey, err := wallet.Encrypt(wallet.EncryptOpts{
		PlainText:  keyPair.EncodeSecretKey(),
		Passphrase: password,
	})
	if err != nil {
		return nil, err
	}

	return &WalletRecord{
		Index:        index,
		Name:         name,
		PublicKey:    keyPair.Address(),
		EncryptedKey: encryptedKey,
		CreatedAt:    time.Now(),
	}, nil
}
