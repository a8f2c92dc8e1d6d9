package domain

import (
	"crypto/ed25519"
	"crypto/subtle"
	"strings"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/cryptilo/cryptilo-daemon/pkg/wallet"
)

// IsValidPassword returns whether the given password matches the one the
// user registered with. The comparison is constant time.
func (u *User) IsValidPassword(password string) bool {
	hash := btcutil.Hash160([]byte(password))
	return subtle.ConstantTimeCompare(u.PasswordHash, hash) == 1
}

// Mnemonic decrypts and returns the user's recovery phrase. The password is
// verified again even if the caller already did, this getter reveals the
// master secret.
func (u *User) Mnemonic(password string) (string, error) {
	if !u.IsValidPassword(password) {
		return "", ErrInvalidPassword
	}
	if len(u.EncryptedMnemonic) <= 0 {
		return "", ErrMnemonicNotStored
	}
	return wallet.Decrypt(wallet.DecryptOpts{
		CypherText: u.EncryptedMnemonic,
		Passphrase: password,
	})
}

// AddWallet derives a new wallet at the user's next free derivation account
// and appends it to the registry. The password both gates the operation and
// opens the stored recovery phrase the new key is derived from.
func (u *User) AddWallet(name, password string) (*WalletRecord, error) {
	if err := validateWalletName(name); err != nil {
		return nil, err
	}
	mnemonic, err := u.Mnemonic(password)
	if err != nil {
		return nil, err
	}

	w, err := wallet.NewWalletFromMnemonic(wallet.NewWalletFromMnemonicOpts{
		Mnemonic: mnemonic,
	})
	if err != nil {
		return nil, err
	}
	defer w.Zero()

	record, err := newWalletRecord(w, u.NextWalletIndex, strings.TrimSpace(name), password)
	if err != nil {
		return nil, err
	}

	u.Wallets = append(u.Wallets, *record)
	u.NextWalletIndex++
	return record, nil
}

// GetWallet returns the wallet with the given derivation index.
func (u *User) GetWallet(index uint32) (*WalletRecord, error) {
	for i := range u.Wallets {
		if u.Wallets[i].Index == index {
			return &u.Wallets[i], nil
		}
	}
	return nil, ErrWalletNotFound
}

// RenameWallet changes the display name of the wallet with the given index.
func (u *User) RenameWallet(index uint32, name string) error {
	if err := validateWalletName(name); err != nil {
		return err
	}
	record, err := u.GetWallet(index)
	if err != nil {
		return err
	}
	record.Name = strings.TrimSpace(name)
	return nil
}

// RemoveWallet drops the wallet with the given index from the registry. The
// primary wallet is not removable and remaining wallets keep their indices.
func (u *User) RemoveWallet(index uint32) error {
	if index == 0 {
		return ErrPrimaryWalletImmutable
	}
	for i := range u.Wallets {
		if u.Wallets[i].Index == index {
			u.Wallets = append(u.Wallets[:i], u.Wallets[i+1:]...)
			return nil
		}
	}
	return ErrWalletNotFound
}

// DecryptKey opens the wallet's stored signing key with the given password
// and checks it against the recorded public key before handing it out.
func (r *WalletRecord) DecryptKey(password string) (ed25519.PrivateKey, error) {
	encoded, err := wallet.Decrypt(wallet.DecryptOpts{
		CypherText: r.EncryptedKey,
		Passphrase: password,
	})
	if err != nil {
		return nil, ErrWalletDecryption
	}
	secretKey, err := wallet.DecodeSecretKey(encoded)
	if err != nil {
		return nil, ErrWalletDecryption
	}

	publicKey := secretKey.Public().(ed25519.PublicKey)
	if wallet.EncodeAddress(publicKey) != r.PublicKey {
		return nil, ErrWalletDecryption
	}
	return secretKey, nil
}

// The literal "null" is rejected besides the empty string since it is the
// classic artifact of a client serializing a missing value.
func validateWalletName(name string) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) <= 0 || strings.EqualFold(trimmed, "null") {
		return ErrInvalidWalletName
	}
	return nil
}
