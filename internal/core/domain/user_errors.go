package domain

import "errors"

var (
	// ErrUserNotFound ...
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists ...
	ErrUserAlreadyExists = errors.New("user with given username already exists")
	// ErrNullUsername ...
	ErrNullUsername = errors.New("username must not be null")
	// ErrNullPassword ...
	ErrNullPassword = errors.New("password must not be null")
	// ErrInvalidPassword is thrown when the given password does not match the
	// one the account was registered with
	ErrInvalidPassword = errors.New("password is not valid")
	// ErrWalletNotFound ...
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrInvalidWalletName ...
	ErrInvalidWalletName = errors.New("wallet name must not be null")
	// ErrPrimaryWalletImmutable is thrown when trying to remove the wallet
	// created at registration
	ErrPrimaryWalletImmutable = errors.New("primary wallet cannot be removed")
	// ErrWalletDecryption is thrown when a stored signing key cannot be
	// decrypted or decodes to garbage
	ErrWalletDecryption = errors.New("stored signing key could not be decrypted")
	// ErrMnemonicNotStored ...
	ErrMnemonicNotStored = errors.New("no recovery phrase stored for user")
	// ErrSettingsNotFound ...
	ErrSettingsNotFound = errors.New("settings not found")
	// ErrUnknownNetwork ...
	ErrUnknownNetwork = errors.New("unknown network")
)
