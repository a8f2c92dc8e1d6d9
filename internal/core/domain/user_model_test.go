package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptilo/cryptilo-daemon/internal/core/domain"
	"github.com/cryptilo/cryptilo-daemon/pkg/wallet"
)

const (
	testMnemonic = "abandon abandon abandon abandon abandon abandon " +
		"abandon abandon abandon abandon abandon about"
	testPassword = "Sup3rS3cretPa$$"
)

func newTestUser(t *testing.T) *domain.User {
	t.Helper()
	user, err := domain.NewUser("satoshi", testMnemonic, testPassword)
	require.NoError(t, err)
	return user
}

func TestNewUser(t *testing.T) {
	t.Parallel()

	user := newTestUser(t)

	assert.Equal(t, "satoshi", user.Username)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotContains(t, user.EncryptedMnemonic, "abandon")
	assert.Equal(t, uint32(1), user.NextWalletIndex)

	require.Len(t, user.Wallets, 1)
	primary := user.Wallets[0]
	assert.Equal(t, uint32(0), primary.Index)
	assert.Equal(t, domain.PrimaryWalletName, primary.Name)
	assert.NotEmpty(t, primary.PublicKey)
	assert.NotEmpty(t, primary.EncryptedKey)

	assert.True(t, user.IsValidPassword(testPassword))
	assert.False(t, user.IsValidPassword("wrong password"))
}

func TestFailingNewUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		mnemonic string
		password string
		err      error
	}{
		{"null username", "", testMnemonic, testPassword, domain.ErrNullUsername},
		{"null password", "satoshi", testMnemonic, "", domain.ErrNullPassword},
		{"null mnemonic", "satoshi", "", testPassword, wallet.ErrNullMnemonic},
		{
			"invalid mnemonic", "satoshi",
			"these twelve words have never been part of any known wordlist at all",
			testPassword, wallet.ErrInvalidMnemonic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := domain.NewUser(tt.username, tt.mnemonic, tt.password)
			require.Nil(t, user)
			require.EqualError(t, err, tt.err.Error())
		})
	}
}

func TestUserMnemonic(t *testing.T) {
	t.Parallel()

	user := newTestUser(t)

	mnemonic, err := user.Mnemonic(testPassword)
	require.NoError(t, err)
	assert.Equal(t, testMnemonic, mnemonic)

	_, err = user.Mnemonic("wrong password")
	assert.Equal(t, domain.ErrInvalidPassword, err)
}
