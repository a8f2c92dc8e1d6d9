package application

import (
	"context"
	"time"

	"github.com/cryptilo/cryptilo-daemon/internal/core/domain"
	"github.com/cryptilo/cryptilo-daemon/pkg/ledger"
)

// LedgerFactory returns a ledger client for the given network. Injected so
// services never hardcode an endpoint and tests can plug fakes in.
type LedgerFactory func(network domain.Network) (ledger.Service, error)

// WalletInfo is the public view of a wallet record, everything but the
// encrypted signing key.
type WalletInfo struct {
	Index     uint32
	Name      string
	Address   string
	CreatedAt time.Time
}

func walletInfoFromRecord(record *domain.WalletRecord) WalletInfo {
	return WalletInfo{
		Index:     record.Index,
		Name:      record.Name,
		Address:   record.PublicKey,
		CreatedAt: record.CreatedAt,
	}
}

// activeNetwork resolves the network to talk to from the persisted settings,
// defaulting to devnet when none has been chosen yet.
func activeNetwork(
	ctx context.Context, settingsRepository domain.SettingsRepository,
) (domain.Network, error) {
	settings, err := settingsRepository.GetSettings(ctx)
	if err != nil {
		if err == domain.ErrSettingsNotFound {
			return domain.NetworkDevnet, nil
		}
		return "", err
	}
	return settings.Network, nil
}
