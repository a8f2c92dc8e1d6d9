package dbbadger

import (
	"context"

	"github.com/timshannon/badgerhold/v4"

	"github.com/cryptilo/cryptilo-daemon/internal/core/domain"
)

const settingsKey = "settings"

type settingsRepositoryImpl struct {
	store *badgerhold.Store
}

// NewSettingsRepositoryImpl initialize a badger implementation of the
// domain.SettingsRepository
func NewSettingsRepositoryImpl(store *badgerhold.Store) domain.SettingsRepository {
	return settingsRepositoryImpl{store}
}

func (r settingsRepositoryImpl) GetSettings(
	ctx context.Context,
) (*domain.Settings, error) {
	var settings domain.Settings
	if err := r.store.Get(settingsKey, &settings); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, err
	}
	return &settings, nil
}

func (r settingsRepositoryImpl) UpdateSettings(
	ctx context.Context, settings domain.Settings,
) error {
	return r.store.Upsert(settingsKey, settings)
}
