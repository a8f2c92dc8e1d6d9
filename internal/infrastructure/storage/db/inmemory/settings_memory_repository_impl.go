package inmemory

import (
	"context"

	"github.com/cryptilo/cryptilo-daemon/internal/core/domain"
)

type settingsRepositoryImpl struct {
	db *dbManager
}

// NewSettingsRepositoryImpl initialize an in-memory implementation of the
// domain.SettingsRepository
func NewSettingsRepositoryImpl(db *dbManager) domain.SettingsRepository {
	return settingsRepositoryImpl{db}
}

func (r settingsRepositoryImpl) GetSettings(
	ctx context.Context,
) (*domain.Settings, error) {
	r.db.lock.RLock()
	defer r.db.lock.RUnlock()

	if r.db.settingsStore == nil {
		return nil, domain.ErrSettingsNotFound
	}
	settings := *r.db.settingsStore
	return &settings, nil
}

func (r settingsRepositoryImpl) UpdateSettings(
	ctx context.Context, settings domain.Settings,
) error {
	r.db.lock.Lock()
	defer r.db.lock.Unlock()

	r.db.settingsStore = &settings
	return nil
}
