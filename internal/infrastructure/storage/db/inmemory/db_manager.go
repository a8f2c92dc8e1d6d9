package inmemory

import (
	"sync"

	"github.com/cryptilo/cryptilo-daemon/internal/core/domain"
	"github.com/cryptilo/cryptilo-daemon/internal/core/ports"
)

// dbManager holds the in-memory stores shared by the repositories.
type dbManager struct {
	userStore     map[string]domain.User
	settingsStore *domain.Settings
	lock          *sync.RWMutex
}

type repoManager struct {
	db *dbManager

	userRepository     domain.UserRepository
	settingsRepository domain.SettingsRepository
}

// NewRepoManager returns repositories backed by plain process memory. Nothing
// survives a restart, they serve tests and dry runs.
func NewRepoManager() ports.RepoManager {
	db := &dbManager{
		userStore: map[string]domain.User{},
		lock:      &sync.RWMutex{},
	}

	return &repoManager{
		db:                 db,
		userRepository:     NewUserRepositoryImpl(db),
		settingsRepository: NewSettingsRepositoryImpl(db),
	}
}

func (d *repoManager) UserRepository() domain.UserRepository {
	return d.userRepository
}

func (d *repoManager) SettingsRepository() domain.SettingsRepository {
	return d.settingsRepository
}

func (d *repoManager) Close() {}
