package ports

import (
	"github.com/cryptilo/cryptilo-daemon/internal/core/domain"
)

// RepoManager gives access to all the repositories of the storage backend in
// use and manages its lifecycle.
type RepoManager interface {
	UserRepository() domain.UserRepository
	SettingsRepository() domain.SettingsRepository

	Close()
}
