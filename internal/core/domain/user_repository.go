package domain

import "context"

// UserRepository is the abstraction for any kind of database intended to
// persist Users.
type UserRepository interface {
	// AddUser adds a new user to the repository, failing if the username is
	// already taken.
	AddUser(ctx context.Context, user *User) error
	// GetUser returns the user with the given username.
	GetUser(ctx context.Context, username string) (*User, error)
	// UpdateUser updates the state of a user. The closure function lets to
	// commit multiple changes to a certain user in a transactional way.
	UpdateUser(
		ctx context.Context,
		username string, updateFn func(u *User) (*User, error),
	) error
}
