// Package store holds the persistence boundary of the user/report database
// and the current-user session pointer. Both are explicit injected objects so
// endpoints stay testable against in-memory implementations.
package store

import (
	"errors"

	"github.com/Xwdgood/Virtual-GP/model"
)

// ErrUserNotFound is returned when no record exists for an email. A stored
// record that cannot be parsed is reported the same way: corrupt data is
// treated as missing, not surfaced as a distinct failure.
var ErrUserNotFound = errors.New("user not found")

// UserStore persists UserData keyed by email. Writes are full replaces of the
// keyed record; there is no partial update and no cross-record transaction
// discipline, so concurrent writers of the same email race on
// last-write-wins.
type UserStore interface {
	GetUser(email string) (*model.UserData, error)
	SaveUser(user model.UserData) error
	AllUsers() ([]model.UserData, error)
}

// SessionStore tracks which email is currently "logged in". Clearing it on
// logout leaves all user data in place.
type SessionStore interface {
	SetCurrent(email string) error
	Current() (string, error)
	Clear() error
}
