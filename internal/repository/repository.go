package repository

import (
	"toeickilla/internal/domain"
)

// UserRepository defines bot operator data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) error
}

// EntryRepository stores full dictionary snapshots
type EntryRepository interface {
	ReplaceEntries(entries []domain.Entry) error
	ListEntries() ([]domain.Entry, error)
	CountEntries() (int, error)
}
