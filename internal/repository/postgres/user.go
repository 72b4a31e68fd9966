package postgres

import (
	"database/sql"
	"errors"
	"fmt"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// IsAuthorized checks if operator may edit the dictionary
func (r *UserRepo) IsAuthorized(userID int64) (bool, error) {
	var authorized bool
	err := r.db.QueryRow(`SELECT authorized FROM users WHERE user_id = $1`, userID).Scan(&authorized)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check user %d: %w", userID, err)
	}
	return authorized, nil
}

// AuthorizeUser marks operator as authorized, creating the row if needed
func (r *UserRepo) AuthorizeUser(userID int64) error {
	return r.upsert(userID, `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, TRUE)
		ON CONFLICT (user_id)
		DO UPDATE SET authorized = TRUE
	`)
}

// EnsureUserExists creates an unauthorized row for a new operator
func (r *UserRepo) EnsureUserExists(userID int64) error {
	return r.upsert(userID, `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, FALSE)
		ON CONFLICT (user_id) DO NOTHING
	`)
}

func (r *UserRepo) upsert(userID int64, query string) error {
	if _, err := r.db.Exec(query, userID); err != nil {
		return fmt.Errorf("failed to store user %d: %w", userID, err)
	}
	return nil
}
