package postgres

import (
	"database/sql"
	"fmt"

	"toeickilla/internal/domain"
)

// EntryRepo implements repository.EntryRepository
type EntryRepo struct {
	db *sql.DB
}

// NewEntryRepo creates a new entry repository
func NewEntryRepo(db *sql.DB) *EntryRepo {
	return &EntryRepo{db: db}
}

// ReplaceEntries swaps the stored snapshot for the given entries.
// Positions keep the order entries were passed in.
func (r *EntryRepo) ReplaceEntries(entries []domain.Entry) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin snapshot: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}

	query := `
		INSERT INTO entries (position, primary_word, secondary_word)
		VALUES ($1, $2, $3)
	`
	for i, e := range entries {
		if _, err := tx.Exec(query, i, e.Primary, e.Secondary); err != nil {
			return fmt.Errorf("failed to store entry %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// ListEntries returns the stored snapshot in position order
func (r *EntryRepo) ListEntries() ([]domain.Entry, error) {
	query := `
		SELECT primary_word, secondary_word
		FROM entries
		ORDER BY position
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.Primary, &e.Secondary); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// CountEntries returns the number of stored entries
func (r *EntryRepo) CountEntries() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&count)
	return count, err
}
