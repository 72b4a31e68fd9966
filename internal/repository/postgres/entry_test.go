package postgres

import (
	"fmt"
	"testing"

	"toeickilla/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestEntryRepo_ReplaceEntries(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewEntryRepo(db)

	entries := []domain.Entry{
		{Primary: "apple", Secondary: "pomme"},
		{Primary: "cat", Secondary: "chat"},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM entries").
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec("INSERT INTO entries").
		WithArgs(0, "apple", "pomme").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO entries").
		WithArgs(1, "cat", "chat").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err = repo.ReplaceEntries(entries)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepo_ReplaceEntries_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewEntryRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM entries").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err = repo.ReplaceEntries(nil)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepo_ReplaceEntries_InsertErrorRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewEntryRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM entries").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO entries").
		WithArgs(0, "cat", "chat").
		WillReturnError(fmt.Errorf("insert error"))
	mock.ExpectRollback()

	err = repo.ReplaceEntries([]domain.Entry{{Primary: "cat", Secondary: "chat"}})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "insert error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepo_ReplaceEntries_BeginError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewEntryRepo(db)

	mock.ExpectBegin().WillReturnError(fmt.Errorf("no connection"))

	err = repo.ReplaceEntries([]domain.Entry{{Primary: "cat", Secondary: "chat"}})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepo_ListEntries(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewEntryRepo(db)

	rows := sqlmock.NewRows([]string{"primary_word", "secondary_word"}).
		AddRow("apple", "pomme").
		AddRow("cat", "chat")

	mock.ExpectQuery("SELECT primary_word, secondary_word FROM entries ORDER BY position").
		WillReturnRows(rows)

	entries, err := repo.ListEntries()

	assert.NoError(t, err)
	assert.Equal(t, []domain.Entry{
		{Primary: "apple", Secondary: "pomme"},
		{Primary: "cat", Secondary: "chat"},
	}, entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepo_ListEntries_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewEntryRepo(db)

	mock.ExpectQuery("SELECT primary_word, secondary_word FROM entries").
		WillReturnError(fmt.Errorf("query error"))

	entries, err := repo.ListEntries()

	assert.Error(t, err)
	assert.Nil(t, entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepo_ListEntries_RowError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewEntryRepo(db)

	rows := sqlmock.NewRows([]string{"primary_word", "secondary_word"}).
		AddRow("apple", "pomme").
		AddRow("cat", "chat").
		RowError(1, fmt.Errorf("row error"))

	mock.ExpectQuery("SELECT primary_word, secondary_word FROM entries").
		WillReturnRows(rows)

	_, err = repo.ListEntries()

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntryRepo_CountEntries(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewEntryRepo(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM entries").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.CountEntries()

	assert.NoError(t, err)
	assert.Equal(t, 42, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
