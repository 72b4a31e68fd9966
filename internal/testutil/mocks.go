package testutil

import (
	"toeickilla/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockEntryRepository is a mock for EntryRepository
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) ReplaceEntries(entries []domain.Entry) error {
	args := m.Called(entries)
	return args.Error(0)
}

func (m *MockEntryRepository) ListEntries() ([]domain.Entry, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) CountEntries() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}
