package service

import (
	"errors"
	"fmt"

	"toeickilla/internal/repository"

	"go.uber.org/zap"
)

// SnapshotService copies the dictionary to and from the database
type SnapshotService struct {
	dict      *DictionaryService
	entryRepo repository.EntryRepository
	logger    *zap.Logger
}

// NewSnapshotService creates a new snapshot service
func NewSnapshotService(dict *DictionaryService, entryRepo repository.EntryRepository, logger *zap.Logger) *SnapshotService {
	return &SnapshotService{
		dict:      dict,
		entryRepo: entryRepo,
		logger:    logger,
	}
}

// Backup replaces the stored snapshot with the current entries
func (s *SnapshotService) Backup() error {
	entries := s.dict.Entries()

	if err := s.entryRepo.ReplaceEntries(entries); err != nil {
		s.logger.Error("Failed to back up dictionary", zap.Error(err))
		return err
	}

	s.logger.Info("Dictionary backed up", zap.Int("entries", len(entries)))
	return nil
}

// Restore rebuilds the dictionary from the stored snapshot.
// An empty snapshot leaves the dictionary untouched.
func (s *SnapshotService) Restore() (int, error) {
	count, err := s.entryRepo.CountEntries()
	if err != nil {
		s.logger.Error("Failed to count snapshot entries", zap.Error(err))
		return 0, err
	}
	if count == 0 {
		s.logger.Info("Snapshot is empty, nothing to restore")
		return 0, nil
	}

	entries, err := s.entryRepo.ListEntries()
	if err != nil {
		s.logger.Error("Failed to read snapshot", zap.Error(err))
		return 0, err
	}

	s.dict.Replace(entries)
	s.logger.Info("Dictionary restored from snapshot", zap.Int("entries", len(entries)))
	return len(entries), nil
}

// Autosave writes the dictionary file and then the database snapshot.
// Both are attempted even if the first one fails.
func (s *SnapshotService) Autosave(path string) error {
	var errs []error

	if err := s.dict.SaveDictionary(path); err != nil {
		errs = append(errs, fmt.Errorf("file: %w", err))
	}
	if err := s.Backup(); err != nil {
		errs = append(errs, fmt.Errorf("snapshot: %w", err))
	}

	return errors.Join(errs...)
}
