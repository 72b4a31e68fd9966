package service

import (
	"errors"
	"sync"

	"toeickilla/internal/dictionary"
	"toeickilla/internal/domain"

	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when a word is in neither language of the dictionary
	ErrNotFound = errors.New("word is not in dictionary")
	// ErrEmptyWord is returned when a word or its translation is empty
	ErrEmptyWord = errors.New("word and translation cannot be empty")
)

// DictionaryService exposes the dictionary operations used by the shells.
// One mutex guards the whole tree.
type DictionaryService struct {
	mu     sync.Mutex
	tree   *dictionary.Tree
	logger *zap.Logger
}

// NewDictionaryService creates a new dictionary service
func NewDictionaryService(tree *dictionary.Tree, logger *zap.Logger) *DictionaryService {
	return &DictionaryService{
		tree:   tree,
		logger: logger,
	}
}

// LoadDictionary inserts the entries of a dictionary file.
// Entries read before a failure stay loaded.
func (s *DictionaryService) LoadDictionary(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats, err := s.tree.LoadFile(path)
	if err != nil {
		s.logger.Error("Failed to load dictionary",
			zap.String("path", path),
			zap.Int("inserted", stats.Inserted),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("Dictionary loaded",
		zap.String("path", path),
		zap.Int("lines", stats.Lines),
		zap.Int("inserted", stats.Inserted),
		zap.Int("skipped", stats.Skipped),
	)
	return nil
}

// ReloadDictionary replaces the entries with the contents of a dictionary file.
// On failure the current entries are kept.
func (s *DictionaryService) ReloadDictionary(path string) error {
	tree := dictionary.New()
	stats, err := tree.LoadFile(path)
	if err != nil {
		s.logger.Error("Failed to reload dictionary",
			zap.String("path", path),
			zap.Int("inserted", stats.Inserted),
			zap.Error(err),
		)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree = tree

	s.logger.Info("Dictionary reloaded",
		zap.String("path", path),
		zap.Int("inserted", stats.Inserted),
		zap.Int("skipped", stats.Skipped),
	)
	return nil
}

// Translate returns the other language's word for word.
// Primary words are tried first, then secondary words.
func (s *DictionaryService) Translate(word string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if node := s.tree.SearchPrimary(word); node != nil {
		return node.Secondary(), nil
	}
	if node := s.tree.SearchSecondary(word); node != nil {
		return node.Primary(), nil
	}
	return "", ErrNotFound
}

// AddOrModify stores the pair, replacing an entry with the same primary word.
// Reports whether an existing entry was replaced.
func (s *DictionaryService) AddOrModify(primary, secondary string) (bool, error) {
	if primary == "" || secondary == "" {
		return false, ErrEmptyWord
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	modified := s.tree.SearchPrimary(primary) != nil
	if modified {
		s.tree.Delete(primary)
	}
	s.tree.Insert(primary, secondary)

	s.logger.Info("Entry stored",
		zap.String("primary", primary),
		zap.String("secondary", secondary),
		zap.Bool("modified", modified),
	)
	return modified, nil
}

// DeleteEntry removes the entry for a primary word
func (s *DictionaryService) DeleteEntry(primary string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tree.SearchPrimary(primary) == nil {
		return ErrNotFound
	}
	s.tree.Delete(primary)

	s.logger.Info("Entry deleted", zap.String("primary", primary))
	return nil
}

// SaveDictionary writes all entries to path in sorted order
func (s *DictionaryService) SaveDictionary(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tree.SaveFile(path); err != nil {
		s.logger.Error("Failed to save dictionary", zap.String("path", path), zap.Error(err))
		return err
	}

	s.logger.Info("Dictionary saved", zap.String("path", path), zap.Int("entries", s.tree.Len()))
	return nil
}

// Entries returns all entries in sorted order
func (s *DictionaryService) Entries() []domain.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Entries()
}

// Len returns the number of entries
func (s *DictionaryService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Len()
}

// Replace rebuilds the dictionary by inserting entries in the given order
func (s *DictionaryService) Replace(entries []domain.Entry) {
	tree := dictionary.New()
	for _, e := range entries {
		tree.Insert(e.Primary, e.Secondary)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree = tree
}
