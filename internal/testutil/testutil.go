package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"toeickilla/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestEntry creates a test entry
func NewTestEntry(primary, secondary string) domain.Entry {
	return domain.Entry{
		Primary:   primary,
		Secondary: secondary,
	}
}

// WriteLines writes a dictionary file into a temp dir and returns its path
func WriteLines(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dictionary.txt")
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write dictionary file: %v", err)
	}
	return path
}
