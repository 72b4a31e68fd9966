package dictionary

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"toeickilla/internal/domain"
)

// LoadStats describes what a load did with the input lines
type LoadStats struct {
	Lines    int
	Inserted int
	Skipped  int
}

// Load inserts every "primary,secondary" line read from r.
// Lines that do not split into exactly two fields are skipped.
// On error the entries inserted so far stay in the tree.
func (t *Tree) Load(r io.Reader) (LoadStats, error) {
	var stats LoadStats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	scanner.Split(scanLines)

	for scanner.Scan() {
		stats.Lines++
		line := scanner.Text()
		if !utf8.ValidString(line) {
			return stats, fmt.Errorf("line %d: %w", stats.Lines, ErrDecode)
		}

		primary, secondary, ok := parseLine(line)
		if !ok {
			stats.Skipped++
			continue
		}
		t.Insert(primary, secondary)
		stats.Inserted++
	}

	if err := scanner.Err(); err != nil {
		return stats, err
	}
	return stats, nil
}

// scanLines is a bufio.SplitFunc that ends lines at "\n", "\r\n" or a lone "\r"
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// "\r" at the end of the buffer may be the first half of "\r\n"
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// parseLine splits a trimmed line on every comma and accepts exactly two fields
func parseLine(line string) (string, string, bool) {
	parts := strings.Split(strings.TrimSpace(line), ",")
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

// LoadFile reads a dictionary file into the tree
func (t *Tree) LoadFile(path string) (LoadStats, error) {
	file, err := os.Open(path)
	if err != nil {
		return LoadStats{}, &IOError{Op: "load", Path: path, Err: err}
	}
	defer file.Close()

	stats, err := t.Load(file)
	if err != nil {
		return stats, &IOError{Op: "load", Path: path, Err: err}
	}
	return stats, nil
}

// Save writes one "primary,secondary" line per entry in order
func (t *Tree) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)

	var err error
	t.Walk(func(e domain.Entry) bool {
		_, err = bw.WriteString(e.Line() + "\n")
		return err == nil
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

// SaveFile overwrites path with the in-order dump of the tree
func (t *Tree) SaveFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}

	if err := t.Save(file); err != nil {
		file.Close()
		return &IOError{Op: "save", Path: path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	return nil
}
