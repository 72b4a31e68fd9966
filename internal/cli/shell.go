package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"toeickilla/internal/dictionary"
	"toeickilla/internal/service"

	"go.uber.org/zap"
)

const shellMenu = `
1) Load  2) Translate  3) Add / Modify  4) Delete  5) Save  0) Quit
> `

// shell is a line-oriented menu over an in-memory dictionary.
// It starts empty; Load inserts the file entries into it.
type shell struct {
	in   *bufio.Scanner
	out  io.Writer
	path string
	dict *service.DictionaryService
}

func newShell(in io.Reader, out io.Writer, path string, logger *zap.Logger) *shell {
	return &shell{
		in:   bufio.NewScanner(in),
		out:  out,
		path: path,
		dict: service.NewDictionaryService(dictionary.New(), logger),
	}
}

// run reads menu choices until quit or end of input
func (s *shell) run() error {
	for {
		choice, ok := s.ask(shellMenu)
		if !ok {
			return s.in.Err()
		}

		switch choice {
		case "1":
			s.load()
		case "2":
			s.translate()
		case "3":
			s.addOrModify()
		case "4":
			s.delete()
		case "5":
			s.save()
		case "0", "q", "quit":
			return nil
		case "":
		default:
			fmt.Fprintf(s.out, "Unknown choice %q\n", choice)
		}
	}
}

// ask prints prompt and returns the next trimmed input line
func (s *shell) ask(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *shell) load() {
	if err := s.dict.LoadDictionary(s.path); err != nil {
		fmt.Fprintf(s.out, "Failed to load dictionary: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Dictionary loaded successfully!")
}

func (s *shell) translate() {
	word, ok := s.ask("Enter a word to translate: ")
	if !ok || word == "" {
		return
	}

	translation, err := s.dict.Translate(word)
	if errors.Is(err, service.ErrNotFound) {
		fmt.Fprintln(s.out, "Word is not in dictionary!")
		return
	}
	fmt.Fprintf(s.out, "Translation: %s\n", translation)
}

func (s *shell) addOrModify() {
	primary, ok := s.ask("Enter a word: ")
	if !ok {
		return
	}
	secondary, ok := s.ask("Enter its translation: ")
	if !ok {
		return
	}

	modified, err := s.dict.AddOrModify(primary, secondary)
	switch {
	case err != nil:
		fmt.Fprintln(s.out, "Word and translation cannot be empty.")
	case modified:
		fmt.Fprintln(s.out, "Entry modified successfully!")
	default:
		fmt.Fprintln(s.out, "Entry added successfully!")
	}
}

func (s *shell) delete() {
	word, ok := s.ask("Enter a word to delete: ")
	if !ok || word == "" {
		return
	}

	if err := s.dict.DeleteEntry(word); err != nil {
		fmt.Fprintln(s.out, "Word not found in dictionary!")
		return
	}
	fmt.Fprintln(s.out, "Entry deleted successfully!")
}

func (s *shell) save() {
	if err := s.dict.SaveDictionary(s.path); err != nil {
		fmt.Fprintf(s.out, "Failed to save dictionary: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Dictionary saved successfully!")
}
