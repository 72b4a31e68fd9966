package cli

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"toeickilla/internal/service"
	"toeickilla/internal/testutil"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRoot(t *testing.T) *cobra.Command {
	t.Helper()
	t.Cleanup(viper.Reset)
	return newRootCommand(&runner{flags: NewFlags(), logger: testutil.NewTestLogger()})
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newTestRoot(t)
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestCreateRootCommand(t *testing.T) {
	t.Cleanup(viper.Reset)
	cmd := CreateRootCommand(NewFlags())

	assert.Equal(t, "toeickilla", cmd.Use)
	assert.True(t, cmd.SilenceUsage)

	for _, name := range []string{"config", "dict", "verbose"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "flag %s", name)
	}
	assert.Equal(t, "dictionary.txt", cmd.PersistentFlags().Lookup("dict").DefValue)

	var subcommands []string
	for _, c := range cmd.Commands() {
		subcommands = append(subcommands, c.Name())
	}
	assert.ElementsMatch(t, []string{"translate", "add", "delete", "list", "shell"}, subcommands)
}

func TestTranslateCommand(t *testing.T) {
	path := testutil.WriteLines(t, "cat,chat", "dog,chien")

	tests := []struct {
		name        string
		word        string
		expected    string
		expectedErr error
	}{
		{name: "primary word", word: "cat", expected: "chat\n"},
		{name: "secondary word", word: "chien", expected: "dog\n"},
		{name: "unknown word", word: "bird", expectedErr: service.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", "--dict", path, "translate", tt.word)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, out)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestTranslateCommand_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := execute(t, "", "--dict", path, "translate", "cat")

	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestAddCommand(t *testing.T) {
	t.Run("missing file starts empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "new.txt")

		out, err := execute(t, "", "--dict", path, "add", "cat", "chat")

		require.NoError(t, err)
		assert.Equal(t, "Entry added: cat -> chat\n", out)
		assert.Equal(t, "cat,chat\n", readFile(t, path))
	})

	t.Run("existing primary is modified", func(t *testing.T) {
		path := testutil.WriteLines(t, "dog,chien", "cat,chatte")

		out, err := execute(t, "", "--dict", path, "add", "cat", "chat")

		require.NoError(t, err)
		assert.Equal(t, "Entry updated: cat -> chat\n", out)
		assert.Equal(t, "cat,chat\ndog,chien\n", readFile(t, path))
	})

	t.Run("wrong argument count", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "new.txt")

		_, err := execute(t, "", "--dict", path, "add", "cat")

		assert.Error(t, err)
		assert.NoFileExists(t, path)
	})
}

func TestDeleteCommand(t *testing.T) {
	tests := []struct {
		name         string
		word         string
		expectedErr  error
		expectedFile string
	}{
		{
			name:         "existing word",
			word:         "cat",
			expectedFile: "dog,chien\n",
		},
		{
			name:         "missing word leaves file alone",
			word:         "bird",
			expectedErr:  service.ErrNotFound,
			expectedFile: "cat,chat\ndog,chien\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteLines(t, "cat,chat", "dog,chien")

			out, err := execute(t, "", "--dict", path, "delete", tt.word)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Entry deleted: "+tt.word+"\n", out)
			}
			assert.Equal(t, tt.expectedFile, readFile(t, path))
		})
	}
}

func TestListCommand(t *testing.T) {
	path := testutil.WriteLines(t, "m,x", "c,y", "this line is skipped", "t,z")

	out, err := execute(t, "", "--dict", path, "list")

	require.NoError(t, err)
	assert.Equal(t, "c,y\nm,x\nt,z\n", out)
}

func TestDictionaryPath_FromConfigFile(t *testing.T) {
	dir := t.TempDir()
	dictPath := testutil.WriteLines(t, "cat,chat")
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("dictionary: \""+dictPath+"\"\n"), 0o644))

	cmd := newTestRoot(t)
	InitConfig(cfgPath)

	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"list"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "cat,chat\n", out.String())
}

func TestShellCommand(t *testing.T) {
	path := testutil.WriteLines(t, "cat,chat", "dog,chien")
	input := strings.Join([]string{
		"2", "cat", // nothing loaded yet
		"1",
		"2", "cat",
		"2", "chien",
		"3", "bird", "oiseau",
		"3", "cat", "chatte",
		"4", "dog",
		"4", "dog",
		"7",
		"5",
		"0",
	}, "\n") + "\n"

	out, err := execute(t, input, "--dict", path, "shell")

	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "Word is not in dictionary!"))
	assert.Contains(t, out, "Dictionary loaded successfully!")
	assert.Contains(t, out, "Translation: chat")
	assert.Contains(t, out, "Translation: dog")
	assert.Contains(t, out, "Entry added successfully!")
	assert.Contains(t, out, "Entry modified successfully!")
	assert.Contains(t, out, "Entry deleted successfully!")
	assert.Contains(t, out, "Word not found in dictionary!")
	assert.Contains(t, out, `Unknown choice "7"`)
	assert.Contains(t, out, "Dictionary saved successfully!")
	assert.Equal(t, "bird,oiseau\ncat,chatte\n", readFile(t, path))
}

func TestShellCommand_BlankWordsAreIgnored(t *testing.T) {
	path := testutil.WriteLines(t, ",orphan")
	input := strings.Join([]string{"1", "2", "", "4", "  ", "5", "0"}, "\n") + "\n"

	out, err := execute(t, input, "--dict", path, "shell")

	require.NoError(t, err)
	assert.NotContains(t, out, "Translation:")
	assert.NotContains(t, out, "Entry deleted successfully!")
	assert.Equal(t, ",orphan\n", readFile(t, path))
}

func TestShellCommand_EndOfInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	out, err := execute(t, "1\n", "--dict", path, "shell")

	require.NoError(t, err)
	assert.Contains(t, out, "Failed to load dictionary")
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name        string
		verbose     bool
		infoEnabled bool
	}{
		{name: "quiet", verbose: false, infoEnabled: false},
		{name: "verbose", verbose: true, infoEnabled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.verbose)
			require.NoError(t, err)

			assert.Equal(t, tt.infoEnabled, logger.Core().Enabled(zap.InfoLevel))
			assert.True(t, logger.Core().Enabled(zap.WarnLevel))
		})
	}
}
