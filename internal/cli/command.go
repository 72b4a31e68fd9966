package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"toeickilla/internal/dictionary"
	"toeickilla/internal/service"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// runner carries what every subcommand needs once flags are parsed
type runner struct {
	flags  *Flags
	logger *zap.Logger
}

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	return newRootCommand(&runner{flags: flags})
}

func newRootCommand(r *runner) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "toeickilla",
		Short: "Bilingual dictionary",
		Long: `toeickilla keeps a two-language word list in a plain text file,
one "word,translation" pair per line.

Examples:
  toeickilla translate cat                # Look up a word in either language
  toeickilla add cat chat                 # Add or modify an entry and save
  toeickilla delete cat                   # Delete an entry and save
  toeickilla --dict fr.txt list           # Print all entries in order
  toeickilla shell                        # Interactive menu`,
		SilenceUsage:      true,
		PersistentPreRunE: r.setup,
	}

	setupFlags(rootCmd, r.flags)

	rootCmd.AddCommand(
		newTranslateCommand(r),
		newAddCommand(r),
		newDeleteCommand(r),
		newListCommand(r),
		newShellCommand(r),
	)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.toeickilla.yaml)")
	cmd.PersistentFlags().StringVarP(&flags.DictPath, "dict", "d", flags.DictPath, "Dictionary file")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log dictionary operations")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("dictionary", cmd.PersistentFlags().Lookup("dict"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".toeickilla" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".toeickilla")
	}

	viper.SetEnvPrefix("TOEICKILLA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// DictionaryPath resolves the dictionary file from flag, environment, or config file
func DictionaryPath(flags *Flags) string {
	if path := viper.GetString("dictionary"); path != "" {
		return path
	}
	return flags.DictPath
}

// NewLogger builds a production logger that only reports warnings unless verbose
func NewLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

func (r *runner) setup(cmd *cobra.Command, args []string) error {
	if r.logger != nil {
		return nil
	}
	logger, err := NewLogger(r.flags.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	r.logger = logger
	return nil
}

// openDictionary loads the dictionary file into a new service. A missing
// file yields an empty dictionary when allowMissing is set.
func (r *runner) openDictionary(allowMissing bool) (*service.DictionaryService, string, error) {
	path := DictionaryPath(r.flags)
	dict := service.NewDictionaryService(dictionary.New(), r.logger)

	if allowMissing {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			r.logger.Info("Dictionary file not found, starting empty", zap.String("path", path))
			return dict, path, nil
		}
	}

	if err := dict.LoadDictionary(path); err != nil {
		return nil, path, err
	}
	return dict, path, nil
}
