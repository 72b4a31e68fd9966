package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTranslateCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "translate WORD",
		Short: "Translate a word from either language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, _, err := r.openDictionary(false)
			if err != nil {
				return err
			}

			translation, err := dict.Translate(args[0])
			if err != nil {
				return fmt.Errorf("%q: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), translation)
			return nil
		},
	}
}

func newAddCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "add PRIMARY SECONDARY",
		Short: "Add or modify an entry and save the dictionary",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, path, err := r.openDictionary(true)
			if err != nil {
				return err
			}

			modified, err := dict.AddOrModify(args[0], args[1])
			if err != nil {
				return err
			}
			if err := dict.SaveDictionary(path); err != nil {
				return err
			}

			if modified {
				fmt.Fprintf(cmd.OutOrStdout(), "Entry updated: %s -> %s\n", args[0], args[1])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Entry added: %s -> %s\n", args[0], args[1])
			}
			return nil
		},
	}
}

func newDeleteCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "delete PRIMARY",
		Short: "Delete an entry and save the dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, path, err := r.openDictionary(false)
			if err != nil {
				return err
			}

			if err := dict.DeleteEntry(args[0]); err != nil {
				return fmt.Errorf("%q: %w", args[0], err)
			}
			if err := dict.SaveDictionary(path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Entry deleted: %s\n", args[0])
			return nil
		},
	}
}

func newListCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print all entries in sorted order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, _, err := r.openDictionary(false)
			if err != nil {
				return err
			}

			for _, e := range dict.Entries() {
				fmt.Fprintln(cmd.OutOrStdout(), e.Line())
			}
			return nil
		},
	}
}

func newShellCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive menu: load, translate, add/modify, delete, save",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh := newShell(cmd.InOrStdin(), cmd.OutOrStdout(), DictionaryPath(r.flags), r.logger)
			return sh.run()
		},
	}
}
