package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"weightlog/internal/crypto"
	"weightlog/internal/store"
	"weightlog/internal/transfer"
)

func exportCmd() *cobra.Command {
	var out, passphrase string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the dataset and chart prefs to a JSON export file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := appCtx.Tracker.Export(passphrase)
			if err != nil {
				return err
			}
			if out == "-" {
				_, err := cmd.OutOrStdout().Write(b)
				return err
			}
			if err := store.WriteFile(out, b); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported successfully to %s (fingerprint %s)\n", out, crypto.Fingerprint(b))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "weight-data.json", "output file (- for stdout)")
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "seal the export with this passphrase")
	return cmd
}

func importCmd() *cobra.Command {
	var passphrase string
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the dataset (and prefs, if present) from an export file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			d, err := appCtx.Tracker.Import(raw, passphrase)
			switch {
			case errors.Is(err, transfer.ErrInvalidFile):
				return errors.New("Invalid JSON file")
			case errors.Is(err, transfer.ErrPassphraseRequired):
				return fmt.Errorf("%w (-p)", err)
			case err != nil:
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported successfully (%d entries, fingerprint %s)\n", len(d.Entries), crypto.Fingerprint(raw))
			return nil
		},
	}
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase for a sealed export")
	return cmd
}
