package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"weightlog/internal/app"
)

var (
	home     string
	logLevel string
	asJSON   bool
	appCtx   *app.App
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRoot().Execute()
}

func newRoot() *cobra.Command {
	env := app.ConfigFromEnv()
	root := &cobra.Command{
		Use:           "weightlog",
		Short:         "Track daily weight, changes and trends",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(app.Config{
				Home:      home,
				LogLevel:  logLevel,
				LogOutput: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			appCtx = a
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", env.Home, "data dir (default ~/.weightlog, env "+app.EnvHome+")")
	root.PersistentFlags().StringVar(&logLevel, "log-level", env.LogLevel, "debug, info, warn or error (env "+app.EnvLogLevel+")")
	root.PersistentFlags().BoolVar(&asJSON, "json", false, "print machine-readable JSON")

	root.AddCommand(
		settingsCmd(),
		addCmd(),
		editCmd(),
		rmCmd(),
		listCmd(),
		rangeCmd(),
		trendCmd(),
		boundsCmd(),
		chartCmd(),
		exportCmd(),
		importCmd(),
		prefsCmd(),
		serveCmd(),
	)
	return root
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// position parses a 1-based entry position into a 0-based index.
func position(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("entry position must be a positive number, got %q", s)
	}
	return n - 1, nil
}
