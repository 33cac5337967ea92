package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"weightlog/internal/domain"
	"weightlog/internal/render"
)

func addCmd() *cobra.Command {
	var weight, notes string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add the next day's entry (day after the last, else the start date, else today)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := appCtx.Tracker.AddDay(domain.Weight(weight), notes)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), e)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s  weight %s  change %s\n",
				e.Date, orDash(render.Weight(e.Weight)), render.Variance(e.Variance))
			return nil
		},
	}
	cmd.Flags().StringVarP(&weight, "weight", "w", "", "weight for the day (blank to fill in later)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "notes for the day")
	return cmd
}

func editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <n> <date|weight|notes> <value>",
		Short: "Change one field of entry n",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := position(args[0])
			if err != nil {
				return err
			}
			e, err := appCtx.Tracker.UpdateEntry(idx, args[1], args[2])
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), e)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated #%d %s  weight %s  change %s\n",
				idx+1, e.Date, orDash(render.Weight(e.Weight)), render.Variance(e.Variance))
			return nil
		},
	}
}

func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <n>",
		Short: "Remove entry n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := position(args[0])
			if err != nil {
				return err
			}
			if err := appCtx.Tracker.RemoveEntry(idx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed #%d\n", idx+1)
			return nil
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print entries with their day-over-day change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := appCtx.Tracker.Dataset()
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), d.Entries)
			}
			if len(d.Entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No entries yet. Use `weightlog add`.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Table(d.Entries))
			return nil
		},
	}
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
