package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"weightlog/internal/domain"
	"weightlog/internal/render"
)

func settingsCmd() *cobra.Command {
	var startDate, startWeight, targetWeight string
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change start date, start weight and target weight",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var upd domain.Settings
			if cmd.Flags().Changed("start-date") {
				upd.StartDate = &startDate
			}
			if cmd.Flags().Changed("start-weight") {
				upd.StartWeight = &startWeight
			}
			if cmd.Flags().Changed("target-weight") {
				upd.TargetWeight = &targetWeight
			}

			var (
				d   domain.Dataset
				err error
			)
			if upd == (domain.Settings{}) {
				d, err = appCtx.Tracker.Dataset()
			} else {
				d, err = appCtx.Tracker.UpdateSettings(upd)
			}
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), struct {
					StartDate    string        `json:"startDate"`
					StartWeight  domain.Weight `json:"startWeight"`
					TargetWeight domain.Weight `json:"targetWeight"`
				}{d.StartDate, d.StartWeight, d.TargetWeight})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Start date:    %s\n", orDash(d.StartDate))
			fmt.Fprintf(out, "Start weight:  %s\n", orDash(render.Weight(d.StartWeight)))
			fmt.Fprintf(out, "Target weight: %s\n", orDash(render.Weight(d.TargetWeight)))
			return nil
		},
	}
	cmd.Flags().StringVar(&startDate, "start-date", "", "start date (YYYY-MM-DD, empty to clear)")
	cmd.Flags().StringVar(&startWeight, "start-weight", "", "start weight (empty to clear)")
	cmd.Flags().StringVar(&targetWeight, "target-weight", "", "target weight (empty to clear)")
	return cmd
}
