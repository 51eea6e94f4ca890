package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/glowup/internal/utils"
	"github.com/spf13/cobra"
)

var (
	historyFrom string
	historyTo   string
)

// historyCmd lists logged days, oldest first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display logged progress, optionally filtered by a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, closeFn, err := openTracker()
		if err != nil {
			return err
		}
		defer closeFn()

		if err := requireSession(tr); err != nil {
			return err
		}

		var from, to string
		if historyFrom != "" {
			if from, err = utils.ParseDayInput(historyFrom); err != nil {
				return err
			}
		}
		if historyTo != "" {
			if to, err = utils.ParseDayInput(historyTo); err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		entries := tr.Ledger.Range(from, to)
		if len(entries) == 0 {
			fmt.Fprintln(out, "No progress logged yet. Use `glowup log` to add a day.")
			return nil
		}

		check := color.New(color.FgGreen).Sprint("✔")
		for _, e := range entries {
			workout := " "
			if e.WorkoutCompleted {
				workout = check
			}
			fmt.Fprintf(out, "%s  %6.1f kg  workout %s  cardio %3d min", e.Date, e.Weight, workout, e.CardioMinutes)
			if e.StrengthProgress != "" {
				fmt.Fprintf(out, "  | %s", e.StrengthProgress)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVarP(&historyFrom, "from", "f", "", "First day to show (e.g. 2025-02-07 or 07/02/25)")
	historyCmd.Flags().StringVarP(&historyTo, "to", "t", "", "Last day to show")
}
