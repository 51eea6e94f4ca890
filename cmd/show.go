package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/glowup/internal/utils"
	"github.com/spf13/cobra"
)

var showDayCmd = &cobra.Command{
	Use:   "show [day]",
	Short: "Show what was logged for a day (default today)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day := utils.Today()
		if len(args) == 1 {
			parsed, err := utils.ParseDayInput(args[0])
			if err != nil {
				return err
			}
			day = parsed
		}

		tr, closeFn, err := openTracker()
		if err != nil {
			return err
		}
		defer closeFn()

		if err := requireSession(tr); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		e, ok := tr.Ledger.Entry(day)
		if !ok {
			fmt.Fprintf(out, "Nothing logged for %s\n", utils.FormatDay(day))
			return nil
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()

		fmt.Fprintf(out, "%s\n\n", green(utils.FormatDay(e.Date)))
		fmt.Fprintf(out, "%s %.1f kg\n", cyan("Weight:"), e.Weight)
		workout := "no"
		if e.WorkoutCompleted {
			workout = "yes"
		}
		fmt.Fprintf(out, "%s %s\n", cyan("Workout completed:"), workout)
		fmt.Fprintf(out, "%s %d min\n", cyan("Cardio:"), e.CardioMinutes)
		if e.StrengthProgress != "" {
			fmt.Fprintf(out, "%s %s\n", cyan("Strength:"), e.StrengthProgress)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showDayCmd)
}
