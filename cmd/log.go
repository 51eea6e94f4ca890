package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/glowup/internal/tracker"
	"github.com/misterclayt0n/glowup/internal/utils"
	"github.com/spf13/cobra"
)

var progressForm tracker.ProgressForm

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log progress for a day (logging the same day again replaces it)",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, closeFn, err := openTracker()
		if err != nil {
			return err
		}
		defer closeFn()

		if err := requireSession(tr); err != nil {
			return err
		}

		form := progressForm
		if form.Date == "" {
			form.Date = utils.Today()
		} else if day, err := utils.ParseDayInput(form.Date); err == nil {
			form.Date = day
		}

		entry, err := tracker.ParseProgressForm(form)
		if err != nil {
			return err
		}

		res, err := tr.LogProgress(entry)
		if err != nil {
			return fmt.Errorf("Failed to log progress: %w", err)
		}

		out := cmd.OutOrStdout()
		verb := "Logged"
		if !res.Inserted {
			verb = "Updated"
		}
		fmt.Fprintf(out, "✅ %s progress for %s (+%d points, %d total)\n",
			verb, utils.FormatDay(entry.Date), res.Awarded, res.Profile.Points)

		if res.LeveledUp() {
			fmt.Fprintf(out, "%s You are now %s!\n",
				color.New(color.FgGreen, color.Bold).Sprint("🎉 Level up!"),
				res.Profile.Level())
		}
		return nil
	},
}

func init() {
	f := logCmd.Flags()
	f.StringVarP(&progressForm.Date, "date", "d", "", "Day to log (2025-02-07 or 07/02/25, default today)")
	f.StringVarP(&progressForm.Weight, "weight", "w", "", "Weight in kg")
	f.BoolVar(&progressForm.WorkoutCompleted, "workout", false, "Mark the workout as completed")
	f.StringVarP(&progressForm.CardioMinutes, "cardio", "c", "", "Minutes of cardio")
	f.StringVarP(&progressForm.StrengthProgress, "strength", "s", "", "Strength notes, e.g. \"bench 60kg x5\"")
	logCmd.MarkFlagRequired("weight")
	rootCmd.AddCommand(logCmd)
}
