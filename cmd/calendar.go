package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/glowup/internal/models"
	"github.com/misterclayt0n/glowup/internal/utils"
	"github.com/spf13/cobra"
)

// details is a flag to print the logged entries under the grid.
var details bool

// calendarCmd prints the calendar grid. Days with a completed workout are
// green, days with only a log are yellow.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of logged days",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Determine month and year (default to current month/year).
		now := time.Now()
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		tr, closeFn, err := openTracker()
		if err != nil {
			return err
		}
		defer closeFn()

		if err := requireSession(tr); err != nil {
			return err
		}

		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)
		entries := tr.Ledger.Range(firstOfMonth.Format(utils.DateLayout), lastOfMonth.Format(utils.DateLayout))

		byDay := make(map[int]models.ProgressEntry)
		for _, e := range entries {
			d, err := utils.ParseDate(e.Date)
			if err != nil {
				continue
			}
			byDay[d.Day()] = e
		}

		workoutColor := color.New(color.FgGreen, color.Bold).SprintFunc()
		loggedColor := color.New(color.FgYellow).SprintFunc()

		out := cmd.OutOrStdout()
		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Fprintln(out, centerText(header, 20))
		fmt.Fprintln(out, "Su Mo Tu We Th Fr Sa")

		// Determine weekday of first day (0 = Sunday).
		weekday := int(firstOfMonth.Weekday())
		for i := 0; i < weekday; i++ {
			fmt.Fprint(out, "   ")
		}

		for day := 1; day <= lastOfMonth.Day(); day++ {
			dayStr := fmt.Sprintf("%2d", day)
			if e, ok := byDay[day]; ok {
				if e.WorkoutCompleted {
					dayStr = workoutColor(dayStr)
				} else {
					dayStr = loggedColor(dayStr)
				}
			}
			fmt.Fprintf(out, "%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Fprintln(out)
			}
		}
		fmt.Fprint(out, "\n\n")

		fmt.Fprintln(out, "Legend:")
		fmt.Fprintf(out, "  %s: workout completed\n", workoutColor("██"))
		fmt.Fprintf(out, "  %s: progress logged\n", loggedColor("██"))

		if details && len(entries) > 0 {
			fmt.Fprintln(out, "\nDetails:")
			for _, e := range entries {
				fmt.Fprintf(out, "  %s: %.1f kg, %d min cardio", utils.FormatDay(e.Date), e.Weight, e.CardioMinutes)
				if e.StrengthProgress != "" {
					fmt.Fprintf(out, ", %s", e.StrengthProgress)
				}
				fmt.Fprintln(out)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&details, "details", "d", false, "Print the logged entries for the month")
}
