package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/glowup/internal/gamification"
	"github.com/misterclayt0n/glowup/internal/stats"
	"github.com/spf13/cobra"
)

// trendDays is how many logged days the weight sparkline covers.
const trendDays = 14

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the dashboard: level, BMI, goal progress and totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, closeFn, err := openTracker()
		if err != nil {
			return err
		}
		defer closeFn()

		if err := requireSession(tr); err != nil {
			return err
		}
		p, _ := tr.Profile()
		entries := tr.Entries()

		out := cmd.OutOrStdout()
		printBoxedHeader(out, "STATUS")

		level := p.Level()
		printMetric(out, "Level", fmt.Sprintf("%s (%d points)", level, p.Points))
		printMetric(out, "Tier", gamification.TierOf(level).Description)
		if next, ok := gamification.NextTier(p.Points); ok {
			pct := gamification.LevelProgress(p.Points)
			printMetric(out, "Next level", fmt.Sprintf("%s %d%% → %s in %d points",
				progressBar(pct), pct, next.Level, gamification.PointsToNext(p.Points)))
		} else {
			printMetric(out, "Next level", "Top tier reached")
		}

		bmi := stats.BMI(p)
		printMetric(out, "BMI", fmt.Sprintf("%.1f %s", bmi, bmiColor(stats.CategoryFor(bmi))))

		current := p.Weight
		if latest, ok := stats.Latest(entries); ok {
			current = latest.Weight
		}
		goalPct := stats.GoalProgress(p, entries)
		printMetric(out, goalLabel(p.FitnessGoal), fmt.Sprintf("%.1f kg → %.1f kg (now %.1f kg)", p.Weight, p.TargetWeight, current))
		printMetric(out, "Goal progress", fmt.Sprintf("%s %d%%", progressBar(goalPct), goalPct))
		if series := stats.WeightSeries(entries); len(series) >= 2 {
			if len(series) > trendDays {
				series = series[len(series)-trendDays:]
			}
			printMetric(out, "Weight trend", fmt.Sprintf("%s %.1f → %.1f kg",
				sparkline(series), series[0].Weight, series[len(series)-1].Weight))
		}
		fmt.Fprintln(out)

		sum := stats.Summarize(entries)
		printMetric(out, "Days logged", sum.DaysLogged)
		printMetric(out, "Workouts completed", sum.CompletedWorkouts)
		printMetric(out, "Cardio", fmt.Sprintf("%d min", sum.TotalCardioMinutes))
		printMetric(out, "Achievements", len(stats.Achievements(p, entries)))
		fmt.Fprintln(out)

		return nil
	},
}

func bmiColor(c stats.Category) string {
	attr := color.FgRed
	switch c {
	case stats.Underweight:
		attr = color.FgBlue
	case stats.Normal:
		attr = color.FgGreen
	case stats.Overweight:
		attr = color.FgYellow
	}
	return color.New(attr).Sprint(string(c))
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
