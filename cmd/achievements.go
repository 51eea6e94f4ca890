package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/glowup/internal/gamification"
	"github.com/misterclayt0n/glowup/internal/stats"
	"github.com/spf13/cobra"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List unlocked achievements and the level ladder",
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

		out := cmd.OutOrStdout()
		printBoxedHeader(out, "ACHIEVEMENTS")

		unlocked := stats.Achievements(p, tr.Entries())
		if len(unlocked) == 0 {
			fmt.Fprintln(out, "  Keep logging your progress to unlock achievements.")
		}
		title := color.New(color.FgMagenta, color.Bold).SprintFunc()
		for _, a := range unlocked {
			fmt.Fprintf(out, "  🏆 %s: %s\n", title(a.Title), a.Description)
		}
		fmt.Fprintln(out)

		header := color.New(color.FgGreen, color.Bold).Sprint("Levels:")
		fmt.Fprintln(out, header)
		current := p.Level()
		for _, tier := range gamification.Tiers() {
			marker := "  "
			if tier.Level == current {
				marker = "➜ "
			}
			fmt.Fprintf(out, "%s%-12s %5d pts  %s\n", marker, tier.Level, tier.MinPoints, tier.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(achievementsCmd)
}
