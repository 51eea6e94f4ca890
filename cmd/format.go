package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/glowup/internal/models"
	"github.com/misterclayt0n/glowup/internal/stats"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// goalLabel turns "weight_loss" into "Weight Loss".
func goalLabel(g models.FitnessGoal) string {
	return titleCaser.String(strings.ReplaceAll(string(g), "_", " "))
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(w io.Writer, title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Fprintln(w, cyanBold("╔"+border+"╗"))
	fmt.Fprintln(w, cyanBold("║"+centerText(title, width)+"║"))
	fmt.Fprintln(w, cyanBold("╚"+border+"╝"))
}

// centerText centers s in a field of the given width.
func centerText(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-n-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(w io.Writer, label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Fprintf(w, "  %s: %v\n", yellowBold(label), value)
}

// progressBar renders pct (0-100) as a fixed width bar.
func progressBar(pct int) string {
	const width = 20
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// sparkline draws one block per point, scaled between the lowest and highest
// weight. A flat series draws the middle block.
func sparkline(points []stats.WeightPoint) string {
	if len(points) == 0 {
		return ""
	}
	lo, hi := points[0].Weight, points[0].Weight
	for _, p := range points {
		lo = min(lo, p.Weight)
		hi = max(hi, p.Weight)
	}
	var b strings.Builder
	for _, p := range points {
		i := len(sparkBlocks) / 2
		if hi > lo {
			i = int((p.Weight - lo) / (hi - lo) * float64(len(sparkBlocks)-1))
		}
		b.WriteRune(sparkBlocks[i])
	}
	return b.String()
}

func printProfile(w io.Writer, p models.UserProfile) {
	printMetric(w, "Name", p.Name)
	printMetric(w, "Age", p.Age)
	printMetric(w, "Height", fmt.Sprintf("%.0f cm", p.Height))
	printMetric(w, "Weight", fmt.Sprintf("%.1f kg", p.Weight))
	printMetric(w, "Target weight", fmt.Sprintf("%.1f kg", p.TargetWeight))
	printMetric(w, "Goal", goalLabel(p.FitnessGoal))
	printMetric(w, "Medical condition", p.MedicalCondition)
	printMetric(w, "Level", fmt.Sprintf("%s (%d points)", p.Level(), p.Points))
}
