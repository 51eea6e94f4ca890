package stats

import (
	"sort"

	"github.com/misterclayt0n/glowup/internal/models"
)

type Summary struct {
	CompletedWorkouts  int
	TotalCardioMinutes int
	DaysLogged         int
}

func Summarize(entries []models.ProgressEntry) Summary {
	s := Summary{DaysLogged: len(entries)}
	for _, e := range entries {
		if e.WorkoutCompleted {
			s.CompletedWorkouts++
		}
		s.TotalCardioMinutes += e.CardioMinutes
	}
	return s
}

// WeightPoint is one point of the weight chart.
type WeightPoint struct {
	Date   string
	Weight float64
}

// WeightSeries returns the logged weights sorted by date.
func WeightSeries(entries []models.ProgressEntry) []WeightPoint {
	points := make([]WeightPoint, 0, len(entries))
	for _, e := range entries {
		points = append(points, WeightPoint{Date: e.Date, Weight: e.Weight})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}
