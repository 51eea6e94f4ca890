package stats

import (
	"math"

	"github.com/misterclayt0n/glowup/internal/models"
)

// GoalProgress reports how much of the distance between the profile weight
// and the target weight has been covered by the latest logged weight, as a
// percentage capped at 100.
//
// The measure has no direction: moving away from the target also counts as
// distance covered.
func GoalProgress(p models.UserProfile, entries []models.ProgressEntry) int {
	start := p.Weight
	goal := p.TargetWeight
	if start == goal {
		return 100
	}

	current := start
	if latest, ok := Latest(entries); ok {
		current = latest.Weight
	}

	total := math.Abs(start - goal)
	covered := math.Abs(start - current)
	return int(math.Min(100, math.Round(covered/total*100)))
}

// Latest returns the chronologically last entry.
func Latest(entries []models.ProgressEntry) (models.ProgressEntry, bool) {
	if len(entries) == 0 {
		return models.ProgressEntry{}, false
	}
	last := entries[0]
	for _, e := range entries[1:] {
		if e.Date >= last.Date {
			last = e
		}
	}
	return last, true
}

// Earliest returns the chronologically first entry.
func Earliest(entries []models.ProgressEntry) (models.ProgressEntry, bool) {
	if len(entries) == 0 {
		return models.ProgressEntry{}, false
	}
	first := entries[0]
	for _, e := range entries[1:] {
		if e.Date < first.Date {
			first = e
		}
	}
	return first, true
}
