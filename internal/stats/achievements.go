package stats

import (
	"fmt"
	"strings"

	"github.com/misterclayt0n/glowup/internal/models"
)

const (
	AchievementConsistentAthlete = "consistent_athlete"
	AchievementCardioChampion    = "cardio_champion"
	AchievementTrackingPro       = "tracking_pro"
	AchievementWeightLoss        = "weight_loss_progress"
	AchievementStrengthBuilder   = "strength_builder"
)

const (
	consistentWorkouts = 5
	cardioMinutes      = 60
	trackingDays       = 7
	strengthLogs       = 3
)

// Achievements evaluates every badge independently against the log.
func Achievements(p models.UserProfile, entries []models.ProgressEntry) []models.Achievement {
	var out []models.Achievement
	sum := Summarize(entries)

	if sum.CompletedWorkouts >= consistentWorkouts {
		out = append(out, models.Achievement{
			ID:          AchievementConsistentAthlete,
			Title:       "Consistent Athlete",
			Description: "Completed 5+ workouts",
		})
	}

	if sum.TotalCardioMinutes >= cardioMinutes {
		out = append(out, models.Achievement{
			ID:          AchievementCardioChampion,
			Title:       "Cardio Champion",
			Description: fmt.Sprintf("Logged %d+ minutes of cardio", sum.TotalCardioMinutes),
		})
	}

	if sum.DaysLogged >= trackingDays {
		out = append(out, models.Achievement{
			ID:          AchievementTrackingPro,
			Title:       "Tracking Pro",
			Description: "Logged 7+ days of progress",
		})
	}

	if p.FitnessGoal == models.GoalWeightLoss && len(entries) >= 2 {
		first, _ := Earliest(entries)
		last, _ := Latest(entries)
		if first.Weight > last.Weight {
			lost := first.Weight - last.Weight
			out = append(out, models.Achievement{
				ID:          AchievementWeightLoss,
				Title:       "Weight Loss Progress",
				Description: fmt.Sprintf("Lost %.1f kg so far", lost),
				Delta:       lost,
			})
		}
	}

	if p.FitnessGoal == models.GoalMuscleGain {
		logged := 0
		for _, e := range entries {
			if strings.TrimSpace(e.StrengthProgress) != "" {
				logged++
			}
		}
		if logged >= strengthLogs {
			out = append(out, models.Achievement{
				ID:          AchievementStrengthBuilder,
				Title:       "Strength Builder",
				Description: "Logged strength progress 3+ times",
			})
		}
	}

	return out
}

// Has reports whether the achievement with id is in list.
func Has(list []models.Achievement, id string) bool {
	for _, a := range list {
		if a.ID == id {
			return true
		}
	}
	return false
}
