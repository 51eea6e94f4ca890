package models

import "github.com/misterclayt0n/glowup/internal/gamification"

type FitnessGoal string

const (
	GoalWeightLoss     FitnessGoal = "weight_loss"
	GoalMuscleGain     FitnessGoal = "muscle_gain"
	GoalMaintain       FitnessGoal = "maintain"
	GoalGeneralFitness FitnessGoal = "general_fitness"
)

// ValidGoals is the canonical set of accepted fitness goals.
var ValidGoals = map[FitnessGoal]bool{
	GoalWeightLoss:     true,
	GoalMuscleGain:     true,
	GoalMaintain:       true,
	GoalGeneralFitness: true,
}

func (g FitnessGoal) Valid() bool {
	return ValidGoals[g]
}

// UserProfile is the single local user. The level is derived from Points and
// is never stored on the struct.
type UserProfile struct {
	Name             string      `json:"name" toml:"name"`
	Age              int         `json:"age" toml:"age"`
	Height           float64     `json:"height" toml:"height"` // cm
	Weight           float64     `json:"weight" toml:"weight"` // kg
	MedicalCondition string      `json:"medicalCondition" toml:"medical_condition"`
	FitnessGoal      FitnessGoal `json:"fitnessGoal" toml:"fitness_goal"`
	TargetWeight     float64     `json:"targetWeight" toml:"target_weight"` // kg
	Points           int         `json:"points" toml:"points"`
}

func (p UserProfile) Level() gamification.Level {
	return gamification.LevelFor(p.Points)
}
