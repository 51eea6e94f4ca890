package tracker

import (
	"strconv"
	"strings"

	"github.com/misterclayt0n/glowup/internal/models"
	"github.com/misterclayt0n/glowup/internal/utils"
)

// ProfileForm is profile input as typed by the user.
type ProfileForm struct {
	Name             string
	Age              string
	Height           string
	Weight           string
	MedicalCondition string
	FitnessGoal      string
	TargetWeight     string
}

// ParseProfileForm turns raw input into a ProfileUpdate. Missing or
// non-numeric numbers are rejected; range checks happen in UpdateProfile.
func ParseProfileForm(f ProfileForm) (ProfileUpdate, error) {
	u := ProfileUpdate{
		Name:             f.Name,
		MedicalCondition: f.MedicalCondition,
		FitnessGoal:      models.FitnessGoal(strings.TrimSpace(f.FitnessGoal)),
	}

	age, err := strconv.Atoi(strings.TrimSpace(f.Age))
	if err != nil {
		return ProfileUpdate{}, invalid("age", "must be a whole number")
	}
	u.Age = age

	numbers := []struct {
		field string
		raw   string
		dst   *float64
	}{
		{"height", f.Height, &u.Height},
		{"weight", f.Weight, &u.Weight},
		{"targetWeight", f.TargetWeight, &u.TargetWeight},
	}
	for _, n := range numbers {
		v, ok := utils.ParseNumber(n.raw)
		if !ok {
			return ProfileUpdate{}, invalid(n.field, "must be a number")
		}
		*n.dst = v
	}

	if err := validateUpdate(u); err != nil {
		return ProfileUpdate{}, err
	}
	return u, nil
}

// ProgressForm is a day's log as typed by the user.
type ProgressForm struct {
	Date             string
	Weight           string
	WorkoutCompleted bool
	CardioMinutes    string
	StrengthProgress string
}

// ParseProgressForm turns raw input into a ProgressEntry. Cardio minutes are
// coerced rather than rejected.
func ParseProgressForm(f ProgressForm) (models.ProgressEntry, error) {
	date := strings.TrimSpace(f.Date)
	if _, err := utils.ParseDate(date); err != nil {
		return models.ProgressEntry{}, invalid("date", "must be a calendar date (YYYY-MM-DD)")
	}

	weight, ok := utils.ParseNumber(f.Weight)
	if !ok {
		return models.ProgressEntry{}, invalid("weight", "must be a number")
	}

	e := models.ProgressEntry{
		Date:             date,
		Weight:           weight,
		WorkoutCompleted: f.WorkoutCompleted,
		CardioMinutes:    utils.ParseCardioMinutes(f.CardioMinutes),
		StrengthProgress: f.StrengthProgress,
	}
	if err := validateEntry(e); err != nil {
		return models.ProgressEntry{}, err
	}
	return e, nil
}
