package models

// ProgressEntry is one logged fact about a calendar day. Date is the ledger
// key, formatted as "2006-01-02".
type ProgressEntry struct {
	Date             string  `json:"date" toml:"date"`
	Weight           float64 `json:"weight" toml:"weight"` // kg
	WorkoutCompleted bool    `json:"workoutCompleted" toml:"workout_completed"`
	CardioMinutes    int     `json:"cardioMinutes" toml:"cardio_minutes"`
	StrengthProgress string  `json:"strengthProgress" toml:"strength_progress"`
}

// Achievement is an unlocked badge derived from the ledger.
type Achievement struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Delta       float64 `json:"delta,omitempty"` // kg lost, weight-loss badge only
}
