package gamification

import "math"

type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelGymRat       Level = "Gym Rat"
	LevelGymBro       Level = "Gym Bro"
	LevelGymShark     Level = "GYM SHARK"
)

// Points awarded for every logged progress entry.
const PointsPerLog = 10

type Tier struct {
	Level       Level
	MinPoints   int
	Description string
}

// Ordered lowest first. A tier starts at MinPoints inclusive.
var tiers = []Tier{
	{LevelBeginner, 0, "Taking your first steps on your fitness journey."},
	{LevelIntermediate, 100, "You've established a consistent workout routine."},
	{LevelGymRat, 250, "You've become a regular at the gym and are seeing results."},
	{LevelGymBro, 500, "You're dedicated to your fitness and inspire others."},
	{LevelGymShark, 1000, "You've reached the pinnacle of fitness dedication!"},
}

// LevelFor maps accumulated points to a level. Boundary values belong to the
// higher tier.
func LevelFor(points int) Level {
	return tierFor(points).Level
}

// Tiers returns a copy of the tier table, lowest first.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

// TierOf returns the tier entry for a level. Unknown levels map to the first
// tier.
func TierOf(level Level) Tier {
	for _, t := range tiers {
		if t.Level == level {
			return t
		}
	}
	return tiers[0]
}

// NextTier returns the tier after the one holding points, or false at the top.
// Negative points count as 0.
func NextTier(points int) (Tier, bool) {
	points = max(points, 0)
	for _, t := range tiers {
		if points < t.MinPoints {
			return t, true
		}
	}
	return Tier{}, false
}

// LevelProgress returns how far points are between the current tier and the
// next one, as a floored percentage. The top tier always reads 100.
func LevelProgress(points int) int {
	points = max(points, 0)
	next, ok := NextTier(points)
	if !ok {
		return 100
	}
	current := tierFor(points)
	span := float64(next.MinPoints - current.MinPoints)
	return int(math.Floor(float64(points-current.MinPoints) / span * 100))
}

// PointsToNext returns the points still missing for the next tier, 0 at the
// top.
func PointsToNext(points int) int {
	points = max(points, 0)
	next, ok := NextTier(points)
	if !ok {
		return 0
	}
	return next.MinPoints - points
}

func tierFor(points int) Tier {
	current := tiers[0]
	for _, t := range tiers {
		if points >= t.MinPoints {
			current = t
		}
	}
	return current
}
