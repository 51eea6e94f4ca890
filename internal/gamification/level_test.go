package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFor_Boundaries(t *testing.T) {
	cases := []struct {
		points int
		want   Level
	}{
		{0, LevelBeginner},
		{99, LevelBeginner},
		{100, LevelIntermediate},
		{249, LevelIntermediate},
		{250, LevelGymRat},
		{499, LevelGymRat},
		{500, LevelGymBro},
		{999, LevelGymBro},
		{1000, LevelGymShark},
		{25000, LevelGymShark},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, LevelFor(tc.points), "points=%d", tc.points)
	}
}

func TestLevelFor_NegativePointsAreBeginner(t *testing.T) {
	assert.Equal(t, LevelBeginner, LevelFor(-10))
}

func TestTiers_ReturnsCopy(t *testing.T) {
	got := Tiers()
	got[0].Description = "changed"

	assert.NotEqual(t, "changed", Tiers()[0].Description)
	assert.Len(t, got, 5)
}

func TestTierOf(t *testing.T) {
	assert.Equal(t, 250, TierOf(LevelGymRat).MinPoints)
	assert.Equal(t, LevelBeginner, TierOf(Level("Couch Potato")).Level)
}

func TestLevelProgress(t *testing.T) {
	assert.Equal(t, 0, LevelProgress(0))
	assert.Equal(t, 50, LevelProgress(50))
	assert.Equal(t, 0, LevelProgress(100))
	assert.Equal(t, 33, LevelProgress(150))
	assert.Equal(t, 99, LevelProgress(999))
	assert.Equal(t, 100, LevelProgress(1000))
	assert.Equal(t, 100, LevelProgress(4000))
}

func TestNegativePointsCountAsZero(t *testing.T) {
	assert.Equal(t, 0, LevelProgress(-5))
	assert.Equal(t, 100, PointsToNext(-5))

	next, ok := NextTier(-5)
	assert.True(t, ok)
	assert.Equal(t, LevelIntermediate, next.Level)
}

func TestNextTierAndPointsToNext(t *testing.T) {
	next, ok := NextTier(120)
	assert.True(t, ok)
	assert.Equal(t, LevelGymRat, next.Level)
	assert.Equal(t, 130, PointsToNext(120))

	_, ok = NextTier(1000)
	assert.False(t, ok)
	assert.Equal(t, 0, PointsToNext(1000))
}
