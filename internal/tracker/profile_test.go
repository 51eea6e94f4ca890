package tracker

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/misterclayt0n/glowup/internal/gamification"
	"github.com/misterclayt0n/glowup/internal/models"
	"github.com/misterclayt0n/glowup/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfileManager_EmptyStore(t *testing.T) {
	m, err := NewProfileManager(storage.NewMemoryStore())
	require.NoError(t, err)

	_, ok := m.Profile()
	assert.False(t, ok)
	assert.False(t, m.LoggedIn())
}

func TestLogin_DefaultsWhenNoFields(t *testing.T) {
	m, err := NewProfileManager(storage.NewMemoryStore())
	require.NoError(t, err)

	p, err := m.Login(LoginFields{})
	require.NoError(t, err)

	assert.Equal(t, defaultProfile(), p)
	assert.Equal(t, gamification.LevelBeginner, p.Level())
	assert.True(t, m.LoggedIn())
}

func TestLogin_TargetWeightFallsBackToWeight(t *testing.T) {
	m, _ := NewProfileManager(storage.NewMemoryStore())

	p, err := m.Login(LoginFields{Name: "Ana", Weight: 82})
	require.NoError(t, err)
	assert.Equal(t, 82.0, p.TargetWeight)

	p, err = m.Login(LoginFields{Name: "Ana", Weight: 82, TargetWeight: 75})
	require.NoError(t, err)
	assert.Equal(t, 75.0, p.TargetWeight)
}

func TestLogin_OverwritesExistingProfile(t *testing.T) {
	store := storage.NewMemoryStore()
	m, _ := NewProfileManager(store)

	_, err := m.Login(LoginFields{Name: "First", Points: 300})
	require.NoError(t, err)
	_, err = m.Login(LoginFields{Name: "Second"})
	require.NoError(t, err)

	reloaded, err := NewProfileManager(store)
	require.NoError(t, err)
	p, ok := reloaded.Profile()
	require.True(t, ok)
	assert.Equal(t, "Second", p.Name)
	assert.Equal(t, 0, p.Points)
}

func TestDemoLogin(t *testing.T) {
	m, _ := NewProfileManager(storage.NewMemoryStore())

	p, err := m.DemoLogin()
	require.NoError(t, err)
	assert.Equal(t, "Demo User", p.Name)
	assert.Equal(t, models.GoalWeightLoss, p.FitnessGoal)
	assert.Equal(t, 50, p.Points)
	assert.Equal(t, gamification.LevelBeginner, p.Level())
}

func TestLogout_KeepsProfile(t *testing.T) {
	store := storage.NewMemoryStore()
	m, _ := NewProfileManager(store)
	_, err := m.Login(LoginFields{Name: "Ana"})
	require.NoError(t, err)

	require.NoError(t, m.Logout())
	assert.False(t, m.LoggedIn())

	raw, ok, _ := store.Get(storage.KeyLoggedIn)
	assert.True(t, ok)
	assert.Equal(t, "false", raw)

	reloaded, _ := NewProfileManager(store)
	p, ok := reloaded.Profile()
	require.True(t, ok)
	assert.Equal(t, "Ana", p.Name)
	assert.False(t, reloaded.LoggedIn())
}

func TestProfile_RoundTripThroughStore(t *testing.T) {
	store := storage.NewMemoryStore()
	m, _ := NewProfileManager(store)
	want, err := m.Login(LoginFields{
		Name:             "Ana",
		Age:              41,
		Height:           163.5,
		Weight:           68.2,
		MedicalCondition: "asthma",
		FitnessGoal:      models.GoalMuscleGain,
		TargetWeight:     72,
		Points:           260,
	})
	require.NoError(t, err)

	reloaded, err := NewProfileManager(store)
	require.NoError(t, err)
	got, ok := reloaded.Profile()
	require.True(t, ok)
	assert.Equal(t, want, got)
	assert.Equal(t, gamification.LevelGymRat, got.Level())
	assert.True(t, reloaded.LoggedIn())
}

func TestProfile_StoredLevelIsRecomputed(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(storage.KeyProfile,
		`{"name":"Ana","age":30,"height":170,"weight":70,"medicalCondition":"None","fitnessGoal":"maintain","targetWeight":70,"points":120,"level":"GYM SHARK"}`))

	m, err := NewProfileManager(store)
	require.NoError(t, err)
	p, ok := m.Profile()
	require.True(t, ok)
	assert.Equal(t, gamification.LevelIntermediate, p.Level())
}

func TestProfile_PersistedRecordCarriesLevel(t *testing.T) {
	store := storage.NewMemoryStore()
	m, _ := NewProfileManager(store)
	_, err := m.Login(LoginFields{Points: 500})
	require.NoError(t, err)

	raw, _, _ := store.Get(storage.KeyProfile)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))
	assert.Equal(t, "Gym Bro", rec["level"])
	assert.Equal(t, float64(500), rec["points"])
}

func TestNewProfileManager_MalformedRecordsRecoverToDefaults(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(storage.KeyProfile, "{not json"))
	require.NoError(t, store.Set(storage.KeyLoggedIn, "maybe"))

	m, err := NewProfileManager(store)
	require.NoError(t, err)

	_, ok := m.Profile()
	assert.False(t, ok)
	assert.False(t, m.LoggedIn())
}

func TestNewProfileManager_InvalidProfileValuesLoadAsNoProfile(t *testing.T) {
	records := map[string]string{
		"null":         "null",
		"empty object": "{}",
		"negative age": `{"name":"Ana","age":-3,"height":170,"weight":70,"fitnessGoal":"maintain","targetWeight":70}`,
		"blank name":   `{"name":"  ","age":30,"height":170,"weight":70,"fitnessGoal":"maintain","targetWeight":70}`,
		"zero weight":  `{"name":"Ana","age":30,"height":170,"weight":0,"fitnessGoal":"maintain","targetWeight":70}`,
	}

	for name, raw := range records {
		t.Run(name, func(t *testing.T) {
			store := storage.NewMemoryStore()
			require.NoError(t, store.Set(storage.KeyProfile, raw))
			require.NoError(t, store.Set(storage.KeyLoggedIn, "true"))

			m, err := NewProfileManager(store)
			require.NoError(t, err)

			_, ok := m.Profile()
			assert.False(t, ok)
			_, err = m.AwardPoints(10)
			assert.ErrorIs(t, err, ErrNoProfile)
		})
	}
}

func TestNewProfileManager_RepairsPointsAndGoal(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(storage.KeyProfile,
		`{"name":"Ana","age":30,"height":170,"weight":70,"fitnessGoal":"bulk","targetWeight":70,"points":-20}`))

	m, err := NewProfileManager(store)
	require.NoError(t, err)
	p, ok := m.Profile()
	require.True(t, ok)
	assert.Equal(t, 0, p.Points)
	assert.Equal(t, models.GoalGeneralFitness, p.FitnessGoal)
}

func TestUpdateProfile_ReplacesEditableFields(t *testing.T) {
	m, _ := NewProfileManager(storage.NewMemoryStore())
	_, err := m.Login(LoginFields{Name: "Ana", Points: 120})
	require.NoError(t, err)

	p, err := m.UpdateProfile(ProfileUpdate{
		Name:             "  Ana Clara ",
		Age:              32,
		Height:           165,
		Weight:           64,
		MedicalCondition: "",
		FitnessGoal:      models.GoalMaintain,
		TargetWeight:     62,
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana Clara", p.Name)
	assert.Equal(t, 32, p.Age)
	assert.Equal(t, 64.0, p.Weight)
	assert.Equal(t, "", p.MedicalCondition)
	assert.Equal(t, models.GoalMaintain, p.FitnessGoal)
	assert.Equal(t, 120, p.Points, "points are not editable")
	assert.Equal(t, gamification.LevelIntermediate, p.Level())
}

func TestUpdateProfile_RejectsNegativeWeight(t *testing.T) {
	store := storage.NewMemoryStore()
	m, _ := NewProfileManager(store)
	before, err := m.Login(LoginFields{Name: "Ana"})
	require.NoError(t, err)
	rawBefore, _, _ := store.Get(storage.KeyProfile)

	u := ProfileUpdate{Name: "Ana", Age: 30, Height: 170, Weight: -5, FitnessGoal: models.GoalMaintain, TargetWeight: 70}
	_, err = m.UpdateProfile(u)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "weight", ve.Field)

	current, _ := m.Profile()
	assert.Equal(t, before, current)
	rawAfter, _, _ := store.Get(storage.KeyProfile)
	assert.Equal(t, rawBefore, rawAfter)
}

func TestUpdateProfile_Validation(t *testing.T) {
	valid := ProfileUpdate{Name: "Ana", Age: 30, Height: 170, Weight: 70, FitnessGoal: models.GoalMaintain, TargetWeight: 70}

	cases := map[string]func(u *ProfileUpdate){
		"name":         func(u *ProfileUpdate) { u.Name = "   " },
		"age":          func(u *ProfileUpdate) { u.Age = 0 },
		"height":       func(u *ProfileUpdate) { u.Height = 0 },
		"targetWeight": func(u *ProfileUpdate) { u.TargetWeight = -1 },
		"fitnessGoal":  func(u *ProfileUpdate) { u.FitnessGoal = "bulk_forever" },
	}

	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			m, _ := NewProfileManager(storage.NewMemoryStore())
			_, err := m.Login(LoginFields{})
			require.NoError(t, err)

			u := valid
			mutate(&u)
			_, err = m.UpdateProfile(u)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, field, ve.Field)
		})
	}
}

func TestUpdateProfile_NoProfile(t *testing.T) {
	m, _ := NewProfileManager(storage.NewMemoryStore())
	_, err := m.UpdateProfile(ProfileUpdate{Name: "Ana", Age: 30, Height: 170, Weight: 70, FitnessGoal: models.GoalMaintain, TargetWeight: 70})
	assert.ErrorIs(t, err, ErrNoProfile)
}

func TestAwardPoints(t *testing.T) {
	m, _ := NewProfileManager(storage.NewMemoryStore())
	_, err := m.Login(LoginFields{Points: 95})
	require.NoError(t, err)

	p, err := m.AwardPoints(10)
	require.NoError(t, err)
	assert.Equal(t, 105, p.Points)
	assert.Equal(t, gamification.LevelIntermediate, p.Level())

	p, err = m.AwardPoints(1000)
	require.NoError(t, err)
	assert.Equal(t, gamification.LevelGymShark, p.Level())
}

func TestAwardPoints_RejectsNonPositive(t *testing.T) {
	m, _ := NewProfileManager(storage.NewMemoryStore())
	_, err := m.Login(LoginFields{})
	require.NoError(t, err)

	for _, delta := range []int{0, -10} {
		_, err := m.AwardPoints(delta)
		assert.True(t, IsValidation(err), "delta=%d", delta)
	}
	p, _ := m.Profile()
	assert.Equal(t, 0, p.Points)
}

func TestAwardPoints_NoProfile(t *testing.T) {
	m, _ := NewProfileManager(storage.NewMemoryStore())
	_, err := m.AwardPoints(10)
	assert.ErrorIs(t, err, ErrNoProfile)
}

func TestAwardPoints_WriteFailureKeepsState(t *testing.T) {
	store := newFlakyStore()
	m, _ := NewProfileManager(store)
	_, err := m.Login(LoginFields{})
	require.NoError(t, err)

	store.failSet[storage.KeyProfile] = true
	_, err = m.AwardPoints(10)
	assert.ErrorIs(t, err, errDiskFull)

	p, _ := m.Profile()
	assert.Equal(t, 0, p.Points)
}
