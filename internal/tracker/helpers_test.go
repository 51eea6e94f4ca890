package tracker

import (
	"errors"
	"testing"

	"github.com/misterclayt0n/glowup/internal/models"
	"github.com/misterclayt0n/glowup/internal/storage"
	"github.com/stretchr/testify/require"
)

var errDiskFull = errors.New("disk full")

// flakyStore wraps a MemoryStore and fails writes to the listed keys.
type flakyStore struct {
	*storage.MemoryStore
	failSet map[string]bool
}

func newFlakyStore() *flakyStore {
	return &flakyStore{MemoryStore: storage.NewMemoryStore(), failSet: map[string]bool{}}
}

func (f *flakyStore) Set(key, value string) error {
	if f.failSet[key] {
		return errDiskFull
	}
	return f.MemoryStore.Set(key, value)
}

// createTestTracker returns a tracker over a fresh in-memory store.
func createTestTracker(t *testing.T) (*Tracker, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	tr, err := New(store)
	require.NoError(t, err)
	return tr, store
}

func entry(date string, weight float64) models.ProgressEntry {
	return models.ProgressEntry{Date: date, Weight: weight}
}

func defaultProfile() models.UserProfile {
	return models.UserProfile{
		Name:             "User",
		Age:              30,
		Height:           170,
		Weight:           70,
		MedicalCondition: "None",
		FitnessGoal:      models.GoalGeneralFitness,
		TargetWeight:     70,
		Points:           0,
	}
}
