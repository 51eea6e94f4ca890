// Package tracker is the state engine behind the CLI. It owns the user
// profile, the session flag and the progress ledger, and persists them
// through an injected storage.Store.
//
// All operations are synchronous. A mutation either validates and writes, or
// returns an error and leaves the previous state untouched.
package tracker

import (
	"errors"
	"log/slog"

	"github.com/misterclayt0n/glowup/internal/gamification"
	"github.com/misterclayt0n/glowup/internal/models"
	"github.com/misterclayt0n/glowup/internal/storage"
)

type Tracker struct {
	store    storage.Store
	Profiles *ProfileManager
	Ledger   *Ledger
}

// New loads all state from store.
func New(store storage.Store) (*Tracker, error) {
	profiles, err := NewProfileManager(store)
	if err != nil {
		return nil, err
	}
	ledger, err := NewLedger(store)
	if err != nil {
		return nil, err
	}
	return &Tracker{store: store, Profiles: profiles, Ledger: ledger}, nil
}

// LogResult describes what a LogProgress call changed.
type LogResult struct {
	Entry         models.ProgressEntry
	Inserted      bool
	Profile       models.UserProfile
	Awarded       int
	PreviousLevel gamification.Level
}

func (r LogResult) LeveledUp() bool {
	return r.Awarded > 0 && r.Profile.Level() != r.PreviousLevel
}

// LogProgress stores entry and awards points for it. Every successful call
// earns points, including re-logging a date that already has an entry. When
// no profile exists the entry is still stored and nothing is awarded.
func (t *Tracker) LogProgress(entry models.ProgressEntry) (LogResult, error) {
	inserted, err := t.Ledger.Upsert(entry)
	if err != nil {
		return LogResult{}, err
	}
	res := LogResult{Entry: entry, Inserted: inserted}

	current, ok := t.Profiles.Profile()
	if !ok {
		slog.Warn("progress logged without a profile, no points awarded", "date", entry.Date)
		return res, nil
	}
	res.PreviousLevel = current.Level()

	updated, err := t.Profiles.AwardPoints(gamification.PointsPerLog)
	if err != nil {
		if errors.Is(err, ErrNoProfile) {
			return res, nil
		}
		return res, err
	}
	res.Profile = updated
	res.Awarded = gamification.PointsPerLog
	return res, nil
}

// Profile is a shortcut for Profiles.Profile.
func (t *Tracker) Profile() (models.UserProfile, bool) {
	return t.Profiles.Profile()
}

// Entries is a shortcut for Ledger.Entries.
func (t *Tracker) Entries() []models.ProgressEntry {
	return t.Ledger.Entries()
}
