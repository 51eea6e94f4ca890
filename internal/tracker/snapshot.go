package tracker

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/misterclayt0n/glowup/internal/models"
	"github.com/misterclayt0n/glowup/internal/storage"
)

// Snapshot is a full copy of the engine state, used for export and restore.
type Snapshot struct {
	ID         string                 `toml:"id"`
	ExportedAt time.Time              `toml:"exported_at"`
	LoggedIn   bool                   `toml:"logged_in"`
	Profile    *models.UserProfile    `toml:"profile,omitempty"`
	Progress   []models.ProgressEntry `toml:"progress"`
}

// Export captures the current state.
func (t *Tracker) Export() Snapshot {
	snap := Snapshot{
		ID:         uuid.New().String(),
		ExportedAt: time.Now().UTC().Truncate(time.Second),
		LoggedIn:   t.Profiles.LoggedIn(),
		Progress:   t.Ledger.Entries(),
	}
	if p, ok := t.Profiles.Profile(); ok {
		snap.Profile = &p
	}
	return snap
}

// Import replaces all state with snap. The whole snapshot is validated before
// the first write.
func (t *Tracker) Import(snap Snapshot) error {
	if snap.Profile != nil {
		if err := validateProfile(*snap.Profile); err != nil {
			return err
		}
	}
	entries := make([]models.ProgressEntry, 0, len(snap.Progress))
	seen := make(map[string]bool, len(snap.Progress))
	for _, e := range snap.Progress {
		e = normalizeEntry(e)
		if err := validateEntry(e); err != nil {
			return err
		}
		if seen[e.Date] {
			return invalid("date", fmt.Sprintf("%s appears more than once", e.Date))
		}
		seen[e.Date] = true
		entries = append(entries, e)
	}

	if err := t.Ledger.write(entries); err != nil {
		return err
	}

	if snap.Profile != nil {
		p := *snap.Profile
		data, err := json.Marshal(profileRecord{UserProfile: p, Level: p.Level()})
		if err != nil {
			return fmt.Errorf("failed to encode profile: %w", err)
		}
		if err := t.store.Set(storage.KeyProfile, string(data)); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
	} else if err := t.store.Remove(storage.KeyProfile); err != nil {
		return fmt.Errorf("failed to clear profile: %w", err)
	}

	if err := t.store.Set(storage.KeyLoggedIn, strconv.FormatBool(snap.LoggedIn)); err != nil {
		return fmt.Errorf("failed to save session flag: %w", err)
	}

	if err := t.Profiles.reload(); err != nil {
		return err
	}
	return t.Ledger.reload()
}

// WriteSnapshot encodes snap as TOML.
func WriteSnapshot(w io.Writer, snap Snapshot) error {
	if err := toml.NewEncoder(w).Encode(snap); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a TOML snapshot.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	if _, err := toml.NewDecoder(r).Decode(&snap); err != nil {
		return Snapshot{}, fmt.Errorf("decoding TOML: %w", err)
	}
	return snap, nil
}
