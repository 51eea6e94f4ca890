package tracker

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/misterclayt0n/glowup/internal/models"
	"github.com/misterclayt0n/glowup/internal/storage"
	"github.com/misterclayt0n/glowup/internal/utils"
)

// Ledger owns the date-keyed progress log. Entries are kept in insertion
// order; readers get them sorted by date.
type Ledger struct {
	store   storage.Store
	entries []models.ProgressEntry
}

// NewLedger loads the progress log from store. A malformed record is logged
// and treated as an empty log.
func NewLedger(store storage.Store) (*Ledger, error) {
	l := &Ledger{store: store}
	if err := l.reload(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Ledger) reload() error {
	raw, ok, err := l.store.Get(storage.KeyProgressLog)
	if err != nil {
		return fmt.Errorf("failed to load progress log: %w", err)
	}
	l.entries = nil
	if !ok {
		return nil
	}

	var entries []models.ProgressEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		slog.Warn("discarding malformed record", "key", storage.KeyProgressLog, "error", err)
		return nil
	}
	valid := entries[:0]
	for _, e := range entries {
		e = normalizeEntry(e)
		if err := validateEntry(e); err != nil {
			slog.Warn("skipping malformed progress entry", "key", storage.KeyProgressLog, "date", e.Date, "error", err)
			continue
		}
		valid = append(valid, e)
	}
	l.entries = dedupeByDate(valid)
	return nil
}

// dedupeByDate keeps the last occurrence of each date, at the position of its
// first occurrence.
func dedupeByDate(entries []models.ProgressEntry) []models.ProgressEntry {
	index := make(map[string]int, len(entries))
	out := make([]models.ProgressEntry, 0, len(entries))
	for _, e := range entries {
		if i, seen := index[e.Date]; seen {
			out[i] = e
			continue
		}
		index[e.Date] = len(out)
		out = append(out, e)
	}
	return out
}

// Upsert validates entry and stores it, replacing any entry with the same
// date. Negative cardio minutes are stored as 0. It reports whether a new
// date was added.
func (l *Ledger) Upsert(entry models.ProgressEntry) (inserted bool, err error) {
	entry = normalizeEntry(entry)
	if err := validateEntry(entry); err != nil {
		return false, err
	}

	next := make([]models.ProgressEntry, len(l.entries), len(l.entries)+1)
	copy(next, l.entries)

	inserted = true
	for i := range next {
		if next[i].Date == entry.Date {
			next[i] = entry
			inserted = false
			break
		}
	}
	if inserted {
		next = append(next, entry)
	}

	if err := l.write(next); err != nil {
		return false, err
	}
	l.entries = next

	slog.Debug("progress stored", "date", entry.Date, "inserted", inserted, "days", len(next))
	return inserted, nil
}

func (l *Ledger) write(entries []models.ProgressEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode progress log: %w", err)
	}
	if err := l.store.Set(storage.KeyProgressLog, string(data)); err != nil {
		return fmt.Errorf("failed to save progress log: %w", err)
	}
	return nil
}

// Entries returns a copy of the log sorted by date.
func (l *Ledger) Entries() []models.ProgressEntry {
	out := make([]models.ProgressEntry, len(l.entries))
	copy(out, l.entries)
	SortByDate(out)
	return out
}

// Entry returns the entry logged for date.
func (l *Ledger) Entry(date string) (models.ProgressEntry, bool) {
	for _, e := range l.entries {
		if e.Date == date {
			return e, true
		}
	}
	return models.ProgressEntry{}, false
}

// Range returns the entries between from and to inclusive, sorted by date.
// An empty bound is open.
func (l *Ledger) Range(from, to string) []models.ProgressEntry {
	var filtered []models.ProgressEntry
	for _, e := range l.Entries() {
		if from != "" && e.Date < from {
			continue
		}
		if to != "" && e.Date > to {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

func (l *Ledger) Len() int {
	return len(l.entries)
}

// SortByDate orders entries chronologically in place. ISO dates sort
// lexically.
func SortByDate(entries []models.ProgressEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
}

func validateEntry(e models.ProgressEntry) error {
	if _, err := utils.ParseDate(e.Date); err != nil {
		return invalid("date", fmt.Sprintf("%q is not a calendar date (YYYY-MM-DD)", e.Date))
	}
	if !utils.IsPositive(e.Weight) {
		return invalid("weight", "must be a positive number")
	}
	return nil
}

// normalizeEntry coerces the optional fields: cardio minutes never go below 0.
func normalizeEntry(e models.ProgressEntry) models.ProgressEntry {
	if e.CardioMinutes < 0 {
		e.CardioMinutes = 0
	}
	return e
}
