package learn

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// HistoryEntry is one append-only correction record. Snapshot holds the full
// mapping after the change, so restore needs no diff or merge logic.
type HistoryEntry struct {
	Time     string            `json:"time"`
	RawItems []string          `json:"raw_items"`
	MappedTo string            `json:"mapped_to"`
	Snapshot map[string]string `json:"snapshot"`
}

// now is swapped out in tests for stable timestamps.
var now = time.Now

// History reads the append-only history log. A missing file is an empty
// history.
func (s *Store) History() ([]HistoryEntry, error) {
	data, err := os.ReadFile(s.historyPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history %s: %w", s.historyPath, err)
	}

	var entries []HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse history %s: %w", s.historyPath, err)
	}
	return entries, nil
}

func (s *Store) appendHistory(raws []string, target string) error {
	if s.historyPath == "" {
		return nil
	}

	entries, err := s.History()
	if err != nil {
		return err
	}

	entries = append(entries, HistoryEntry{
		Time:     now().UTC().Format(time.RFC3339),
		RawItems: raws,
		MappedTo: target,
		Snapshot: s.Mapping(),
	})
	return atomicWriteJSON(s.historyPath, entries)
}

// Restore replaces the in-memory mapping wholesale with the snapshot at
// index and persists the replacement atomically. Corrections made after that
// entry are gone unless a later entry captures them; that is the point of a
// rollback.
func (s *Store) Restore(index int) error {
	entries, err := s.History()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(entries) {
		return fmt.Errorf("history index %d out of range (0..%d)", index, len(entries)-1)
	}

	mapping := make(map[string]string, len(entries[index].Snapshot))
	for k, v := range entries[index].Snapshot {
		mapping[k] = v
	}
	s.mapping = mapping
	return s.save()
}
