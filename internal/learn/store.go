// Package learn holds the durable token-to-team mapping built from admin
// corrections. The JSON file on disk is the durability boundary: every
// mutation is persisted atomically before control returns, and a new session
// must Open the store again before relying on it.
package learn

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abcgmn74-spec/teampick/internal/team"
)

// ErrNoSelection is returned by ApplyCorrection when the selection is empty
// or no token in it survives normalization.
var ErrNoSelection = errors.New("no tokens selected")

// ErrCorruptStore marks an unreadable learned-mapping file. This is fatal
// for the session: silently starting empty would "forget" corrections and
// reapply them inconsistently.
var ErrCorruptStore = errors.New("corrupt learning store")

// rename is swapped out in tests to simulate a crash between the temp-file
// write and the atomic replace.
var rename = os.Rename

// Store owns the learned mapping lifecycle: load at session start, mutate
// through ApplyCorrection or Restore only, persist atomically on every
// mutation.
type Store struct {
	path        string
	historyPath string
	mapping     map[string]string
}

// Open loads the learned mapping from path. A missing file is valid initial
// state and yields an empty store; an unreadable or unparseable file is an
// ErrCorruptStore.
func Open(path, historyPath string) (*Store, error) {
	s := &Store{
		path:        path,
		historyPath: historyPath,
		mapping:     make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrCorruptStore, path, err)
	}
	if err := json.Unmarshal(data, &s.mapping); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrCorruptStore, path, err)
	}
	return s, nil
}

// Lookup returns the canonical team learned for a normalized token.
func (s *Store) Lookup(token string) (string, bool) {
	t, ok := s.mapping[token]
	return t, ok
}

// Len returns the number of learned mappings.
func (s *Store) Len() int {
	return len(s.mapping)
}

// Mapping returns a copy of the current mapping.
func (s *Store) Mapping() map[string]string {
	out := make(map[string]string, len(s.mapping))
	for k, v := range s.mapping {
		out[k] = v
	}
	return out
}

// ApplyCorrection records that each raw token means target, keyed by the
// same normalization the resolver looks up with, then persists the full
// mapping atomically and appends a history entry. The returned count is the
// number of mapping keys written. Persistence failures propagate: a silently
// dropped correction is worse than a visible error.
func (s *Store) ApplyCorrection(raws []string, target string) (int, error) {
	if len(raws) == 0 {
		return 0, ErrNoSelection
	}

	n := 0
	for _, raw := range raws {
		key := team.Normalize(raw)
		if key == "" {
			continue
		}
		s.mapping[key] = target
		n++
	}
	if n == 0 {
		// nothing usable survived normalization; do not rewrite the store or
		// log a zero-change history entry
		return 0, ErrNoSelection
	}

	if err := s.save(); err != nil {
		return 0, err
	}
	if err := s.appendHistory(raws, target); err != nil {
		return 0, err
	}
	return n, nil
}

// save writes the full mapping to a temp file in the store's directory and
// renames it over the real file, so a crash mid-write never leaves a partial
// file visible.
func (s *Store) save() error {
	return atomicWriteJSON(s.path, s.mapping)
}

func atomicWriteJSON(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	tf, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tf.Name()

	enc := json.NewEncoder(tf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		tf.Close()
		os.Remove(tmpName)
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := tf.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
