package task

import (
	"encoding/json"
	"log"
	"strings"
	"sync"
)

// Store key names. Each key holds an independent JSON blob.
const (
	keyTasks       = "tasks"
	keyArchive     = "archive"
	keyHiddenCards = "hidden-cards"
	keyTheme       = "theme"
)

// KV is the persistence collaborator: a key-value store over JSON blobs.
// *kv.Store satisfies it.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

// Store owns the active and archived task collections. There is exactly one
// logical writer; the mutex only serializes the read-modify-write cycle when
// a background notification check overlaps a user action.
//
// In-memory state is authoritative for the session. Persistence failures are
// logged and never propagated; a malformed or missing blob loads as the
// empty default.
type Store struct {
	kv KV

	mu      sync.Mutex
	tasks   []Task
	archive []Task
}

// OpenStore loads both collections from the key-value store.
func OpenStore(store KV) *Store {
	s := &Store{kv: store}
	s.tasks = loadSlice(store, keyTasks)
	s.archive = loadSlice(store, keyArchive)
	return s
}

// loadSlice reads a task array blob, treating any failure as absence.
func loadSlice(store KV, key string) []Task {
	data, ok, err := store.Get(key)
	if err != nil {
		log.Printf("load %s: %v", key, err)
		return nil
	}
	if !ok {
		return nil
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		log.Printf("load %s: malformed data discarded: %v", key, err)
		return nil
	}
	return tasks
}

// Tasks returns a copy of the active collection.
func (s *Store) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Task(nil), s.tasks...)
}

// Archived returns a copy of the archived collection.
func (s *Store) Archived() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Task(nil), s.archive...)
}

// persistTasks writes the active collection. Best effort: failures are
// logged, in-memory state stays authoritative.
func (s *Store) persistTasks() {
	s.persist(keyTasks, s.tasks)
}

func (s *Store) persistArchive() {
	s.persist(keyArchive, s.archive)
}

func (s *Store) persist(key string, tasks []Task) {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		log.Printf("persist %s: %v", key, err)
		return
	}
	if err := s.kv.Set(key, data); err != nil {
		log.Printf("persist %s: %v", key, err)
	}
}

// hasID reports whether the id exists in either collection. Caller holds mu.
func (s *Store) hasID(id string) bool {
	for _, t := range s.tasks {
		if t.ID == id {
			return true
		}
	}
	for _, t := range s.archive {
		if t.ID == id {
			return true
		}
	}
	return false
}

// resolveID expands an exact ID or unique prefix against the given
// collection. Caller holds mu.
func resolveID(tasks []Task, id string) (int, error) {
	needle := strings.ToLower(strings.TrimSpace(id))
	if needle == "" {
		return 0, ErrTaskNotFound
	}

	matched := -1
	for i, t := range tasks {
		candidate := strings.ToLower(t.ID)
		if candidate == needle {
			return i, nil
		}
		if strings.HasPrefix(candidate, needle) {
			if matched >= 0 {
				return 0, ErrAmbiguousIDPrefix
			}
			matched = i
		}
	}

	if matched < 0 {
		return 0, ErrTaskNotFound
	}
	return matched, nil
}

// HiddenCards returns the persisted set of hidden stat-card IDs.
func (s *Store) HiddenCards() map[StatCard]bool {
	data, ok, err := s.kv.Get(keyHiddenCards)
	if err != nil || !ok {
		if err != nil {
			log.Printf("load %s: %v", keyHiddenCards, err)
		}
		return map[StatCard]bool{}
	}

	var ids []StatCard
	if err := json.Unmarshal(data, &ids); err != nil {
		log.Printf("load %s: malformed data discarded: %v", keyHiddenCards, err)
		return map[StatCard]bool{}
	}

	hidden := make(map[StatCard]bool, len(ids))
	for _, id := range ids {
		hidden[id] = true
	}
	return hidden
}

// SetHiddenCards persists the set of hidden stat-card IDs.
func (s *Store) SetHiddenCards(hidden map[StatCard]bool) {
	ids := make([]StatCard, 0, len(hidden))
	for _, card := range ValidStatCards() {
		if hidden[card] {
			ids = append(ids, card)
		}
	}

	data, err := json.Marshal(ids)
	if err != nil {
		log.Printf("persist %s: %v", keyHiddenCards, err)
		return
	}
	if err := s.kv.Set(keyHiddenCards, data); err != nil {
		log.Printf("persist %s: %v", keyHiddenCards, err)
	}
}

// Theme values.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Theme returns the persisted theme choice, defaulting to dark.
func (s *Store) Theme() string {
	data, ok, err := s.kv.Get(keyTheme)
	if err != nil || !ok {
		if err != nil {
			log.Printf("load %s: %v", keyTheme, err)
		}
		return ThemeDark
	}

	var theme string
	if err := json.Unmarshal(data, &theme); err != nil {
		log.Printf("load %s: malformed data discarded: %v", keyTheme, err)
		return ThemeDark
	}
	if theme != ThemeDark && theme != ThemeLight {
		return ThemeDark
	}
	return theme
}

// SetTheme persists the theme choice.
func (s *Store) SetTheme(theme string) {
	data, err := json.Marshal(theme)
	if err != nil {
		log.Printf("persist %s: %v", keyTheme, err)
		return
	}
	if err := s.kv.Set(keyTheme, data); err != nil {
		log.Printf("persist %s: %v", keyTheme, err)
	}
}
