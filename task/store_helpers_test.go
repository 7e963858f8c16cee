package task

import "testing"

// memKV is an in-memory stand-in for the SQLite key-value store.
type memKV struct {
	data map[string][]byte
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (m *memKV) Get(key string) ([]byte, bool, error) {
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *memKV) Set(key string, value []byte) error {
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func newTestStore(t *testing.T) (*Store, *memKV) {
	t.Helper()

	kv := newMemKV()
	return OpenStore(kv), kv
}

func mustCreate(t *testing.T, store *Store, name string, opts CreateOptions) *Task {
	t.Helper()

	created, err := store.Create(name, opts)
	if err != nil {
		t.Fatalf("failed to create task %q: %v", name, err)
	}
	return created
}
