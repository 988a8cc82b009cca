// Package storage provides the durable key/value mirror of the tracker's
// in-memory state. Adapters are passive: they are written on every state
// change and read once at session startup.
package storage

import "fmt"

// Logical keys for the three persisted values.
const (
	KeyEmotions = "emotionData"
	KeyJournal  = "journalData"
	KeyGoal     = "emotionGoal"
)

// Adapter is the persistence contract. Load returns ok=false for a missing
// key and must not treat absence as an error. Values are opaque serialized
// documents; decoding (and corrupt-value fallback) is the caller's concern.
type Adapter interface {
	Load(key string) (value string, ok bool, err error)
	Save(key, value string) error
}

var (
	_ Adapter = (*MemoryAdapter)(nil)
	_ Adapter = (*FileAdapter)(nil)
	_ Adapter = (*SQLiteAdapter)(nil)
)

// Open constructs an adapter for the given backend name. The file and sqlite
// backends require a path.
func Open(backend, path string) (Adapter, error) {
	switch backend {
	case "memory", "":
		return NewMemoryAdapter(), nil
	case "file":
		if path == "" {
			return nil, fmt.Errorf("storage: file backend requires a path")
		}
		return NewFileAdapter(path), nil
	case "sqlite":
		if path == "" {
			return nil, fmt.Errorf("storage: sqlite backend requires a path")
		}
		a, err := NewSQLiteAdapter(path)
		if err != nil {
			return nil, err
		}
		return a, nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}
