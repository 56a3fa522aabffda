// Package backend opens the registry implementation named in configuration.
package backend

import (
	"fmt"

	"github.com/mmynk/homebills/internal/storage"
	"github.com/mmynk/homebills/internal/storage/memory"
	"github.com/mmynk/homebills/internal/storage/sqlite"
)

const (
	Memory = "memory"
	SQLite = "sqlite"
)

// Open returns a fresh, empty store for the named backend.
func Open(name string) (storage.Store, error) {
	switch name {
	case Memory, "":
		return memory.New(), nil
	case SQLite:
		store, err := sqlite.New()
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", name)
	}
}
