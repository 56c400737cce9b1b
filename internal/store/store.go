// Package store provides the persistence collaborators behind the ledger
// engine: a JSON snapshot file, a SQLite database, and a volatile in-memory
// store. All of them load and save whole ledger.Snapshot values; the engine
// does not know which backend it is talking to.
package store

import (
	"fmt"

	"envelope/internal/ledger"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open returns the store backend selected by name. For the file-backed
// backends path is the data file location.
func Open(backend, path string) (ledger.Store, error) {
	switch backend {
	case BackendJSON:
		return NewJSONFile(path), nil
	case BackendSQLite:
		return OpenSQLite(path)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
