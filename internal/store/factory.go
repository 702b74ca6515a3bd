package store

import (
	"errors"
	"strings"
)

const (
	EngineJSON     = "json"
	EngineSQLite   = "sqlite"
	EngineMemory   = "memory"
	EnginePostgres = "postgres"
)

// NewByEngine opens the store named by engine. path is the data file for the
// file-backed engines; dsn is only used by postgres.
func NewByEngine(engine, path, dsn string) (KeyValueStore, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineJSON:
		return NewJSONStore(path)
	case EngineSQLite:
		return NewSQLiteStore(path)
	case EngineMemory:
		return NewMemoryStore(), nil
	case EnginePostgres:
		if strings.TrimSpace(dsn) == "" {
			return nil, errors.New("postgres store needs a database url")
		}
		return NewPostgresStore(dsn)
	default:
		return nil, errors.New("unsupported store engine: " + engine)
	}
}
