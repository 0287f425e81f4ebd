package db

import (
	"fmt"
	"strings"
	"time"
)

// StoreConfig holds configuration for the storage backend
type StoreConfig struct {
	Type             string // "sqlite", "postgres" or "redis"
	ConnectionString string // File path for SQLite, DSN for Postgres
	RedisAddr        string
	RedisTTL         time.Duration
}

// DefaultSQLitePath is used when the sqlite archive has no path configured.
const DefaultSQLitePath = ".benchledger.db"

// NewStore creates a new Store instance based on the provided configuration
func NewStore(config StoreConfig) (Store, error) {
	switch strings.ToLower(config.Type) {
	case "postgres", "postgresql":
		if config.ConnectionString == "" {
			return nil, fmt.Errorf("postgres connection string is required")
		}
		return NewPostgresStore(config.ConnectionString)
	case "sqlite", "sqlite3":
		if config.ConnectionString == "" {
			config.ConnectionString = DefaultSQLitePath
		}
		return NewSQLiteStore(config.ConnectionString)
	case "redis":
		if config.RedisAddr == "" {
			return nil, fmt.Errorf("redis address is required")
		}
		return NewRedisStore(NewGoRedisClient(config.RedisAddr), config.RedisTTL), nil
	case "":
		return nil, fmt.Errorf("no archive store configured")
	default:
		return nil, fmt.Errorf("unsupported store type: %s", config.Type)
	}
}
