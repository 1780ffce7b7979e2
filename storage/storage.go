// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when a key has no stored value.
var ErrNotFound = errors.New("key not found")

// Namespace is the fixed key prefix for all persisted records. A format
// change requires a new prefix.
const Namespace = "tb:v1"

// Record keys, one per persisted record.
const (
	KeyPersonal       = Namespace + ":personal"
	KeyCommunityVotes = Namespace + ":community:votes"
	KeyPoll           = Namespace + ":community:poll"
	KeySession        = Namespace + ":session"
)

// KV is the key-value persistence collaborator. Implementations are not
// required to be durable; writes are best-effort.
type KV interface {
	// Get returns the stored value for key, or ErrNotFound.
	Get(key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
	Close() error
}

// Config selects and configures a storage backend.
type Config struct {
	Type string `yaml:"STORAGE_TYPE" env:"STORAGE_TYPE" env-default:"sqlite"`
	Path string `yaml:"STORAGE_PATH" env:"STORAGE_PATH" env-default:"tenderboard.db"`
	URL  string `yaml:"DATABASE_URL" env:"DATABASE_URL"`
}

// Open creates the backend named by cfg.Type:
//
//   - "sqlite" (default): file database at cfg.Path, ":memory:" for tests
//   - "postgres": server database at cfg.URL
//   - "badger": embedded key-value directory at cfg.Path
func Open(cfg Config) (KV, error) {
	switch cfg.Type {
	case "", "sqlite":
		return OpenSQLite(cfg.Path)
	case "postgres":
		if cfg.URL == "" {
			return nil, errors.New("postgres storage requires DATABASE_URL")
		}
		return OpenPostgres(cfg.URL)
	case "badger":
		return OpenBadger(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}
