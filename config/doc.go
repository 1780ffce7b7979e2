// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package config loads environment-driven configuration.

Settings come from a .env file when one exists, then the process
environment:

  - STORAGE_TYPE: sqlite (default), postgres, or badger
  - STORAGE_PATH: sqlite file / badger directory (default: tenderboard.db)
  - DATABASE_URL: postgres connection string (postgres backend only)
  - LOG_LEVEL: slog level (default: info)

Usage:

	cfg, err := config.New()
	if err != nil {
		...
	}
	kv, err := storage.Open(cfg.Storage)
*/
package config
