// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package storage persists the board's four records to a local key-value store.

# Records

Each record is stored independently under a namespaced key:

  - tb:v1:personal          (per-tender sub/overall/tries/notes)
  - tb:v1:community:votes   (ordered vote log)
  - tb:v1:community:poll    (the active poll, or null)
  - tb:v1:session           (per-device session)

The namespace prefix is fixed; a format change would require a new prefix.
There is no versioning or migration logic.

# Backends

Three interchangeable KV implementations, selected by Config.Type:

	kv, err := storage.Open(storage.Config{Type: "sqlite", Path: "tenderboard.db"})

  - sqlite (default): single kv table in a local file, pure Go driver.
    ":memory:" gives an ephemeral store for tests.
  - postgres: the same table and queries over lib/pq. Statements use $1
    placeholders so both SQL backends share one code path.
  - badger: embedded key-value directory, no SQL involved.

# Guarantees

None beyond best-effort. Writes are fire-and-forget from the store's point
of view; a crash between a mutation and its write loses that write.
*/
package storage
