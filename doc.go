// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tenderboard is the umbrella for a local-first chicken tender
rating board: six-axis personal ratings with a derived overall score and
badges, a community vote log with a submission throttle and blurb deny
list, a head-to-head poll, a taste-profile quiz with recommendations and
twin/partner compatibility, and JSON import/export.

Everything lives in the subpackages; this package holds no code.

# Architecture

The module is a library with a small dependency spine:

  - models: domain types, seed catalog, sentinel errors, scoring constants
  - scoring: pure functions over tender lists (leaderboards, quiz,
    recommendations, compatibility)
  - store: the stateful board, one value per process, persisting through
    a storage.KV
  - storage: embedded key-value backends (sqlite, postgres, badger)
  - session: per-install session identity
  - config: environment-driven configuration
  - testutil: shared test fixtures

A typical embedding opens a backend from config and hands it to the
store:

	cfg, _ := config.New()
	kv, _ := storage.Open(cfg.Storage)
	board := store.Open(kv)

See package documentation for each component.
*/
package tenderboard
