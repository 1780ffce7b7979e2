// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store owns the in-memory board state and its mutations.

# Lifecycle

Open merges the seed tender list with whatever the key-value store holds
and creates a session on first load:

	kv, err := storage.Open(cfg.Storage)
	...
	s := store.Open(kv)

Every mutation writes through to storage best-effort: a failed write is
logged, the in-memory state stays mutated, and the caller never sees the
error. There is no locking: the board is single-session and the store is
not safe for concurrent use.

# Mutations

  - UpdateTender / IncrementTries: personal rating data. The overall score
    is always derived from the sub-metrics, never accepted from callers.
  - SubmitVote: appends to the community vote log after the duplicate,
    length, throttle, and deny-list checks. One vote per tender per
    session, three seconds between submissions.
  - SetPoll / VotePoll: the head-to-head poll. One poll vote per session.
  - ImportData / ExportData: the JSON blob with personal, community, and
    poll sections. Malformed input changes nothing.
  - ResetAll: back to seeds; keeps the session id.

Validation failures come back as models sentinel errors and leave the
store unmodified; the caller decides how to present the rejection.

# Reads

Accessors return copies (Tenders in seed order), so rankings from the
scoring package never alias live store state.
*/
package store
