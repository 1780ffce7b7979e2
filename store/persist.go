// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"log/slog"

	"github.com/goccy/go-json"

	"github.com/tenderboard/tenderboard/models"
	"github.com/tenderboard/tenderboard/storage"
)

// personalRecord is the persisted shape of a tender's personal fields.
type personalRecord struct {
	Sub     models.SubMetrics `json:"sub"`
	Overall float64           `json:"overall"`
	Tries   int               `json:"tries"`
	Notes   string            `json:"notes"`
}

// load pulls the four records out of the key-value store and merges them
// onto the seed state. Missing or unreadable records keep their defaults.
func (s *Store) load() {
	if s.kv == nil {
		s.newSession()
		return
	}

	var personal map[string]personalRecord
	if s.loadRecord(storage.KeyPersonal, &personal) {
		for id, rec := range personal {
			t, ok := s.tenders[id]
			if !ok {
				continue
			}
			t.Sub = rec.Sub
			t.Overall = rec.Overall
			t.Tries = rec.Tries
			t.Notes = rec.Notes
			s.tenders[id] = t
		}
	}

	s.loadRecord(storage.KeyCommunityVotes, &s.votes)
	s.loadRecord(storage.KeyPoll, &s.poll)

	var sess models.Session
	if s.loadRecord(storage.KeySession, &sess) && sess.ID != "" {
		if sess.Voted == nil {
			sess.Voted = make(map[string]bool)
		}
		s.session = sess
		return
	}
	s.newSession()
}

// loadRecord reads and decodes one record. Reports whether v was populated.
func (s *Store) loadRecord(key string, v any) bool {
	data, err := s.kv.Get(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			slog.Warn("failed to load record", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		slog.Warn("failed to decode record", "key", key, "error", err)
		return false
	}
	return true
}

// saveRecord encodes and writes one record, best-effort.
func (s *Store) saveRecord(key string, v any) {
	if s.kv == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to encode record", "key", key, "error", err)
		return
	}
	if err := s.kv.Set(key, data); err != nil {
		slog.Error("failed to persist record", "key", key, "error", err)
	}
}

func (s *Store) savePersonal() {
	personal := make(map[string]personalRecord, len(s.tenders))
	for id, t := range s.tenders {
		personal[id] = personalRecord{
			Sub:     t.Sub,
			Overall: t.Overall,
			Tries:   t.Tries,
			Notes:   t.Notes,
		}
	}
	s.saveRecord(storage.KeyPersonal, personal)
}

func (s *Store) saveCommunity() {
	s.saveRecord(storage.KeyCommunityVotes, s.votes)
	s.saveRecord(storage.KeyPoll, s.poll)
}

func (s *Store) saveSession() {
	s.saveRecord(storage.KeySession, s.session)
}
