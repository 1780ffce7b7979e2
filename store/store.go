// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"log/slog"
	"time"

	"github.com/tenderboard/tenderboard/models"
	"github.com/tenderboard/tenderboard/session"
	"github.com/tenderboard/tenderboard/storage"
)

// Store holds the full board state for one device session: all tenders,
// the community vote log, the active poll, and the session record. Every
// mutation writes through to the key-value store best-effort; persistence
// failures are logged and never fail the mutation.
//
// Store is single-session by design and not safe for concurrent use.
type Store struct {
	// Now is the clock used for vote timestamps and the submission
	// throttle. Replace it in tests.
	Now func() time.Time

	kv      storage.KV
	tenders map[string]models.Tender
	order   []string
	votes   []models.SessionVote
	poll    *models.Poll
	session models.Session
}

// Open builds a store from the seed list merged with whatever the
// key-value store holds, creating and persisting a fresh session when none
// is saved yet. Unreadable records are logged and fall back to defaults; a
// nil kv gives a purely in-memory store.
func Open(kv storage.KV) *Store {
	s := &Store{
		Now: time.Now,
		kv:  kv,
	}
	s.tenders, s.order = seedTenders()
	s.load()
	return s
}

func seedTenders() (map[string]models.Tender, []string) {
	tenders := make(map[string]models.Tender, len(models.SeedTenders))
	order := make([]string, 0, len(models.SeedTenders))
	for _, t := range models.SeedTenders {
		tenders[t.ID] = t
		order = append(order, t.ID)
	}
	return tenders, order
}

// Tender returns one tender by id.
func (s *Store) Tender(id string) (models.Tender, bool) {
	t, ok := s.tenders[id]
	return t, ok
}

// Tenders returns all tenders in seed order.
func (s *Store) Tenders() []models.Tender {
	tenders := make([]models.Tender, 0, len(s.order))
	for _, id := range s.order {
		tenders = append(tenders, s.tenders[id])
	}
	return tenders
}

// CommunityVotes returns the vote log, oldest first.
func (s *Store) CommunityVotes() []models.SessionVote {
	votes := make([]models.SessionVote, len(s.votes))
	copy(votes, s.votes)
	return votes
}

// Poll returns the active poll, if any.
func (s *Store) Poll() (models.Poll, bool) {
	if s.poll == nil {
		return models.Poll{}, false
	}
	return *s.poll, true
}

// Session returns a copy of the session record.
func (s *Store) Session() models.Session {
	sess := s.session
	sess.Voted = make(map[string]bool, len(s.session.Voted))
	for id, v := range s.session.Voted {
		sess.Voted[id] = v
	}
	return sess
}

// Badges returns the badges a tender currently qualifies for.
func (s *Store) Badges(id string) []string {
	t, ok := s.tenders[id]
	if !ok {
		return nil
	}
	return models.Badges(t)
}

func (s *Store) newSession() {
	s.session = session.New()
	s.saveSession()
	slog.Info("session created", "session_id", s.session.ID)
}
