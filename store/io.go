// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"
	"log/slog"

	"github.com/goccy/go-json"

	"github.com/tenderboard/tenderboard/models"
	"github.com/tenderboard/tenderboard/storage"
)

// exportDoc is the import/export blob: personal fields per tender plus the
// community vote log and poll.
type exportDoc struct {
	Personal  map[string]personalRecord `json:"personal"`
	Community []models.SessionVote      `json:"community"`
	Poll      *models.Poll              `json:"poll"`
}

// importedPersonal mirrors personalRecord with optional fields: anything
// absent keeps its current value on import.
type importedPersonal struct {
	Sub     *models.SubMetrics `json:"sub"`
	Overall *float64           `json:"overall"`
	Tries   *int               `json:"tries"`
	Notes   *string            `json:"notes"`
}

type importDoc struct {
	Personal  map[string]importedPersonal `json:"personal"`
	Community []models.SessionVote        `json:"community"`
	Poll      *models.Poll                `json:"poll"`
}

// ExportData serializes the personal data, community votes, and poll to a
// pretty-printed JSON document. The session is deliberately left out.
func (s *Store) ExportData() (string, error) {
	doc := exportDoc{
		Personal:  make(map[string]personalRecord, len(s.tenders)),
		Community: s.votes,
		Poll:      s.poll,
	}
	if doc.Community == nil {
		doc.Community = []models.SessionVote{}
	}
	for id, t := range s.tenders {
		doc.Personal[id] = personalRecord{
			Sub:     t.Sub,
			Overall: t.Overall,
			Tries:   t.Tries,
			Notes:   t.Notes,
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to export data: %w", err)
	}
	return string(data), nil
}

// ImportData applies a previously exported JSON document. Malformed JSON
// leaves the store untouched. Personal entries merge field by field onto
// known tenders (unknown ids are skipped); the community vote log and poll
// are replaced wholesale when present.
func (s *Store) ImportData(data string) error {
	var doc importDoc
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return fmt.Errorf("%w: %s", models.ErrInvalidImport, err)
	}

	for id, p := range doc.Personal {
		t, ok := s.tenders[id]
		if !ok {
			continue
		}
		if p.Sub != nil {
			t.Sub = *p.Sub
		}
		if p.Overall != nil {
			t.Overall = *p.Overall
		}
		if p.Tries != nil {
			t.Tries = *p.Tries
		}
		if p.Notes != nil {
			t.Notes = *p.Notes
		}
		s.tenders[id] = t
	}

	if doc.Community != nil {
		s.votes = doc.Community
	}
	if doc.Poll != nil {
		s.poll = doc.Poll
	}

	s.savePersonal()
	s.saveCommunity()

	slog.Info("data imported", "tenders", len(doc.Personal), "votes", len(doc.Community))
	return nil
}

// ResetAll restores every tender to its seed values, clears the vote log
// and poll, clears the session's voting flags (the id survives), and
// erases the persisted records.
func (s *Store) ResetAll() {
	s.tenders, s.order = seedTenders()
	s.votes = nil
	s.poll = nil
	s.session.Voted = make(map[string]bool)
	s.session.PollVoted = false

	if s.kv != nil {
		for _, key := range []string{
			storage.KeyPersonal,
			storage.KeyCommunityVotes,
			storage.KeyPoll,
			storage.KeySession,
		} {
			if err := s.kv.Delete(key); err != nil {
				slog.Error("failed to erase record", "key", key, "error", err)
			}
		}
	}
	s.saveSession()

	slog.Info("store reset", "session_id", s.session.ID)
}
