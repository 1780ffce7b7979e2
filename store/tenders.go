// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "github.com/tenderboard/tenderboard/models"

// UpdateTender merges the non-nil fields of upd into the named tender.
// When Sub is present the overall is recomputed from it; the derived value
// always wins over a caller-supplied Overall.
func (s *Store) UpdateTender(id string, upd models.TenderUpdate) error {
	t, ok := s.tenders[id]
	if !ok {
		return models.ErrUnknownTender
	}

	if upd.Sub != nil {
		t.Sub = *upd.Sub
		t.Overall = models.CalculateOverall(*upd.Sub)
	}
	if upd.Tries != nil {
		t.Tries = *upd.Tries
	}
	if upd.Notes != nil {
		t.Notes = *upd.Notes
	}

	s.tenders[id] = t
	s.savePersonal()
	return nil
}

// IncrementTries bumps the try counter for the named tender.
func (s *Store) IncrementTries(id string) error {
	t, ok := s.tenders[id]
	if !ok {
		return models.ErrUnknownTender
	}

	t.Tries++
	s.tenders[id] = t
	s.savePersonal()
	return nil
}
