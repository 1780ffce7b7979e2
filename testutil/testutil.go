// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"testing"
	"time"

	"github.com/tenderboard/tenderboard/models"
	"github.com/tenderboard/tenderboard/storage"
	"github.com/tenderboard/tenderboard/store"
)

// MemoryKV opens an ephemeral sqlite-backed key-value store, closed when
// the test finishes.
func MemoryKV(t *testing.T) storage.KV {
	t.Helper()

	kv, err := storage.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("Failed to open in-memory store: %v", err)
	}
	t.Cleanup(func() { kv.Close() })

	return kv
}

// SeededStore opens a store over a fresh in-memory KV.
func SeededStore(t *testing.T) *store.Store {
	t.Helper()
	return store.Open(MemoryKV(t))
}

// StepClock replaces the store clock with one that advances by step on
// every reading, starting just after start. Lets tests march through the
// vote submission throttle deterministically.
func StepClock(s *store.Store, start time.Time, step time.Duration) {
	n := 0
	s.Now = func() time.Time {
		n++
		return start.Add(time.Duration(n) * step)
	}
}

// Rate sets all six sub-metrics of a tender to the same value, which makes
// its overall equal to that value.
func Rate(t *testing.T, s *store.Store, id string, value float64) {
	t.Helper()

	sub := models.SubMetrics{
		Taste:     value,
		Crunch:    value,
		Juiciness: value,
		Breading:  value,
		Sauce:     value,
		Value:     value,
	}
	if err := s.UpdateTender(id, models.TenderUpdate{Sub: &sub}); err != nil {
		t.Fatalf("Failed to rate tender %s: %v", id, err)
	}
}

// RatedTenders returns a copy of the seed list with a handful of tenders
// rated, for exercising scoring functions without a store.
func RatedTenders() []models.Tender {
	ratings := map[string]float64{
		"canes":     9.0,
		"albaik":    8.5,
		"kfc":       7.0,
		"popeyes":   8.0,
		"mcdonalds": 6.0,
	}

	tenders := make([]models.Tender, len(models.SeedTenders))
	copy(tenders, models.SeedTenders)
	for i, t := range tenders {
		r, ok := ratings[t.ID]
		if !ok {
			continue
		}
		tenders[i].Sub = models.SubMetrics{
			Taste:     r,
			Crunch:    r,
			Juiciness: r,
			Breading:  r,
			Sauce:     r,
			Value:     r,
		}
		tenders[i].Overall = models.CalculateOverall(tenders[i].Sub)
	}
	return tenders
}
