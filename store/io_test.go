// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/tenderboard/tenderboard/models"
	"github.com/tenderboard/tenderboard/store"
	"github.com/tenderboard/tenderboard/testutil"
)

// buildActivity gives a store a representative spread of state: ratings,
// notes, tries, community votes, and a voted poll.
func buildActivity(t *testing.T, s *store.Store) {
	t.Helper()

	testutil.StepClock(s, testClockStart, testClockStep)
	testutil.Rate(t, s, "canes", 9.0)
	testutil.Rate(t, s, "albaik", 8.5)
	if err := s.UpdateTender("canes", models.TenderUpdate{Notes: ptr("sauce carries")}); err != nil {
		t.Fatalf("Notes update failed: %v", err)
	}
	if err := s.IncrementTries("canes"); err != nil {
		t.Fatalf("IncrementTries failed: %v", err)
	}
	if err := s.SubmitVote("canes", 5, "🔥", "elite"); err != nil {
		t.Fatalf("SubmitVote failed: %v", err)
	}
	if err := s.SubmitVote("albaik", 4, "🧄", "garlic wins"); err != nil {
		t.Fatalf("SubmitVote failed: %v", err)
	}
	if err := s.SetPoll("canes", "popeyes"); err != nil {
		t.Fatalf("SetPoll failed: %v", err)
	}
	if err := s.VotePoll(models.SideA); err != nil {
		t.Fatalf("VotePoll failed: %v", err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	s := testutil.SeededStore(t)
	buildActivity(t, s)

	tenders := s.Tenders()
	votes := s.CommunityVotes()
	poll, _ := s.Poll()

	data, err := s.ExportData()
	if err != nil {
		t.Fatalf("ExportData failed: %v", err)
	}

	s.ResetAll()
	if got, _ := s.Tender("canes"); got.Overall != 0 || got.Notes != "" {
		t.Fatal("ResetAll left personal data behind")
	}

	if err := s.ImportData(data); err != nil {
		t.Fatalf("ImportData failed: %v", err)
	}

	if got := s.Tenders(); !reflect.DeepEqual(got, tenders) {
		t.Error("Tenders differ after round trip")
	}
	if got := s.CommunityVotes(); !reflect.DeepEqual(got, votes) {
		t.Errorf("Votes differ after round trip: %+v", got)
	}
	if got, ok := s.Poll(); !ok || !reflect.DeepEqual(got, poll) {
		t.Errorf("Poll differs after round trip: %+v", got)
	}

	// The session is not part of the export: the reset voting flags stay
	// cleared, so this session may vote again.
	if s.Session().Voted["canes"] || s.Session().PollVoted {
		t.Error("Import must not restore session voting flags")
	}
}

func TestImportMalformed(t *testing.T) {
	s := testutil.SeededStore(t)
	buildActivity(t, s)
	before := s.Tenders()
	votes := s.CommunityVotes()

	err := s.ImportData(`{"personal": {broken`)
	if !errors.Is(err, models.ErrInvalidImport) {
		t.Fatalf("err = %v, want ErrInvalidImport", err)
	}

	if !reflect.DeepEqual(s.Tenders(), before) {
		t.Error("Malformed import changed tenders")
	}
	if !reflect.DeepEqual(s.CommunityVotes(), votes) {
		t.Error("Malformed import changed the vote log")
	}
}

func TestImportPartialFields(t *testing.T) {
	s := testutil.SeededStore(t)
	testutil.Rate(t, s, "canes", 9.0)

	err := s.ImportData(`{"personal": {"canes": {"notes": "goated"}}}`)
	if err != nil {
		t.Fatalf("ImportData failed: %v", err)
	}

	canes, _ := s.Tender("canes")
	if canes.Notes != "goated" {
		t.Errorf("Notes = %q, want goated", canes.Notes)
	}
	if canes.Overall != 9.0 {
		t.Errorf("Absent fields must keep current values, overall = %v", canes.Overall)
	}
}

func TestImportSkipsUnknownTenders(t *testing.T) {
	s := testutil.SeededStore(t)

	err := s.ImportData(`{"personal": {"ghost": {"tries": 7}}}`)
	if err != nil {
		t.Fatalf("ImportData failed: %v", err)
	}
	if _, ok := s.Tender("ghost"); ok {
		t.Error("Import must not create tenders")
	}
	if len(s.Tenders()) != len(models.SeedTenders) {
		t.Errorf("Tender count changed: %d", len(s.Tenders()))
	}
}

func TestImportCommunityReplacement(t *testing.T) {
	s := testutil.SeededStore(t)
	buildActivity(t, s)

	// Absent community key: the current log stays.
	if err := s.ImportData(`{}`); err != nil {
		t.Fatalf("ImportData failed: %v", err)
	}
	if len(s.CommunityVotes()) != 2 {
		t.Errorf("Votes after keyless import = %d, want 2", len(s.CommunityVotes()))
	}

	// An explicit empty list replaces the log wholesale.
	if err := s.ImportData(`{"community": []}`); err != nil {
		t.Fatalf("ImportData failed: %v", err)
	}
	if len(s.CommunityVotes()) != 0 {
		t.Errorf("Votes after empty-list import = %d, want 0", len(s.CommunityVotes()))
	}
}

func TestExportIsIndentedJSON(t *testing.T) {
	s := testutil.SeededStore(t)

	data, err := s.ExportData()
	if err != nil {
		t.Fatalf("ExportData failed: %v", err)
	}
	if !strings.HasPrefix(data, "{\n  ") {
		t.Errorf("Export not pretty-printed: %.20q", data)
	}
	if !strings.Contains(data, `"community": []`) {
		t.Error("Empty vote log should export as [] rather than null")
	}
	if strings.Contains(data, `"session"`) {
		t.Error("Export must not contain the session")
	}
}

func TestResetAll(t *testing.T) {
	kv := testutil.MemoryKV(t)
	s := store.Open(kv)
	buildActivity(t, s)
	id := s.Session().ID

	s.ResetAll()

	if !reflect.DeepEqual(s.Tenders()[0], models.SeedTenders[0]) {
		t.Error("Tenders not restored to seed values")
	}
	canes, _ := s.Tender("canes")
	if canes.Overall != 0 || canes.Tries != 0 || canes.Notes != "" {
		t.Errorf("Personal data survived reset: %+v", canes)
	}
	if len(s.CommunityVotes()) != 0 {
		t.Error("Vote log survived reset")
	}
	if _, ok := s.Poll(); ok {
		t.Error("Poll survived reset")
	}

	sess := s.Session()
	if sess.ID != id {
		t.Errorf("Session id changed: %s vs %s", sess.ID, id)
	}
	if len(sess.Voted) != 0 || sess.PollVoted {
		t.Error("Voting flags survived reset")
	}

	// The erase reaches storage too: a reopen sees a clean slate with the
	// same session.
	reopened := store.Open(kv)
	if got, _ := reopened.Tender("canes"); got.Overall != 0 {
		t.Error("Persisted personal data survived reset")
	}
	if reopened.Session().ID != id {
		t.Error("Session id lost across reset and reopen")
	}
}
