// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tenderboard/tenderboard/models"
	"github.com/tenderboard/tenderboard/testutil"
)

var (
	testClockStart = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	testClockStep  = 4 * time.Second // comfortably past the 3s throttle
)

func TestSubmitVote(t *testing.T) {
	s := testutil.SeededStore(t)
	testutil.StepClock(s, testClockStart, testClockStep)

	if err := s.SubmitVote("canes", 5, "🔥", "elite sauce"); err != nil {
		t.Fatalf("SubmitVote failed: %v", err)
	}

	votes := s.CommunityVotes()
	if len(votes) != 1 {
		t.Fatalf("Expected 1 vote, got %d", len(votes))
	}
	v := votes[0]
	if v.TenderID != "canes" || v.Stars != 5 || v.Emoji != "🔥" || v.Blurb != "elite sauce" {
		t.Errorf("Vote fields wrong: %+v", v)
	}
	if v.TS != testClockStart.Add(testClockStep).UnixMilli() {
		t.Errorf("TS = %d, want clock reading", v.TS)
	}
	if !s.Session().Voted["canes"] {
		t.Error("Session not marked as voted")
	}
}

func TestSubmitVoteUnknownTender(t *testing.T) {
	s := testutil.SeededStore(t)
	testutil.StepClock(s, testClockStart, time.Second)

	err := s.SubmitVote("ghost", 5, "", "spectral crunch")
	if !errors.Is(err, models.ErrUnknownTender) {
		t.Fatalf("err = %v, want ErrUnknownTender", err)
	}
	if len(s.CommunityVotes()) != 0 {
		t.Error("Rejected vote must not reach the log")
	}
	if s.Session().Voted["ghost"] {
		t.Error("Rejected vote must not mark the tender as voted")
	}

	// The rejection must not consume the throttle either.
	if err := s.SubmitVote("canes", 5, "", ""); err != nil {
		t.Errorf("Vote after rejected submission failed: %v", err)
	}
}

func TestSubmitVoteInvalidStars(t *testing.T) {
	s := testutil.SeededStore(t)
	testutil.StepClock(s, testClockStart, testClockStep)

	for _, stars := range []int{0, 6, -1} {
		if err := s.SubmitVote("canes", stars, "", ""); !errors.Is(err, models.ErrInvalidStars) {
			t.Errorf("stars=%d: err = %v, want ErrInvalidStars", stars, err)
		}
	}
	if len(s.CommunityVotes()) != 0 {
		t.Error("Rejected votes must not be recorded")
	}
}

func TestSubmitVoteDuplicate(t *testing.T) {
	s := testutil.SeededStore(t)
	testutil.StepClock(s, testClockStart, testClockStep)

	if err := s.SubmitVote("canes", 5, "", ""); err != nil {
		t.Fatalf("First vote failed: %v", err)
	}

	// The duplicate check fires before the length check, so even an oversized
	// blurb reports ErrAlreadyVoted.
	err := s.SubmitVote("canes", 3, "", strings.Repeat("x", 100))
	if !errors.Is(err, models.ErrAlreadyVoted) {
		t.Errorf("err = %v, want ErrAlreadyVoted", err)
	}
	if len(s.CommunityVotes()) != 1 {
		t.Errorf("Vote log grew on rejection: %d entries", len(s.CommunityVotes()))
	}
}

func TestSubmitVoteBlurbLength(t *testing.T) {
	s := testutil.SeededStore(t)
	testutil.StepClock(s, testClockStart, testClockStep)

	if err := s.SubmitVote("canes", 4, "", strings.Repeat("a", 80)); err != nil {
		t.Fatalf("80-char blurb rejected: %v", err)
	}
	err := s.SubmitVote("kfc", 4, "", strings.Repeat("a", 81))
	if !errors.Is(err, models.ErrBlurbTooLong) {
		t.Errorf("err = %v, want ErrBlurbTooLong", err)
	}
}

func TestSubmitVoteThrottle(t *testing.T) {
	s := testutil.SeededStore(t)
	testutil.StepClock(s, testClockStart, time.Second)

	if err := s.SubmitVote("canes", 5, "", ""); err != nil {
		t.Fatalf("First vote failed: %v", err)
	}

	// One second later, against a different tender: still throttled.
	err := s.SubmitVote("kfc", 4, "", "")
	if !errors.Is(err, models.ErrRateLimited) {
		t.Errorf("err = %v, want ErrRateLimited", err)
	}
	if s.Session().Voted["kfc"] {
		t.Error("Throttled vote must not mark the tender as voted")
	}

	// Two seconds after the first vote: still inside the window.
	if err := s.SubmitVote("kfc", 4, "", ""); !errors.Is(err, models.ErrRateLimited) {
		t.Errorf("err = %v, want ErrRateLimited", err)
	}

	// Exactly three seconds after: allowed.
	if err := s.SubmitVote("kfc", 4, "", ""); err != nil {
		t.Errorf("Vote after cooldown failed: %v", err)
	}
}

func TestSubmitVoteDenyList(t *testing.T) {
	s := testutil.SeededStore(t)
	testutil.StepClock(s, testClockStart, testClockStep)

	err := s.SubmitVote("canes", 1, "", "honestly the WORST tenders in town")
	if !errors.Is(err, models.ErrBlurbDenied) {
		t.Errorf("err = %v, want ErrBlurbDenied", err)
	}
	if s.Session().Voted["canes"] {
		t.Error("Denied vote must not mark the tender as voted")
	}

	// The tender stays votable once the blurb is clean.
	if err := s.SubmitVote("canes", 1, "", "not my thing"); err != nil {
		t.Errorf("Clean retry failed: %v", err)
	}
}

func TestSetPoll(t *testing.T) {
	s := testutil.SeededStore(t)
	testutil.StepClock(s, testClockStart, testClockStep)

	if err := s.SetPoll("canes", "ghost"); !errors.Is(err, models.ErrUnknownTender) {
		t.Errorf("err = %v, want ErrUnknownTender", err)
	}
	if _, ok := s.Poll(); ok {
		t.Fatal("Failed SetPoll must not install a poll")
	}

	if err := s.SetPoll("canes", "popeyes"); err != nil {
		t.Fatalf("SetPoll failed: %v", err)
	}
	poll, ok := s.Poll()
	if !ok {
		t.Fatal("Expected an active poll")
	}
	if poll.ATenderID != "canes" || poll.BTenderID != "popeyes" {
		t.Errorf("Poll sides wrong: %+v", poll)
	}
	if poll.VotesA != 0 || poll.VotesB != 0 {
		t.Errorf("New poll should start at zero: %+v", poll)
	}
}

func TestVotePoll(t *testing.T) {
	s := testutil.SeededStore(t)
	testutil.StepClock(s, testClockStart, testClockStep)

	if err := s.VotePoll(models.SideA); !errors.Is(err, models.ErrNoActivePoll) {
		t.Errorf("err = %v, want ErrNoActivePoll", err)
	}

	if err := s.SetPoll("canes", "popeyes"); err != nil {
		t.Fatalf("SetPoll failed: %v", err)
	}
	if err := s.VotePoll(models.PollSide("c")); !errors.Is(err, models.ErrInvalidSide) {
		t.Errorf("err = %v, want ErrInvalidSide", err)
	}
	if err := s.VotePoll(models.SideA); err != nil {
		t.Fatalf("VotePoll failed: %v", err)
	}

	poll, _ := s.Poll()
	if poll.VotesA != 1 || poll.VotesB != 0 {
		t.Errorf("Votes = %d/%d, want 1/0", poll.VotesA, poll.VotesB)
	}

	if err := s.VotePoll(models.SideB); !errors.Is(err, models.ErrPollAlreadyVoted) {
		t.Errorf("err = %v, want ErrPollAlreadyVoted", err)
	}

	// A fresh poll re-opens voting for the session.
	if err := s.SetPoll("kfc", "albaik"); err != nil {
		t.Fatalf("Second SetPoll failed: %v", err)
	}
	if err := s.VotePoll(models.SideB); err != nil {
		t.Errorf("Vote on fresh poll failed: %v", err)
	}
	poll, _ = s.Poll()
	if poll.VotesB != 1 {
		t.Errorf("VotesB = %d, want 1", poll.VotesB)
	}
}
