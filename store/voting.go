// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/tenderboard/tenderboard/models"
)

// SubmitVote appends a community vote for a tender. Rejection checks run
// in a fixed order: unknown tender, stars out of range, the session
// already voted for the tender, the blurb runs past 80 characters, the
// last submission was less than three seconds ago, the blurb hits the
// deny list. On success the tender is marked voted and the throttle
// timestamp advances.
func (s *Store) SubmitVote(tenderID string, stars int, emoji, blurb string) error {
	if _, ok := s.tenders[tenderID]; !ok {
		return models.ErrUnknownTender
	}
	if stars < models.MinStars || stars > models.MaxStars {
		return models.ErrInvalidStars
	}
	if s.session.Voted[tenderID] {
		return models.ErrAlreadyVoted
	}
	if utf8.RuneCountInString(blurb) > models.MaxBlurbLen {
		return models.ErrBlurbTooLong
	}

	now := s.Now().UnixMilli()
	if now-s.session.LastSubmission < models.SubmitCooldownMS {
		return models.ErrRateLimited
	}

	lower := strings.ToLower(blurb)
	for _, word := range models.DenyList {
		if strings.Contains(lower, word) {
			return models.ErrBlurbDenied
		}
	}

	s.votes = append(s.votes, models.SessionVote{
		TenderID: tenderID,
		Stars:    stars,
		Emoji:    emoji,
		Blurb:    blurb,
		TS:       now,
	})
	s.session.Voted[tenderID] = true
	s.session.LastSubmission = now

	s.saveCommunity()
	s.saveSession()

	slog.Info("vote submitted", "tender_id", tenderID, "stars", stars)
	return nil
}

// SetPoll installs a new head-to-head poll between two tenders, replacing
// any previous poll and re-opening poll voting for this session.
func (s *Store) SetPoll(aTenderID, bTenderID string) error {
	if _, ok := s.tenders[aTenderID]; !ok {
		return models.ErrUnknownTender
	}
	if _, ok := s.tenders[bTenderID]; !ok {
		return models.ErrUnknownTender
	}

	s.poll = &models.Poll{
		ATenderID: aTenderID,
		BTenderID: bTenderID,
		TS:        s.Now().UnixMilli(),
	}
	s.session.PollVoted = false

	s.saveCommunity()
	s.saveSession()
	return nil
}

// VotePoll casts this session's one poll vote for the chosen side.
func (s *Store) VotePoll(side models.PollSide) error {
	if s.poll == nil {
		return models.ErrNoActivePoll
	}
	if s.session.PollVoted {
		return models.ErrPollAlreadyVoted
	}

	switch side {
	case models.SideA:
		s.poll.VotesA++
	case models.SideB:
		s.poll.VotesB++
	default:
		return models.ErrInvalidSide
	}
	s.session.PollVoted = true

	s.saveCommunity()
	s.saveSession()
	return nil
}
