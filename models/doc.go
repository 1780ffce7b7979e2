// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain entities, fixed lookup tables, and pure
domain helpers for the tender board.

# Entities

  - Tender: a rateable item with six sub-metrics, derived overall score,
    try counter, notes, and six categorical tag axes
  - SessionVote: one immutable community vote (stars, emoji, blurb)
  - Poll: a head-to-head tally between two tenders
  - Session: per-device voting state (id, voted set, poll flag, throttle)

# Fixed Data

Loaded once at process start and never mutated:

  - SeedTenders: the startup tender list
  - IconSet: names qualifying for the icon badge and quiz bonus
  - PersonalityBlurbs: quiz top-match text per tender id
  - DenyList: substrings rejected in vote blurbs
  - BadgeDefinitions, QuizQuestions, PartnerArchetypes

# Domain Helpers

CalculateOverall averages the six sub-metrics to one decimal:

	overall := models.CalculateOverall(sub)

Badges evaluates the six badge rules in fixed order:

	badges := models.Badges(tender)

# Errors

Sentinel errors for store validation failures (ErrAlreadyVoted,
ErrRateLimited, ErrBlurbTooLong, ...). Compare with errors.Is; every
failure leaves the store unmodified.
*/
package models
