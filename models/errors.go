// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "errors"

// Validation and lookup errors returned by store operations. All of them
// are recoverable: the operation is a no-op and the caller decides how to
// surface the rejection.
var (
	ErrUnknownTender    = errors.New("unknown tender id")
	ErrAlreadyVoted     = errors.New("already voted for this tender in this session")
	ErrBlurbTooLong     = errors.New("blurb exceeds 80 characters")
	ErrRateLimited      = errors.New("submitting too fast, take a breath")
	ErrBlurbDenied      = errors.New("blurb contains a denied word")
	ErrInvalidStars     = errors.New("stars must be between 1 and 5")
	ErrNoActivePoll     = errors.New("no active poll")
	ErrPollAlreadyVoted = errors.New("already voted in this poll")
	ErrInvalidSide      = errors.New("poll side must be A or B")
	ErrInvalidImport    = errors.New("invalid import data")
)
