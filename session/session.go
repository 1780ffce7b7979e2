// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"github.com/google/uuid"

	"github.com/tenderboard/tenderboard/models"
)

// NewID creates a random session identifier. Session ids carry no secrets
// and are never validated against anything; they only distinguish devices
// in exported data.
func NewID() string {
	return uuid.NewString()
}

// New creates a fresh session with nothing voted yet.
func New() models.Session {
	return models.Session{
		ID:    NewID(),
		Voted: make(map[string]bool),
	}
}
