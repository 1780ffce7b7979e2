// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"math"

	"github.com/tenderboard/tenderboard/models"
)

// Compatibility is a twin-quiz outcome: a 0-100 percentage and its tier text.
type Compatibility struct {
	Compat int    `json:"compat"`
	Text   string `json:"compatText"`
}

// PartnerResult is the archetype best matching an answer vector.
type PartnerResult struct {
	Archetype     models.PartnerArchetype `json:"archetype"`
	Compatibility int                     `json:"compatibility"`
	Text          string                  `json:"compatText"`
}

// vectorCompat converts the summed axis distance between two vectors into a
// 0-100 score. Six axes of range 2 give a maximum distance of 12.
func vectorCompat(a, b models.QuizVector) int {
	diff := 0
	for i := range a {
		diff += absInt(a[i] - b[i])
	}
	return int(math.Round(100 - float64(diff)/12*100))
}

// TwinCompatibility scores two answer vectors against each other.
// Identical vectors score 100, maximally divergent vectors score 0.
func TwinCompatibility(a, b models.QuizVector) Compatibility {
	compat := vectorCompat(a, b)

	text := "Opposites snack-tract."
	switch {
	case compat >= 90:
		text = "Sauce-mates."
	case compat >= 70:
		text = "Crisp compatible."
	}

	return Compatibility{Compat: compat, Text: text}
}

// PartnerMatch finds the partner archetype closest to an answer vector,
// using the same compatibility formula as the twin quiz over the archetype's
// tag vector. Ties keep the earlier archetype in the fixed list.
func PartnerMatch(vector models.QuizVector) PartnerResult {
	best := models.PartnerArchetypes[0]
	bestCompat := vectorCompat(vector, best.Tags.Vector())
	for _, a := range models.PartnerArchetypes[1:] {
		if c := vectorCompat(vector, a.Tags.Vector()); c > bestCompat {
			best, bestCompat = a, c
		}
	}

	text := models.PartnerCopyLow
	switch {
	case bestCompat >= 90:
		text = models.PartnerCopyHigh
	case bestCompat >= 70:
		text = models.PartnerCopyMedium
	}

	return PartnerResult{Archetype: best, Compatibility: bestCompat, Text: text}
}
