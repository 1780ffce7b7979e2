// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "math"

// Badge symbols, in evaluation order.
const (
	BadgeSpice    = "🔥"
	BadgeValue    = "💸"
	BadgeComfort  = "🧈"
	BadgeIcon     = "⭐"
	BadgeWildcard = "🧪"
	BadgeTryhard  = "🏆"
)

// CalculateOverall returns the arithmetic mean of the six sub-metrics,
// rounded to one decimal.
func CalculateOverall(sub SubMetrics) float64 {
	sum := sub.Taste + sub.Crunch + sub.Juiciness + sub.Breading + sub.Sauce + sub.Value
	return math.Round(sum/6*10) / 10
}

// Badges returns the badges a tender currently qualifies for. Rules are
// evaluated in a fixed order and the result follows that order, unsorted.
func Badges(t Tender) []string {
	var badges []string

	if t.Tags.Heat == 2 {
		badges = append(badges, BadgeSpice)
	}
	if t.Tags.Price == 0 && t.Overall >= 8.0 {
		badges = append(badges, BadgeValue)
	}
	if t.Tags.Comfort == 0 {
		badges = append(badges, BadgeComfort)
	}
	if IsIcon(t.Name) {
		badges = append(badges, BadgeIcon)
	}
	if t.Overall >= 8.0 && t.Tags.Heat == 0 && t.Tags.Crunch == 0 {
		badges = append(badges, BadgeWildcard)
	}
	if t.Tries >= 3 {
		badges = append(badges, BadgeTryhard)
	}

	return badges
}
