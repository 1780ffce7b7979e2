// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Poll sides for head-to-head voting
type PollSide string

const (
	SideA PollSide = "A"
	SideB PollSide = "B"
)

// Vote constraints
const (
	MinStars         = 1
	MaxStars         = 5
	MaxBlurbLen      = 80
	SubmitCooldownMS = 3000 // minimum gap between vote submissions per session
)

// SubMetrics holds the six personal sub-scores for a tender.
// Each value is in [0, 10] with 0.1 steps.
type SubMetrics struct {
	Taste     float64 `json:"taste"`
	Crunch    float64 `json:"crunch"`
	Juiciness float64 `json:"juiciness"`
	Breading  float64 `json:"breading"`
	Sauce     float64 `json:"sauce"`
	Value     float64 `json:"value"`
}

// TenderTags holds the six categorical axes describing a tender.
// Each axis ranges over {0, 1, 2}. Axis meanings, low to high:
//
//	heat:    mild, medium, spicy
//	crunch:  soft, medium, crunch
//	price:   budget, medium, premium
//	comfort: comfort, balanced, chaotic
//	share:   solo, share, host
//	sauce:   dry, classic, signature
type TenderTags struct {
	Heat    int `json:"heat"`
	Crunch  int `json:"crunch"`
	Price   int `json:"price"`
	Comfort int `json:"comfort"`
	Share   int `json:"share"`
	Sauce   int `json:"sauce"`
}

// Vector returns the tag axes in the fixed quiz order:
// heat, crunch, price, comfort, share, sauce.
func (t TenderTags) Vector() QuizVector {
	return QuizVector{t.Heat, t.Crunch, t.Price, t.Comfort, t.Share, t.Sauce}
}

// QuizVector is a six-element answer vector, one value in {0, 1, 2} per
// tag axis, in the same order as TenderTags.Vector.
type QuizVector [6]int

// Tender is a rateable item. Name and Tags come from the seed list and
// never change; Sub, Overall, Tries and Notes are personal data.
type Tender struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Sub     SubMetrics `json:"sub"`
	Overall float64    `json:"overall"`
	Tries   int        `json:"tries"`
	Notes   string     `json:"notes"`
	Tags    TenderTags `json:"tags"`
}

// TenderUpdate is a partial update for a tender's personal fields.
// Nil fields are left unchanged. Overall is always derived: when Sub is
// present the overall is recomputed from it, otherwise it keeps its
// previous value. A caller-supplied Overall is ignored either way.
type TenderUpdate struct {
	Sub     *SubMetrics `json:"sub,omitempty"`
	Overall *float64    `json:"overall,omitempty"`
	Tries   *int        `json:"tries,omitempty"`
	Notes   *string     `json:"notes,omitempty"`
}

// SessionVote is one community vote for a tender. Immutable once created.
type SessionVote struct {
	TenderID string `json:"tenderId"`
	Stars    int    `json:"stars"`
	Emoji    string `json:"emoji"`
	Blurb    string `json:"blurb"`
	TS       int64  `json:"ts"` // Unix milliseconds
}

// Poll is a head-to-head vote between two tenders. At most one is active.
type Poll struct {
	ATenderID string `json:"aTenderId"`
	BTenderID string `json:"bTenderId"`
	VotesA    int    `json:"votesA"`
	VotesB    int    `json:"votesB"`
	TS        int64  `json:"ts"` // Unix milliseconds
}

// Session is the per-device voting state. Persisted, reset-able, and
// recreated on first load when absent.
type Session struct {
	ID             string          `json:"id"`
	Voted          map[string]bool `json:"voted"`
	PollVoted      bool            `json:"pollVoted"`
	LastSubmission int64           `json:"lastSubmission"` // Unix milliseconds
}

// PartnerArchetype is a fixed quiz persona matched against answer vectors.
type PartnerArchetype struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Emoji string     `json:"emoji"`
	Blurb string     `json:"blurb"`
	Tags  TenderTags `json:"tags"`
}

// QuizQuestion is one of the six fixed quiz prompts, one per tag axis.
type QuizQuestion struct {
	Question string
	Options  []QuizOption
}

// QuizOption is a single answer choice with its axis value.
type QuizOption struct {
	Text  string
	Value int
}

// BadgeInfo describes a badge symbol for display purposes.
type BadgeInfo struct {
	Name        string
	Description string
}
