// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/tenderboard/tenderboard/models"
)

const recommendationSize = 5

// QuizScore pairs a tender with its affinity score against an answer vector.
type QuizScore struct {
	Tender models.Tender `json:"tender"`
	Score  int           `json:"score"`
}

// TopMatch is the quiz winner with its personality blurb.
type TopMatch struct {
	Tender models.Tender `json:"tender"`
	Blurb  string        `json:"blurb"`
}

// QuizResult is the full quiz outcome for one answer vector.
type QuizResult struct {
	TopMatch        TopMatch         `json:"topMatch"`
	Top3            []QuizScore      `json:"top3"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Recommendation is one recommended tender with its blended score and a
// human-readable reason.
type Recommendation struct {
	Tender   models.Tender `json:"tender"`
	Affinity int           `json:"affinity"`
	Final    float64       `json:"final"`
	Reason   string        `json:"reason"`
}

// axisScore maps a per-axis distance to points: exact match 2, off by one 1,
// further 0.
func axisScore(diff int) int {
	switch diff {
	case 0:
		return 2
	case 1:
		return 1
	default:
		return 0
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// ScoreQuiz scores every tender against an answer vector: per-axis points
// via axisScore plus one bonus point for icon-allowlisted names. Ranked by
// score descending, name ascending. Returns the top match (with its
// personality blurb), the top three, and the recommendations for the same
// vector.
func ScoreQuiz(tenders []models.Tender, answers models.QuizVector) QuizResult {
	scores := make([]QuizScore, 0, len(tenders))
	for _, t := range tenders {
		tags := t.Tags.Vector()
		score := 0
		for i := range answers {
			score += axisScore(absInt(answers[i] - tags[i]))
		}
		if models.IsIcon(t.Name) {
			score++
		}
		scores = append(scores, QuizScore{Tender: t, Score: score})
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].Tender.Name < scores[j].Tender.Name
	})

	var result QuizResult
	if len(scores) > 0 {
		top := scores[0].Tender
		blurb, ok := models.PersonalityBlurbs[top.ID]
		if !ok {
			blurb = models.WildcardBlurb
		}
		result.TopMatch = TopMatch{Tender: top, Blurb: blurb}
	}

	result.Top3 = scores
	if len(result.Top3) > 3 {
		result.Top3 = result.Top3[:3]
	}
	result.Recommendations = Recommendations(tenders, answers)

	return result
}

// Recommendations blends tag affinity with the personal rating:
// affinity is 12 minus the summed axis distance (0-12), the prior is the
// overall rating rescaled to the same range, and the final score weighs
// them 60/40. Ranked by final score descending, name ascending. Top 5.
func Recommendations(tenders []models.Tender, vector models.QuizVector) []Recommendation {
	recs := make([]Recommendation, 0, len(tenders))
	for _, t := range tenders {
		tags := t.Tags.Vector()
		dist := 0
		for i := range vector {
			dist += absInt(vector[i] - tags[i])
		}
		affinity := 12 - dist
		prior := t.Overall / 10 * 12
		final := 0.6*float64(affinity) + 0.4*prior

		rating := "n/a"
		if t.Overall != 0 {
			rating = humanize.Ftoa(t.Overall)
		}

		recs = append(recs, Recommendation{
			Tender:   t,
			Affinity: affinity,
			Final:    final,
			Reason:   fmt.Sprintf("Affinity: %d/12 • Your rating: %s/10", affinity, rating),
		})
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Final != recs[j].Final {
			return recs[i].Final > recs[j].Final
		}
		return recs[i].Tender.Name < recs[j].Tender.Name
	})

	if len(recs) > recommendationSize {
		recs = recs[:recommendationSize]
	}
	return recs
}

// SharedRecommendations returns the tenders recommended for both vectors,
// in the first vector's ranking order. Top 3.
func SharedRecommendations(tenders []models.Tender, a, b models.QuizVector) []Recommendation {
	recsA := Recommendations(tenders, a)
	recsB := Recommendations(tenders, b)

	inB := make(map[string]bool, len(recsB))
	for _, r := range recsB {
		inB[r.Tender.ID] = true
	}

	var shared []Recommendation
	for _, r := range recsA {
		if inB[r.Tender.ID] {
			shared = append(shared, r)
		}
		if len(shared) == 3 {
			break
		}
	}
	return shared
}
