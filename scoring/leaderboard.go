// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"math"
	"sort"

	"github.com/tenderboard/tenderboard/models"
)

// Leaderboards are truncated to the top entries.
const leaderboardSize = 10

// CommunityStanding is one community leaderboard row: a tender with its
// mean star rating (one decimal) and vote count.
type CommunityStanding struct {
	Tender   models.Tender `json:"tender"`
	AvgStars float64       `json:"avgStars"`
	Votes    int           `json:"votes"`
}

// PersonalLeaderboard ranks tenders by personal overall score, descending.
// Ties break by name, ascending. Top 10.
func PersonalLeaderboard(tenders []models.Tender) []models.Tender {
	ranked := make([]models.Tender, len(tenders))
	copy(ranked, tenders)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Overall != ranked[j].Overall {
			return ranked[i].Overall > ranked[j].Overall
		}
		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) > leaderboardSize {
		ranked = ranked[:leaderboardSize]
	}
	return ranked
}

// CommunityLeaderboard groups votes by tender and ranks by mean stars
// (rounded to one decimal) descending, then vote count descending, then
// name ascending. Top 10. Votes for unknown tender ids are skipped.
func CommunityLeaderboard(tenders []models.Tender, votes []models.SessionVote) []CommunityStanding {
	byID := make(map[string]models.Tender, len(tenders))
	for _, t := range tenders {
		byID[t.ID] = t
	}

	type tally struct {
		sum   int
		count int
	}
	tallies := make(map[string]*tally)
	var order []string
	for _, v := range votes {
		if _, known := byID[v.TenderID]; !known {
			continue
		}
		tl, ok := tallies[v.TenderID]
		if !ok {
			tl = &tally{}
			tallies[v.TenderID] = tl
			order = append(order, v.TenderID)
		}
		tl.sum += v.Stars
		tl.count++
	}

	standings := make([]CommunityStanding, 0, len(order))
	for _, id := range order {
		tl := tallies[id]
		avg := float64(tl.sum) / float64(tl.count)
		standings = append(standings, CommunityStanding{
			Tender:   byID[id],
			AvgStars: math.Round(avg*10) / 10,
			Votes:    tl.count,
		})
	}

	sort.Slice(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.AvgStars != b.AvgStars {
			return a.AvgStars > b.AvgStars
		}
		if a.Votes != b.Votes {
			return a.Votes > b.Votes
		}
		return a.Tender.Name < b.Tender.Name
	})

	if len(standings) > leaderboardSize {
		standings = standings[:leaderboardSize]
	}
	return standings
}
