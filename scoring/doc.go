// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scoring computes leaderboards, quiz matches, recommendations, and
compatibility scores.

Every function here is pure: it takes model values and returns rankings
without touching the store. RandomTender is the one exception, drawing from
a uniform random source.

# Leaderboards

	top := scoring.PersonalLeaderboard(tenders)
	community := scoring.CommunityLeaderboard(tenders, votes)

Personal ranks by overall score; community groups the vote log by tender
and ranks by mean stars. Both truncate to ten entries and break ties
deterministically (count, then name).

# Quiz and Recommendations

ScoreQuiz matches a six-axis answer vector against every tender's tags:
2 points per exact axis, 1 point per off-by-one axis, plus an icon bonus.
Recommendations blend that tag affinity (60%) with the personal overall
rating (40%).

# Compatibility

TwinCompatibility compares two answer vectors; PartnerMatch compares one
vector against the fixed partner archetypes. Both map the summed axis
distance (at most 12) onto a 0-100 scale with three fixed text tiers.
*/
package scoring
