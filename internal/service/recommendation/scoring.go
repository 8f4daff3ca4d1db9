package recommendation_service

import (
	"fmt"
	"sort"

	"parpass-api/internal/models"
)

const (
	cityMatchPoints = 30

	busyCoursePoints   = 20 // more than 5 plays
	activeCoursePoints = 10 // more than 2 plays

	widelyPlayedPoints = 15 // more than 3 players
	sharedPoints       = 8  // more than 1 player
)

// Score rates a candidate out of 65.
func Score(c models.CourseCandidate, cityMatch bool) int {
	score := 0
	if cityMatch {
		score += cityMatchPoints
	}

	switch {
	case c.TotalPlays > 5:
		score += busyCoursePoints
	case c.TotalPlays > 2:
		score += activeCoursePoints
	}

	switch {
	case c.UniquePlayers > 3:
		score += widelyPlayedPoints
	case c.UniquePlayers > 1:
		score += sharedPoints
	}

	return score
}

// Reason picks the first matching explanation.
func Reason(c models.CourseCandidate, cityMatch bool) string {
	switch {
	case cityMatch:
		return fmt.Sprintf("You've played in %s before", c.City)
	case c.UniquePlayers > 1:
		return fmt.Sprintf("Popular with %d members", c.UniquePlayers)
	case c.IsPremium():
		return "Premium course"
	default:
		return "Recommended for you"
	}
}

// Rank drops courses the member has played, orders the rest by score then
// total plays, and keeps the first limit. Ties beyond total plays keep the
// candidates' input order.
func Rank(candidates []models.CourseCandidate, playedIDs, playedCities []string, limit int) []models.Recommendation {
	played := toSet(playedIDs)
	cities := toSet(playedCities)

	recommendations := make([]models.Recommendation, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := played[c.ID]; ok {
			continue
		}
		_, cityMatch := cities[c.City]
		recommendations = append(recommendations, models.Recommendation{
			CourseCandidate: c,
			Score:           Score(c, cityMatch),
			Reason:          Reason(c, cityMatch),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		if recommendations[i].Score != recommendations[j].Score {
			return recommendations[i].Score > recommendations[j].Score
		}
		return recommendations[i].TotalPlays > recommendations[j].TotalPlays
	})

	if len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}
	return recommendations
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
