package models

import "time"

type Course struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Address      string    `db:"address" json:"address"`
	City         string    `db:"city" json:"city"`
	State        string    `db:"state" json:"state"`
	Zip          string    `db:"zip" json:"zip"`
	Latitude     *float64  `db:"latitude" json:"latitude"`
	Longitude    *float64  `db:"longitude" json:"longitude"`
	Holes        int       `db:"holes" json:"holes"`
	TierRequired string    `db:"tier_required" json:"tier_required"`
	Phone        *string   `db:"phone" json:"phone"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

func (c *Course) IsPremium() bool {
	return c.TierRequired == TierPremium
}

type CourseWithRating struct {
	Course
	AverageRating float64 `db:"average_rating" json:"average_rating"`
	ReviewCount   int     `db:"review_count" json:"review_count"`
}

// CourseCandidate carries network-wide play aggregates for a course.
type CourseCandidate struct {
	Course
	TotalPlays    int `db:"total_plays" json:"total_plays"`
	UniquePlayers int `db:"unique_players" json:"unique_players"`
}

type Recommendation struct {
	CourseCandidate
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}
