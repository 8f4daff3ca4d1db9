package models

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID        string    `db:"id" json:"id"`
	MemberID  string    `db:"member_id" json:"member_id"`
	CourseID  string    `db:"course_id" json:"course_id"`
	Rating    int       `db:"rating" json:"rating"`
	Comment   *string   `db:"comment" json:"comment"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type ReviewWithMember struct {
	Review
	MemberFirstName string `db:"member_first_name" json:"member_first_name"`
}

type CourseRating struct {
	AverageRating float64 `db:"average_rating" json:"average_rating"`
	ReviewCount   int     `db:"review_count" json:"review_count"`
}
