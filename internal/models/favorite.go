package models

import "time"

type Favorite struct {
	MemberID  string    `db:"member_id" json:"member_id"`
	CourseID  string    `db:"course_id" json:"course_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
