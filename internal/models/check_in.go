package models

import "time"

const DefaultHolesPlayed = 18

type CheckIn struct {
	ID          string    `db:"id" json:"id"`
	MemberID    string    `db:"member_id" json:"member_id"`
	CourseID    string    `db:"course_id" json:"course_id"`
	HolesPlayed int       `db:"holes_played" json:"holes_played"`
	CheckedInAt time.Time `db:"checked_in_at" json:"checked_in_at"`
}

type CheckInWithCourse struct {
	CheckIn
	CourseName   string `db:"course_name" json:"course_name"`
	City         string `db:"city" json:"city"`
	State        string `db:"state" json:"state"`
	TierRequired string `db:"tier_required" json:"tier_required"`
}

type CheckInResult struct {
	CheckIn         *CheckIn `json:"check_in"`
	RoundsRemaining int      `json:"rounds_remaining"`
}

// CREATE TABLE golf_utilization (
//     id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
//     member_id UUID NOT NULL REFERENCES members(id),
//     course_id UUID NOT NULL REFERENCES golf_courses(id),
//     holes_played INT NOT NULL DEFAULT 18,
//     checked_in_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
// );
