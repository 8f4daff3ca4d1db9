package models

type StatsOverview struct {
	ActiveMembers   int `db:"active_members" json:"active_members"`
	ActiveCourses   int `db:"active_courses" json:"active_courses"`
	TotalRounds     int `db:"total_rounds" json:"total_rounds"`
	RoundsThisMonth int `db:"rounds_this_month" json:"rounds_this_month"`
}

type PopularCourse struct {
	ID            string `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	City          string `db:"city" json:"city"`
	TierRequired  string `db:"tier_required" json:"tier_required"`
	TotalRounds   int    `db:"total_rounds" json:"total_rounds"`
	UniquePlayers int    `db:"unique_players" json:"unique_players"`
}

type MonthlyRounds struct {
	Month  string `db:"month" json:"month"`
	Rounds int    `db:"rounds" json:"rounds"`
}

type TierBreakdown struct {
	Tier    string `db:"tier" json:"tier"`
	Members int    `db:"members" json:"members"`
	Rounds  int    `db:"rounds" json:"rounds"`
}

type TopMember struct {
	ID          string `db:"id" json:"id"`
	FirstName   string `db:"first_name" json:"first_name"`
	LastName    string `db:"last_name" json:"last_name"`
	ParpassCode string `db:"parpass_code" json:"parpass_code"`
	Tier        string `db:"tier" json:"tier"`
	TotalRounds int    `db:"total_rounds" json:"total_rounds"`
}
