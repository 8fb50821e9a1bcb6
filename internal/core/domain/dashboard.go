package domain

// WeeklyStat is one weekday row of the dashboard.
type WeeklyStat struct {
	Day         string  `json:"day"`
	Interviews  int     `json:"interviews"`
	Feedback    float64 `json:"feedback"`
	NoShows     int     `json:"noShows"`
	Interviewer string  `json:"interviewer"`
}

// Summary holds the dashboard KPIs.
type Summary struct {
	TotalInterviews int     `json:"totalInterviews"`
	AvgFeedback     float64 `json:"avgFeedback"`
	NoShows         int     `json:"noShows"`
}

// Dashboard is the weekly view of one role.
type Dashboard struct {
	Role    Role         `json:"role"`
	Stats   []WeeklyStat `json:"stats"`
	Summary Summary      `json:"summary"`
}

// WeeklyStats returns the fixed weekly figures shown to r. A fresh slice is
// returned on every call.
func WeeklyStats(r Role) []WeeklyStat {
	switch r {
	case RoleAdmin:
		return []WeeklyStat{
			{Day: "Mon", Interviews: 3, Feedback: 4.2, NoShows: 1, Interviewer: "Alice"},
			{Day: "Tue", Interviews: 2, Feedback: 3.8, NoShows: 0, Interviewer: "Bob"},
			{Day: "Wed", Interviews: 4, Feedback: 4.5, NoShows: 1, Interviewer: "Alice"},
			{Day: "Thu", Interviews: 1, Feedback: 4.0, NoShows: 0, Interviewer: "Charlie"},
			{Day: "Fri", Interviews: 3, Feedback: 4.3, NoShows: 0, Interviewer: "Bob"},
		}
	case RoleTAMember:
		return []WeeklyStat{
			{Day: "Mon", Interviews: 2, Feedback: 4.1, NoShows: 1, Interviewer: "Dev"},
			{Day: "Tue", Interviews: 1, Feedback: 3.9, NoShows: 0, Interviewer: "Eve"},
			{Day: "Wed", Interviews: 3, Feedback: 4.4, NoShows: 1, Interviewer: "Dev"},
			{Day: "Thu", Interviews: 2, Feedback: 4.2, NoShows: 0, Interviewer: "Eve"},
			{Day: "Fri", Interviews: 1, Feedback: 4.5, NoShows: 0, Interviewer: "Dev"},
		}
	case RolePanelist:
		return []WeeklyStat{
			{Day: "Mon", Interviews: 1, Feedback: 4.0, NoShows: 0, Interviewer: "Frank"},
			{Day: "Tue", Interviews: 3, Feedback: 4.5, NoShows: 0, Interviewer: "Grace"},
			{Day: "Wed", Interviews: 2, Feedback: 4.2, NoShows: 1, Interviewer: "Frank"},
			{Day: "Thu", Interviews: 2, Feedback: 3.9, NoShows: 0, Interviewer: "Grace"},
			{Day: "Fri", Interviews: 1, Feedback: 4.1, NoShows: 0, Interviewer: "Frank"},
		}
	default:
		return nil
	}
}
