package service

import (
	"math"
	"strings"

	"github.com/interviewdesk/dashboard/internal/core/domain"
)

type DashboardService struct{}

func NewDashboardService() *DashboardService {
	return &DashboardService{}
}

// Weekly returns the weekly figures of role, keeping rows whose interviewer
// contains the filter (case-insensitive), and their KPIs.
func (s *DashboardService) Weekly(role domain.Role, interviewer string) domain.Dashboard {
	filter := strings.ToLower(strings.TrimSpace(interviewer))

	stats := make([]domain.WeeklyStat, 0, 5)
	for _, row := range domain.WeeklyStats(role) {
		if filter != "" && !strings.Contains(strings.ToLower(row.Interviewer), filter) {
			continue
		}
		stats = append(stats, row)
	}

	return domain.Dashboard{Role: role, Stats: stats, Summary: summarize(stats)}
}

func summarize(stats []domain.WeeklyStat) domain.Summary {
	var sum domain.Summary
	if len(stats) == 0 {
		return sum
	}

	var feedback float64
	for _, row := range stats {
		sum.TotalInterviews += row.Interviews
		sum.NoShows += row.NoShows
		feedback += row.Feedback
	}
	sum.AvgFeedback = math.Round(feedback/float64(len(stats))*10) / 10
	return sum
}
