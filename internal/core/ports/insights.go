package ports

import (
	"context"

	"github.com/aretelab/arete-api/internal/core/domain"
)

// DashboardStats is the dashboard payload: the latest assessment scores plus
// a synthesized multi-week history keyed by virtue ID.
type DashboardStats struct {
	CurrentScores []domain.VirtueScore `json:"currentScores"`
	History       []map[string]any     `json:"history"`
}

// CalendarInsight is a single observation shown in the weekly reflection.
type CalendarInsight struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Message  string `json:"message"`
	VirtueID string `json:"virtueId,omitempty"`
}

// WeeklyReflection summarizes the user's last seven days.
type WeeklyReflection struct {
	Summary  string            `json:"summary"`
	Insights []CalendarInsight `json:"insights"`
	Focus    []string          `json:"focus"`
}

// InsightsService produces the dashboard stats and the weekly reflection.
type InsightsService interface {
	DashboardStats(ctx context.Context, userID string) (*DashboardStats, error)
	WeeklyReflection(ctx context.Context, userID string) (*WeeklyReflection, error)
}
