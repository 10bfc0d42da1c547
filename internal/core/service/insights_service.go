package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/aretelab/arete-api/internal/core/domain"
	"github.com/aretelab/arete-api/internal/core/ports"
)

const historyWeeks = 5

// defaultScoreVirtues seed the dashboard when the user has never taken an
// assessment.
var defaultScoreVirtues = []string{"wisdom", "courage", "justice", "humanity", "temperance", "transcendence"}

// InsightsService synthesizes the dashboard stats and the weekly
// reflection. History points are mock data varied around the user's current
// scores; only the current scores are real.
type InsightsService struct {
	assessments ports.AssessmentRepository
	goals       ports.GoalRepository
	moments     ports.MomentRepository
	now         func() time.Time
	log         zerolog.Logger
}

func NewInsightsService(
	assessments ports.AssessmentRepository,
	goals ports.GoalRepository,
	moments ports.MomentRepository,
	now func() time.Time,
	log zerolog.Logger,
) *InsightsService {
	if now == nil {
		now = time.Now
	}
	return &InsightsService{
		assessments: assessments,
		goals:       goals,
		moments:     moments,
		now:         now,
		log:         log,
	}
}

// DashboardStats returns the latest assessment scores (defaults when none
// exist) plus a five-week synthesized history.
func (s *InsightsService) DashboardStats(ctx context.Context, userID string) (*ports.DashboardStats, error) {
	scores, err := s.currentScores(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	history := make([]map[string]any, 0, historyWeeks)
	for i := historyWeeks - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -7*i)
		entry := map[string]any{"date": date.Format("2006-01-02")}
		for _, sc := range scores {
			variation := rand.Float64()*2 - 1
			entry[sc.VirtueID] = math.Round(clamp(sc.Score+variation, 0, 10)*10) / 10
		}
		history = append(history, entry)
	}

	return &ports.DashboardStats{CurrentScores: scores, History: history}, nil
}

// WeeklyReflection summarizes the last seven days of logged moments against
// the user's goal focus.
func (s *InsightsService) WeeklyReflection(ctx context.Context, userID string) (*ports.WeeklyReflection, error) {
	focus, err := s.focusAreas(ctx, userID)
	if err != nil {
		return nil, err
	}

	since := s.now().UTC().AddDate(0, 0, -7)
	moments, err := s.moments.ListByUserSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	reflection := &ports.WeeklyReflection{
		Summary: summarize(moments),
		Focus:   focus,
	}

	if len(moments) > 0 {
		reflection.Insights = append(reflection.Insights, ports.CalendarInsight{
			ID:      "1",
			Type:    "pattern",
			Message: "You tend to log more moments when you are focused.",
		})
	} else {
		reflection.Insights = append(reflection.Insights, ports.CalendarInsight{
			ID:      "1",
			Type:    "suggestion",
			Message: "Try logging one moment today to start your streak.",
		})
	}

	if len(focus) > 0 {
		reflection.Insights = append(reflection.Insights, ports.CalendarInsight{
			ID:       "2",
			Type:     "achievement",
			Message:  fmt.Sprintf("Remember your goal to practice %s.", focus[0]),
			VirtueID: focus[0],
		})
	}

	return reflection, nil
}

func (s *InsightsService) currentScores(ctx context.Context, userID string) ([]domain.VirtueScore, error) {
	assessment, err := s.assessments.FindLatestByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrAssessmentNotFound) {
			return nil, err
		}
		scores := make([]domain.VirtueScore, 0, len(defaultScoreVirtues))
		for _, v := range defaultScoreVirtues {
			scores = append(scores, domain.VirtueScore{VirtueID: v, Score: 5.0})
		}
		return scores, nil
	}
	return assessment.Scores, nil
}

func (s *InsightsService) focusAreas(ctx context.Context, userID string) ([]string, error) {
	goal, err := s.goals.FindLatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return goal.PriorityVirtues, nil
}

// summarize builds the one-line weekly summary from the moments logged in
// the window.
func summarize(moments []*domain.Moment) string {
	if len(moments) == 0 {
		return "You haven't logged any moments this week. Start reflecting to see insights here!"
	}

	counts := make(map[string]int, len(moments))
	mostFrequent := moments[0].VirtueID
	for _, m := range moments {
		counts[m.VirtueID]++
		if counts[m.VirtueID] > counts[mostFrequent] {
			mostFrequent = m.VirtueID
		}
	}

	return fmt.Sprintf("You've been active this week, logging %d moments. Your focus has been on %s.", len(moments), mostFrequent)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
