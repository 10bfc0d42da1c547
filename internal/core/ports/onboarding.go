package ports

import (
	"context"

	"github.com/aretelab/arete-api/internal/core/domain"
)

// AssessmentRepository defines persistence for self-assessments.
type AssessmentRepository interface {
	Create(ctx context.Context, a *domain.Assessment) (*domain.Assessment, error)
	// FindLatestByUser returns domain.ErrAssessmentNotFound when the user has
	// never submitted an assessment.
	FindLatestByUser(ctx context.Context, userID string) (*domain.Assessment, error)
}

// GoalRepository defines persistence for goals.
type GoalRepository interface {
	Create(ctx context.Context, g *domain.Goal) (*domain.Goal, error)
	// FindLatestByUser returns domain.ErrGoalNotFound when the user has no
	// goal set.
	FindLatestByUser(ctx context.Context, userID string) (*domain.Goal, error)
}

// OnboardingService covers the assessment questionnaire and goal setting.
type OnboardingService interface {
	SubmitAssessment(ctx context.Context, userID string, answers map[string]int) (*domain.Assessment, error)
	GetAssessment(ctx context.Context, userID string) (*domain.Assessment, error)
	SubmitGoal(ctx context.Context, userID string, priorityVirtues []string, innovationGoal string) (*domain.Goal, error)
	GetGoal(ctx context.Context, userID string) (*domain.Goal, error)
}
