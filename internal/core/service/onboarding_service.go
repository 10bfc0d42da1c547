package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/aretelab/arete-api/internal/core/domain"
	"github.com/aretelab/arete-api/internal/core/ports"
)

// narrativeProfile is the canned summary attached to every assessment.
const narrativeProfile = "You demonstrate strong potential in resilience and integrity. Your growth mindset is a key asset."

// OnboardingService handles the self-assessment questionnaire and goal
// setting.
type OnboardingService struct {
	assessments ports.AssessmentRepository
	goals       ports.GoalRepository
	now         func() time.Time
	log         zerolog.Logger
}

func NewOnboardingService(
	assessments ports.AssessmentRepository,
	goals ports.GoalRepository,
	now func() time.Time,
	log zerolog.Logger,
) *OnboardingService {
	if now == nil {
		now = time.Now
	}
	return &OnboardingService{assessments: assessments, goals: goals, now: now, log: log}
}

// SubmitAssessment scores the questionnaire answers and persists the result.
func (s *OnboardingService) SubmitAssessment(ctx context.Context, userID string, answers map[string]int) (*domain.Assessment, error) {
	created, err := s.assessments.Create(ctx, &domain.Assessment{
		UserID:           userID,
		Scores:           domain.ScoreAnswers(answers),
		NarrativeProfile: narrativeProfile,
		CreatedAt:        s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Int("scored_virtues", len(created.Scores)).Msg("assessment submitted")
	return created, nil
}

// GetAssessment returns the user's most recent assessment.
func (s *OnboardingService) GetAssessment(ctx context.Context, userID string) (*domain.Assessment, error) {
	return s.assessments.FindLatestByUser(ctx, userID)
}

// SubmitGoal records a new goal. Goals accumulate; the latest one drives
// challenge generation and reflection focus.
func (s *OnboardingService) SubmitGoal(ctx context.Context, userID string, priorityVirtues []string, innovationGoal string) (*domain.Goal, error) {
	created, err := s.goals.Create(ctx, &domain.Goal{
		UserID:          userID,
		PriorityVirtues: priorityVirtues,
		InnovationGoal:  innovationGoal,
		CreatedAt:       s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Strs("priority_virtues", priorityVirtues).Msg("goal submitted")
	return created, nil
}

// GetGoal returns the user's most recent goal.
func (s *OnboardingService) GetGoal(ctx context.Context, userID string) (*domain.Goal, error) {
	return s.goals.FindLatestByUser(ctx, userID)
}
