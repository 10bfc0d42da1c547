package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aretelab/arete-api/internal/core/domain"
)

type stubAssessmentRepo struct {
	assessments []*domain.Assessment
}

func (r *stubAssessmentRepo) Create(_ context.Context, a *domain.Assessment) (*domain.Assessment, error) {
	clone := *a
	clone.ID = fmt.Sprintf("as_%d", len(r.assessments)+1)
	r.assessments = append(r.assessments, &clone)
	out := clone
	return &out, nil
}

func (r *stubAssessmentRepo) FindLatestByUser(_ context.Context, userID string) (*domain.Assessment, error) {
	for i := len(r.assessments) - 1; i >= 0; i-- {
		if r.assessments[i].UserID == userID {
			clone := *r.assessments[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrAssessmentNotFound
}

func TestOnboardingService_SubmitAssessment(t *testing.T) {
	repo := &stubAssessmentRepo{}
	svc := NewOnboardingService(repo, &stubGoalRepo{}, nil, discardLogger)

	created, err := svc.SubmitAssessment(context.Background(), "user_1", map[string]int{"q1": 7, "q6": 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected store-assigned ID")
	}
	if len(created.Scores) != 2 {
		t.Fatalf("expected 2 scores, got %d", len(created.Scores))
	}
	if created.Scores[0].VirtueID != "resilience" || created.Scores[0].Score != 7 {
		t.Errorf("scores[0]: got %+v", created.Scores[0])
	}
	if created.NarrativeProfile == "" {
		t.Error("expected a narrative profile")
	}
}

func TestOnboardingService_GetAssessment_LatestWins(t *testing.T) {
	repo := &stubAssessmentRepo{}
	svc := NewOnboardingService(repo, &stubGoalRepo{}, nil, discardLogger)

	_, _ = svc.SubmitAssessment(context.Background(), "user_1", map[string]int{"q1": 3})
	second, _ := svc.SubmitAssessment(context.Background(), "user_1", map[string]int{"q1": 9})

	got, err := svc.GetAssessment(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != second.ID {
		t.Errorf("expected latest assessment %s, got %s", second.ID, got.ID)
	}
}

func TestOnboardingService_GetAssessment_NotFound(t *testing.T) {
	svc := NewOnboardingService(&stubAssessmentRepo{}, &stubGoalRepo{}, nil, discardLogger)

	if _, err := svc.GetAssessment(context.Background(), "ghost"); !errors.Is(err, domain.ErrAssessmentNotFound) {
		t.Fatalf("expected ErrAssessmentNotFound, got %v", err)
	}
}

func TestOnboardingService_SubmitAndGetGoal(t *testing.T) {
	goals := &stubGoalRepo{}
	svc := NewOnboardingService(&stubAssessmentRepo{}, goals, nil, discardLogger)

	created, err := svc.SubmitGoal(context.Background(), "user_1", []string{"courage", "wisdom"}, "Ship the prototype")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected store-assigned ID")
	}

	got, err := svc.GetGoal(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.InnovationGoal != "Ship the prototype" {
		t.Errorf("unexpected innovation goal: %q", got.InnovationGoal)
	}
	if len(got.PriorityVirtues) != 2 || got.PriorityVirtues[0] != "courage" {
		t.Errorf("unexpected priority virtues: %v", got.PriorityVirtues)
	}
}

func TestOnboardingService_GetGoal_NotFound(t *testing.T) {
	svc := NewOnboardingService(&stubAssessmentRepo{}, &stubGoalRepo{}, nil, discardLogger)

	if _, err := svc.GetGoal(context.Background(), "ghost"); !errors.Is(err, domain.ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound, got %v", err)
	}
}
