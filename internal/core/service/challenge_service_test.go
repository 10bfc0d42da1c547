package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aretelab/arete-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubChallengeRepo struct {
	items       []*domain.Challenge
	nextID      int
	insertErr   error               // if set, InsertMany returns this error
	raceWinners []*domain.Challenge // if set, InsertMany seeds these and reports a conflict
}

func newStubChallengeRepo() *stubChallengeRepo {
	return &stubChallengeRepo{}
}

func (r *stubChallengeRepo) FindByUserWeek(_ context.Context, userID string, weekStart time.Time) ([]*domain.Challenge, error) {
	var out []*domain.Challenge
	for _, c := range r.items {
		if c.UserID == userID && c.WeekStart.Equal(weekStart) {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubChallengeRepo) InsertMany(_ context.Context, challenges []*domain.Challenge) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	if len(r.raceWinners) > 0 {
		// Another instance's insert landed first.
		r.items = append(r.items, r.raceWinners...)
		r.raceWinners = nil
		return domain.ErrChallengeExists
	}
	// Mirror the unique index on (user_id, week_start, virtueId, title).
	for _, c := range challenges {
		for _, existing := range r.items {
			if existing.UserID == c.UserID && existing.WeekStart.Equal(c.WeekStart) &&
				existing.VirtueID == c.VirtueID && existing.Title == c.Title {
				return domain.ErrChallengeExists
			}
		}
	}
	for _, c := range challenges {
		r.nextID++
		clone := *c
		clone.ID = fmt.Sprintf("ch_%d", r.nextID)
		r.items = append(r.items, &clone)
	}
	return nil
}

func (r *stubChallengeRepo) UpdateStatus(_ context.Context, challengeID, userID string, status domain.ChallengeStatus) (*domain.Challenge, error) {
	for _, c := range r.items {
		if c.ID == challengeID && c.UserID == userID {
			c.Status = status
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrChallengeNotFound
}

type stubGoalRepo struct {
	goals []*domain.Goal
}

func (r *stubGoalRepo) Create(_ context.Context, g *domain.Goal) (*domain.Goal, error) {
	clone := *g
	clone.ID = fmt.Sprintf("goal_%d", len(r.goals)+1)
	r.goals = append(r.goals, &clone)
	out := clone
	return &out, nil
}

func (r *stubGoalRepo) FindLatestByUser(_ context.Context, userID string) (*domain.Goal, error) {
	for i := len(r.goals) - 1; i >= 0; i-- {
		if r.goals[i].UserID == userID {
			clone := *r.goals[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrGoalNotFound
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func seedGoal(repo *stubGoalRepo, userID string, virtues ...string) {
	repo.goals = append(repo.goals, &domain.Goal{
		ID:              fmt.Sprintf("goal_%d", len(repo.goals)+1),
		UserID:          userID,
		PriorityVirtues: virtues,
	})
}

// ---------------------------------------------------------------------------
// GetOrGenerate tests
// ---------------------------------------------------------------------------

func TestChallengeService_Generate_FromGoalVirtues(t *testing.T) {
	challenges := newStubChallengeRepo()
	goals := &stubGoalRepo{}
	seedGoal(goals, "user_1", "courage", "empathy")

	now := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC) // Wednesday
	svc := NewChallengeService(challenges, goals, NewLocalGenerationGuard(), fixedClock(now), discardLogger)

	got, err := svc.GetOrGenerate(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("courage+empathy have 2 curated templates each, expected 4 challenges, got %d", len(got))
	}

	// Virtue-list order, then template order.
	wantTitles := []string{
		"Speak Up with Courage",
		"Embrace a New Task",
		"Active Listening Exercise",
		"Understand a Different Perspective",
	}
	for i, want := range wantTitles {
		if got[i].Title != want {
			t.Errorf("challenge %d: expected title %q, got %q", i, want, got[i].Title)
		}
	}

	for _, c := range got {
		if c.ID == "" {
			t.Error("generated challenge must carry a store-assigned ID")
		}
		if c.Status != domain.ChallengePending {
			t.Errorf("expected pending status, got %q", c.Status)
		}
		if !c.WeekStart.Equal(domain.WeekStartUTC(now)) {
			t.Errorf("expected week start %v, got %v", domain.WeekStartUTC(now), c.WeekStart)
		}
	}
}

func TestChallengeService_Generate_GenericTemplateForUnknownVirtue(t *testing.T) {
	challenges := newStubChallengeRepo()
	goals := &stubGoalRepo{}
	seedGoal(goals, "user_1", "patience")

	svc := NewChallengeService(challenges, goals, NewLocalGenerationGuard(), nil, discardLogger)

	got, err := svc.GetOrGenerate(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 generic challenge, got %d", len(got))
	}
	if got[0].Title != "Apply Patience in a Daily Task" {
		t.Errorf("unexpected title: %q", got[0].Title)
	}
}

func TestChallengeService_Generate_Idempotent(t *testing.T) {
	challenges := newStubChallengeRepo()
	goals := &stubGoalRepo{}
	seedGoal(goals, "user_1", "courage")

	svc := NewChallengeService(challenges, goals, NewLocalGenerationGuard(), nil, discardLogger)

	first, err := svc.GetOrGenerate(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}

	// Goal changes mid-week must not regenerate.
	seedGoal(goals, "user_1", "humility")

	second, err := svc.GetOrGenerate(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}

	if len(second) != len(first) {
		t.Fatalf("expected %d challenges on replay, got %d", len(first), len(second))
	}
	for i := range first {
		if second[i].ID != first[i].ID {
			t.Errorf("challenge %d: expected stable ID %s, got %s", i, first[i].ID, second[i].ID)
		}
	}
	if len(challenges.items) != 2 {
		t.Errorf("expected 2 stored challenges, got %d", len(challenges.items))
	}
}

func TestChallengeService_Generate_NoGoal(t *testing.T) {
	challenges := newStubChallengeRepo()
	svc := NewChallengeService(challenges, &stubGoalRepo{}, NewLocalGenerationGuard(), nil, discardLogger)

	got, err := svc.GetOrGenerate(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
	if len(challenges.items) != 0 {
		t.Errorf("no goal must persist nothing, stored %d", len(challenges.items))
	}
}

func TestChallengeService_Generate_NewWeekNewSet(t *testing.T) {
	challenges := newStubChallengeRepo()
	goals := &stubGoalRepo{}
	seedGoal(goals, "user_1", "courage")

	clock := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)
	svc := NewChallengeService(challenges, goals, NewLocalGenerationGuard(), func() time.Time { return clock }, discardLogger)

	first, _ := svc.GetOrGenerate(context.Background(), "user_1")

	// Following Monday.
	clock = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	second, err := svc.GetOrGenerate(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected 2 challenges each week, got %d and %d", len(first), len(second))
	}
	if second[0].ID == first[0].ID {
		t.Error("new week must generate fresh records")
	}
	if len(challenges.items) != 4 {
		t.Errorf("expected 4 stored challenges across two weeks, got %d", len(challenges.items))
	}
}

func TestChallengeService_Generate_LostRaceRereads(t *testing.T) {
	challenges := newStubChallengeRepo()
	goals := &stubGoalRepo{}
	seedGoal(goals, "user_1", "courage")

	svc := NewChallengeService(challenges, goals, NewLocalGenerationGuard(), nil, discardLogger)

	// Another instance's insert lands between the guarded re-check and our
	// write; the unique index turns our insert into a conflict and the
	// winner's set is what we must return.
	weekStart := domain.WeekStartUTC(time.Now())
	challenges.raceWinners = []*domain.Challenge{
		{ID: "ch_w1", UserID: "user_1", Title: "Speak Up with Courage", VirtueID: "courage", Status: domain.ChallengePending, WeekStart: weekStart},
		{ID: "ch_w2", UserID: "user_1", Title: "Embrace a New Task", VirtueID: "courage", Status: domain.ChallengePending, WeekStart: weekStart},
	}

	got, err := svc.GetOrGenerate(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("loser must recover by re-reading, got error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected winner's 2 challenges, got %d", len(got))
	}
	if got[0].ID != "ch_w1" || got[1].ID != "ch_w2" {
		t.Errorf("expected winner's records, got %s and %s", got[0].ID, got[1].ID)
	}
}

func TestChallengeService_Generate_RepoError(t *testing.T) {
	challenges := newStubChallengeRepo()
	challenges.insertErr = errors.New("db unavailable")
	goals := &stubGoalRepo{}
	seedGoal(goals, "user_1", "courage")

	svc := NewChallengeService(challenges, goals, NewLocalGenerationGuard(), nil, discardLogger)

	if _, err := svc.GetOrGenerate(context.Background(), "user_1"); err == nil {
		t.Fatal("expected error when insert fails")
	}
}

// ---------------------------------------------------------------------------
// UpdateStatus tests
// ---------------------------------------------------------------------------

func seedChallengeSet(t *testing.T, challenges *stubChallengeRepo, goals *stubGoalRepo, userID string) []*domain.Challenge {
	t.Helper()
	seedGoal(goals, userID, "courage")
	svc := NewChallengeService(challenges, goals, NewLocalGenerationGuard(), nil, discardLogger)
	set, err := svc.GetOrGenerate(context.Background(), userID)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return set
}

func TestChallengeService_UpdateStatus_Success(t *testing.T) {
	challenges := newStubChallengeRepo()
	goals := &stubGoalRepo{}
	set := seedChallengeSet(t, challenges, goals, "user_1")

	svc := NewChallengeService(challenges, goals, NewLocalGenerationGuard(), nil, discardLogger)

	updated, err := svc.UpdateStatus(context.Background(), set[0].ID, "user_1", domain.ChallengeCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.ChallengeCompleted {
		t.Errorf("expected completed, got %q", updated.Status)
	}
}

func TestChallengeService_UpdateStatus_InvalidStatus(t *testing.T) {
	challenges := newStubChallengeRepo()
	goals := &stubGoalRepo{}
	set := seedChallengeSet(t, challenges, goals, "user_1")

	svc := NewChallengeService(challenges, goals, NewLocalGenerationGuard(), nil, discardLogger)

	if _, err := svc.UpdateStatus(context.Background(), set[0].ID, "user_1", "done"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	// Rejected before touching the store.
	if challenges.items[0].Status != domain.ChallengePending {
		t.Error("invalid status must leave the record unchanged")
	}
}

func TestChallengeService_UpdateStatus_ForeignChallengeLooksMissing(t *testing.T) {
	challenges := newStubChallengeRepo()
	goals := &stubGoalRepo{}
	set := seedChallengeSet(t, challenges, goals, "user_1")

	svc := NewChallengeService(challenges, goals, NewLocalGenerationGuard(), nil, discardLogger)

	if _, err := svc.UpdateStatus(context.Background(), set[0].ID, "user_2", domain.ChallengeCompleted); !errors.Is(err, domain.ErrChallengeNotFound) {
		t.Fatalf("expected ErrChallengeNotFound for foreign owner, got %v", err)
	}
}
