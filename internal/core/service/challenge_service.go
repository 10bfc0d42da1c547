package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/aretelab/arete-api/internal/api/metrics"
	"github.com/aretelab/arete-api/internal/core/domain"
	"github.com/aretelab/arete-api/internal/core/ports"
)

// ChallengeService generates and tracks weekly practice challenges.
// Generation is idempotent per (user, week): once a week's set exists it is
// returned verbatim, even if the user's goals change mid-week.
type ChallengeService struct {
	challenges ports.ChallengeRepository
	goals      ports.GoalRepository
	guard      GenerationGuard
	now        func() time.Time
	log        zerolog.Logger
}

// NewChallengeService builds the weekly challenge engine. now may be nil
// (wall clock); tests inject it to pin week boundaries.
func NewChallengeService(
	challenges ports.ChallengeRepository,
	goals ports.GoalRepository,
	guard GenerationGuard,
	now func() time.Time,
	log zerolog.Logger,
) *ChallengeService {
	if now == nil {
		now = time.Now
	}
	return &ChallengeService{
		challenges: challenges,
		goals:      goals,
		guard:      guard,
		now:        now,
		log:        log,
	}
}

// GetOrGenerate returns this week's challenges for the user, generating and
// persisting them on the first call of the week. Concurrent first calls are
// serialized by the generation guard; if generation still races across
// instances, the unique index on (user_id, week_start, virtueId, title)
// turns the lost insert into a re-read.
func (s *ChallengeService) GetOrGenerate(ctx context.Context, userID string) ([]*domain.Challenge, error) {
	weekStart := domain.WeekStartUTC(s.now())

	// Fast path: this week's set already exists.
	existing, err := s.challenges.FindByUserWeek(ctx, userID, weekStart)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	if err := s.guard.Acquire(ctx, userID, weekStart); err != nil {
		return nil, err
	}
	defer s.guard.Release(userID, weekStart)

	// Re-check under the guard: another request may have generated while we
	// waited.
	existing, err = s.challenges.FindByUserWeek(ctx, userID, weekStart)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	virtues, err := s.priorityVirtues(ctx, userID)
	if err != nil {
		return nil, err
	}

	drafts := expandTemplates(userID, virtues, weekStart)
	if len(drafts) == 0 {
		// No goal or empty virtue list: empty result, nothing persisted.
		return []*domain.Challenge{}, nil
	}

	if err := s.challenges.InsertMany(ctx, drafts); err != nil {
		if !errors.Is(err, domain.ErrChallengeExists) {
			return nil, err
		}
		// Lost a cross-instance race; the winner's set is authoritative.
		s.log.Info().Str("user_id", userID).Time("week_start", weekStart).Msg("challenge generation raced, re-reading")
	} else {
		for _, d := range drafts {
			metrics.ChallengesGeneratedTotal.WithLabelValues(d.VirtueID).Inc()
		}
		s.log.Info().
			Str("user_id", userID).
			Time("week_start", weekStart).
			Int("count", len(drafts)).
			Msg("weekly challenges generated")
	}

	// Re-fetch so the returned records carry store-assigned IDs.
	return s.challenges.FindByUserWeek(ctx, userID, weekStart)
}

// UpdateStatus toggles a challenge between pending and completed. The
// repository filters by both challenge ID and owner, so a foreign challenge
// is indistinguishable from a missing one.
func (s *ChallengeService) UpdateStatus(ctx context.Context, challengeID, userID string, status domain.ChallengeStatus) (*domain.Challenge, error) {
	if !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	return s.challenges.UpdateStatus(ctx, challengeID, userID, status)
}

// priorityVirtues returns the virtue list of the user's latest goal, or nil
// when no goal is set.
func (s *ChallengeService) priorityVirtues(ctx context.Context, userID string) ([]string, error) {
	goal, err := s.goals.FindLatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return goal.PriorityVirtues, nil
}

// expandTemplates concatenates catalog templates in virtue-list order,
// template order.
func expandTemplates(userID string, virtueIDs []string, weekStart time.Time) []*domain.Challenge {
	var drafts []*domain.Challenge
	for _, virtueID := range virtueIDs {
		for _, tpl := range domain.TemplatesFor(virtueID) {
			drafts = append(drafts, &domain.Challenge{
				UserID:      userID,
				Title:       tpl.Title,
				Description: tpl.Description,
				VirtueID:    virtueID,
				Status:      domain.ChallengePending,
				WeekStart:   weekStart,
			})
		}
	}
	return drafts
}
