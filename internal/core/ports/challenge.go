package ports

import (
	"context"
	"time"

	"github.com/aretelab/arete-api/internal/core/domain"
)

// ChallengeRepository defines persistence for weekly challenges.
type ChallengeRepository interface {
	// FindByUserWeek returns the user's challenges for the given week bucket
	// in store order. An empty slice means no generation has happened yet.
	FindByUserWeek(ctx context.Context, userID string, weekStart time.Time) ([]*domain.Challenge, error)
	// InsertMany bulk-inserts challenge drafts. A uniqueness violation on
	// (user_id, week_start, virtueId, title) maps to domain.ErrChallengeExists.
	InsertMany(ctx context.Context, challenges []*domain.Challenge) error
	// UpdateStatus atomically sets the status of the challenge matching both
	// id and owner, returning the post-update record. A missing or
	// differently-owned challenge maps to domain.ErrChallengeNotFound.
	UpdateStatus(ctx context.Context, challengeID, userID string, status domain.ChallengeStatus) (*domain.Challenge, error)
}

// ChallengeService is the weekly challenge engine.
type ChallengeService interface {
	// GetOrGenerate returns this week's challenges for the user, generating
	// them from the user's current goal on first call of the week.
	GetOrGenerate(ctx context.Context, userID string) ([]*domain.Challenge, error)
	UpdateStatus(ctx context.Context, challengeID, userID string, status domain.ChallengeStatus) (*domain.Challenge, error)
}
