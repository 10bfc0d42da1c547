package ports

import (
	"context"
	"time"

	"github.com/aretelab/arete-api/internal/core/domain"
)

// MomentRepository defines persistence for reflective moments.
type MomentRepository interface {
	Create(ctx context.Context, m *domain.Moment) (*domain.Moment, error)
	// ListByUser returns the user's moments newest-first.
	ListByUser(ctx context.Context, userID string) ([]*domain.Moment, error)
	// ListByUserSince returns the user's moments with timestamp >= since.
	ListByUserSince(ctx context.Context, userID string, since time.Time) ([]*domain.Moment, error)
}

// MomentService logs and lists reflective moments.
type MomentService interface {
	Log(ctx context.Context, userID, content, virtueID string) (*domain.Moment, error)
	List(ctx context.Context, userID string) ([]*domain.Moment, error)
}
