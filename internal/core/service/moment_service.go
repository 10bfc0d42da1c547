package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/aretelab/arete-api/internal/api/metrics"
	"github.com/aretelab/arete-api/internal/core/domain"
	"github.com/aretelab/arete-api/internal/core/ports"
)

// MomentService logs reflective moments with canned per-virtue feedback.
type MomentService struct {
	moments ports.MomentRepository
	now     func() time.Time
	log     zerolog.Logger
}

func NewMomentService(moments ports.MomentRepository, now func() time.Time, log zerolog.Logger) *MomentService {
	if now == nil {
		now = time.Now
	}
	return &MomentService{moments: moments, now: now, log: log}
}

// Log persists a moment and attaches the feedback line for its virtue.
func (s *MomentService) Log(ctx context.Context, userID, content, virtueID string) (*domain.Moment, error) {
	created, err := s.moments.Create(ctx, &domain.Moment{
		UserID:    userID,
		Content:   content,
		VirtueID:  virtueID,
		Feedback:  domain.FeedbackFor(virtueID),
		Timestamp: s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	metrics.MomentsLoggedTotal.WithLabelValues(created.VirtueID).Inc()
	return created, nil
}

// List returns the user's moments newest-first.
func (s *MomentService) List(ctx context.Context, userID string) ([]*domain.Moment, error) {
	return s.moments.ListByUser(ctx, userID)
}
