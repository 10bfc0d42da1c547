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

// AuthService implements signup, login, and current-user resolution.
type AuthService struct {
	users  ports.UserRepository
	tokens *TokenIssuer
	now    func() time.Time
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *TokenIssuer, now func() time.Time, log zerolog.Logger) *AuthService {
	if now == nil {
		now = time.Now
	}
	return &AuthService{users: users, tokens: tokens, now: now, log: log}
}

// Signup registers a new account and returns a bearer token for it.
// Email uniqueness is checked before insert as the fast path; the store's
// unique index on email is the authoritative guard against concurrent
// signups racing past this check.
func (s *AuthService) Signup(ctx context.Context, email, password, name string) (string, *domain.User, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return "", nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.Email)
	if err != nil {
		return "", nil, err
	}

	metrics.SignupsTotal.Inc()
	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return token, created, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password collapse into the same error so callers cannot enumerate
// accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !verifyPassword(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, user, nil
}

// ResolveCurrentUser verifies the bearer token and re-fetches the account
// it names, so a deleted account invalidates otherwise-valid tokens.
func (s *AuthService) ResolveCurrentUser(ctx context.Context, token string) (*domain.User, error) {
	subject, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, subject)
	if err != nil {
		return nil, err
	}
	return user, nil
}
