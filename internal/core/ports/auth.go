package ports

import (
	"context"

	"github.com/aretelab/arete-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create inserts a new user and returns it with the store-assigned ID.
	// A uniqueness violation on email maps to domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// AuthService implements signup, login, and bearer-token resolution.
type AuthService interface {
	Signup(ctx context.Context, email, password, name string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// ResolveCurrentUser verifies the token and re-fetches the account it
	// names. Every authenticated endpoint calls this before doing any work.
	ResolveCurrentUser(ctx context.Context, token string) (*domain.User, error)
}
