package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/aretelab/arete-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	r.nextID++
	clone := cloneUser(user)
	clone.ID = fmt.Sprintf("user_%d", r.nextID)
	r.byEmail[clone.Email] = cloneUser(clone)
	return clone, nil
}

var discardLogger = zerolog.Nop()

func newTestAuthService(repo *stubUserRepo) *AuthService {
	tokens := NewTokenIssuer("test-secret", time.Hour, nil)
	return NewAuthService(repo, tokens, nil, discardLogger)
}

// ---------------------------------------------------------------------------
// Signup tests
// ---------------------------------------------------------------------------

func TestAuthService_Signup_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	token, user, err := svc.Signup(context.Background(), "alice@example.com", "pass123", "Alice")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if user.ID == "" {
		t.Fatal("expected store-assigned ID")
	}
	if user.PasswordHash == "pass123" {
		t.Fatal("password must be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, _, _ = svc.Signup(context.Background(), "bob@example.com", "pass", "Bob")
	if _, _, err := svc.Signup(context.Background(), "bob@example.com", "pass2", "Bobby"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Login tests
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, created, err := svc.Signup(context.Background(), "carol@example.com", "s3cret", "Carol")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if user.ID != created.ID {
		t.Errorf("expected user %s, got %s", created.ID, user.ID)
	}
}

func TestAuthService_Login_WrongPasswordAndMissingUserIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, _, _ = svc.Signup(context.Background(), "dave@example.com", "goodpass", "Dave")

	_, _, errWrongPass := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, _, errNoUser := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if !errors.Is(errWrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPass)
	}
	if !errors.Is(errNoUser, domain.ErrInvalidCredentials) {
		t.Fatalf("missing user: expected ErrInvalidCredentials, got %v", errNoUser)
	}
}

// ---------------------------------------------------------------------------
// ResolveCurrentUser tests
// ---------------------------------------------------------------------------

func TestAuthService_ResolveCurrentUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	token, created, err := svc.Signup(context.Background(), "erin@example.com", "pass", "Erin")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	resolved, err := svc.ResolveCurrentUser(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resolved.ID != created.ID {
		t.Errorf("expected user %s, got %s", created.ID, resolved.ID)
	}
}

func TestAuthService_ResolveCurrentUser_InvalidToken(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, err := svc.ResolveCurrentUser(context.Background(), "garbage"); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestAuthService_ResolveCurrentUser_DeletedAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	token, _, _ := svc.Signup(context.Background(), "frank@example.com", "pass", "Frank")

	// Account vanishes while the token is still valid.
	delete(repo.byEmail, "frank@example.com")

	if _, err := svc.ResolveCurrentUser(context.Background(), token); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
