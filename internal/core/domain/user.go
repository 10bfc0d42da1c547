package domain

import (
	"errors"
	"time"
)

var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("incorrect email or password")
var ErrUserNotFound = errors.New("user not found")

// Token verification failures. All three resolve to 401, but callers can
// distinguish a stale token from a forged one in logs.
var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("token signature invalid")
var ErrTokenMalformed = errors.New("token malformed")

// User models a registered account. The password hash never leaves the
// service boundary.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}
