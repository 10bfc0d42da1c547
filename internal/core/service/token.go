package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aretelab/arete-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// TokenIssuer mints and verifies HS256 bearer tokens carrying a subject
// claim. Tokens are stateless: there is no revocation list, only expiry.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer builds a TokenIssuer. now may be nil, in which case the
// wall clock is used; tests inject it to pin expiry boundaries.
func NewTokenIssuer(secret string, ttl time.Duration, now func() time.Time) *TokenIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	if now == nil {
		now = time.Now
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: now}
}

// Issue signs a token for the given subject with the configured expiry
// horizon.
func (t *TokenIssuer) Issue(subject string) (string, error) {
	issued := t.now().UTC()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": issued.Unix(),
		"exp": issued.Add(t.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify recomputes the signature and checks expiry, returning the embedded
// subject unchanged on success.
func (t *TokenIssuer) Verify(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", domain.ErrTokenMalformed
		default:
			return "", domain.ErrTokenInvalid
		}
	}
	if !parsed.Valid {
		return "", domain.ErrTokenInvalid
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", domain.ErrTokenMalformed
	}
	return subject, nil
}
