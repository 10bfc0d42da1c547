package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aretelab/arete-api/internal/core/domain"
)

// UserContextKey is the echo context key the resolved user is stored under.
const UserContextKey = "user"

// CurrentUserResolver turns a bearer token into a fresh user record. The
// auth service implements it.
type CurrentUserResolver interface {
	ResolveCurrentUser(ctx context.Context, token string) (*domain.User, error)
}

// Auth extracts the bearer token, resolves the account it names, and
// injects the user into context. Token and lookup failures propagate to the
// central error handler (all map to 401 except a vanished account, 404).
func Auth(resolver CurrentUserResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := resolver.ResolveCurrentUser(c.Request().Context(), parts[1])
			if err != nil {
				return err
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
