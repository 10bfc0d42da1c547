package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aretelab/arete-api/internal/api/middleware"
	"github.com/aretelab/arete-api/internal/core/domain"
)

// currentUser extracts the user injected by the Auth middleware. Its
// absence means the route was wired without the middleware; fail closed.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
