package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aretelab/arete-api/internal/core/domain"
	"github.com/aretelab/arete-api/internal/core/ports"
)

type ChallengeHandler struct {
	service ports.ChallengeService
}

func NewChallengeHandler(service ports.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{service: service}
}

type updateChallengeRequest struct {
	Status string `json:"status"`
}

// List returns this week's challenges, generating them on the first request
// of the week.
//
// @Summary      Get or generate this week's challenges
// @Tags         challenges
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Challenge
// @Failure      401  {object}  map[string]string
// @Router       /challenges [get]
func (h *ChallengeHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	challenges, err := h.service.GetOrGenerate(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	if challenges == nil {
		challenges = []*domain.Challenge{}
	}

	return c.JSON(http.StatusOK, challenges)
}

// UpdateStatus toggles a challenge between pending and completed.
//
// @Summary      Update a challenge's status
// @Tags         challenges
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Challenge ID"
// @Param        body  body      updateChallengeRequest  true  "New status (pending or completed)"
// @Success      200   {object}  domain.Challenge
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /challenges/{id} [patch]
func (h *ChallengeHandler) UpdateStatus(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateChallengeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	challenge, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), user.ID, domain.ChallengeStatus(req.Status))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, challenge)
}
