package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aretelab/arete-api/internal/core/ports"
)

type OnboardingHandler struct {
	service ports.OnboardingService
}

func NewOnboardingHandler(service ports.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{service: service}
}

type assessmentRequest struct {
	Answers map[string]int `json:"answers" validate:"required,min=1"`
}

type goalRequest struct {
	PriorityVirtues []string `json:"priority_virtues" validate:"required,min=1"`
	InnovationGoal  string   `json:"innovation_goal" validate:"required"`
}

// SubmitAssessment scores and stores a questionnaire submission.
//
// @Summary      Submit a self-assessment
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      assessmentRequest  true  "Questionnaire answers"
// @Success      200   {object}  domain.Assessment
// @Failure      400   {object}  map[string]string
// @Router       /assessment [post]
func (h *OnboardingHandler) SubmitAssessment(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req assessmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	assessment, err := h.service.SubmitAssessment(c.Request().Context(), user.ID, req.Answers)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, assessment)
}

// GetAssessment returns the latest assessment.
//
// @Summary      Get the latest self-assessment
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Assessment
// @Failure      404  {object}  map[string]string
// @Router       /assessment [get]
func (h *OnboardingHandler) GetAssessment(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	assessment, err := h.service.GetAssessment(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, assessment)
}

// SubmitGoal records a new goal.
//
// @Summary      Submit a goal
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      goalRequest  true  "Prioritized virtues and innovation statement"
// @Success      200   {object}  domain.Goal
// @Failure      400   {object}  map[string]string
// @Router       /goals [post]
func (h *OnboardingHandler) SubmitGoal(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req goalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	goal, err := h.service.SubmitGoal(c.Request().Context(), user.ID, req.PriorityVirtues, req.InnovationGoal)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, goal)
}

// GetGoal returns the latest goal.
//
// @Summary      Get the latest goal
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Goal
// @Failure      404  {object}  map[string]string
// @Router       /goals [get]
func (h *OnboardingHandler) GetGoal(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	goal, err := h.service.GetGoal(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, goal)
}
