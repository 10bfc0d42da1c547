package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aretelab/arete-api/internal/core/domain"
	"github.com/aretelab/arete-api/internal/core/ports"
)

type MomentHandler struct {
	service ports.MomentService
}

func NewMomentHandler(service ports.MomentService) *MomentHandler {
	return &MomentHandler{service: service}
}

type momentRequest struct {
	Content  string `json:"content" validate:"required"`
	VirtueID string `json:"virtue_id" validate:"required"`
}

// Create logs a reflective moment.
//
// @Summary      Log a moment
// @Tags         moments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      momentRequest  true  "Moment content and virtue tag"
// @Success      200   {object}  domain.Moment
// @Failure      400   {object}  map[string]string
// @Router       /moments [post]
func (h *MomentHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req momentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	moment, err := h.service.Log(c.Request().Context(), user.ID, req.Content, req.VirtueID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, moment)
}

// List returns the caller's moments, newest first.
//
// @Summary      List moments
// @Tags         moments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Moment
// @Router       /moments [get]
func (h *MomentHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	moments, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	if moments == nil {
		moments = []*domain.Moment{}
	}

	return c.JSON(http.StatusOK, moments)
}
