package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aretelab/arete-api/internal/core/domain"
)

// NewsHandler serves the static virtue-tagged article catalog.
type NewsHandler struct{}

func NewNewsHandler() *NewsHandler {
	return &NewsHandler{}
}

// List returns articles, optionally filtered by a substring query.
//
// @Summary      List news articles
// @Tags         news
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  false  "Substring filter over title and description"
// @Success      200  {array}   domain.Article
// @Router       /news [get]
func (h *NewsHandler) List(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, domain.SearchArticles(c.QueryParam("q")))
}
