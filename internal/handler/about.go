package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/peirisgrand/resort-api/internal/repository"
)

// AboutHandler serves the static about-us sections.
type AboutHandler struct {
	About *repository.AboutRepo
}

func NewAboutHandler(a *repository.AboutRepo) *AboutHandler {
	return &AboutHandler{About: a}
}

type aboutPart struct {
	ID      uint64 `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Section string `json:"section"`
}

// List handles GET /api/about.
func (h *AboutHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sections, err := h.About.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]aboutPart, 0, len(sections))
	for _, s := range sections {
		out = append(out, aboutPart{ID: s.ID, Title: s.Title, Content: s.Content, Section: s.Section})
	}
	return c.JSON(http.StatusOK, out)
}
