package handler

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/netandpro/booking-api/internal/repository"
)

// Comments shorter than this carry no usable quote; the public form shows
// the same limit.
const minCommentLength = 10

// TestimonialHandler serves the public quote board.
type TestimonialHandler struct {
	Testimonials *repository.TestimonialRepo
}

// NewTestimonialHandler constructs a TestimonialHandler.
func NewTestimonialHandler(testimonials *repository.TestimonialRepo) *TestimonialHandler {
	return &TestimonialHandler{Testimonials: testimonials}
}

// Create handles POST /api/testimonials.
func (h *TestimonialHandler) Create(c echo.Context) error {
	var body struct {
		ClientName string `json:"clientName"`
		Comment    string `json:"comment"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.ClientName = strings.TrimSpace(body.ClientName)
	body.Comment = strings.TrimSpace(body.Comment)
	if body.ClientName == "" || body.Comment == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "clientName and comment are required"})
	}
	if utf8.RuneCountInString(body.Comment) < minCommentLength {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "comment must be at least 10 characters"})
	}

	id, err := h.Testimonials.Create(c.Request().Context(), body.ClientName, body.Comment)
	if err != nil {
		c.Logger().Errorf("create testimonial: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create testimonial"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// GetRecent handles GET /api/testimonials/recent: entries still inside the
// retention window, newest first.
func (h *TestimonialHandler) GetRecent(c echo.Context) error {
	testimonials, err := h.Testimonials.ListRecent(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list testimonials: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, testimonials)
}

// Cleanup handles DELETE /api/testimonials/cleanup. The same sweep runs on
// a schedule; this endpoint lets an operator trigger it on demand, and
// calling it twice in a row is harmless.
func (h *TestimonialHandler) Cleanup(c echo.Context) error {
	deleted, err := h.Testimonials.PurgeExpired(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("purge testimonials: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cleanup failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": deleted})
}
