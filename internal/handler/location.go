package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/netandpro/booking-api/internal/repository"
)

// LocationHandler serves the read-only venue hierarchy that populates the
// booking form's venue pickers.
type LocationHandler struct {
	Locations *repository.LocationRepo
}

// NewLocationHandler constructs a LocationHandler.
func NewLocationHandler(locations *repository.LocationRepo) *LocationHandler {
	return &LocationHandler{Locations: locations}
}

// GetAll handles GET /api/locations: every location with its display name.
func (h *LocationHandler) GetAll(c echo.Context) error {
	locations, err := h.Locations.ListAll(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list locations: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, locations)
}

// GetParents handles GET /api/locations/parents: root venues only.
func (h *LocationHandler) GetParents(c echo.Context) error {
	parents, err := h.Locations.ListParents(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list parent locations: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, parents)
}

// GetChildren handles GET /api/locations/children/:parentId: the
// sub-venues of one parent.
func (h *LocationHandler) GetChildren(c echo.Context) error {
	parentID, err := strconv.ParseUint(c.Param("parentId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid parent id"})
	}
	children, err := h.Locations.ListChildren(c.Request().Context(), parentID)
	if err != nil {
		c.Logger().Errorf("list child locations: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, children)
}
