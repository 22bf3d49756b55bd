package handler // handler package contains admin-side event management endpoints

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/netandpro/booking-api/internal/model"
	"github.com/netandpro/booking-api/internal/repository"
)

// GetAll handles GET /api/events and returns every event, newest first,
// enriched with the location display name.
func (h *EventHandler) GetAll(c echo.Context) error {
	events, err := h.Events.GetAll(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list events: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, events)
}

// GetByID handles GET /api/events/:id.
func (h *EventHandler) GetByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ev, err := h.Events.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		c.Logger().Errorf("get event: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, ev)
}

// Update handles PUT /api/events/:id and overwrites every mutable field
// except the status, which has its own endpoint.
func (h *EventHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req eventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := req.validate(false); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := h.Events.UpdateFull(c.Request().Context(), id, req.input()); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		c.Logger().Errorf("update event: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	updated, err := h.Events.GetByID(c.Request().Context(), id)
	if err != nil {
		c.Logger().Errorf("reload event: %v", err)
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	}
	return c.JSON(http.StatusOK, updated)
}

// UpdateStatus handles PATCH /api/events/:id/status. The body carries one
// field, the new status, which must be one of the three known labels; the
// stored column never sees a value outside the closed set.
func (h *EventHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		Status model.Status `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if !body.Status.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
	}
	if err := h.Events.UpdateStatus(c.Request().Context(), id, body.Status); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		c.Logger().Errorf("update event status: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Delete handles DELETE /api/events/:id. Deletion is permanent and
// unconditional; nothing references an event.
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Events.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		c.Logger().Errorf("delete event: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
