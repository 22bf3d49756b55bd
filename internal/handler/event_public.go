// Package handler exposes HTTP handlers for both public and admin
// endpoints. This file covers the public side of events: the booking form
// submission and the calendar feed.
package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/netandpro/booking-api/internal/queue"
	"github.com/netandpro/booking-api/internal/repository"
	queue_publisher "github.com/netandpro/booking-api/internal/service"
)

// EventHandler bundles the event store for all event endpoints.
type EventHandler struct {
	Events *repository.EventRepo
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(events *repository.EventRepo) *EventHandler {
	return &EventHandler{Events: events}
}

// eventReq is the JSON body of the booking form and of the admin full
// update. Services binds into a typed slice, so a body carrying anything
// but a JSON array of strings is rejected at bind time instead of being
// silently coerced.
type eventReq struct {
	ClientName         string    `json:"clientName"`
	ClientEmail        string    `json:"clientEmail"`
	ClientPhone        string    `json:"clientPhone"`
	CompanyName        *string   `json:"companyName"`
	DateStart          time.Time `json:"dateStart"`
	DateEnd            time.Time `json:"dateEnd"`
	LocationID         uint64    `json:"locationId"`
	Services           []string  `json:"services"`
	PaymentMethod      string    `json:"paymentMethod"`
	Notes              *string   `json:"notes"`
	ConditionsAccepted bool      `json:"conditionsAccepted"`
}

// validate checks the required fields and normalizes the request in place.
// forCreate additionally demands the conditions checkbox, which only the
// public submission carries. The returned message is safe to show the
// caller.
func (r *eventReq) validate(forCreate bool) error {
	r.ClientName = strings.TrimSpace(r.ClientName)
	r.ClientEmail = strings.TrimSpace(r.ClientEmail)
	r.ClientPhone = strings.TrimSpace(r.ClientPhone)
	r.PaymentMethod = strings.TrimSpace(r.PaymentMethod)

	switch {
	case r.ClientName == "":
		return errors.New("clientName is required")
	case r.ClientEmail == "":
		return errors.New("clientEmail is required")
	case r.ClientPhone == "":
		return errors.New("clientPhone is required")
	case r.LocationID == 0:
		return errors.New("locationId is required")
	case r.PaymentMethod == "":
		return errors.New("paymentMethod is required")
	case r.DateStart.IsZero() || r.DateEnd.IsZero():
		return errors.New("dateStart and dateEnd are required")
	case r.DateEnd.Before(r.DateStart):
		return errors.New("dateEnd must not precede dateStart")
	}
	for i, s := range r.Services {
		s = strings.TrimSpace(s)
		if s == "" {
			return errors.New("services entries must be non-empty")
		}
		r.Services[i] = s
	}
	if forCreate && !r.ConditionsAccepted {
		return errors.New("conditions must be accepted")
	}
	return nil
}

func (r *eventReq) input() repository.EventInput {
	return repository.EventInput{
		ClientName:         r.ClientName,
		ClientEmail:        r.ClientEmail,
		ClientPhone:        r.ClientPhone,
		CompanyName:        r.CompanyName,
		DateStart:          r.DateStart,
		DateEnd:            r.DateEnd,
		LocationID:         r.LocationID,
		Services:           r.Services,
		PaymentMethod:      r.PaymentMethod,
		Notes:              r.Notes,
		ConditionsAccepted: r.ConditionsAccepted,
	}
}

// Create handles POST /api/events, the public booking submission. Every
// new event starts pending; the admin decides later. After the row is
// stored a notification notice goes to the queue for the mailer, and a
// publish failure never fails the request.
func (h *EventHandler) Create(c echo.Context) error {
	var req eventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := req.validate(true); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx := c.Request().Context()
	id, err := h.Events.Create(ctx, req.input())
	if err != nil {
		c.Logger().Errorf("create event: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create event"})
	}

	if err := queue_publisher.PublishBookingRequested(ctx, queue.BookingRequestedNotice{
		EventID:     id,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		DateStart:   req.DateStart.UTC().Format(time.RFC3339),
		DateEnd:     req.DateEnd.UTC().Format(time.RFC3339),
		LocationID:  req.LocationID,
		Services:    req.Services,
		RequestedAt: time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		log.Printf("event %d created but notification not queued: %v", id, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// GetPublic handles GET /api/events/public, the feed the public calendar
// consumes. Cancelled events never appear here.
func (h *EventHandler) GetPublic(c echo.Context) error {
	events, err := h.Events.GetPublic(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list public events: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, events)
}
