package handler

import (
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/netandpro/booking-api/internal/model"
	"github.com/netandpro/booking-api/internal/queue"
	"github.com/netandpro/booking-api/internal/repository"
	queue_publisher "github.com/netandpro/booking-api/internal/service"
)

// Loose shape check only; deliverability is the mailer's problem.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactHandler stores contact-form submissions and queues the
// notification for the mailer.
type ContactHandler struct {
	Contacts *repository.ContactRepo
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(contacts *repository.ContactRepo) *ContactHandler {
	return &ContactHandler{Contacts: contacts}
}

// Create handles POST /api/contact. The message is persisted first; the
// emails to admin and sender are composed downstream of the queue, so a
// broker outage loses only the notification, never the message.
func (h *ContactHandler) Create(c echo.Context) error {
	var body struct {
		Name    string  `json:"name"`
		Email   string  `json:"email"`
		Phone   *string `json:"phone"`
		Subject string  `json:"subject"`
		Message string  `json:"message"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Name = strings.TrimSpace(body.Name)
	body.Email = strings.TrimSpace(body.Email)
	body.Subject = strings.TrimSpace(body.Subject)
	body.Message = strings.TrimSpace(body.Message)
	if body.Name == "" || body.Email == "" || body.Subject == "" || body.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, email, subject and message are required"})
	}
	if !emailPattern.MatchString(body.Email) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid email format"})
	}

	msg := &model.ContactMessage{
		Name:    body.Name,
		Email:   body.Email,
		Phone:   body.Phone,
		Subject: body.Subject,
		Message: body.Message,
	}
	ctx := c.Request().Context()
	if err := h.Contacts.Create(ctx, msg); err != nil {
		c.Logger().Errorf("create contact message: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not store message"})
	}

	if err := queue_publisher.PublishContactReceived(ctx, queue.ContactReceivedNotice{
		MessageID:  msg.ID,
		Name:       msg.Name,
		Email:      msg.Email,
		Subject:    msg.Subject,
		ReceivedAt: msg.CreatedAt.UTC().Format(time.RFC3339),
	}); err != nil {
		log.Printf("contact message %d stored but notification not queued: %v", msg.ID, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"id": msg.ID})
}
