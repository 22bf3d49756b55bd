package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/netandpro/booking-api/internal/config"
	"github.com/netandpro/booking-api/internal/repository"
	"github.com/netandpro/booking-api/internal/utils"
)

// New admin passwords must be at least this long.
const minPasswordLength = 8

// AuthHandler bundles dependencies for the admin session endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(cfg config.Config, users *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

// ----- DTOs -----

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type changePasswordReq struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
type userPart struct {
	ID                 uint64    `json:"id"`
	Email              string    `json:"email"`
	PasswordExpiration time.Time `json:"password_expiration"`
}
type loginResp struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
	User    userPart  `json:"user"`
}

// Login verifies admin credentials and issues a session token. Unknown
// email and wrong password produce the same response so the endpoint does
// not leak which accounts exist. An account with an expired password gets
// 403 with a passwordExpired flag so the UI can route to the change form.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		c.Logger().Errorf("login: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !utils.VerifyPassword(user.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	if user.PasswordExpired(time.Now().UTC()) {
		return c.JSON(http.StatusForbidden, echo.Map{
			"error":           "password expired",
			"passwordExpired": true,
		})
	}

	token, err := utils.NewSessionToken(h.Cfg.JWTSecret, user.ID, user.Email, h.Cfg.JWTTTLHours)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, loginResp{
		Token:   token.Token,
		Expires: token.Exp,
		User:    userPart{ID: user.ID, Email: user.Email, PasswordExpiration: user.PasswordExpiration},
	})
}

// ChangePassword rotates the admin password; the new one gets a fresh
// three-month expiration. The current password must be supplied even
// inside a valid session.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	email, err := sessionEmail(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req changePasswordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "current and new password required"})
	}
	if utf8.RuneCountInString(req.NewPassword) < minPasswordLength {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "new password must be at least 8 characters"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		c.Logger().Errorf("change password: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !utils.VerifyPassword(user.PasswordHash, req.CurrentPassword) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "current password incorrect"})
	}
	if err := h.Users.UpdatePassword(ctx, email, req.NewPassword, h.Cfg.BcryptCost); err != nil {
		c.Logger().Errorf("change password: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Verify returns the authenticated admin account, letting the UI keep a
// session alive across reloads.
func (h *AuthHandler) Verify(c echo.Context) error {
	email, err := sessionEmail(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		c.Logger().Errorf("verify: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"user": userPart{ID: user.ID, Email: user.Email, PasswordExpiration: user.PasswordExpiration},
	})
}

// sessionEmail extracts the email claim the JWT middleware stored in the
// context.
func sessionEmail(c echo.Context) (string, error) {
	if v, ok := c.Get("email").(string); ok && v != "" {
		return v, nil
	}
	return "", errors.New("no email claim in context")
}
