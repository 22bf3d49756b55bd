package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/netandpro/booking-api/internal/model"
	"github.com/netandpro/booking-api/internal/utils"
)

// ErrUserNotFound is returned when no admin account matches the email.
var ErrUserNotFound = errors.New("user not found")

// Admin passwords expire and must be rotated; each change pushes the
// expiration this many months into the future.
const passwordLifetimeMonths = 3

// UserRepo reads and updates the admin accounts. There is no registration
// path; rows are seeded out of band.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo constructs a UserRepo with the given DB handle.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// FindByEmail fetches an admin account by normalized email. Returns
// ErrUserNotFound when the email is unknown.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	const q = `SELECT id, email, password_hash, password_expiration
	           FROM users WHERE email = ? LIMIT 1`
	var u model.User
	err := r.db.QueryRowContext(ctx, q, email).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.PasswordExpiration)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

// UpdatePassword re-hashes the password and pushes the expiration date
// three months forward. Returns ErrUserNotFound when the email is unknown.
func (r *UserRepo) UpdatePassword(ctx context.Context, email, newPassword string, bcryptCost int) error {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(newPassword, bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	expiration := time.Now().UTC().AddDate(0, passwordLifetimeMonths, 0)
	const q = "UPDATE users SET password_hash = ?, password_expiration = ? WHERE email = ?"
	res, err := r.db.ExecContext(ctx, q, hash, expiration, email)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}
