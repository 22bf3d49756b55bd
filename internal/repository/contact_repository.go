package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/netandpro/booking-api/internal/model"
)

// ErrContactNotFound is returned when a contact message id has no row.
var ErrContactNotFound = errors.New("contact message not found")

// Contact messages start in this state until an admin handles them.
const contactStatusNew = "nouveau"

// ContactRepo persists contact-form submissions. The outbound notification
// email itself is sent by a separate process fed from the queue; the row is
// the durable record.
type ContactRepo struct {
	db *sql.DB
}

// NewContactRepo constructs a ContactRepo with the given DB handle.
func NewContactRepo(db *sql.DB) *ContactRepo {
	return &ContactRepo{db: db}
}

// Create inserts a message with status "nouveau". On success the ID,
// Status and CreatedAt fields of the message are populated so the caller
// gets back a complete record.
func (r *ContactRepo) Create(ctx context.Context, m *model.ContactMessage) error {
	const qInsert = `INSERT INTO contact_messages (name, email, phone, subject, message, status)
	                 VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, m.Name, m.Email, m.Phone, m.Subject, m.Message, contactStatusNew)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	m.ID = uint64(id)
	m.Status = contactStatusNew

	// Follow-up SELECT to pick up the DB-assigned creation timestamp.
	const qSelect = "SELECT created_at FROM contact_messages WHERE id = ?"
	if err := r.db.QueryRowContext(ctx, qSelect, m.ID).Scan(&m.CreatedAt); err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

// ListAll returns every contact message, newest first.
func (r *ContactRepo) ListAll(ctx context.Context) ([]*model.ContactMessage, error) {
	const q = `SELECT id, name, email, phone, subject, message, status, created_at
	           FROM contact_messages ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	out := make([]*model.ContactMessage, 0)
	for rows.Next() {
		var (
			m     model.ContactMessage
			phone sql.NullString
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &phone, &m.Subject, &m.Message, &m.Status, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("list contact messages: %w", err)
		}
		m.Phone = nullableString(phone)
		out = append(out, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return out, nil
}

// UpdateStatus marks a message as handled (or any other admin-chosen
// state). Returns ErrContactNotFound when no row matches.
func (r *ContactRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	const q = "UPDATE contact_messages SET status = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, status, id)
	if err != nil {
		return fmt.Errorf("update contact message %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrContactNotFound
	}
	return nil
}

// Delete removes a message. Returns ErrContactNotFound when no row matches.
func (r *ContactRepo) Delete(ctx context.Context, id uint64) error {
	const q = "DELETE FROM contact_messages WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete contact message %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrContactNotFound
	}
	return nil
}
