package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/netandpro/booking-api/internal/model"
)

// TestimonialRepo persists client quotes with a fixed retention window.
// Entries older than the window are removed by a recurring bulk sweep and
// never listed in the meantime.
type TestimonialRepo struct {
	db *sql.DB
}

// NewTestimonialRepo constructs a TestimonialRepo with the given DB handle.
func NewTestimonialRepo(db *sql.DB) *TestimonialRepo {
	return &TestimonialRepo{db: db}
}

// Create inserts a testimonial and returns its id. The creation timestamp
// is assigned by the database (DEFAULT CURRENT_TIMESTAMP) so it is
// monotonic per the insert order and never supplied by callers.
func (r *TestimonialRepo) Create(ctx context.Context, clientName, comment string) (uint64, error) {
	const q = "INSERT INTO testimonials (client_name, comment) VALUES (?, ?)"
	res, err := r.db.ExecContext(ctx, q, clientName, comment)
	if err != nil {
		return 0, fmt.Errorf("insert testimonial: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert testimonial: %w", err)
	}
	return uint64(id), nil
}

// ListRecent returns testimonials created within the retention window,
// newest first.
func (r *TestimonialRepo) ListRecent(ctx context.Context) ([]*model.Testimonial, error) {
	const q = `SELECT id, client_name, comment, created_at
	           FROM testimonials
	           WHERE created_at >= ?
	           ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, model.TestimonialCutoff(time.Now().UTC()))
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()

	out := make([]*model.Testimonial, 0)
	for rows.Next() {
		var tm model.Testimonial
		if err := rows.Scan(&tm.ID, &tm.ClientName, &tm.Comment, &tm.CreatedAt); err != nil {
			return nil, fmt.Errorf("list testimonials: %w", err)
		}
		out = append(out, &tm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return out, nil
}

// PurgeExpired deletes every testimonial older than the retention window in
// a single bulk statement and returns the number of rows removed. Running
// it again immediately is a no-op, so the scheduled sweep and the manual
// cleanup endpoint can coexist safely.
func (r *TestimonialRepo) PurgeExpired(ctx context.Context) (int64, error) {
	const q = "DELETE FROM testimonials WHERE created_at < ?"
	res, err := r.db.ExecContext(ctx, q, model.TestimonialCutoff(time.Now().UTC()))
	if err != nil {
		return 0, fmt.Errorf("purge testimonials: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge testimonials: %w", err)
	}
	return n, nil
}
