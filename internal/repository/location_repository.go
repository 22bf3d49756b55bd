package repository // repository holds data access logic for domain entities

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/netandpro/booking-api/internal/model"
)

// LocationRepo provides read-only lookups over the two-level location
// hierarchy. Locations are managed out of band (seed data); the application
// never writes to this table.
type LocationRepo struct {
	db *sql.DB
}

// NewLocationRepo constructs a LocationRepo with the given DB handle.
func NewLocationRepo(db *sql.DB) *LocationRepo {
	return &LocationRepo{db: db}
}

// ListAll returns every location annotated with its display name, ordered
// by parent name then own name. Root locations sort first because their
// joined parent name is NULL.
func (r *LocationRepo) ListAll(ctx context.Context) ([]*model.Location, error) {
	const q = `SELECT l.id, l.name, l.parent_id, p.name
	           FROM locations l
	           LEFT JOIN locations p ON p.id = l.parent_id
	           ORDER BY p.name, l.name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	out := make([]*model.Location, 0)
	for rows.Next() {
		var (
			loc        model.Location
			parentID   sql.NullInt64
			parentName sql.NullString
		)
		if err := rows.Scan(&loc.ID, &loc.Name, &parentID, &parentName); err != nil {
			return nil, fmt.Errorf("list locations: %w", err)
		}
		if parentID.Valid {
			id := uint64(parentID.Int64)
			loc.ParentID = &id
		}
		loc.FullName = model.DisplayName(nullableString(parentName), loc.Name)
		out = append(out, &loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return out, nil
}

// ListParents returns the root locations (no parent), alphabetical.
func (r *LocationRepo) ListParents(ctx context.Context) ([]*model.Location, error) {
	const q = "SELECT id, name, parent_id FROM locations WHERE parent_id IS NULL ORDER BY name"
	return r.list(ctx, q)
}

// ListChildren returns the sub-locations of a parent, alphabetical.
func (r *LocationRepo) ListChildren(ctx context.Context, parentID uint64) ([]*model.Location, error) {
	const q = "SELECT id, name, parent_id FROM locations WHERE parent_id = ? ORDER BY name"
	return r.list(ctx, q, parentID)
}

func (r *LocationRepo) list(ctx context.Context, q string, args ...any) ([]*model.Location, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	out := make([]*model.Location, 0)
	for rows.Next() {
		var (
			loc      model.Location
			parentID sql.NullInt64
		)
		if err := rows.Scan(&loc.ID, &loc.Name, &parentID); err != nil {
			return nil, fmt.Errorf("list locations: %w", err)
		}
		if parentID.Valid {
			id := uint64(parentID.Int64)
			loc.ParentID = &id
		}
		out = append(out, &loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return out, nil
}
