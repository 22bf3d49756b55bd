// Package repository contains data access logic separated from HTTP handlers.
// This file implements the event store: validated CRUD and status updates
// over booking requests, with location display-name enrichment on reads.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to define sentinel error values
	"fmt"          // fmt wraps storage errors with operation context
	"time"         // time carries the event schedule fields

	"github.com/netandpro/booking-api/internal/catalog"
	"github.com/netandpro/booking-api/internal/model"
)

// ErrEventNotFound is returned when an event lookup or mutation targets an
// id with no matching row. Handlers translate it into an HTTP 404; it is an
// expected outcome, not a storage failure.
var ErrEventNotFound = errors.New("event not found")

// EventInput groups the caller-supplied fields of an event. The same set is
// used for creation and for full updates; status is deliberately absent
// because it only changes through UpdateStatus.
type EventInput struct {
	ClientName         string
	ClientEmail        string
	ClientPhone        string
	CompanyName        *string
	DateStart          time.Time
	DateEnd            time.Time
	LocationID         uint64
	Services           []string
	PaymentMethod      string
	Notes              *string
	ConditionsAccepted bool // recorded at creation only, never re-validated
}

// EventRepo encapsulates all database queries related to events. It depends
// on a sql.DB connection pool injected at startup.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo constructs an EventRepo with the provided DB handle.
func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

// eventColumns is the SELECT list shared by GetAll and GetByID. The two
// joined location names are combined into the display name in Go.
const eventColumns = `e.id, e.client_name, e.client_email, e.client_phone, e.company_name,
       e.date_start, e.date_end, e.location_id, e.services, e.payment_method,
       e.notes, e.conditions_accepted, e.status, p.name, l.name`

const eventJoins = `FROM events e
       LEFT JOIN locations l ON l.id = e.location_id
       LEFT JOIN locations p ON p.id = l.parent_id`

// Create inserts a new event with status "En attente" and returns the
// assigned id. The services list is serialized through the catalog encoding
// so the column always holds a JSON array for new rows.
func (r *EventRepo) Create(ctx context.Context, in EventInput) (uint64, error) {
	const q = `INSERT INTO events (
	               client_name, client_email, client_phone, company_name,
	               date_start, date_end, location_id, services,
	               payment_method, notes, conditions_accepted, status
	           ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		in.ClientName, in.ClientEmail, in.ClientPhone, in.CompanyName,
		in.DateStart, in.DateEnd, in.LocationID, catalog.Encode(in.Services),
		in.PaymentMethod, in.Notes, in.ConditionsAccepted, model.StatusPending,
	)
	if err != nil {
		return 0, fmt.Errorf("insert event: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert event: %w", err)
	}
	return uint64(id), nil
}

// GetAll returns every event, newest start date first, enriched with the
// location display name. Events whose location was removed still come back
// with a nil location name (left join semantics).
func (r *EventRepo) GetAll(ctx context.Context) ([]*model.Event, error) {
	q := "SELECT " + eventColumns + " " + eventJoins + " ORDER BY e.date_start DESC"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	out := make([]*model.Event, 0)
	for rows.Next() {
		ev, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return out, nil
}

// GetPublic returns the reduced projection consumed by the public calendar:
// every non-cancelled event ordered by start date ascending, with no
// contact details beyond the client name.
func (r *EventRepo) GetPublic(ctx context.Context) ([]*model.PublicEvent, error) {
	q := `SELECT e.id, e.client_name, e.date_start, e.date_end, e.status, p.name, l.name
	      ` + eventJoins + `
	      WHERE e.status != ?
	      ORDER BY e.date_start ASC`
	rows, err := r.db.QueryContext(ctx, q, model.StatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("list public events: %w", err)
	}
	defer rows.Close()

	out := make([]*model.PublicEvent, 0)
	for rows.Next() {
		var (
			ev                       model.PublicEvent
			parentName, locationName sql.NullString
		)
		if err := rows.Scan(&ev.ID, &ev.ClientName, &ev.DateStart, &ev.DateEnd, &ev.Status, &parentName, &locationName); err != nil {
			return nil, fmt.Errorf("list public events: %w", err)
		}
		ev.LocationName = displayName(parentName, locationName)
		out = append(out, &ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list public events: %w", err)
	}
	return out, nil
}

// GetByID fetches a single event with the same enrichment as GetAll. It
// returns ErrEventNotFound when no row matches.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (*model.Event, error) {
	q := "SELECT " + eventColumns + " " + eventJoins + " WHERE e.id = ?"
	row := r.db.QueryRowContext(ctx, q, id)
	ev, err := scanEvent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("get event %d: %w", id, err)
	}
	return ev, nil
}

// UpdateFull overwrites every caller-mutable field of an event. Status and
// the acceptance flag are left untouched. Returns ErrEventNotFound when no
// row matches the id.
func (r *EventRepo) UpdateFull(ctx context.Context, id uint64, in EventInput) error {
	const q = `UPDATE events SET
	               client_name = ?, client_email = ?, client_phone = ?, company_name = ?,
	               date_start = ?, date_end = ?, location_id = ?, services = ?,
	               payment_method = ?, notes = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		in.ClientName, in.ClientEmail, in.ClientPhone, in.CompanyName,
		in.DateStart, in.DateEnd, in.LocationID, catalog.Encode(in.Services),
		in.PaymentMethod, in.Notes, id,
	)
	if err != nil {
		return fmt.Errorf("update event %d: %w", id, err)
	}
	// Relies on clientFoundRows=true in the DSN so RowsAffected reports
	// matched rows: a no-op update of an existing event is not a 404.
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrEventNotFound
	}
	return nil
}

// UpdateStatus overwrites only the status column. Validation against the
// closed status set happens at the handler boundary; the store just writes
// what it is given. Returns ErrEventNotFound when no row matches.
func (r *EventRepo) UpdateStatus(ctx context.Context, id uint64, status model.Status) error {
	const q = "UPDATE events SET status = ? WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, status, id)
	if err != nil {
		return fmt.Errorf("update event %d status: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrEventNotFound
	}
	return nil
}

// Delete removes an event unconditionally. Nothing references events, so no
// cascade is needed. Returns ErrEventNotFound when no row matches.
func (r *EventRepo) Delete(ctx context.Context, id uint64) error {
	const q = "DELETE FROM events WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete event %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrEventNotFound
	}
	return nil
}

// scanEvent reads one enriched event row through the provided Scan
// function, shared between QueryRow and Rows iteration.
func scanEvent(scan func(dest ...any) error) (*model.Event, error) {
	var (
		ev                       model.Event
		companyName, notes       sql.NullString
		services                 sql.NullString
		parentName, locationName sql.NullString
	)
	err := scan(&ev.ID, &ev.ClientName, &ev.ClientEmail, &ev.ClientPhone, &companyName,
		&ev.DateStart, &ev.DateEnd, &ev.LocationID, &services, &ev.PaymentMethod,
		&notes, &ev.ConditionsAccepted, &ev.Status, &parentName, &locationName)
	if err != nil {
		return nil, err
	}
	ev.CompanyName = nullableString(companyName)
	ev.Notes = nullableString(notes)
	ev.Services = catalog.Decode(services)
	ev.LocationName = displayName(parentName, locationName)
	return &ev, nil
}

// displayName combines the joined parent and own location names into the
// display form, or nil when the location row is gone.
func displayName(parentName, locationName sql.NullString) *string {
	if !locationName.Valid {
		return nil
	}
	full := model.DisplayName(nullableString(parentName), locationName.String)
	return &full
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
