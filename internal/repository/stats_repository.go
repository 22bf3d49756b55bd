package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/netandpro/booking-api/internal/catalog"
	"github.com/netandpro/booking-api/internal/model"
)

// StatsRepo computes the read-only aggregates behind the admin dashboard.
// It performs no writes and tolerates malformed services data row by row.
type StatsRepo struct {
	db *sql.DB
}

// NewStatsRepo constructs a StatsRepo with the given DB handle.
func NewStatsRepo(db *sql.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// StatusCount is one row of the per-status breakdown.
type StatusCount struct {
	Status model.Status `json:"status"`
	Count  int          `json:"count"`
}

// MonthCount is one row of the per-month breakdown (1..12).
type MonthCount struct {
	Month int `json:"month"`
	Count int `json:"count"`
}

// ServiceCount is one entry of the most-requested-services ranking.
type ServiceCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TotalCount returns the number of events regardless of status.
func (r *StatsRepo) TotalCount(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM events").Scan(&total); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return total, nil
}

// CountByStatus groups all events by their status.
func (r *StatsRepo) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	const q = "SELECT status, COUNT(*) FROM events GROUP BY status"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}
	defer rows.Close()

	out := make([]StatusCount, 0)
	for rows.Next() {
		var sc StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("count by status: %w", err)
		}
		out = append(out, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}
	return out, nil
}

// CountByMonthThisYear groups the events whose start date falls in the
// current calendar year by month number, ascending.
func (r *StatsRepo) CountByMonthThisYear(ctx context.Context) ([]MonthCount, error) {
	const q = `SELECT MONTH(date_start), COUNT(*)
	           FROM events
	           WHERE YEAR(date_start) = YEAR(CURDATE())
	           GROUP BY MONTH(date_start)
	           ORDER BY MONTH(date_start)`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("count by month: %w", err)
	}
	defer rows.Close()

	out := make([]MonthCount, 0)
	for rows.Next() {
		var mc MonthCount
		if err := rows.Scan(&mc.Month, &mc.Count); err != nil {
			return nil, fmt.Errorf("count by month: %w", err)
		}
		out = append(out, mc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count by month: %w", err)
	}
	return out, nil
}

// TopServices decodes the services blob of every event and returns the n
// most requested service names, most popular first. Rows with unreadable
// blobs decode to an empty list and simply contribute nothing; they never
// abort the aggregation.
func (r *StatsRepo) TopServices(ctx context.Context, n int) ([]ServiceCount, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT services FROM events")
	if err != nil {
		return nil, fmt.Errorf("top services: %w", err)
	}
	defer rows.Close()

	var blobs []sql.NullString
	for rows.Next() {
		var blob sql.NullString
		if err := rows.Scan(&blob); err != nil {
			return nil, fmt.Errorf("top services: %w", err)
		}
		blobs = append(blobs, blob)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("top services: %w", err)
	}
	return rankServices(blobs, n), nil
}

// rankServices counts each distinct service name across all stored blobs
// and returns the n most frequent, descending. The sort is stable over
// first-encountered order, which is the only tie-break.
func rankServices(blobs []sql.NullString, n int) []ServiceCount {
	counts := make(map[string]int)
	var order []string
	for _, blob := range blobs {
		for _, name := range catalog.Decode(blob) {
			if name == "" {
				continue
			}
			if _, seen := counts[name]; !seen {
				order = append(order, name)
			}
			counts[name]++
		}
	}
	out := make([]ServiceCount, 0, len(order))
	for _, name := range order {
		out = append(out, ServiceCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
