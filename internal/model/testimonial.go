package model

import "time"

// Testimonials are only displayed for a limited period after submission and
// are wiped from the database once that period has elapsed.
const TestimonialRetentionMonths = 3

// Testimonial is a client-submitted quote shown on the public site.
type Testimonial struct {
	ID         uint64    `json:"id"`          // testimonials.id
	ClientName string    `json:"client_name"` // testimonials.client_name
	Comment    string    `json:"comment"`     // testimonials.comment
	CreatedAt  time.Time `json:"created_at"`  // testimonials.created_at
}

// TestimonialCutoff returns the oldest creation time still considered
// recent at the given instant. Testimonials created strictly before the
// cutoff are eligible for the purge sweep and excluded from listings.
func TestimonialCutoff(now time.Time) time.Time {
	return now.AddDate(0, -TestimonialRetentionMonths, 0)
}
