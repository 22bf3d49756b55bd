package model

import (
	"testing"
	"time"
)

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCancelled} {
		if !s.Valid() {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	for _, s := range []Status{"", "pending", "CONFIRMED", "Terminé"} {
		if s.Valid() {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}

func TestDisplayName(t *testing.T) {
	parent := "Hilton Yaoundé"
	if got := DisplayName(&parent, "Salle A"); got != "Hilton Yaoundé - Salle A" {
		t.Fatalf("expected composed name, got %q", got)
	}
	if got := DisplayName(nil, "Hilton Yaoundé"); got != "Hilton Yaoundé" {
		t.Fatalf("expected plain name, got %q", got)
	}
	empty := ""
	if got := DisplayName(&empty, "Salle B"); got != "Salle B" {
		t.Fatalf("expected plain name for empty parent, got %q", got)
	}
}

func TestTestimonialCutoff(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	cutoff := TestimonialCutoff(now)

	fourMonthsOld := now.AddDate(0, -4, 0)
	oneMonthOld := now.AddDate(0, -1, 0)

	if !fourMonthsOld.Before(cutoff) {
		t.Fatalf("four month old entry should fall before cutoff %v", cutoff)
	}
	if oneMonthOld.Before(cutoff) {
		t.Fatalf("one month old entry should not fall before cutoff %v", cutoff)
	}
}

func TestPasswordExpired(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	u := &User{PasswordExpiration: now.AddDate(0, 1, 0)}
	if u.PasswordExpired(now) {
		t.Fatalf("password expiring next month should not be expired")
	}
	u.PasswordExpiration = now.AddDate(0, 0, -1)
	if !u.PasswordExpired(now) {
		t.Fatalf("password expired yesterday should be expired")
	}
}
