package cleanup

import (
	"context"
	"errors"
	"testing"
)

type fakePurger struct {
	calls int
	n     int64
	err   error
}

func (f *fakePurger) PurgeExpired(ctx context.Context) (int64, error) {
	f.calls++
	return f.n, f.err
}

func TestNewScheduler_InvalidSpec(t *testing.T) {
	if _, err := NewScheduler("not a cron spec", &fakePurger{}); err == nil {
		t.Fatalf("expected error for invalid spec")
	}
}

func TestScheduler_StartRunsImmediateSweep(t *testing.T) {
	p := &fakePurger{n: 2}
	s, err := NewScheduler("@every 24h", p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Start()
	defer s.Stop()

	if p.calls != 1 {
		t.Fatalf("expected one immediate sweep, got %d", p.calls)
	}
}

func TestScheduler_SweepErrorDoesNotPanic(t *testing.T) {
	p := &fakePurger{err: errors.New("db down")}
	s, err := NewScheduler("@every 24h", p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Start()
	s.Stop()

	if p.calls != 1 {
		t.Fatalf("expected the failing sweep to run once, got %d", p.calls)
	}
}
