// Package cleanup runs the recurring testimonial purge. The sweep is a
// single bulk DELETE in the repository, so it can overlap with concurrent
// submissions and with the manual cleanup endpoint without coordination.
package cleanup

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Purger is the part of the testimonial repository the scheduler needs.
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// Scheduler owns the cron instance driving the purge. It is constructed
// and started explicitly from main and stopped at shutdown; nothing runs
// as an import side effect.
type Scheduler struct {
	cron   *cron.Cron
	purger Purger
}

// NewScheduler registers the purge job on the given cron spec (the default
// is every 24 hours) and returns the scheduler, not yet started.
func NewScheduler(spec string, purger Purger) (*Scheduler, error) {
	s := &Scheduler{cron: cron.New(), purger: purger}
	if _, err := s.cron.AddFunc(spec, s.runPurge); err != nil {
		return nil, err
	}
	return s, nil
}

// Start launches the cron loop and runs one sweep immediately, matching
// the behaviour the site always had: stale testimonials disappear at boot,
// not a day later.
func (s *Scheduler) Start() {
	s.runPurge()
	s.cron.Start()
}

// Stop halts the cron loop and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) runPurge() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	n, err := s.purger.PurgeExpired(ctx)
	if err != nil {
		log.Printf("cleanup: testimonial purge failed: %v", err)
		return
	}
	log.Printf("cleanup: removed %d expired testimonial(s)", n)
}
