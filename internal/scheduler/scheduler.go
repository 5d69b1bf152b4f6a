package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler runs named background jobs on cron specs
type Scheduler struct {
	cron    *cron.Cron
	log     *logrus.Logger
	timeout time.Duration
}

// New creates a scheduler whose jobs each get timeout to finish
func New(log *logrus.Logger, timeout time.Duration) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		log:     log,
		timeout: timeout,
	}
}

// Add registers fn under spec (standard 5-field or descriptors like "@every 6h")
func (s *Scheduler) Add(spec, name string, fn func(ctx context.Context) error) error {
	_, err := s.cron.AddFunc(spec, s.wrap(name, fn))
	if err != nil {
		return fmt.Errorf("failed to schedule %s: %w", name, err)
	}
	s.log.Infof("Scheduled job %s (%s)", name, spec)
	return nil
}

// RunNow executes fn once synchronously with the same logging as scheduled runs
func (s *Scheduler) RunNow(name string, fn func(ctx context.Context) error) {
	s.wrap(name, fn)()
}

func (s *Scheduler) wrap(name string, fn func(ctx context.Context) error) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		start := time.Now()
		if err := fn(ctx); err != nil {
			s.log.Warnf("Job %s failed: %v", name, err)
			return
		}
		s.log.Debugf("Job %s finished in %s", name, time.Since(start))
	}
}

// Start begins running jobs in the background
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for running jobs
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
