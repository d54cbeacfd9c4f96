package trigger

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/sawdustofmind/nba-scores-relay/internal/log"
	"github.com/sawdustofmind/nba-scores-relay/internal/relay"
)

// Scheduler fires the relay on a cron schedule, standing in for the
// external scheduler when running outside Lambda.
type Scheduler struct {
	c      *cron.Cron
	runner Runner
}

// NewScheduler parses a standard five-field spec (or a descriptor such as
// @hourly), evaluated in the relay's fixed UTC-6 zone.
func NewScheduler(spec string, runner Runner) (*Scheduler, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	c := cron.New(cron.WithParser(parser), cron.WithLocation(relay.CentralStandard))

	s := &Scheduler{c: c, runner: runner}
	if _, err := c.AddFunc(spec, s.fire); err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) fire() {
	resp := s.runner.Run(context.Background())
	log.Info("Scheduled invocation finished",
		zap.Int("status_code", resp.StatusCode),
		zap.String("body", resp.Body),
	)
}

// Next reports when the relay fires next.
func (s *Scheduler) Next() time.Time {
	entries := s.c.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

func (s *Scheduler) Start() {
	s.c.Start()
}

// Stop halts the schedule and waits for a running invocation to finish.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.c.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
