// Package schedule keeps the process resident and reruns the thinning job
// on a cron expression.
package schedule

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Job is one thinning run, invoked with the instant the trigger fired so
// every run has a single, explicit reference point.
type Job func(ctx context.Context, now time.Time) error

type Scheduler struct {
	spec string
	job  Job
	log  zerolog.Logger
	trig *slot
}

func New(spec string, job Job, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		spec: spec,
		job:  job,
		log:  log,
		trig: newSlot(),
	}
}

// Start runs jobs on each cron tick until ctx is cancelled. Ticks landing
// while a job is in progress collapse into a single follow-up run.
func (s *Scheduler) Start(ctx context.Context) error {
	c := cron.New()
	if _, err := c.AddFunc(s.spec, func() { s.trig.Put(time.Now()) }); err != nil {
		return errors.Wrapf(err, "bad schedule %q", s.spec)
	}
	c.Start()
	defer c.Stop()

	s.log.Info().Str("schedule", s.spec).Msg("scheduler started")

	for {
		now, ok := s.trig.Take(ctx)
		if !ok {
			s.log.Info().Msg("scheduler stopping")
			return nil
		}
		s.log.Info().Time("trigger", now).Msg("schedule fired")
		if err := s.job(ctx, now); err != nil {
			s.log.Error().Err(err).Msg("scheduled run failed")
		}
	}
}
