// Package runner drives one thinning run end to end: scan the directory,
// compute the keep-set, report the decisions, dispatch the deletions.
package runner

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tidecull/tidecull/internal/deleter"
	"github.com/tidecull/tidecull/internal/retention"
	"github.com/tidecull/tidecull/internal/scan"
)

// Result summarizes one run. Failed counts artifacts whose removal errored;
// the run keeps going past individual delete failures.
type Result struct {
	Kept    int
	Deleted int
	Failed  int
}

type Runner struct {
	dir    string
	engine *retention.Engine
	del    deleter.Deleter
	log    zerolog.Logger
}

func New(dir string, engine *retention.Engine, del deleter.Deleter, log zerolog.Logger) *Runner {
	return &Runner{
		dir:    dir,
		engine: engine,
		del:    del,
		log:    log,
	}
}

// Run recomputes the keep-set from a fresh scan and removes everything not
// in it. Nothing persists between runs; now is captured once by the caller
// so the whole decision is a function of (now, policy, directory listing).
func (r *Runner) Run(ctx context.Context, now time.Time) (Result, error) {
	r.log.Info().Str("dir", r.dir).Msg("scanning directory")

	artifacts, err := scan.Scan(r.dir, r.log)
	if err != nil {
		return Result{}, err
	}

	times := make([]time.Time, len(artifacts))
	for i, a := range artifacts {
		times[i] = a.Time
	}

	keep, err := r.engine.Keep(now, retention.NewTimeline(times))
	if err != nil {
		return Result{}, err
	}

	var res Result
	r.log.Info().Msg("final decision:")
	for _, a := range artifacts {
		if keep.Contains(a.Time) {
			r.log.Debug().Str("artifact", a.Name).Msg("KEEP")
			res.Kept++
			continue
		}

		r.log.Info().Str("artifact", a.Name).Msg("DELETE")
		if err := r.del.Delete(ctx, r.dir, a.Name); err != nil {
			r.log.Error().Err(err).Str("artifact", a.Name).Msg("delete failed")
			res.Failed++
			continue
		}
		res.Deleted++
	}

	r.log.Info().
		Int("kept", res.Kept).
		Int("deleted", res.Deleted).
		Int("failed", res.Failed).
		Msg("run complete")
	return res, nil
}
