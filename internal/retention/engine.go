package retention

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// Engine computes the keep-set for one run. It holds no state between runs;
// now is passed in explicitly so decisions stay reproducible and testable.
type Engine struct {
	policy Policy
	log    zerolog.Logger
}

// NewEngine validates the policy eagerly so that nothing can fail once the
// per-artifact walk is underway.
func NewEngine(policy Policy, log zerolog.Logger) (*Engine, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Engine{policy: policy, log: log}, nil
}

// Keep walks the timeline newest-first against the tiers and returns the
// instants to retain.
//
// A cursor starts at now and is stepped backward one chunk at a time. The
// newest artifact inside each chunk window survives, every other artifact
// in the window is dropped. An artifact exactly on a window's older
// boundary counts as part of the next older window. When a tier's span is
// used up the cursor is set exactly to the tier boundary, so sub-chunk
// drift never leaks into the next tier. Artifacts still unconsumed after
// the last tier are older than the horizon and are not kept. Artifacts
// stamped after now are kept unconditionally.
func (e *Engine) Keep(now time.Time, tl Timeline) (*KeepSet, error) {
	keep := newKeepSet()

	times := tl.times
	next := len(times) - 1 // index of the newest unconsumed instant

	cursor := now
	for ti, tier := range e.policy {
		if next < 0 {
			e.log.Trace().Int("tier", ti).Msg("no artifacts left, stopping")
			break
		}
		if tier.Length < tier.Chunk {
			// NewEngine validated this; getting here means the policy was
			// swapped out underneath us.
			return nil, errors.Wrapf(ErrInvalidTier, "tier %d reached the engine unvalidated", ti)
		}

		periodEnd := cursor.Add(-tier.Length)
		e.log.Trace().
			Int("tier", ti).
			Time("from", cursor).
			Time("until", periodEnd).
			Dur("chunk", tier.Chunk).
			Msg("entering tier")

		for cursor.After(periodEnd) && next >= 0 {
			win := WindowBefore(cursor, tier.Chunk)
			cursor = win.Start

			var survivor time.Time
			found := false
			for next >= 0 {
				t := times[next]
				next--

				if t.After(win.End) {
					// Newer than the window under examination, which only
					// happens for artifacts stamped after now. Never delete
					// those.
					e.log.Trace().Time("artifact", t).Msg("ahead of now, kept")
					keep.add(t)
					continue
				}
				if win.Contains(t) {
					if found {
						e.log.Trace().Time("artifact", t).Time("kept_instead", survivor).
							Msg("same chunk already has a survivor")
					} else {
						survivor, found = t, true
					}
					continue
				}
				// Belongs to an older chunk or tier. Un-consume it and let
				// the next window pick it up.
				next++
				break
			}

			if found {
				e.log.Trace().Time("artifact", survivor).
					Time("chunk_start", win.Start).Time("chunk_end", win.End).
					Int("tier", ti).Msg("chunk survivor")
				keep.add(survivor)
			}
		}

		cursor = periodEnd
	}

	if next >= 0 {
		e.log.Debug().Int("count", next+1).Msg("artifacts older than the retention horizon")
	}
	return keep, nil
}
