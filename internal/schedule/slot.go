package schedule

import (
	"context"
	"time"
)

// slot is a single-slot buffer for run triggers where the latest trigger
// always wins. It is not a queue: if a trigger is already pending, Put
// replaces it, so ticks that fire while a run is still in progress coalesce
// into one follow-up run.
type slot struct {
	ch chan time.Time
}

func newSlot() *slot {
	return &slot{ch: make(chan time.Time, 1)}
}

// Put stores a trigger, replacing any pending one. It never blocks.
func (s *slot) Put(t time.Time) {
	for {
		select {
		case s.ch <- t:
			return
		default:
			select {
			case <-s.ch:
			default:
			}
		}
	}
}

// Take blocks until a trigger is available or ctx is cancelled.
func (s *slot) Take(ctx context.Context) (time.Time, bool) {
	select {
	case t := <-s.ch:
		return t, true
	case <-ctx.Done():
		return time.Time{}, false
	}
}
