// Package retention computes which timestamped backup artifacts survive a
// run. A policy is an ordered list of tiers; each tier covers a span of time
// divided into fixed-width chunks, and at most one artifact is kept per chunk.
package retention

import (
	"time"

	"github.com/cockroachdb/errors"
)

var (
	// ErrEmptyPolicy means the policy has no tiers at all.
	ErrEmptyPolicy = errors.New("retention: policy has no tiers")

	// ErrInvalidTier marks a tier whose chunk and length cannot form a
	// valid sequence of retention buckets.
	ErrInvalidTier = errors.New("retention: invalid tier")

	// ErrDurationOverflow marks durations too large to do arithmetic on.
	ErrDurationOverflow = errors.New("retention: duration overflow")
)

// Tier is one row of the retention policy: a look-back span divided into
// chunks. The first tier starts at now; each following tier picks up where
// the previous one ended.
type Tier struct {
	Length time.Duration // total span governed by this tier
	Chunk  time.Duration // width of one retention bucket
}

func (t Tier) Validate() error {
	if t.Chunk <= 0 {
		return errors.Wrapf(ErrInvalidTier, "chunk %s must be positive", t.Chunk)
	}
	if t.Length < t.Chunk {
		return errors.Wrapf(ErrInvalidTier, "length %s is shorter than chunk %s", t.Length, t.Chunk)
	}
	return nil
}

// Chunks reports how many whole chunks fit in the tier. Informational; the
// engine walks windows directly and never needs the count.
func (t Tier) Chunks() int64 {
	return int64(t.Length / t.Chunk)
}

// Policy is an ordered, non-empty list of tiers, finest-grained and nearest
// to now first. The engine consumes tiers front to back; it does not require
// chunk widths to grow between tiers.
type Policy []Tier

func (p Policy) Validate() error {
	if len(p) == 0 {
		return ErrEmptyPolicy
	}
	var horizon time.Duration
	for i, t := range p {
		if err := t.Validate(); err != nil {
			return errors.Wrapf(err, "tier %d", i)
		}
		horizon += t.Length
		if horizon < 0 {
			return errors.Wrapf(ErrDurationOverflow, "summing tier lengths through tier %d", i)
		}
	}
	return nil
}

// Horizon is the total span the policy covers. Artifacts older than
// now minus the horizon are never kept.
func (p Policy) Horizon() time.Duration {
	var total time.Duration
	for _, t := range p {
		total += t.Length
	}
	return total
}
