package retention

import (
	"sort"
	"time"
)

// Timeline is the engine's input: instants sorted ascending with equal
// instants collapsed. Going through NewTimeline is what upholds the
// engine's ordering precondition, so the engine never re-checks it.
type Timeline struct {
	times []time.Time
}

// NewTimeline copies, sorts and deduplicates the given instants.
func NewTimeline(times []time.Time) Timeline {
	ts := make([]time.Time, len(times))
	copy(ts, times)
	sort.Slice(ts, func(i, j int) bool { return ts[i].Before(ts[j]) })

	out := ts[:0]
	for _, t := range ts {
		if len(out) > 0 && out[len(out)-1].Equal(t) {
			continue
		}
		out = append(out, t)
	}
	return Timeline{times: out}
}

func (tl Timeline) Len() int { return len(tl.times) }

// Times returns the instants oldest first.
func (tl Timeline) Times() []time.Time {
	out := make([]time.Time, len(tl.times))
	copy(out, tl.times)
	return out
}
