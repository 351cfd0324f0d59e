package retention

import (
	"sort"
	"time"
)

// KeepSet holds the instants whose artifacts must survive the run. Keyed by
// instant value; the engine fills it, callers only read it.
type KeepSet struct {
	set map[int64]time.Time // unix nanos -> instant
}

func newKeepSet() *KeepSet {
	return &KeepSet{set: make(map[int64]time.Time)}
}

func (k *KeepSet) add(t time.Time) {
	k.set[t.UnixNano()] = t
}

func (k *KeepSet) Contains(t time.Time) bool {
	_, ok := k.set[t.UnixNano()]
	return ok
}

func (k *KeepSet) Len() int {
	return len(k.set)
}

// Times returns the kept instants oldest first.
func (k *KeepSet) Times() []time.Time {
	out := make([]time.Time, 0, len(k.set))
	for _, t := range k.set {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
