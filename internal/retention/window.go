package retention

import "time"

// Window is the half-open interval (Start, End] one retention chunk covers.
// An instant exactly on Start belongs to the next older window; an instant
// exactly on End belongs to this one.
type Window struct {
	Start time.Time
	End   time.Time
}

// WindowBefore anchors a chunk-sized window ending at ref. Windows are
// anchored to the run's reference instant, not to a fixed epoch, so chunk
// boundaries shift between runs as now moves.
func WindowBefore(ref time.Time, chunk time.Duration) Window {
	return Window{Start: ref.Add(-chunk), End: ref}
}

func (w Window) Contains(t time.Time) bool {
	return t.After(w.Start) && !t.After(w.End)
}
