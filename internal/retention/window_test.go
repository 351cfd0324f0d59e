package retention

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWindowBefore(t *testing.T) {
	ref := ts(t, "2020-06-01T12:00:00Z")
	w := WindowBefore(ref, time.Hour)

	require.Equal(t, ts(t, "2020-06-01T11:00:00Z"), w.Start)
	require.Equal(t, ref, w.End)
}

func TestWindowContainsHalfOpen(t *testing.T) {
	w := WindowBefore(ts(t, "2020-06-01T12:00:00Z"), time.Hour)

	require.True(t, w.Contains(ts(t, "2020-06-01T12:00:00Z")), "end is inclusive")
	require.True(t, w.Contains(ts(t, "2020-06-01T11:30:00Z")))
	require.False(t, w.Contains(ts(t, "2020-06-01T11:00:00Z")), "start is exclusive")
	require.False(t, w.Contains(ts(t, "2020-06-01T12:00:01Z")))
	require.False(t, w.Contains(ts(t, "2020-06-01T10:59:59Z")))
}
