package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tidecull/tidecull/internal/retention"
)

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"30s", 30 * time.Second},
		{"90m", 90 * time.Minute},
		{"1h30m", 90 * time.Minute},
		{"24h", 24 * time.Hour},
		{"1d", 24 * time.Hour},
		{"7d", 7 * 24 * time.Hour},
		{"2w", 14 * 24 * time.Hour},
		{" 6h ", 6 * time.Hour},
	}
	for _, tc := range cases {
		got, err := ParseDuration(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseDurationRejects(t *testing.T) {
	for _, in := range []string{"", "d", "w", "x7d", "7x", "-3h", "-1d", "1.5d"} {
		_, err := ParseDuration(in)
		require.Error(t, err, "input %q", in)
	}
}

func TestParseDurationOverflow(t *testing.T) {
	_, err := ParseDuration("99999999999999w")
	require.ErrorIs(t, err, retention.ErrDurationOverflow)
}

func TestDurationUnmarshalYAML(t *testing.T) {
	var cfg struct {
		Span Duration `yaml:"span"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("span: 3d"), &cfg))
	require.Equal(t, 72*time.Hour, cfg.Span.Std())

	require.Error(t, yaml.Unmarshal([]byte("span: [1, 2]"), &cfg))
	require.Error(t, yaml.Unmarshal([]byte("span: soon"), &cfg))
}
