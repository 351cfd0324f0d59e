package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/tidecull/tidecull/internal/retention"
)

// Duration is a YAML scalar span of time. On top of the stdlib forms it
// accepts the day and week suffixes retention policies are usually written
// in ("7d", "8w").
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Newf("config: duration must be a scalar, got %q", value.Tag)
	}
	dur, err := ParseDuration(value.Value)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// ParseDuration parses like time.ParseDuration plus "d" (24h) and "w" (7d)
// suffixes with integer counts. Negative spans are rejected.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("config: empty duration")
	}

	var unit time.Duration
	switch s[len(s)-1] {
	case 'd':
		unit = 24 * time.Hour
	case 'w':
		unit = 7 * 24 * time.Hour
	}

	if unit == 0 {
		dur, err := time.ParseDuration(s)
		if err != nil {
			return 0, errors.Wrapf(err, "config: bad duration %q", s)
		}
		if dur < 0 {
			return 0, errors.Newf("config: duration %q is negative", s)
		}
		return dur, nil
	}

	n, err := strconv.ParseInt(s[:len(s)-1], 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "config: bad duration %q", s)
	}
	if n < 0 {
		return 0, errors.Newf("config: duration %q is negative", s)
	}
	if n > int64(maxDuration/unit) {
		return 0, errors.Wrapf(retention.ErrDurationOverflow, "duration %q", s)
	}
	return time.Duration(n) * unit, nil
}

const maxDuration = time.Duration(1<<63 - 1)
