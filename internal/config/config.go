package config

import (
	"github.com/cockroachdb/errors"
	"github.com/robfig/cron/v3"

	"github.com/tidecull/tidecull/internal/retention"
)

type Config struct {
	// Path is the directory holding the timestamped artifacts.
	Path string `yaml:"path"`

	// Btrfs selects subvolume-aware deletion instead of plain removal.
	Btrfs bool `yaml:"btrfs"`

	// Tiers make up the retention policy, nearest to now first.
	Tiers []TierConfig `yaml:"tiers"`

	// Schedule is an optional cron expression. Empty means run once and
	// exit; set, the process stays resident and reruns on each tick.
	Schedule string `yaml:"schedule"`

	Logging LoggingConfig `yaml:"logging"`
}

type TierConfig struct {
	Length Duration `yaml:"length"`
	Chunk  Duration `yaml:"chunk"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // "trace", "debug", "info", "error"
}

// Policy converts the configured tiers into the engine's policy type.
func (c *Config) Policy() retention.Policy {
	p := make(retention.Policy, len(c.Tiers))
	for i, t := range c.Tiers {
		p[i] = retention.Tier{Length: t.Length.Std(), Chunk: t.Chunk.Std()}
	}
	return p
}

func (c *Config) validate() error {
	if c.Path == "" {
		return errors.New("config: path is required")
	}
	if err := c.Policy().Validate(); err != nil {
		return err
	}
	if c.Schedule != "" {
		if _, err := cron.ParseStandard(c.Schedule); err != nil {
			return errors.Wrapf(err, "config: bad schedule %q", c.Schedule)
		}
	}
	return nil
}
