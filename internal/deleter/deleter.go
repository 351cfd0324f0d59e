// Package deleter removes artifacts the retention engine decided against.
// It is the only part of the system that mutates the filesystem.
package deleter

import (
	"context"

	"github.com/rs/zerolog"
)

// Deleter removes the named entry from dir.
type Deleter interface {
	Delete(ctx context.Context, dir, name string) error
}

// New picks the removal strategy: subvolume-aware when btrfs is set, plain
// filesystem removal otherwise. dryRun substitutes a no-op that only logs.
func New(btrfs bool, dryRun bool, log zerolog.Logger) Deleter {
	if dryRun {
		return DryRun{log: log}
	}
	if btrfs {
		return &BtrfsDeleter{log: log, run: runCommand}
	}
	return &FileDeleter{log: log}
}

// DryRun reports what would be deleted without touching anything.
type DryRun struct {
	log zerolog.Logger
}

func (d DryRun) Delete(_ context.Context, dir, name string) error {
	d.log.Debug().Str("dir", dir).Str("name", name).Msg("dry run enabled, not deleted")
	return nil
}
