package deleter

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// commandRunner executes a command and returns its combined output. Swapped
// out in tests so no real btrfs binary is needed.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// BtrfsDeleter treats each artifact as a btrfs subvolume and removes it by
// shelling out to `btrfs subvolume delete`.
type BtrfsDeleter struct {
	log zerolog.Logger
	run commandRunner
}

func (d *BtrfsDeleter) Delete(ctx context.Context, dir, name string) error {
	path := filepath.Join(dir, name)
	d.log.Trace().Str("path", path).Msg("btrfs subvolume delete")

	out, err := d.run(ctx, "btrfs", "subvolume", "delete", path)
	if err != nil {
		return errors.Wrapf(err, "deleting subvolume %s: %s", path, strings.TrimSpace(string(out)))
	}
	return nil
}
