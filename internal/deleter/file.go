package deleter

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// FileDeleter removes artifacts with plain filesystem calls: files with a
// single unlink, directories recursively. Transient errors are retried.
type FileDeleter struct {
	log zerolog.Logger
}

func (d *FileDeleter) Delete(ctx context.Context, dir, name string) error {
	path := filepath.Join(dir, name)

	st, err := os.Lstat(path)
	if err != nil {
		return err
	}

	if st.IsDir() {
		d.log.Trace().Str("path", path).Msg("rm -r")
		return retry(ctx, "remove directory", func() error {
			return os.RemoveAll(path)
		})
	}

	d.log.Trace().Str("path", path).Msg("rm")
	return retry(ctx, "remove file", func() error {
		return os.Remove(path)
	})
}
