// Package scan lists a backup directory and turns entry names into instants.
package scan

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// Artifact is one directory entry whose name parses as a point in time.
// The instant, not the name, is what the retention engine reasons about;
// Name is kept so the deleter can address the entry afterwards.
type Artifact struct {
	Name string
	Time time.Time
}

// Scan reads dir non-recursively and returns an artifact per entry whose
// name is an RFC3339 timestamp. Other entries are invisible to the rest of
// the system: never kept, never deleted.
func Scan(dir string, log zerolog.Logger) ([]Artifact, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading directory %s", dir)
	}

	var artifacts []Artifact
	for _, ent := range entries {
		name := ent.Name()
		t, err := time.Parse(time.RFC3339, name)
		if err != nil {
			log.Trace().Str("name", name).Msg("ignoring, name is not an rfc3339 timestamp")
			continue
		}
		log.Trace().Str("name", name).Msg("found artifact")
		artifacts = append(artifacts, Artifact{Name: name, Time: t})
	}

	return artifacts, nil
}
