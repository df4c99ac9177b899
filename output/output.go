// Package output serializes assembled snapshots. Writers consume the
// snapshot value as-is; they never re-run any part of the collection
// pipeline.
package output

import (
	"io"

	"github.com/DudeAlex/project-snapshot-collector/collector/models"
)

// Writer renders a snapshot to a stream.
type Writer interface {
	Write(w io.Writer, snapshot *models.Snapshot) error
}
