package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/DudeAlex/project-snapshot-collector/collector/models"
)

// JSONWriter outputs the full snapshot as pretty-printed JSON.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, snapshot *models.Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
