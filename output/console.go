package output

import (
	"fmt"
	"io"

	"github.com/DudeAlex/project-snapshot-collector/collector/models"
)

// ConsoleWriter outputs the concise index listing printed after a
// collection run.
type ConsoleWriter struct{}

func (c *ConsoleWriter) Write(w io.Writer, snapshot *models.Snapshot) error {
	if _, err := fmt.Fprintf(w, "Project Snapshot at: %s\n", snapshot.RootPath); err != nil {
		return err
	}
	for _, file := range snapshot.Files {
		if _, err := fmt.Fprintf(w, " - %s | %s | %s | modified %s | git: %s\n",
			file.RelativePath, file.Language, file.Size, file.Modified, file.GitStatus); err != nil {
			return err
		}
	}
	return nil
}
