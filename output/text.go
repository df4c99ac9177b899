package output

import (
	"fmt"
	"io"

	"github.com/DudeAlex/project-snapshot-collector/collector/models"
)

// TextWriter outputs a human-readable snapshot report. When
// PrintContents is set, loaded file bodies are included, truncated at
// MaxRenderBytes per file.
type TextWriter struct {
	PrintContents  bool
	MaxRenderBytes int64
}

func (t *TextWriter) Write(w io.Writer, snapshot *models.Snapshot) error {
	if _, err := fmt.Fprintf(w, "Project Snapshot at: %s\n\n", snapshot.RootPath); err != nil {
		return err
	}

	for _, file := range snapshot.Files {
		if _, err := fmt.Fprintln(w, "=============================================================="); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s (%s, %s, modified %s, git: %s)\n",
			file.RelativePath, file.Language, file.Size, file.Modified, file.GitStatus); err != nil {
			return err
		}

		if t.PrintContents && file.HasContent() {
			if _, err := fmt.Fprintln(w, "---------------- FILE CONTENT ----------------"); err != nil {
				return err
			}
			if err := t.writeBody(w, file.Content); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func (t *TextWriter) writeBody(w io.Writer, content string) error {
	max := t.MaxRenderBytes
	if max > 0 && int64(len(content)) > max {
		if _, err := io.WriteString(w, content[:max]); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, "\n...(truncated)")
		return err
	}
	_, err := fmt.Fprintln(w, content)
	return err
}
