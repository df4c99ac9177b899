package collector

import (
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/DudeAlex/project-snapshot-collector/collector/models"
)

const modifiedTimeLayout = "2006-01-02 15:04:05"

// Walker enumerates the regular files under a root, applying the
// classifier while walking so that ignored subtrees are never entered.
type Walker struct {
	root       string
	classifier *Classifier

	// selfPath resolves the running executable, so the collector never
	// includes its own artifact. Injectable for tests.
	selfPath func() (string, error)
}

// NewWalker creates a Walker rooted at root.
func NewWalker(root string, classifier *Classifier) *Walker {
	return &Walker{
		root:       root,
		classifier: classifier,
		selfPath:   os.Executable,
	}
}

// CollectMetadata walks the tree once and returns one record per
// surviving file, with the given statuses merged in (default Clean)
// and the result sorted by relative path. A file whose attributes
// cannot be read is kept with sentinel metadata rather than dropped.
func (w *Walker) CollectMetadata(statuses map[string]models.GitStatus) ([]models.FileRecord, error) {
	info, err := os.Stat(w.root)
	if err != nil {
		return nil, fmt.Errorf("root %s is not accessible: %w", w.root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", w.root)
	}

	self := w.resolveSelf()

	var records []models.FileRecord
	err = filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == w.root {
				return err
			}
			return nil
		}

		if d.IsDir() {
			if path != w.root && w.classifier.IsIgnoredDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if w.classifier.IsIgnoredFile(d.Name()) || w.classifier.IsSnapshotArtifact(d.Name()) {
			return nil
		}
		if self != "" && sameArtifact(path, self) {
			return nil
		}

		relPath, relErr := filepath.Rel(w.root, path)
		if relErr != nil {
			return nil
		}
		relPath = strings.ReplaceAll(relPath, "\\", "/")

		record := w.toRecord(relPath, d)
		status, ok := statuses[record.RelativePath]
		if !ok {
			status = models.StatusClean
		}
		records = append(records, record.WithGitStatus(status))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", w.root, err)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].RelativePath < records[j].RelativePath
	})
	return records, nil
}

func (w *Walker) toRecord(relPath string, d fs.DirEntry) models.FileRecord {
	info, err := d.Info()
	if err != nil {
		return models.FileRecord{
			RelativePath: relPath,
			Size:         "?",
			Modified:     "?",
			Language:     "unknown",
			GitStatus:    models.StatusClean,
		}
	}
	return models.FileRecord{
		RelativePath: relPath,
		Size:         HumanReadableByteCount(info.Size()),
		Modified:     info.ModTime().Format(modifiedTimeLayout),
		Language:     GuessLanguage(d.Name()),
		GitStatus:    models.StatusClean,
	}
}

func (w *Walker) resolveSelf() string {
	if w.selfPath == nil {
		return ""
	}
	self, err := w.selfPath()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(self); err == nil {
		self = resolved
	}
	return filepath.Clean(self)
}

func sameArtifact(path, self string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	return filepath.Clean(abs) == self
}

// HumanReadableByteCount formats a byte count with binary prefixes and
// up to two decimals. Counts below 1024 stay in plain bytes.
func HumanReadableByteCount(bytes int64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}
	value := float64(bytes)
	exp := 0
	for value >= 1024 && exp < len("KMGTPE") {
		value /= 1024
		exp++
	}
	rounded := math.Round(value*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + string("KMGTPE"[exp-1]) + "B"
}
