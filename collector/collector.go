package collector

import (
	"fmt"
	"path/filepath"

	"github.com/DudeAlex/project-snapshot-collector/collector/models"
	"github.com/zeebo/xxh3"
)

// Collector assembles snapshots of a project tree. Each Collect*
// method performs exactly one filesystem traversal and one
// version-control status resolution; mode selection only changes the
// content-attachment policy.
type Collector struct {
	root       string
	rules      Rules
	classifier *Classifier
	loader     *ContentLoader

	// StatusRunner resolves version-control status lines. Replaceable
	// with a canned implementation in tests.
	StatusRunner StatusRunner

	// SelfPath resolves the running executable for self-exclusion.
	// Nil means os.Executable.
	SelfPath func() (string, error)

	// Warn receives non-fatal notices. Nil notices are discarded.
	Warn func(msg string)
}

// NewCollector creates a Collector over root with the given rules.
func NewCollector(root string, rules Rules) *Collector {
	classifier := NewClassifier(rules)
	return &Collector{
		root:         root,
		rules:        rules,
		classifier:   classifier,
		loader:       NewContentLoader(classifier, rules.MaxContentBytes),
		StatusRunner: NewGitStatusRunner(),
	}
}

// CollectAll returns a snapshot with content attached to every record
// that passes the loader's policy, regardless of status.
func (c *Collector) CollectAll() (*models.Snapshot, error) {
	records, err := c.collectMetadata()
	if err != nil {
		return nil, err
	}
	for i, record := range records {
		records[i] = c.attachContent(record)
	}
	return &models.Snapshot{RootPath: c.root, Files: records}, nil
}

// CollectGitDiff returns a snapshot with content attached only to
// records whose status is neither Clean nor Deleted.
func (c *Collector) CollectGitDiff() (*models.Snapshot, error) {
	records, err := c.collectMetadata()
	if err != nil {
		return nil, err
	}
	for i, record := range records {
		if record.GitStatus == models.StatusClean || record.GitStatus == models.StatusDeleted {
			continue
		}
		records[i] = c.attachContent(record)
	}
	return &models.Snapshot{RootPath: c.root, Files: records}, nil
}

// CollectMinimal returns a metadata-only snapshot.
func (c *Collector) CollectMinimal() (*models.Snapshot, error) {
	records, err := c.collectMetadata()
	if err != nil {
		return nil, err
	}
	return &models.Snapshot{RootPath: c.root, Files: records}, nil
}

// collectMetadata is the single walker pass shared by every mode.
func (c *Collector) collectMetadata() ([]models.FileRecord, error) {
	statuses := c.resolveStatuses()

	walker := NewWalker(c.root, c.classifier)
	if c.SelfPath != nil {
		walker.selfPath = c.SelfPath
	}
	return walker.CollectMetadata(statuses)
}

func (c *Collector) resolveStatuses() map[string]models.GitStatus {
	lines, err := c.StatusRunner.StatusLines(c.root)
	if err != nil {
		c.warn("Git not available or not a repository; every file reports Clean.")
		return map[string]models.GitStatus{}
	}
	return ParseStatus(lines)
}

func (c *Collector) attachContent(record models.FileRecord) models.FileRecord {
	fullPath := filepath.Join(c.root, filepath.FromSlash(record.RelativePath))
	content, ok := c.loader.Load(fullPath, filepath.Base(record.RelativePath))
	if !ok || content == "" {
		// An empty load carries no content, so it gets no checksum either.
		return record
	}
	sum := fmt.Sprintf("%x", xxh3.Hash128([]byte(content)).Bytes())
	return record.WithContent(content).WithChecksum(sum)
}

func (c *Collector) warn(msg string) {
	if c.Warn != nil {
		c.Warn(msg)
	}
}
