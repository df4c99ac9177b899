package models

// GitStatus is the change kind reported for a file relative to the last commit.
type GitStatus string

const (
	StatusClean     GitStatus = "Clean"
	StatusModified  GitStatus = "Modified"
	StatusAdded     GitStatus = "Added"
	StatusDeleted   GitStatus = "Deleted"
	StatusRenamed   GitStatus = "Renamed"
	StatusUntracked GitStatus = "Untracked"
	StatusChanged   GitStatus = "Changed"
)

// FileRecord describes one file of a snapshot. Records are immutable:
// the With* methods return a copy with a single field replaced.
type FileRecord struct {
	RelativePath string    `json:"relativePath"`
	Size         string    `json:"size"`
	Modified     string    `json:"modified"`
	Language     string    `json:"language"`
	Content      string    `json:"content,omitempty"`
	GitStatus    GitStatus `json:"gitStatus"`
	Checksum     string    `json:"checksum,omitempty"`
}

// WithContent returns a copy of the record carrying the given content.
func (f FileRecord) WithContent(content string) FileRecord {
	f.Content = content
	return f
}

// WithGitStatus returns a copy of the record carrying the given status.
func (f FileRecord) WithGitStatus(status GitStatus) FileRecord {
	f.GitStatus = status
	return f
}

// WithChecksum returns a copy of the record carrying the given checksum.
func (f FileRecord) WithChecksum(sum string) FileRecord {
	f.Checksum = sum
	return f
}

// HasContent reports whether text content was attached to the record.
func (f FileRecord) HasContent() bool {
	return f.Content != ""
}

// Snapshot is the complete result of one collection run. Files are
// sorted lexicographically by relative path so that two runs over an
// unchanged tree produce identical output.
type Snapshot struct {
	RootPath string       `json:"rootPath"`
	Files    []FileRecord `json:"files"`
}
