package collector

import "os"

// ContentLoader conditionally reads textual file contents subject to
// the classifier's type checks and a size cap. It is invoked per
// record by the assembler, never by the walker, so one metadata pass
// can serve every mode.
type ContentLoader struct {
	classifier *Classifier
	maxBytes   int64
}

// NewContentLoader creates a loader enforcing the given exclusive size
// cap.
func NewContentLoader(classifier *Classifier, maxBytes int64) *ContentLoader {
	return &ContentLoader{classifier: classifier, maxBytes: maxBytes}
}

// Load returns the full text of the file at path, or ok=false when the
// file is missing, binary, secret-named, at or over the size cap, not
// on the textual allow-list, or unreadable. Read failures never
// propagate.
func (l *ContentLoader) Load(path, filename string) (string, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return "", false
	}
	if l.classifier.IsIgnoredFile(filename) {
		return "", false
	}
	if info.Size() >= l.maxBytes {
		return "", false
	}
	if !l.classifier.IsContentEligible(filename) {
		return "", false
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(content), true
}
