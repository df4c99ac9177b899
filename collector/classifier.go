package collector

import (
	"path"
	"strings"
)

// Rules is the filtering configuration applied while walking a project
// tree: which directories are pruned, which files are dropped, which
// extensions count as binary, and which extensions qualify for content
// loading.
type Rules struct {
	IgnoredDirs    []string
	IgnoredFiles   []string
	SecretPatterns []string
	BinaryExts     []string
	TextExts       []string

	// MaxContentBytes is the exclusive upper bound on the size of a
	// file whose content may be loaded.
	MaxContentBytes int64
}

// DefaultRules returns the built-in filtering configuration.
func DefaultRules() Rules {
	return Rules{
		IgnoredDirs: []string{
			".git", ".idea", ".vscode", ".gradle", ".mvn", "snapshots",
			"target", "build", "out", "bin", "obj", "dist", ".cache",
			"node_modules", "vendor", "nbproject", "nbbuild", "__pycache__",
		},
		IgnoredFiles: []string{
			"mvnw", "mvnw.cmd",
			"snapshot.json",
			"snapcollect", "snapcollect.exe",
			"snapcollect-config.yaml", "snapcollect-config.yml", "snapcollect-config.json",
		},
		SecretPatterns: []string{
			".env", "secrets", "secret", "credentials", "keystore", "key", "pem", "p12", "pfx",
		},
		BinaryExts: []string{
			".jar", ".class", ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".ico",
			".pdf", ".zip", ".tar", ".gz", ".rar", ".7z",
			".mp4", ".mp3", ".wav", ".mov",
			".exe", ".dll", ".so", ".dylib", ".a", ".o",
		},
		TextExts: []string{
			".go", ".java", ".kt", ".kts", ".scala", ".groovy",
			".py", ".rb", ".rs",
			".js", ".jsx", ".ts", ".tsx",
			".json", ".yml", ".yaml", ".xml", ".properties", ".toml", ".ini",
			".gradle", ".mod", ".sum", ".md", ".txt", ".html", ".htm", ".css",
		},
		MaxContentBytes: 200 * 1024,
	}
}

// Classifier answers the filtering questions of the walk: whether a
// path segment prunes a subtree, whether a file is dropped outright,
// and whether a file qualifies for content loading.
type Classifier struct {
	rules Rules
}

// NewClassifier creates a Classifier for the given rules.
func NewClassifier(rules Rules) *Classifier {
	return &Classifier{rules: rules}
}

// IsIgnoredDir reports whether a single path segment names a pruned
// directory.
func (c *Classifier) IsIgnoredDir(segment string) bool {
	for _, dir := range c.rules.IgnoredDirs {
		if segment == dir {
			return true
		}
	}
	return false
}

// IsIgnoredFile reports whether a file is excluded from the snapshot
// entirely, by exact name, secret-indicating substring, or binary
// extension. Matching is case-insensitive.
func (c *Classifier) IsIgnoredFile(filename string) bool {
	name := strings.ToLower(filename)

	for _, ignored := range c.rules.IgnoredFiles {
		if name == ignored {
			return true
		}
	}
	for _, ext := range c.rules.BinaryExts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	for _, pattern := range c.rules.SecretPatterns {
		if strings.Contains(name, pattern) {
			return true
		}
	}
	return false
}

// IsContentEligible reports whether a file's extension is on the
// textual allow-list. This is stricter than not being ignored: an
// unrecognized extension yields metadata-only treatment even in full
// mode.
func (c *Classifier) IsContentEligible(filename string) bool {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		return false
	}
	for _, allowed := range c.rules.TextExts {
		if ext == allowed {
			return true
		}
	}
	return false
}

// IsSnapshotArtifact reports whether a filename matches the naming
// convention of a prior snapshot output.
func (c *Classifier) IsSnapshotArtifact(filename string) bool {
	name := strings.ToLower(filename)
	if !strings.HasPrefix(name, "snapshot-") {
		return false
	}
	return strings.HasSuffix(name, ".json") || strings.HasSuffix(name, ".txt")
}

var languageByExt = map[string]string{
	".go":         "Go",
	".java":       "Java",
	".kt":         "Kotlin",
	".kts":        "Kotlin",
	".scala":      "Scala",
	".groovy":     "Groovy",
	".py":         "Python",
	".rb":         "Ruby",
	".rs":         "Rust",
	".ts":         "TypeScript",
	".tsx":        "TSX",
	".js":         "JavaScript",
	".jsx":        "JSX",
	".md":         "Markdown",
	".json":       "JSON",
	".yml":        "YAML",
	".yaml":       "YAML",
	".xml":        "XML",
	".html":       "HTML",
	".htm":        "HTML",
	".css":        "CSS",
	".properties": "Properties",
	".toml":       "TOML",
	".ini":        "INI",
}

// GuessLanguage infers a language tag from the file extension.
// Unrecognized extensions map to "Other".
func GuessLanguage(filename string) string {
	if lang, ok := languageByExt[strings.ToLower(path.Ext(filename))]; ok {
		return lang
	}
	return "Other"
}
