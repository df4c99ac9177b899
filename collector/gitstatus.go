package collector

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/DudeAlex/project-snapshot-collector/collector/models"
)

// StatusRunner produces the raw porcelain output lines of the
// version-control status command, or an error when the tool is
// unavailable or the directory is not under version control.
type StatusRunner interface {
	StatusLines(dir string) ([]string, error)
}

// GitStatusRunner runs `git status --porcelain` as a subprocess.
type GitStatusRunner struct {
	Timeout time.Duration
}

// NewGitStatusRunner creates a runner with the default timeout.
func NewGitStatusRunner() *GitStatusRunner {
	return &GitStatusRunner{Timeout: 30 * time.Second}
}

// StatusLines invokes git in dir and returns its output split into
// lines. A hung git process is bounded by the timeout and reported as
// unavailable.
func (g *GitStatusRunner) StatusLines(dir string) ([]string, error) {
	timeout := g.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "status", "--porcelain")
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return nil, err
	}
	return strings.Split(string(output), "\n"), nil
}

// ParseStatus parses porcelain lines into a mapping from forward-slash
// relative path to change kind. Absence of an entry means Clean.
func ParseStatus(lines []string) map[string]models.GitStatus {
	changes := make(map[string]models.GitStatus)
	for _, line := range lines {
		if len(line) <= 3 {
			continue
		}
		code := strings.TrimSpace(line[:2])
		file := strings.TrimSpace(line[3:])
		file = strings.ReplaceAll(file, "\\", "/")

		// Renames print "old -> new"; the new path is the one the
		// walker will see.
		if idx := strings.LastIndex(file, " -> "); idx >= 0 {
			file = file[idx+len(" -> "):]
		}
		if file == "" {
			continue
		}
		changes[file] = decodeStatus(code)
	}
	return changes
}

func decodeStatus(code string) models.GitStatus {
	switch code {
	case "M":
		return models.StatusModified
	case "A":
		return models.StatusAdded
	case "D":
		return models.StatusDeleted
	case "R":
		return models.StatusRenamed
	case "??":
		return models.StatusUntracked
	default:
		return models.StatusChanged
	}
}
