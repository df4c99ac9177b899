package collector

import (
	"errors"
	"testing"

	"github.com/DudeAlex/project-snapshot-collector/collector/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStatusRunner returns canned porcelain output instead of spawning
// a real git process.
type fakeStatusRunner struct {
	lines []string
	err   error
}

func (f *fakeStatusRunner) StatusLines(dir string) ([]string, error) {
	return f.lines, f.err
}

func newTestCollector(t *testing.T, root string, lines []string) *Collector {
	t.Helper()
	c := NewCollector(root, DefaultRules())
	c.StatusRunner = &fakeStatusRunner{lines: lines}
	return c
}

// The concrete scenario: an allow-listed text file, a file in an
// ignored directory, a secret-named file, and one reported git change.
func setupScenario(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()
	mainText := "hello from Main, exactly fifty bytes of text here\n"
	require.Len(t, mainText, 50)
	writeFile(t, root, "src/Main.txt", mainText)
	writeFile(t, root, "build/output.bin", "binary")
	writeFile(t, root, ".env", "TOKEN=x")
	return root, mainText
}

func TestCollector_MinimalMode(t *testing.T) {
	root, _ := setupScenario(t)
	c := newTestCollector(t, root, []string{"M  src/Main.txt"})

	snapshot, err := c.CollectMinimal()
	require.NoError(t, err)

	assert.Equal(t, root, snapshot.RootPath)
	require.Len(t, snapshot.Files, 1)
	record := snapshot.Files[0]
	assert.Equal(t, "src/Main.txt", record.RelativePath)
	assert.Equal(t, models.StatusModified, record.GitStatus)
	assert.Empty(t, record.Content)
	assert.Empty(t, record.Checksum)
}

func TestCollector_DiffMode(t *testing.T) {
	root, mainText := setupScenario(t)
	c := newTestCollector(t, root, []string{"M  src/Main.txt"})

	snapshot, err := c.CollectGitDiff()
	require.NoError(t, err)

	require.Len(t, snapshot.Files, 1)
	record := snapshot.Files[0]
	assert.Equal(t, models.StatusModified, record.GitStatus)
	assert.Equal(t, mainText, record.Content)
	assert.NotEmpty(t, record.Checksum)
}

func TestCollector_DiffModeSkipsCleanAndDeleted(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "clean.txt", "unchanged\n")
	writeFile(t, root, "changed.txt", "changed\n")
	c := newTestCollector(t, root, []string{
		"M  changed.txt",
		"D  gone.txt",
	})

	snapshot, err := c.CollectGitDiff()
	require.NoError(t, err)

	require.Len(t, snapshot.Files, 2)
	byPath := map[string]models.FileRecord{}
	for _, f := range snapshot.Files {
		byPath[f.RelativePath] = f
	}
	assert.Empty(t, byPath["clean.txt"].Content)
	assert.Equal(t, "changed\n", byPath["changed.txt"].Content)
}

func TestCollector_FullMode(t *testing.T) {
	root, mainText := setupScenario(t)
	c := newTestCollector(t, root, []string{"M  src/Main.txt"})

	snapshot, err := c.CollectAll()
	require.NoError(t, err)

	// Other files are excluded by the classifier, not by the mode
	require.Len(t, snapshot.Files, 1)
	assert.Equal(t, mainText, snapshot.Files[0].Content)
	assert.Equal(t, models.StatusModified, snapshot.Files[0].GitStatus)
}

func TestCollector_FullModeLoadsRegardlessOfStatus(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "clean.txt", "unchanged\n")
	c := newTestCollector(t, root, nil)

	snapshot, err := c.CollectAll()
	require.NoError(t, err)

	require.Len(t, snapshot.Files, 1)
	assert.Equal(t, models.StatusClean, snapshot.Files[0].GitStatus)
	assert.Equal(t, "unchanged\n", snapshot.Files[0].Content)
}

func TestCollector_ModesAgreeOnPathsAndOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b/two.go", "package two\n")
	writeFile(t, root, "a/one.go", "package one\n")
	writeFile(t, root, "zz.md", "# z\n")

	lines := []string{"M  a/one.go"}
	paths := func(s *models.Snapshot) []string {
		var out []string
		for _, f := range s.Files {
			out = append(out, f.RelativePath)
		}
		return out
	}

	full, err := newTestCollector(t, root, lines).CollectAll()
	require.NoError(t, err)
	diff, err := newTestCollector(t, root, lines).CollectGitDiff()
	require.NoError(t, err)
	minimal, err := newTestCollector(t, root, lines).CollectMinimal()
	require.NoError(t, err)

	expected := []string{"a/one.go", "b/two.go", "zz.md"}
	assert.Equal(t, expected, paths(full))
	assert.Equal(t, expected, paths(diff))
	assert.Equal(t, expected, paths(minimal))
}

func TestCollector_CleanTreeReportsClean(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.go", "package a\n")
	writeFile(t, root, "b.go", "package b\n")
	c := newTestCollector(t, root, nil)

	snapshot, err := c.CollectMinimal()
	require.NoError(t, err)

	for _, f := range snapshot.Files {
		assert.Equal(t, models.StatusClean, f.GitStatus)
	}
}

func TestCollector_GitUnavailableDegradesWithWarning(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.go", "package a\n")

	c := NewCollector(root, DefaultRules())
	c.StatusRunner = &fakeStatusRunner{err: errors.New("git: not found")}
	var warned []string
	c.Warn = func(msg string) { warned = append(warned, msg) }

	snapshot, err := c.CollectMinimal()
	require.NoError(t, err)

	require.Len(t, snapshot.Files, 1)
	assert.Equal(t, models.StatusClean, snapshot.Files[0].GitStatus)
	assert.Len(t, warned, 1)
}

func TestCollector_SizeCapBoundary(t *testing.T) {
	root := t.TempDir()
	rules := DefaultRules()
	rules.MaxContentBytes = 10
	// One file exactly at the cap, one a byte under it
	writeFile(t, root, "at.txt", "aaaaaaaaaa")
	writeFile(t, root, "under.txt", "aaaaaaaaa")

	c := NewCollector(root, rules)
	c.StatusRunner = &fakeStatusRunner{}

	snapshot, err := c.CollectAll()
	require.NoError(t, err)

	byPath := map[string]models.FileRecord{}
	for _, f := range snapshot.Files {
		byPath[f.RelativePath] = f
	}
	assert.Empty(t, byPath["at.txt"].Content)
	assert.Equal(t, "aaaaaaaaa", byPath["under.txt"].Content)
}

func TestCollector_EmptyFileGetsNoChecksum(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "empty.txt", "")
	writeFile(t, root, "full.txt", "body\n")
	c := newTestCollector(t, root, nil)

	snapshot, err := c.CollectAll()
	require.NoError(t, err)

	byPath := map[string]models.FileRecord{}
	for _, f := range snapshot.Files {
		byPath[f.RelativePath] = f
	}

	empty := byPath["empty.txt"]
	assert.False(t, empty.HasContent())
	assert.Empty(t, empty.Checksum, "a record without content must not carry a checksum")

	full := byPath["full.txt"]
	assert.True(t, full.HasContent())
	assert.NotEmpty(t, full.Checksum)
}

func TestCollector_SecretAndBinaryNeverCarryContent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "ok.md", "# fine\n")
	writeFile(t, root, "app.keystore", "not really binary")
	writeFile(t, root, "pic.png", "not really an image")
	c := newTestCollector(t, root, nil)

	for _, collect := range []func() (*models.Snapshot, error){c.CollectAll, c.CollectGitDiff, c.CollectMinimal} {
		snapshot, err := collect()
		require.NoError(t, err)
		require.Len(t, snapshot.Files, 1)
		assert.Equal(t, "ok.md", snapshot.Files[0].RelativePath)
	}
}

func TestCollector_Idempotence(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a/x.go", "package x\n")
	writeFile(t, root, "b.md", "# b\n")
	c := newTestCollector(t, root, []string{"?? b.md"})

	first, err := c.CollectAll()
	require.NoError(t, err)
	second, err := c.CollectAll()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCollector_MissingRootIsFatal(t *testing.T) {
	c := newTestCollector(t, "/definitely/not/here", nil)

	_, err := c.CollectMinimal()
	assert.Error(t, err)

	_, err = c.CollectAll()
	assert.Error(t, err)

	_, err = c.CollectGitDiff()
	assert.Error(t, err)
}
