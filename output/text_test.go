package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextWriter_IndexOnly(t *testing.T) {
	var buf bytes.Buffer
	writer := &TextWriter{PrintContents: false, MaxRenderBytes: 500 * 1024}
	require.NoError(t, writer.Write(&buf, sampleSnapshot()))

	out := buf.String()
	assert.Contains(t, out, "Project Snapshot at: /work/project")
	assert.Contains(t, out, "src/main.go (Go, 1.2 KB, modified 2025-01-01 12:00:00, git: Modified)")
	assert.NotContains(t, out, "FILE CONTENT")
	assert.NotContains(t, out, "package main")
}

func TestTextWriter_WithContents(t *testing.T) {
	var buf bytes.Buffer
	writer := &TextWriter{PrintContents: true, MaxRenderBytes: 500 * 1024}
	require.NoError(t, writer.Write(&buf, sampleSnapshot()))

	out := buf.String()
	assert.Contains(t, out, "FILE CONTENT")
	assert.Contains(t, out, "package main")
}

func TestTextWriter_TruncatesLongBodies(t *testing.T) {
	snapshot := sampleSnapshot()
	snapshot.Files[1].Content = strings.Repeat("x", 100)

	var buf bytes.Buffer
	writer := &TextWriter{PrintContents: true, MaxRenderBytes: 10}
	require.NoError(t, writer.Write(&buf, snapshot))

	out := buf.String()
	assert.Contains(t, out, strings.Repeat("x", 10))
	assert.NotContains(t, out, strings.Repeat("x", 11))
	assert.Contains(t, out, "...(truncated)")
}

func TestConsoleWriter_Index(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&ConsoleWriter{}).Write(&buf, sampleSnapshot()))

	out := buf.String()
	assert.Contains(t, out, "Project Snapshot at: /work/project")
	assert.Contains(t, out, " - README.md | Markdown | 120 B | modified 2025-01-01 12:00:00 | git: Clean")
	assert.Contains(t, out, " - src/main.go | Go | 1.2 KB | modified 2025-01-01 12:00:00 | git: Modified")
}
