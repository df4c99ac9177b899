package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/DudeAlex/project-snapshot-collector/collector/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() *models.Snapshot {
	return &models.Snapshot{
		RootPath: "/work/project",
		Files: []models.FileRecord{
			{
				RelativePath: "README.md",
				Size:         "120 B",
				Modified:     "2025-01-01 12:00:00",
				Language:     "Markdown",
				GitStatus:    models.StatusClean,
			},
			{
				RelativePath: "src/main.go",
				Size:         "1.2 KB",
				Modified:     "2025-01-01 12:00:00",
				Language:     "Go",
				Content:      "package main\n",
				GitStatus:    models.StatusModified,
				Checksum:     "abc123",
			},
		},
	}
}

func TestJSONWriter_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONWriter{}).Write(&buf, sampleSnapshot()))

	var decoded models.Snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "/work/project", decoded.RootPath)
	require.Len(t, decoded.Files, 2)
	assert.Equal(t, "src/main.go", decoded.Files[1].RelativePath)
	assert.Equal(t, models.StatusModified, decoded.Files[1].GitStatus)
	assert.Equal(t, "package main\n", decoded.Files[1].Content)
}

func TestJSONWriter_OmitsAbsentContent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONWriter{}).Write(&buf, sampleSnapshot()))

	var decoded struct {
		Files []map[string]interface{} `json:"files"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Files, 2)

	_, hasContent := decoded.Files[0]["content"]
	assert.False(t, hasContent, "absent content must not be serialized")
	_, hasChecksum := decoded.Files[0]["checksum"]
	assert.False(t, hasChecksum)
	_, hasContent = decoded.Files[1]["content"]
	assert.True(t, hasContent)
}
