package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "CRLF normalized",
			input:    "Jane Smith\r\njane@x.com\r\n",
			expected: "Jane Smith\njane@x.com",
		},
		{
			name:     "Control characters stripped",
			input:    "Jane\x00 Smith\x1f\njane@x.com",
			expected: "Jane Smith\njane@x.com",
		},
		{
			name:     "Runs of spaces collapsed",
			input:    "Senior    Engineer\t\tAcme",
			expected: "Senior Engineer Acme",
		},
		{
			name:     "Excessive blank lines collapsed",
			input:    "Skills\n\n\n\n\npython",
			expected: "Skills\n\npython",
		},
		{
			name:     "Bullet markers preserved",
			input:    "Skills\n• docker | kubernetes",
			expected: "Skills\n• docker | kubernetes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestIngestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Smith\r\njane@x.com\r\n"), 0644))

	cleaned, metadata, err := IngestFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith\njane@x.com", cleaned)

	require.NotNil(t, metadata)
	assert.Equal(t, path, metadata.Source)
	assert.NotEmpty(t, metadata.Hash)
	assert.Equal(t, len(cleaned), metadata.CharCount)
	assert.Equal(t, 2, metadata.LineCount)
}

func TestIngestFromFile_Missing(t *testing.T) {
	_, _, err := IngestFromFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestMetadataToJSON(t *testing.T) {
	metadata := NewMetadata("Jane Smith", "resume.txt")
	data, err := metadata.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"hash"`)
	assert.Contains(t, string(data), `"char_count"`)
}
