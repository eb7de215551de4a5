package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/schemas"
)

func TestMarshalResume(t *testing.T) {
	resume := parsing.NewParser(parsing.WithCurrentYear(2026)).Parse("Jane Smith\njane@x.com\n")

	compact, err := marshalResume(resume, false)
	require.NoError(t, err)
	pretty, err := marshalResume(resume, true)
	require.NoError(t, err)

	assert.NotContains(t, string(compact), "\n")
	assert.Contains(t, string(pretty), "\n  ")
	assert.NoError(t, schemas.ValidateParsedResume(compact))
	assert.NoError(t, schemas.ValidateParsedResume(pretty))

	var roundTrip map[string]any
	require.NoError(t, json.Unmarshal(compact, &roundTrip))
	assert.Contains(t, roundTrip, "personalInfo")
	assert.Contains(t, roundTrip, "rawText")
	assert.Contains(t, roundTrip, "validation")
}

func TestReadInput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Smith\r\njane@x.com\r\n"), 0644))

	text, metadata, err := readInput(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith\njane@x.com", text)
	require.NotNil(t, metadata)
	assert.Equal(t, path, metadata.Source)
}

func TestReadInput_MissingFile(t *testing.T) {
	_, _, err := readInput(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestWriteOutput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, writeOutput(path, []byte(`{}`)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestApplyParseFlags_OverridesConfig(t *testing.T) {
	parseInputFile = "flag.txt"
	parseCurrentYear = 2026
	defer func() {
		parseInputFile = ""
		parseCurrentYear = 0
	}()

	cfg := &config.Config{Input: "config.txt", Output: "keep.json"}
	applyParseFlags(cfg)

	assert.Equal(t, "flag.txt", cfg.Input)
	assert.Equal(t, "keep.json", cfg.Output)
	assert.Equal(t, 2026, cfg.CurrentYear)
}
