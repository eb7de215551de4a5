package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/logger"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/schemas"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse decoded resume text into a structured profile",
	Long:  "Parse a decoded resume text file (or stdin) into ParsedResume JSON with confidence scores and validation issues. Binary formats must be decoded to text upstream.",
	RunE:  runParse,
}

var (
	parseConfigFile     string
	parseInputFile      string
	parseOutputFile     string
	parsePretty         bool
	parseVerbose        bool
	parseJSONLogs       bool
	parseCurrentYear    int
	parseValidateSchema bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseConfigFile, "config", "c", "", "Path to JSON config file")
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to decoded resume text file (default: stdin)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseCmd.Flags().BoolVar(&parsePretty, "pretty", false, "Indent the output JSON")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")
	parseCmd.Flags().BoolVar(&parseJSONLogs, "json-logs", false, "Emit logs as JSON")
	parseCmd.Flags().IntVar(&parseCurrentYear, "current-year", 0, "Fix the graduation-year plausibility bound (default: wall clock)")
	parseCmd.Flags().BoolVar(&parseValidateSchema, "validate-schema", false, "Validate the output against the ParsedResume schema")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if parseConfigFile != "" {
		loaded, err := config.LoadConfig(parseConfigFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	applyParseFlags(cfg)

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	runID := uuid.NewString()
	log = log.With(zap.String("run_id", runID))

	cleaned, metadata, err := readInput(cfg.Input)
	if err != nil {
		return err
	}
	log.Debug("ingested resume text",
		zap.String("source", metadata.Source),
		zap.Int("chars", metadata.CharCount),
		zap.Int("lines", metadata.LineCount),
		zap.String("hash", metadata.Hash))

	var opts []parsing.Option
	if cfg.CurrentYear != 0 {
		opts = append(opts, parsing.WithCurrentYear(cfg.CurrentYear))
	}
	resume := parsing.NewParser(opts...).Parse(cleaned)

	log.Info("parsed resume",
		zap.Float64("overall_confidence", resume.Validation.OverallConfidence),
		zap.Int("experience_entries", len(resume.Experience)),
		zap.Int("education_entries", len(resume.Education)),
		zap.Int("skills", len(resume.Skills)),
		zap.Int("issues", len(resume.Validation.Issues)))

	output, err := marshalResume(resume, cfg.Pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if cfg.ValidateSchema {
		if err := schemas.ValidateParsedResume(output); err != nil {
			return err
		}
		log.Debug("output conforms to schema")
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintParsedResume(resume)
		printer.PrintIssues(resume.Validation.Issues)
	}

	return writeOutput(cfg.Output, output)
}

func applyParseFlags(cfg *config.Config) {
	if parseInputFile != "" {
		cfg.Input = parseInputFile
	}
	if parseOutputFile != "" {
		cfg.Output = parseOutputFile
	}
	if parsePretty {
		cfg.Pretty = true
	}
	if parseVerbose {
		cfg.Verbose = true
	}
	if parseJSONLogs {
		cfg.JSONLogs = true
	}
	if parseValidateSchema {
		cfg.ValidateSchema = true
	}
	if parseCurrentYear != 0 {
		cfg.CurrentYear = parseCurrentYear
	}
}

// readInput returns cleaned resume text and its ingestion metadata, reading
// stdin when no input path is configured.
func readInput(path string) (string, *ingestion.Metadata, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		cleaned := ingestion.CleanText(string(data))
		return cleaned, ingestion.NewMetadata(cleaned, "stdin"), nil
	}

	return ingestion.IngestFromFile(path)
}

func marshalResume(resume any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(resume, "", "  ")
	}
	return json.Marshal(resume)
}

func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
