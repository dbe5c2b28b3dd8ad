// Package results writes annotated card sets.
package results

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fai-plates/platemeta/internal/batch"
	"github.com/fai-plates/platemeta/internal/config"
)

// RunInfo describes the run that produced a report
type RunInfo struct {
	Logbook   string `yaml:"logbook" json:"logbook"`
	Timestamp string `yaml:"timestamp" json:"timestamp"`
	Total     int    `yaml:"total" json:"total"`
	Annotated int    `yaml:"annotated" json:"annotated"`
	Skipped   int    `yaml:"skipped" json:"skipped"`
	Failed    int    `yaml:"failed" json:"failed"`
}

// Report is the complete output of an annotate run
type Report struct {
	Run     RunInfo        `yaml:"run" json:"run"`
	Results []batch.Result `yaml:"results" json:"results"`
}

// NewReport builds a report for results
func NewReport(logbookPath string, results []batch.Result) *Report {
	summary := batch.Summarize(results)
	return &Report{
		Run: RunInfo{
			Logbook:   logbookPath,
			Timestamp: time.Now().Format("2006-01-02_15-04-05"),
			Total:     summary.Total,
			Annotated: summary.Annotated,
			Skipped:   summary.Skipped,
			Failed:    summary.Failed,
		},
		Results: results,
	}
}

// Write encodes the report to w in the given format.
func Write(w io.Writer, report *Report, format string) error {
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return enc.Close()
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// Save writes the report to path, creating parent directories.
func Save(path string, report *Report, format string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	return Write(file, report, format)
}
