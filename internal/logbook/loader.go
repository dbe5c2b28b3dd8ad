// Package logbook loads the transcribed plate logbook keyed by plate ID.
package logbook

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// Book maps plate IDs to their logbook records.
type Book map[string]Record

// ErrUnknownPlate is returned when a plate has no logbook entry.
var ErrUnknownPlate = errors.New("plate not in logbook")

// Record returns the entry for plateID.
func (b Book) Record(plateID string) (Record, error) {
	rec, ok := b[plateID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlate, plateID)
	}
	return rec, nil
}

// Loader handles loading of a logbook file
type Loader struct {
	path string
}

// NewLoader creates a new logbook loader
func NewLoader(path string) *Loader {
	return &Loader{
		path: path,
	}
}

// Load loads the logbook (CSV or Parquet) keyed by the ID column. When an ID
// occurs more than once the last row wins.
func (l *Loader) Load() (Book, error) {
	ext := strings.ToLower(filepath.Ext(l.path))

	switch ext {
	case ".csv":
		return l.loadCSV()
	case ".parquet":
		return l.loadParquet()
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .csv, .parquet)", ext)
	}
}

// loadCSV loads a comma separated logbook with a header row
func (l *Loader) loadCSV() (Book, error) {
	slog.Debug("Opening CSV logbook", "path", l.path)

	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open logbook file: %w", err)
	}
	defer file.Close()

	return ReadCSV(file)
}

// ReadCSV reads a comma separated logbook with a header row from r.
func ReadCSV(r io.Reader) (Book, error) {
	rdr := csv.NewReader(r)
	rdr.FieldsPerRecord = -1

	header, err := rdr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read logbook header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	book := make(Book)
	rowNum := 1
	for {
		row, err := rdr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV at line %d: %w", rowNum, err)
		}

		rec := make(Record, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		addRecord(book, rec)
	}

	slog.Debug("Finished reading CSV logbook", "total_records", len(book), "total_rows", rowNum-1)

	return book, nil
}

// loadParquet loads a logbook stored as Parquet
func (l *Loader) loadParquet() (Book, error) {
	slog.Debug("Opening Parquet logbook", "path", l.path)

	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	slog.Debug("Parquet file opened successfully", "num_rows", pf.NumRows(), "num_row_groups", len(pf.RowGroups()))

	reader := parquet.NewGenericReader[Row](pf)
	defer reader.Close()

	book := make(Book)
	rows := make([]Row, 128) // Read in batches

	batchNum := 0
	for {
		n, err := reader.Read(rows)
		if n > 0 {
			batchNum++
			for _, row := range rows[:n] {
				addRecord(book, row.Record())
			}
			slog.Debug("Read batch from Parquet", "batch", batchNum, "rows_in_batch", n, "total_records", len(book))
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("failed to read parquet rows: %w", err)
			}
			break
		}
	}

	slog.Debug("Finished reading Parquet logbook", "total_records", len(book), "total_batches", batchNum)

	return book, nil
}

func addRecord(book Book, rec Record) {
	id := rec.ID()
	if _, dup := book[id]; dup {
		slog.Warn("Duplicate plate ID in logbook, keeping last row", "id", id)
	}
	book[id] = rec
}
