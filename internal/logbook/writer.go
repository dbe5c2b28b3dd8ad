package logbook

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/parquet-go/parquet-go"
)

// SaveParquet writes the logbook to path as Parquet, ordered by plate ID.
func SaveParquet(book Book, path string) error {
	ids := make([]string, 0, len(book))
	for id := range book {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := make([]Row, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, RowFromRecord(book[id]))
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Row](file)
	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}

	slog.Debug("Wrote Parquet logbook", "path", path, "rows", len(rows))
	return nil
}
