// Package batch annotates many plates concurrently.
package batch

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/fai-plates/platemeta/internal/assemble"
	"github.com/fai-plates/platemeta/internal/cards"
	"github.com/fai-plates/platemeta/internal/logbook"
)

// Plate is one scanned plate to annotate.
type Plate struct {
	// Path is the scan file name; the plate ID is derived from it.
	Path string
	// Header is the raw scan header, or nil when unknown.
	Header *cards.Set
}

// Result is the outcome for one plate.
type Result struct {
	Path    string     `yaml:"path" json:"path"`
	PlateID string     `yaml:"plate_id" json:"plate_id"`
	Cards   *cards.Set `yaml:"cards,omitempty" json:"cards,omitempty"`
	Skipped bool       `yaml:"skipped,omitempty" json:"skipped,omitempty"`
	Error   string     `yaml:"error,omitempty" json:"error,omitempty"`
}

// Options control a batch run.
type Options struct {
	Concurrency int
	// FailFast aborts the run on the first failing plate instead of recording
	// the failure in its Result.
	FailFast bool
}

// Summary counts the outcomes of a run.
type Summary struct {
	Total     int
	Annotated int
	Skipped   int
	Failed    int
}

// Run annotates plates with at most opts.Concurrency workers. Results are in
// the order of plates.
func Run(ctx context.Context, a *assemble.Assembler, book logbook.Book, plates []Plate, opts Options) ([]Result, error) {
	concurrency := opts.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	slog.Info("Processing plates", "plates", len(plates), "concurrency", concurrency)

	results := make([]Result, len(plates))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, plate := range plates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			slog.Debug("Processing plate", "path", plate.Path, "progress", fmt.Sprintf("%d/%d", i+1, len(plates)))

			res := processPlate(a, book, plate)
			results[i] = res
			if res.Error != "" {
				slog.Warn("Plate failed", "path", plate.Path, "plate_id", res.PlateID, "err", res.Error)
				if opts.FailFast {
					return fmt.Errorf("plate %s: %s", plate.Path, res.Error)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func processPlate(a *assemble.Assembler, book logbook.Book, plate Plate) Result {
	res := Result{
		Path:    plate.Path,
		PlateID: logbook.PlateIDFromPath(plate.Path),
	}

	if plate.Header != nil && assemble.IsProcessed(plate.Header) {
		res.Skipped = true
		return res
	}

	rec, err := book.Record(res.PlateID)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	annotated, err := a.Annotate(rec, plate.Header)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	res.Cards = annotated
	return res
}

// Summarize counts the outcomes in results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Error != "":
			s.Failed++
		case r.Skipped:
			s.Skipped++
		default:
			s.Annotated++
		}
	}
	return s
}
