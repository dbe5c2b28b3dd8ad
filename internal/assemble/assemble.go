// Package assemble turns one logbook record into the card set that is merged
// into a scanned plate's FITS header.
package assemble

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fai-plates/platemeta/internal/cards"
	"github.com/fai-plates/platemeta/internal/defuse"
	"github.com/fai-plates/platemeta/internal/logbook"
	"github.com/fai-plates/platemeta/internal/normalize"
	"github.com/fai-plates/platemeta/internal/tables"
)

// StaleKeys are cards left in the raw scan header by earlier processing that
// must not survive into the annotated header.
var StaleKeys = []string{"IRAF-MAX", "IRAF-MIN", "IRAF-BPX"}

// Free-text logbook columns, written base64 defused.
var defusedFields = []string{
	logbook.FieldFilter,
	logbook.FieldNotes,
	logbook.FieldPlateNote,
	logbook.FieldScanNote,
	logbook.FieldObsNote,
	logbook.FieldEmulsion,
}

// Options tune record assembly.
type Options struct {
	// EndTimeFromLT makes a record without TME-LST take its end time from
	// TME-LT. When false, TME-LST is read in either case and only the label
	// changes, so an empty TME-LST fails the record.
	EndTimeFromLT bool
}

// Assembler builds header cards from logbook records. It holds no mutable
// state and is safe for concurrent use.
type Assembler struct {
	tables *tables.Tables
	site   Site
	opts   Options
}

// New creates an assembler
func New(t *tables.Tables, site Site, opts Options) *Assembler {
	if t == nil {
		t = tables.Default()
	}
	return &Assembler{tables: t, site: site, opts: opts}
}

// Assemble builds the card set for rec. Any field that fails to parse, or
// expands to more values than header keywords can number, aborts the record;
// parse failures wrap the *normalize.FormatError or *normalize.StructuralError.
func (a *Assembler) Assemble(rec logbook.Record) (*cards.Set, error) {
	out := cards.NewSet()

	exposures, err := normalize.ParseExposureTimes(rec.Get(logbook.FieldExposure))
	if err != nil {
		return nil, fieldError(logbook.FieldExposure, err)
	}

	if err := a.addCoordinates(out, rec); err != nil {
		return nil, err
	}

	if observer, outcome := a.tables.Observer(rec.Get(logbook.FieldObserver)); outcome == tables.Found {
		out.Set("OBSERVER", observer)
	}
	out.Set("OBSERVAT", a.site.Observatory)
	out.Set("SITELONG", a.site.Longitude)
	out.Set("SITELAT", a.site.Latitude)
	out.Set("SITEELEV", a.site.Elevation)

	telescope, _ := a.tables.Telescope(rec.Get(logbook.FieldTelescope))
	out.Set("TELESCOP", telescope.Name)
	out.Set(cards.KeyExposureCount, len(exposures))
	out.Set("SCANAUTH", a.site.ScanAuthor)
	out.Set("ORIGIN", a.site.Origin)
	if telescope.Known() {
		out.Set("FOCLEN", telescope.FocalLength)
	}
	out.Set("FOCUS", rec.Get(logbook.FieldFocus))
	if method, outcome := a.tables.Method(rec.Get(logbook.FieldMethod)); outcome == tables.Found {
		out.Set("METHOD", method)
	}

	if err := addPlateSize(out, rec.Get(logbook.FieldSize), telescope); err != nil {
		return nil, fieldError(logbook.FieldSize, err)
	}
	if telescope.Known() {
		out.Set("FIELD1", telescope.Field[0])
		out.Set("FIELD2", telescope.Field[1])
	}
	if telescope.MirrorDiameter != 0 {
		out.Set("OTA-DIAM", telescope.MirrorDiameter)
	}
	if telescope.CorrectorDiameter != 0 {
		out.Set("OTA-APER", telescope.CorrectorDiameter)
	}

	out.Set("SCANERS1", a.site.ScanResolution1)
	out.Set("SCANERS2", a.site.ScanResolution2)
	out.Set("PRE-PROC", a.site.Preprocessing)
	out.Set("PID", rec.ID())
	for _, field := range defusedFields {
		out.Set(field, defuse.Defuse(rec.Get(field)))
	}
	out.Set("DETNAME", rec.Get(logbook.FieldDetector))
	out.Set("SKYCOND", rec.Get(logbook.FieldSkyCond))

	if err := mergeField(out, logbook.FieldExposure, cards.ExpandExposure(exposures)); err != nil {
		return nil, err
	}

	dates, err := cards.DateCards(rec.Get(logbook.FieldDate))
	if err != nil {
		return nil, fieldError(logbook.FieldDate, err)
	}
	if err := mergeField(out, logbook.FieldDate, dates); err != nil {
		return nil, err
	}
	if err := mergeField(out, logbook.FieldObject, cards.ObjectCards(rec.Get(logbook.FieldObject))); err != nil {
		return nil, err
	}

	if err := a.addTimes(out, rec); err != nil {
		return nil, err
	}

	return out, nil
}

// Annotate strips the stale keys from a raw scan header and merges the cards
// for rec over it. hdr is not modified.
func (a *Assembler) Annotate(rec logbook.Record, hdr *cards.Set) (*cards.Set, error) {
	record, err := a.Assemble(rec)
	if err != nil {
		return nil, err
	}
	out := cards.NewSet()
	if hdr != nil {
		out = hdr.Clone()
	}
	StripStale(out)
	out.Merge(record)
	return out, nil
}

// StripStale removes StaleKeys from hdr.
func StripStale(hdr *cards.Set) {
	for _, k := range StaleKeys {
		hdr.Delete(k)
	}
}

// IsProcessed reports whether hdr already carries both the logbook cards and
// an astrometric solution.
func IsProcessed(hdr *cards.Set) bool {
	return hdr.Has(cards.KeyRAOriginal) && hdr.Has("A_ORDER")
}

func (a *Assembler) addCoordinates(out *cards.Set, rec logbook.Record) error {
	rawRA := rec.Get(logbook.FieldRA)
	raDeg, err := normalize.RAToDeg(rawRA)
	if err != nil {
		return fieldError(logbook.FieldRA, err)
	}
	raText, err := normalize.ReformatRA(rawRA)
	if err != nil {
		return fieldError(logbook.FieldRA, err)
	}

	rawDec := rec.Get(logbook.FieldDec)
	decDeg, err := normalize.DecToDeg(rawDec)
	if err != nil {
		return fieldError(logbook.FieldDec, err)
	}
	decText, err := normalize.ReformatDec(rawDec)
	if err != nil {
		return fieldError(logbook.FieldDec, err)
	}

	out.Set(cards.KeyRAOriginal, raText)
	out.Set(cards.KeyDecOriginal, decText)
	out.Set(cards.KeyRADegrees, raDeg)
	out.Set(cards.KeyDecDegrees, decDeg)
	return nil
}

func (a *Assembler) addTimes(out *cards.Set, rec logbook.Record) error {
	startLabel, startField := normalize.SiderealTimeLabel, logbook.FieldStartLST
	if rec.Get(startField) == "" {
		startLabel, startField = normalize.LocalTimeLabel, logbook.FieldStartLT
	}
	if raw := rec.Get(startField); raw != "" {
		start, err := cards.StartTimeCards(startLabel, raw)
		if err != nil {
			return fieldError(startField, err)
		}
		if err := mergeField(out, startField, start); err != nil {
			return err
		}
	}

	label, field := normalize.SiderealTimeLabel, logbook.FieldEndLST
	if rec.Get(field) == "" {
		label = normalize.LocalTimeLabel
		if a.opts.EndTimeFromLT {
			field = logbook.FieldEndLT
			if rec.Get(field) == "" {
				return nil
			}
		}
	}
	end, err := cards.EndTimeCards(label, rec.Get(field))
	if err != nil {
		return fieldError(field, err)
	}
	return mergeField(out, field, end)
}

// addPlateSize writes PLATESZ1/2 from a "width*height" SIZE entry, or the
// telescope's plate size when SIZE is empty. A decimal comma is accepted.
func addPlateSize(out *cards.Set, raw string, telescope tables.Telescope) error {
	if raw == "" {
		if telescope.Known() {
			out.Set("PLATESZ1", telescope.PlateSize[0])
			out.Set("PLATESZ2", telescope.PlateSize[1])
		}
		return nil
	}

	parts := strings.Split(raw, "*")
	if len(parts) != 2 {
		return &normalize.FormatError{Kind: normalize.KindSize, Value: raw}
	}
	for i, p := range parts {
		p = strings.Replace(strings.TrimSpace(p), ",", ".", 1)
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return &normalize.FormatError{Kind: normalize.KindSize, Value: raw}
		}
		out.Set(fmt.Sprintf("PLATESZ%d", i+1), v)
	}
	return nil
}

// mergeField merges the cards expanded from field into out, rejecting
// keywords too long for a header card.
func mergeField(out *cards.Set, field string, set *cards.Set) error {
	if err := set.Validate(); err != nil {
		return fieldError(field, err)
	}
	out.Merge(set)
	return nil
}

func fieldError(field string, err error) error {
	return fmt.Errorf("field %s: %w", field, err)
}
