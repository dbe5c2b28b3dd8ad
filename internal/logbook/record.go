package logbook

import (
	"path/filepath"
	"strings"
)

// Logbook column names read by the header assembler.
const (
	FieldID        = "ID"
	FieldRA        = "RA"
	FieldDec       = "DEC"
	FieldDate      = "DATE-OBS"
	FieldExposure  = "EXPTIME"
	FieldObject    = "OBJECT"
	FieldStartLST  = "TMS-LST"
	FieldStartLT   = "TMS-LT"
	FieldEndLST    = "TME-LST"
	FieldEndLT     = "TME-LT"
	FieldTelescope = "TELESCOPE"
	FieldObserver  = "OBSERVER"
	FieldMethod    = "METHOD"
	FieldSize      = "SIZE"
	FieldFocus     = "FOCUS"
	FieldFilter    = "FILTER"
	FieldNotes     = "NOTES"
	FieldPlateNote = "PLATNOTE"
	FieldScanNote  = "SCANNOTE"
	FieldObsNote   = "OBSNOTE"
	FieldEmulsion  = "EMULSION"
	FieldDetector  = "DETNAME"
	FieldSkyCond   = "SKYCOND"
)

// Record is one logbook row, mapping column name to the raw cell text.
type Record map[string]string

// Get returns the raw value of field. A missing column reads as "".
func (r Record) Get(field string) string {
	return r[field]
}

// ID returns the plate identifier of the record.
func (r Record) ID() string {
	return r[FieldID]
}

// PlateIDFromPath extracts the plate identifier from a scan file name such
// as "fai_schmidt_lc_0123.fits": the part before the extension, after the
// last underscore.
func PlateIDFromPath(path string) string {
	base := filepath.Base(path)
	dotted := strings.Split(base, ".")
	stem := dotted[0]
	if len(dotted) >= 2 {
		stem = dotted[len(dotted)-2]
	}
	underscored := strings.Split(stem, "_")
	return underscored[len(underscored)-1]
}
