package logbook

// Row is the columnar form of a logbook record
type Row struct {
	ID        string `parquet:"ID"`
	RA        string `parquet:"RA"`
	Dec       string `parquet:"DEC"`
	DateObs   string `parquet:"DATE-OBS"`
	ExpTime   string `parquet:"EXPTIME"`
	Object    string `parquet:"OBJECT"`
	StartLST  string `parquet:"TMS-LST"`
	StartLT   string `parquet:"TMS-LT"`
	EndLST    string `parquet:"TME-LST"`
	EndLT     string `parquet:"TME-LT"`
	Telescope string `parquet:"TELESCOPE"`
	Observer  string `parquet:"OBSERVER"`
	Method    string `parquet:"METHOD"`
	Size      string `parquet:"SIZE"`
	Focus     string `parquet:"FOCUS"`
	Filter    string `parquet:"FILTER"`
	Notes     string `parquet:"NOTES"`
	PlateNote string `parquet:"PLATNOTE"`
	ScanNote  string `parquet:"SCANNOTE"`
	ObsNote   string `parquet:"OBSNOTE"`
	Emulsion  string `parquet:"EMULSION"`
	Detector  string `parquet:"DETNAME"`
	SkyCond   string `parquet:"SKYCOND"`
}

// Record converts the row to the column-keyed form.
func (r Row) Record() Record {
	return Record{
		FieldID:        r.ID,
		FieldRA:        r.RA,
		FieldDec:       r.Dec,
		FieldDate:      r.DateObs,
		FieldExposure:  r.ExpTime,
		FieldObject:    r.Object,
		FieldStartLST:  r.StartLST,
		FieldStartLT:   r.StartLT,
		FieldEndLST:    r.EndLST,
		FieldEndLT:     r.EndLT,
		FieldTelescope: r.Telescope,
		FieldObserver:  r.Observer,
		FieldMethod:    r.Method,
		FieldSize:      r.Size,
		FieldFocus:     r.Focus,
		FieldFilter:    r.Filter,
		FieldNotes:     r.Notes,
		FieldPlateNote: r.PlateNote,
		FieldScanNote:  r.ScanNote,
		FieldObsNote:   r.ObsNote,
		FieldEmulsion:  r.Emulsion,
		FieldDetector:  r.Detector,
		FieldSkyCond:   r.SkyCond,
	}
}

// RowFromRecord converts a record to its columnar form.
func RowFromRecord(rec Record) Row {
	return Row{
		ID:        rec.Get(FieldID),
		RA:        rec.Get(FieldRA),
		Dec:       rec.Get(FieldDec),
		DateObs:   rec.Get(FieldDate),
		ExpTime:   rec.Get(FieldExposure),
		Object:    rec.Get(FieldObject),
		StartLST:  rec.Get(FieldStartLST),
		StartLT:   rec.Get(FieldStartLT),
		EndLST:    rec.Get(FieldEndLST),
		EndLT:     rec.Get(FieldEndLT),
		Telescope: rec.Get(FieldTelescope),
		Observer:  rec.Get(FieldObserver),
		Method:    rec.Get(FieldMethod),
		Size:      rec.Get(FieldSize),
		Focus:     rec.Get(FieldFocus),
		Filter:    rec.Get(FieldFilter),
		Notes:     rec.Get(FieldNotes),
		PlateNote: rec.Get(FieldPlateNote),
		ScanNote:  rec.Get(FieldScanNote),
		ObsNote:   rec.Get(FieldObsNote),
		Emulsion:  rec.Get(FieldEmulsion),
		Detector:  rec.Get(FieldDetector),
		SkyCond:   rec.Get(FieldSkyCond),
	}
}
