package cards

import (
	"strconv"

	"github.com/fai-plates/platemeta/internal/normalize"
)

// Keywords derived from logbook fields. Multi-valued fields pair a bare
// keyword with the prefix of their indexed variants.
const (
	KeyExposure      = "EXPTIME"
	PrefixExposure   = "EXPTIM"
	KeyDate          = "DATEORIG"
	PrefixDate       = "DATEOR"
	KeyObject        = "OBJECT"
	PrefixObject     = "OBJECT"
	KeyStartTime     = "TMS-ORIG"
	PrefixStartTime  = "TMS-OR"
	KeyEndTime       = "TME-ORIG"
	PrefixEndTime    = "TME-OR"
	KeyExposureCount = "NUMEXP"
	KeyRAOriginal    = "RA-ORIG"
	KeyDecOriginal   = "DEC-ORIG"
	KeyRADegrees     = "RA-DEG"
	KeyDecDegrees    = "DEC-DEG"
)

// ExpandIndexed maps an ordered list of display values onto keywords.
//
// The first value always goes under bare. When there is more than one value,
// every value (the first included) is also written under prefix followed by
// its 1-based position, so "a;b" becomes bare=a, prefix1=a, prefix2=b.
func ExpandIndexed(bare, prefix string, values []string) *Set {
	s := NewSet()
	if len(values) == 0 {
		return s
	}
	s.Set(bare, values[0])
	if len(values) == 1 {
		return s
	}
	for i, v := range values {
		s.Set(prefix+strconv.Itoa(i+1), v)
	}
	return s
}

// ExpandExposure maps exposure durations in seconds onto EXPTIME and
// EXPTIM1..EXPTIMn. Values stay numeric.
func ExpandExposure(seconds []float64) *Set {
	s := NewSet()
	if len(seconds) == 0 {
		return s
	}
	s.Set(KeyExposure, seconds[0])
	if len(seconds) == 1 {
		return s
	}
	for n, v := range seconds {
		s.Set(PrefixExposure+strconv.Itoa(n+1), v)
	}
	return s
}

// ExposureCards parses a raw EXPTIME field into exposure cards.
func ExposureCards(raw string) (*Set, error) {
	secs, err := normalize.ParseExposureTimes(raw)
	if err != nil {
		return nil, err
	}
	return ExpandExposure(secs), nil
}

// DateCards parses a raw DATE-OBS field into DATEORIG cards.
func DateCards(raw string) (*Set, error) {
	dates, err := normalize.ParseDateList(raw)
	if err != nil {
		return nil, err
	}
	return ExpandIndexed(KeyDate, PrefixDate, dates), nil
}

// ObjectCards splits a raw OBJECT field into OBJECT cards.
func ObjectCards(raw string) *Set {
	return ExpandIndexed(KeyObject, PrefixObject, normalize.SplitList(raw))
}

// StartTimeCards renders a start-of-observation time list labeled with label
// ("LT" or "LST") into TMS-ORIG cards.
func StartTimeCards(label, raw string) (*Set, error) {
	times, err := normalize.LabelTimes(label, raw)
	if err != nil {
		return nil, err
	}
	return ExpandIndexed(KeyStartTime, PrefixStartTime, times), nil
}

// EndTimeCards renders an end-of-observation time list into TME-ORIG cards.
func EndTimeCards(label, raw string) (*Set, error) {
	times, err := normalize.LabelTimes(label, raw)
	if err != nil {
		return nil, err
	}
	return ExpandIndexed(KeyEndTime, PrefixEndTime, times), nil
}
