package normalize

import (
	"regexp"

	"github.com/fai-plates/platemeta/internal/sexagesimal"
)

// sexagesimalPattern is one entry of an ordered grammar table. Named groups
// "sign", "whole", "minutes" and "seconds" are read when present.
type sexagesimalPattern struct {
	re *regexp.Regexp
}

type sexagesimalParts struct {
	negative bool
	whole    float64
	minutes  float64
	seconds  float64
}

func (p sexagesimalPattern) match(raw string) (sexagesimalParts, bool) {
	m := p.re.FindStringSubmatch(raw)
	if m == nil {
		return sexagesimalParts{}, false
	}
	var parts sexagesimalParts
	for i, name := range p.re.SubexpNames() {
		switch name {
		case "sign":
			parts.negative = m[i] == "-"
		case "whole":
			parts.whole = parseFloatOrZero(m[i])
		case "minutes":
			parts.minutes = parseFloatOrZero(m[i])
		case "seconds":
			parts.seconds = parseFloatOrZero(m[i])
		}
	}
	return parts, true
}

func (p sexagesimalParts) value() float64 {
	v := p.whole + p.minutes/60 + p.seconds/3600
	if p.negative {
		return -v
	}
	return v
}

func matchFirst(patterns []sexagesimalPattern, raw string) (sexagesimalParts, bool) {
	for _, p := range patterns {
		if parts, ok := p.match(raw); ok {
			return parts, true
		}
	}
	return sexagesimalParts{}, false
}

var decPatterns = []sexagesimalPattern{
	{regexp.MustCompile(`^(?P<sign>-?)(?P<whole>\d+\.?\d*)$`)},
	{regexp.MustCompile(`^(?P<sign>-?)(?P<whole>\d+) (?P<minutes>\d+)(?: (?P<seconds>\d+))?$`)},
}

var raPatterns = []sexagesimalPattern{
	{regexp.MustCompile(`^(?P<whole>\d+) (?P<minutes>\d+)(?: (?P<seconds>\d+))?$`)},
	{regexp.MustCompile(`^(?P<whole>\d+)h(?P<minutes>\d+)m(?:(?P<seconds>\d+)s)?$`)},
	{regexp.MustCompile(`^(?P<whole>\d+)h(?P<minutes>\d+)m?$`)},
}

// DecToDeg returns a declination in degrees. It accepts signed decimal
// degrees ("-23.30") or space separated "deg min [sec]" ("-01 28 02").
func DecToDeg(raw string) (float64, error) {
	parts, ok := matchFirst(decPatterns, raw)
	if !ok {
		return 0, &FormatError{Kind: KindDec, Value: raw}
	}
	return parts.value(), nil
}

// ReformatDec renders a declination as ±dd:mm:ss.
func ReformatDec(raw string) (string, error) {
	deg, err := DecToDeg(raw)
	if err != nil {
		return "", err
	}
	return sexagesimal.DegToDMS(deg), nil
}

// RAToHours returns a right ascension in decimal hours. Accepted forms are
// "05 32 49", "02h41m45s" and "05h33m"; an hours-only value is rejected.
func RAToHours(raw string) (float64, error) {
	parts, ok := matchFirst(raPatterns, raw)
	if !ok {
		return 0, &FormatError{Kind: KindRA, Value: raw}
	}
	return parts.value(), nil
}

// RAToDeg returns a right ascension in degrees.
func RAToDeg(raw string) (float64, error) {
	hours, err := RAToHours(raw)
	if err != nil {
		return 0, err
	}
	return hours / 24 * 360, nil
}

// ReformatRA renders a right ascension as hh:mm:ss.
func ReformatRA(raw string) (string, error) {
	deg, err := RAToDeg(raw)
	if err != nil {
		return "", err
	}
	return sexagesimal.DegToHMS(deg), nil
}
