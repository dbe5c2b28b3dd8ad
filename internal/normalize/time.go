package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fai-plates/platemeta/internal/sexagesimal"
)

// exposurePattern accepts any ordered subset of hours, minutes and seconds,
// e.g. "1h30m20s", "10.5m", "15s".
var exposurePattern = regexp.MustCompile(
	`^(?P<hours>\d+(?:\.\d+)?h)?` +
		`(?P<minutes>\d+(?:\.\d+)?m)?` +
		`(?P<seconds>\d+(?:\.\d+)?s)?$`)

// ParseSingleTime returns the number of seconds in an h-m-s duration string.
// Absent components count as zero, so the empty string is zero seconds.
func ParseSingleTime(raw string) (float64, error) {
	m := exposurePattern.FindStringSubmatch(raw)
	if m == nil {
		return 0, &FormatError{Kind: KindExposure, Value: raw}
	}

	component := func(name string) float64 {
		s := m[exposurePattern.SubexpIndex(name)]
		if s == "" {
			return 0
		}
		// unit suffix is the last byte
		v, _ := strconv.ParseFloat(s[:len(s)-1], 64)
		return v
	}

	return component("hours")*3600 + component("minutes")*60 + component("seconds"), nil
}

// ParseExposureTimes parses a ;-separated list of durations. The first item
// that fails aborts the whole list.
func ParseExposureTimes(raw string) ([]float64, error) {
	items := SplitList(raw)
	out := make([]float64, 0, len(items))
	for _, item := range items {
		secs, err := ParseSingleTime(item)
		if err != nil {
			return nil, err
		}
		out = append(out, secs)
	}
	return out, nil
}

// clockParts holds the captured text of a clock-time match. Missing
// components are empty strings.
type clockParts struct {
	hours, minutes, seconds string
}

type clockPattern struct {
	re *regexp.Regexp
}

func (p clockPattern) match(raw string) (clockParts, bool) {
	m := p.re.FindStringSubmatch(raw)
	if m == nil {
		return clockParts{}, false
	}
	var parts clockParts
	for i, name := range p.re.SubexpNames() {
		switch name {
		case "hours":
			parts.hours = m[i]
		case "minutes":
			parts.minutes = m[i]
		case "seconds":
			parts.seconds = m[i]
		}
	}
	return parts, true
}

// clockPatterns are tried in order; the first match wins.
var clockPatterns = []clockPattern{
	{regexp.MustCompile(`^(?P<hours>\d+)h$`)},
	{regexp.MustCompile(`^(?P<hours>\d+\.h\d+)$`)},
	{regexp.MustCompile(`^(?P<hours>\d+)h(?P<minutes>\d+)m?$`)},
	{regexp.MustCompile(`^(?P<hours>\d+h)(?P<minutes>\d+)m(?P<seconds>\d+)s?$`)},
}

// ClockToHours converts a logbook clock time ("5h31", "12.h5", "13h54m24s")
// to decimal hours.
func ClockToHours(raw string) (float64, error) {
	for _, p := range clockPatterns {
		parts, ok := p.match(raw)
		if !ok {
			continue
		}
		// "12.h5" is read as 12.5 hours
		hours := parseFloatOrZero(strings.ReplaceAll(parts.hours, "h", ""))
		hours += parseFloatOrZero(parts.minutes) / 60
		hours += parseFloatOrZero(parts.seconds) / 3600
		return hours, nil
	}
	return 0, &FormatError{Kind: KindTime, Value: raw}
}

// ReformatSingleTime renders a logbook clock time as hh:mm:ss.
func ReformatSingleTime(raw string) (string, error) {
	hours, err := ClockToHours(raw)
	if err != nil {
		return "", err
	}
	return sexagesimal.HoursToHMS(hours), nil
}

// ReformatTimes renders every item of a ;-separated clock time list.
func ReformatTimes(raw string) ([]string, error) {
	items := SplitList(raw)
	out := make([]string, 0, len(items))
	for _, item := range items {
		t, err := ReformatSingleTime(item)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// Time scale labels used in the TMS/TME cards.
const (
	LocalTimeLabel    = "LT"
	SiderealTimeLabel = "LST"
)

// LabelTimes renders a clock time list and prefixes each item with label.
func LabelTimes(label, raw string) ([]string, error) {
	times, err := ReformatTimes(raw)
	if err != nil {
		return nil, err
	}
	for i, t := range times {
		times[i] = label + " " + t
	}
	return times, nil
}

func parseFloatOrZero(s string) float64 {
	if s == "" {
		return 0
	}
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
