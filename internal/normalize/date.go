package normalize

import "strings"

// ExpandTwoDigitYear inserts "19" in front of the year, the last
// dot-separated part of a date, when it has two digits. Years are always
// taken to be in the 1900s.
func ExpandTwoDigitYear(raw string) string {
	parts := strings.Split(raw, ".")
	last := len(parts) - 1
	if len(parts[last]) != 2 {
		return raw
	}
	parts[last] = "19" + parts[last]
	return strings.Join(parts, ".")
}

// ParseOneDate returns the evening date of an observation as DD.MM.YYYY.
//
// Intervals ("31.08-01.09.67") resolve to their start; a start that lacks
// month or year borrows them from the end, which must be a full d.m.y triple.
// A malformed end yields a *StructuralError.
func ParseOneDate(raw string) (string, error) {
	interval := strings.Split(raw, "-")

	var startParts []string
	if len(interval) == 1 {
		startParts = strings.Split(interval[0], ".")
	} else {
		end := strings.Split(interval[1], ".")
		if len(end) != 3 {
			return "", &StructuralError{Expected: 3, Got: len(end)}
		}
		endMonth, endYear := end[1], end[2]

		startParts = strings.Split(strings.TrimRight(interval[0], "."), ".")
		switch len(startParts) {
		case 1:
			startParts = append(startParts, endMonth, endYear)
		case 2:
			startParts = append(startParts, endYear)
		}
	}

	return ExpandTwoDigitYear(strings.Join(startParts, ".")), nil
}

// ParseDateList parses a ;-separated list of dates or date intervals.
func ParseDateList(raw string) ([]string, error) {
	items := SplitList(raw)
	out := make([]string, 0, len(items))
	for _, item := range items {
		d, err := ParseOneDate(item)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
