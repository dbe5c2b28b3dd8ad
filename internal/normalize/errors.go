package normalize

import "fmt"

// ValueKind names the grammar family a raw value was parsed against
type ValueKind string

const (
	KindExposure ValueKind = "exposure"
	KindTime     ValueKind = "time"
	KindDec      ValueKind = "dec"
	KindRA       ValueKind = "ra"
	KindSize     ValueKind = "size"
)

// FormatError reports a raw value that matched none of the grammars for its kind.
type FormatError struct {
	Kind  ValueKind
	Value string
}

func (e *FormatError) Error() string {
	switch e.Kind {
	case KindExposure:
		return fmt.Sprintf("Cannot understand time '%s'", e.Value)
	case KindTime:
		return fmt.Sprintf("Not a valid time %s", e.Value)
	case KindDec:
		return fmt.Sprintf("Not a valid Dec %s", e.Value)
	case KindRA:
		return fmt.Sprintf("Not a valid RA %s", e.Value)
	default:
		return fmt.Sprintf("Not a valid %s %s", e.Kind, e.Value)
	}
}

// StructuralError is returned when a date interval cannot be unpacked into
// day, month and year. The message names the part counts, not the input.
type StructuralError struct {
	Expected int
	Got      int
}

func (e *StructuralError) Error() string {
	if e.Got > e.Expected {
		return fmt.Sprintf("too many values to unpack (expected %d)", e.Expected)
	}
	return fmt.Sprintf("not enough values to unpack (expected %d, got %d)", e.Expected, e.Got)
}
