package cards

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fai-plates/platemeta/internal/normalize"
)

func TestExpandExposure(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected map[string]any
	}{
		{
			name:     "single exposure",
			raw:      "1h",
			expected: map[string]any{"EXPTIME": 3600.0},
		},
		{
			name:     "two exposures",
			raw:      "1h;5h",
			expected: map[string]any{"EXPTIME": 3600.0, "EXPTIM1": 3600.0, "EXPTIM2": 18000.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := ExposureCards(tt.raw)
			if err != nil {
				t.Fatalf("ExposureCards failed: %v", err)
			}
			if diff := cmp.Diff(tt.expected, set.Map()); diff != "" {
				t.Errorf("Cards mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExposureCardsOrder(t *testing.T) {
	set := ExpandExposure([]float64{60, 120, 180})
	want := []string{"EXPTIME", "EXPTIM1", "EXPTIM2", "EXPTIM3"}
	if diff := cmp.Diff(want, set.Keys()); diff != "" {
		t.Errorf("Key order mismatch (-want +got):\n%s", diff)
	}
}

func TestExposureCardsInvalid(t *testing.T) {
	_, err := ExposureCards("1h;h20m10s")
	var fe *normalize.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("Expected FormatError, got %v", err)
	}
}

func TestExpandIndexed(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected []Card
	}{
		{
			name:     "empty",
			values:   nil,
			expected: []Card{},
		},
		{
			name:     "one value keeps the bare key only",
			values:   []string{"Th4-4"},
			expected: []Card{{"OBJECT", "Th4-4"}},
		},
		{
			name:   "several values are indexed from one",
			values: []string{"NGC6611", "NGC6618", "NGC6611"},
			expected: []Card{
				{"OBJECT", "NGC6611"},
				{"OBJECT1", "NGC6611"},
				{"OBJECT2", "NGC6618"},
				{"OBJECT3", "NGC6611"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandIndexed(KeyObject, PrefixObject, tt.values).Cards()
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Cards mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// For any list the bare key carries the first item and, when there is more
// than one item, keys 1..n carry the items in order.
func TestExpandIndexedProperty(t *testing.T) {
	for n := 1; n <= 12; n++ {
		values := make([]string, n)
		for i := range values {
			values[i] = string(rune('a' + i))
		}
		set := ExpandIndexed(KeyDate, PrefixDate, values)

		if v, _ := set.Get(KeyDate); v != values[0] {
			t.Errorf("n=%d: bare key holds %v, want %s", n, v, values[0])
		}
		wantLen := 1
		if n > 1 {
			wantLen = n + 1
		}
		if set.Len() != wantLen {
			t.Errorf("n=%d: expected %d cards, got %d", n, wantLen, set.Len())
		}
		if n > 1 {
			for i, v := range values {
				key := PrefixDate + strconv.Itoa(i+1)
				if got, _ := set.Get(key); got != v {
					t.Errorf("n=%d: %s holds %v, want %s", n, key, got, v)
				}
			}
		}
		if err := set.Validate(); err != nil {
			t.Errorf("n=%d: %v", n, err)
		}
	}
}

func TestObjectCards(t *testing.T) {
	got := ObjectCards("NGC6611;NGC6618").Map()
	want := map[string]any{"OBJECT": "NGC6611", "OBJECT1": "NGC6611", "OBJECT2": "NGC6618"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Cards mismatch (-want +got):\n%s", diff)
	}

	got = ObjectCards("Th4-4").Map()
	if diff := cmp.Diff(map[string]any{"OBJECT": "Th4-4"}, got); diff != "" {
		t.Errorf("Cards mismatch (-want +got):\n%s", diff)
	}
}

func TestDateCards(t *testing.T) {
	tests := []struct {
		raw      string
		expected map[string]any
	}{
		{"13.03.1956", map[string]any{"DATEORIG": "13.03.1956"}},
		{"31.12.1965-01.01.66;01-02.01.1966", map[string]any{
			"DATEORIG": "31.12.1965",
			"DATEOR1":  "31.12.1965",
			"DATEOR2":  "01.01.1966",
		}},
		{"01-02.01.1964", map[string]any{"DATEORIG": "01.01.1964"}},
	}

	for _, tt := range tests {
		set, err := DateCards(tt.raw)
		if err != nil {
			t.Fatalf("DateCards(%q) failed: %v", tt.raw, err)
		}
		if diff := cmp.Diff(tt.expected, set.Map()); diff != "" {
			t.Errorf("DateCards(%q) mismatch (-want +got):\n%s", tt.raw, diff)
		}
	}

	_, err := DateCards("13.03.1956;31.12.1965-01.66")
	var se *normalize.StructuralError
	if !errors.As(err, &se) {
		t.Errorf("Expected StructuralError, got %v", err)
	}
}

func TestTimeCards(t *testing.T) {
	tests := []struct {
		name     string
		build    func() (*Set, error)
		expected map[string]any
	}{
		{
			name:     "single sidereal start",
			build:    func() (*Set, error) { return StartTimeCards(normalize.SiderealTimeLabel, "1h23m12s") },
			expected: map[string]any{"TMS-ORIG": "LST 01:23:12"},
		},
		{
			name:  "several sidereal starts",
			build: func() (*Set, error) { return StartTimeCards(normalize.SiderealTimeLabel, "13h23m;5h13;12h15m54s") },
			expected: map[string]any{
				"TMS-ORIG": "LST 13:23:00",
				"TMS-OR1":  "LST 13:23:00",
				"TMS-OR2":  "LST 05:13:00",
				"TMS-OR3":  "LST 12:15:54",
			},
		},
		{
			name:     "single local start",
			build:    func() (*Set, error) { return StartTimeCards(normalize.LocalTimeLabel, "1h23m12s") },
			expected: map[string]any{"TMS-ORIG": "LT 01:23:12"},
		},
		{
			name:  "several local ends",
			build: func() (*Set, error) { return EndTimeCards(normalize.LocalTimeLabel, "13h23m;5h13;12h15m54s") },
			expected: map[string]any{
				"TME-ORIG": "LT 13:23:00",
				"TME-OR1":  "LT 13:23:00",
				"TME-OR2":  "LT 05:13:00",
				"TME-OR3":  "LT 12:15:54",
			},
		},
		{
			name:     "single sidereal end",
			build:    func() (*Set, error) { return EndTimeCards(normalize.SiderealTimeLabel, "1h23m12s") },
			expected: map[string]any{"TME-ORIG": "LST 01:23:12"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := tt.build()
			if err != nil {
				t.Fatalf("build failed: %v", err)
			}
			if diff := cmp.Diff(tt.expected, set.Map()); diff != "" {
				t.Errorf("Cards mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
