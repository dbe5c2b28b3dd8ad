// Package tables holds the static reference tables used to translate
// logbook entries (written in Russian) into header values.
package tables

// Outcome tells how a lookup was resolved.
type Outcome int

const (
	// Found means the key was present in the table.
	Found Outcome = iota
	// Fallback means the key was missing and a default value was returned.
	Fallback
	// Absent means the key was missing and there is no value to write.
	Absent
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Fallback:
		return "fallback"
	default:
		return "absent"
	}
}

// ProvenanceLost names the telescope of a plate whose logbook entry does not
// identify one.
const ProvenanceLost = "Provenance lost"

// Telescope describes the optics a plate was exposed with.
// Zero diameters mean the telescope has no such element.
type Telescope struct {
	Name              string     `yaml:"name"`
	FocalLength       float64    `yaml:"focal_length_mm"`
	PlateSize         [2]float64 `yaml:"plate_size_cm"`
	Field             [2]float64 `yaml:"field_deg"`
	CorrectorDiameter float64    `yaml:"corrector_diameter_mm,omitempty"`
	MirrorDiameter    float64    `yaml:"mirror_diameter_mm,omitempty"`
}

// Known reports whether the telescope carries physical parameters.
func (t Telescope) Known() bool {
	return t.FocalLength != 0
}

// Tables is a read-only set of lookup tables. It is safe for concurrent use
// once built.
type Tables struct {
	Telescopes map[string]Telescope `yaml:"telescopes"`
	Observers  map[string]string    `yaml:"observers"`
	Methods    map[string]string    `yaml:"methods"`
}

// New returns the built-in tables extended by extra. Entries in extra replace
// built-in entries with the same key.
func New(extra *Tables) *Tables {
	t := Default()
	if extra == nil {
		return t
	}
	for k, v := range extra.Telescopes {
		t.Telescopes[k] = v
	}
	for k, v := range extra.Observers {
		t.Observers[k] = v
	}
	for k, v := range extra.Methods {
		t.Methods[k] = v
	}
	return t
}

// Telescope resolves a logbook telescope identifier. Unknown or empty
// identifiers resolve to the ProvenanceLost telescope with Fallback.
func (t *Tables) Telescope(id string) (Telescope, Outcome) {
	if tel, ok := t.Telescopes[id]; ok && id != "" {
		return tel, Found
	}
	return Telescope{Name: ProvenanceLost}, Fallback
}

// Observer resolves a logbook observer entry to its transliterated name.
func (t *Tables) Observer(name string) (string, Outcome) {
	return lookupName(t.Observers, name)
}

// Method resolves a logbook observation method to its English name.
func (t *Tables) Method(name string) (string, Outcome) {
	return lookupName(t.Methods, name)
}

func lookupName(table map[string]string, key string) (string, Outcome) {
	if v, ok := table[key]; ok {
		return v, Found
	}
	return "", Absent
}
