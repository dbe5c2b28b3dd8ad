package assemble

// Site holds the record-independent values written into every header.
type Site struct {
	Observatory     string  `yaml:"observatory"`
	Longitude       float64 `yaml:"longitude"`
	Latitude        float64 `yaml:"latitude"`
	Elevation       float64 `yaml:"elevation"`
	ScanAuthor      string  `yaml:"scan_author"`
	Origin          string  `yaml:"origin"`
	ScanResolution1 int     `yaml:"scan_resolution_1"`
	ScanResolution2 int     `yaml:"scan_resolution_2"`
	Preprocessing   string  `yaml:"preprocessing"`
}

// DefaultSite returns the constants of the Fesenkov Astrophysical Institute
// plate archive.
func DefaultSite() Site {
	return Site{
		Observatory:     "Fesenkov Astrophysical Institute",
		Longitude:       43.17667,
		Latitude:        76.96611,
		Elevation:       1450,
		ScanAuthor:      "Shomshekova S., Umirbayeva A., Moshkina S.",
		Origin:          "Contant",
		ScanResolution1: 1200,
		ScanResolution2: 1200,
		Preprocessing:   "Cleaning from dust with a squirrel brush and from contamination from the glass (not an emulsion) with paper napkins",
	}
}
