package tables

// Default returns a fresh copy of the built-in tables.
func Default() *Tables {
	t := &Tables{
		Telescopes: make(map[string]Telescope, len(builtinTelescopes)),
		Observers:  make(map[string]string, len(builtinObservers)),
		Methods:    make(map[string]string, len(builtinMethods)),
	}
	for k, v := range builtinTelescopes {
		t.Telescopes[k] = v
	}
	for k, v := range builtinObservers {
		t.Observers[k] = v
	}
	for k, v := range builtinMethods {
		t.Methods[k] = v
	}
	return t
}

var builtinTelescopes = map[string]Telescope{
	"50cm менисковый телескоп Максутова": {
		Name:              "Wide aperture Maksutov meniscus telescope with main mirror 50 cm",
		FocalLength:       1200,
		PlateSize:         [2]float64{9, 9.8},
		Field:             [2]float64{5.2, 5.7},
		CorrectorDiameter: 500,
		MirrorDiameter:    660,
	},
	"Большой Шмидт": {
		Name:              "Schmidt telescope (large camera)",
		FocalLength:       773,
		PlateSize:         [2]float64{9, 12},
		Field:             [2]float64{6.2, 9.9},
		CorrectorDiameter: 397,
	},
	"Малый Шмидт": {
		Name:           "Schmidt telescope (small camera)",
		FocalLength:    170,
		PlateSize:      [2]float64{3.3, 3.3},
		Field:          [2]float64{10, 10},
		MirrorDiameter: 190,
	},
}

var builtinObservers = map[string]string{
	"Рожковский Д.А.":                   "Rozhkovskij D.A.",
	"Торопова Т.П.":                     "Tropova T.P.",
	"Городецкий Д.И.":                   "Gordetskij D.I.",
	"Глушков Ю.И.":                      "Glushkovskij Yu.I.",
	"Торопова Т.П.  Рожковский Д.А.":    "Tropova T.P., Rozhkovskij D.A.",
	"Рожковский Д.А., Торопова Т.П.":    "Rozhkovskij D.A., Tropova T.P.",
	"Рожковский Д.А., Павлова Л.А.":     "Rozhkovskij D.A., Pavlova L.A.",
	"Карягина З.В.":                     "Karyagina Z.V.",
	"Матягин В.С.":                      "Matyagin V.S.",
	"Павлова Л.А":                       "Pavlova L.A.",
	"Гаврилов":                          "Gavrilov",
	"Курчаков А.В.":                     "Kurchakov A.V.",
	"Рожковский Д.А.   Городецкий Д.И.": "Rozhkovskij D.A.   Gordetskij D.I.",
	"Солодовников В.В.":                 "Solodovnikov V.V.",
}

var builtinMethods = map[string]string{
	"метод Меткофа":        "Metkof method",
	"метод Меткофа-Блажко": "Metkof-Blazhko method",
}
