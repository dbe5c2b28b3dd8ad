package tables

import "testing"

func TestTelescope(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		wantName    string
		wantOutcome Outcome
		wantKnown   bool
	}{
		{
			name:        "maksutov",
			id:          "50cm менисковый телескоп Максутова",
			wantName:    "Wide aperture Maksutov meniscus telescope with main mirror 50 cm",
			wantOutcome: Found,
			wantKnown:   true,
		},
		{
			name:        "large schmidt",
			id:          "Большой Шмидт",
			wantName:    "Schmidt telescope (large camera)",
			wantOutcome: Found,
			wantKnown:   true,
		},
		{
			name:        "missing identifier",
			id:          "",
			wantName:    ProvenanceLost,
			wantOutcome: Fallback,
		},
		{
			name:        "unknown identifier",
			id:          "Цейсс",
			wantName:    ProvenanceLost,
			wantOutcome: Fallback,
		},
	}

	tables := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tel, outcome := tables.Telescope(tt.id)
			if tel.Name != tt.wantName {
				t.Errorf("Expected name %q, got %q", tt.wantName, tel.Name)
			}
			if outcome != tt.wantOutcome {
				t.Errorf("Expected outcome %s, got %s", tt.wantOutcome, outcome)
			}
			if tel.Known() != tt.wantKnown {
				t.Errorf("Expected Known()=%v, got %v", tt.wantKnown, tel.Known())
			}
		})
	}
}

func TestTelescopeParameters(t *testing.T) {
	tel, _ := Default().Telescope("Малый Шмидт")
	if tel.FocalLength != 170 {
		t.Errorf("Expected focal length 170, got %v", tel.FocalLength)
	}
	if tel.PlateSize != [2]float64{3.3, 3.3} {
		t.Errorf("Unexpected plate size %v", tel.PlateSize)
	}
	if tel.CorrectorDiameter != 0 || tel.MirrorDiameter != 190 {
		t.Errorf("Unexpected diameters %v/%v", tel.CorrectorDiameter, tel.MirrorDiameter)
	}
}

func TestObserverAndMethod(t *testing.T) {
	tables := Default()

	name, outcome := tables.Observer("Рожковский Д.А.")
	if name != "Rozhkovskij D.A." || outcome != Found {
		t.Errorf("Unexpected observer lookup: %q %s", name, outcome)
	}

	name, outcome = tables.Observer("Неизвестный")
	if name != "" || outcome != Absent {
		t.Errorf("Expected absent observer, got %q %s", name, outcome)
	}

	name, outcome = tables.Method("метод Меткофа-Блажко")
	if name != "Metkof-Blazhko method" || outcome != Found {
		t.Errorf("Unexpected method lookup: %q %s", name, outcome)
	}

	_, outcome = tables.Method("")
	if outcome != Absent {
		t.Errorf("Expected absent method, got %s", outcome)
	}
}

func TestNewWithExtraEntries(t *testing.T) {
	tables := New(&Tables{
		Observers: map[string]string{"Иванов И.И.": "Ivanov I.I."},
		Telescopes: map[string]Telescope{
			"Малый Шмидт": {Name: "Schmidt telescope (small camera)", FocalLength: 171},
		},
	})

	if name, outcome := tables.Observer("Иванов И.И."); name != "Ivanov I.I." || outcome != Found {
		t.Errorf("Extra observer not found: %q %s", name, outcome)
	}
	if tel, _ := tables.Telescope("Малый Шмидт"); tel.FocalLength != 171 {
		t.Errorf("Expected override focal length 171, got %v", tel.FocalLength)
	}
	if _, outcome := tables.Observer("Гаврилов"); outcome != Found {
		t.Error("Built-in observers must survive extension")
	}

	if tel, _ := Default().Telescope("Малый Шмидт"); tel.FocalLength != 170 {
		t.Error("Extending tables must not change the built-in defaults")
	}
}
