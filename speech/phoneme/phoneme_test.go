package phoneme

import "testing"

// TestCoreVowelFormants pins the reference formant table. These five
// rows are load-bearing: other vowels interpolate around them.
func TestCoreVowelFormants(t *testing.T) {
	inv := English()
	tests := []struct {
		symbol     string
		f1, f2, f3 float64
	}{
		{"i", 270, 2290, 3010},
		{"E", 610, 1900, 2530},
		{"A", 730, 1090, 2440},
		{"O", 570, 840, 2410},
		{"u", 300, 870, 2240},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			p, ok := inv.Get(tt.symbol)
			if !ok {
				t.Fatalf("phoneme %q missing from English inventory", tt.symbol)
			}
			if p.Formants == nil {
				t.Fatalf("phoneme %q has no formants", tt.symbol)
			}
			f := p.Formants
			if f.F1 != tt.f1 || f.F2 != tt.f2 || f.F3 != tt.f3 {
				t.Errorf("formants(%q) = (%v, %v, %v), want (%v, %v, %v)",
					tt.symbol, f.F1, f.F2, f.F3, tt.f1, tt.f2, tt.f3)
			}
		})
	}
}

func TestDefaultBandwidths(t *testing.T) {
	f := NewFormants(500, 1500, 2500)
	if f.B1 != 60 || f.B2 != 90 || f.B3 != 150 {
		t.Errorf("default bandwidths = (%v, %v, %v), want (60, 90, 150)", f.B1, f.B2, f.B3)
	}
}

func TestEnglishInventory(t *testing.T) {
	inv := English()
	if inv.Language() != "en" {
		t.Errorf("Language() = %q, want en", inv.Language())
	}
	if inv.Len() == 0 {
		t.Fatal("English inventory is empty")
	}

	// Every diphthong carries a second target.
	inv.All(func(p *Phoneme) {
		if p.Class == Diphthong && p.Glide == nil {
			t.Errorf("diphthong %q has no glide target", p.ASCII)
		}
		if p.Sonorant() && p.Formants == nil {
			t.Errorf("sonorant %q has no formants", p.ASCII)
		}
	})

	if _, ok := inv.Get(SilenceSymbol); !ok {
		t.Error("silence symbol missing from inventory")
	}
}

func TestSpanishInventory(t *testing.T) {
	inv := Spanish()
	if inv.Language() != "es" {
		t.Errorf("Language() = %q, want es", inv.Language())
	}

	for _, symbol := range []string{"a", "e", "i", "o", "u", "J", "L", "r", "rr", "tS", "x"} {
		if _, ok := inv.Get(symbol); !ok {
			t.Errorf("phoneme %q missing from Spanish inventory", symbol)
		}
	}

	tap, _ := inv.Get("r")
	trill, _ := inv.Get("rr")
	if tap.DurationMS >= trill.DurationMS {
		t.Errorf("tap duration %d should be shorter than trill %d", tap.DurationMS, trill.DurationMS)
	}
}

func TestIPAUniqueness(t *testing.T) {
	for _, inv := range []*Inventory{English(), Spanish()} {
		seen := map[string]string{}
		inv.All(func(p *Phoneme) {
			if p.Class == Silence {
				return
			}
			if prior, dup := seen[p.IPA]; dup {
				t.Errorf("%s: IPA %q shared by %q and %q", inv.Language(), p.IPA, prior, p.ASCII)
			}
			seen[p.IPA] = p.ASCII
		})
	}
}

func TestLerp(t *testing.T) {
	a := NewFormants(200, 1000, 2000)
	b := NewFormants(400, 2000, 3000)

	mid := Lerp(a, b, 0.5)
	if mid.F1 != 300 || mid.F2 != 1500 || mid.F3 != 2500 {
		t.Errorf("Lerp midpoint = (%v, %v, %v), want (300, 1500, 2500)", mid.F1, mid.F2, mid.F3)
	}

	if got := Lerp(a, b, -1); got != a {
		t.Errorf("Lerp clamps below: got %+v, want %+v", got, a)
	}
	if got := Lerp(a, b, 2); got != b {
		t.Errorf("Lerp clamps above: got %+v, want %+v", got, b)
	}
}

func TestClassString(t *testing.T) {
	tests := []struct {
		class Class
		want  string
	}{
		{Vowel, "vowel"},
		{Diphthong, "diphthong"},
		{Stop, "stop"},
		{Fricative, "fricative"},
		{Affricate, "affricate"},
		{Nasal, "nasal"},
		{Liquid, "liquid"},
		{Glide, "glide"},
		{Silence, "silence"},
		{Class(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.class.String(); got != tt.want {
			t.Errorf("Class(%d).String() = %q, want %q", tt.class, got, tt.want)
		}
	}
}
