package phoneme

// Spanish returns the Castilian Spanish inventory: the five-vowel
// system plus the documented consonant set, including the palatals
// J (ɲ) and L (ʎ) and the tap/trill rhotic pair.
func Spanish() *Inventory {
	return build("es", []Phoneme{
		// Vowels.
		{ASCII: "a", IPA: "a", Class: Vowel, Voiced: true, DurationMS: vowelMS, Formants: formants(750, 1200, 2600)},
		{ASCII: "e", IPA: "e", Class: Vowel, Voiced: true, DurationMS: vowelMS, Formants: formants(450, 1900, 2500)},
		{ASCII: "i", IPA: "i", Class: Vowel, Voiced: true, DurationMS: vowelMS, Formants: formants(270, 2300, 3000)},
		{ASCII: "o", IPA: "o", Class: Vowel, Voiced: true, DurationMS: vowelMS, Formants: formants(500, 900, 2500)},
		{ASCII: "u", IPA: "u", Class: Vowel, Voiced: true, DurationMS: vowelMS, Formants: formants(300, 800, 2300)},

		// Stops.
		{ASCII: "p", IPA: "p", Class: Stop, Voiced: false, DurationMS: stopMS, BurstHz: 800},
		{ASCII: "b", IPA: "b", Class: Stop, Voiced: true, DurationMS: stopMS, BurstHz: 800},
		{ASCII: "t", IPA: "t", Class: Stop, Voiced: false, DurationMS: stopMS, BurstHz: 4000},
		{ASCII: "d", IPA: "d", Class: Stop, Voiced: true, DurationMS: stopMS, BurstHz: 4000},
		{ASCII: "k", IPA: "k", Class: Stop, Voiced: false, DurationMS: stopMS, BurstHz: 1800},
		{ASCII: "g", IPA: "g", Class: Stop, Voiced: true, DurationMS: stopMS, BurstHz: 1800},

		// Fricatives.
		{ASCII: "f", IPA: "f", Class: Fricative, Voiced: false, DurationMS: fricativeMS, CutoffHz: 4000},
		{ASCII: "s", IPA: "s", Class: Fricative, Voiced: false, DurationMS: fricativeMS, CutoffHz: 4500, ResonanceHz: 6500},
		{ASCII: "x", IPA: "x", Class: Fricative, Voiced: false, DurationMS: fricativeMS, CutoffHz: 1000, ResonanceHz: 1800},
		{ASCII: "T", IPA: "θ", Class: Fricative, Voiced: false, DurationMS: fricativeMS, CutoffHz: 5000},

		// Affricate.
		{ASCII: "tS", IPA: "tʃ", Class: Affricate, Voiced: false, DurationMS: affricateMS, BurstHz: 2600, CutoffHz: 2000, ResonanceHz: 2600},

		// Nasals.
		{ASCII: "m", IPA: "m", Class: Nasal, Voiced: true, DurationMS: nasalMS, Formants: formants(300, 1000, 2500)},
		{ASCII: "n", IPA: "n", Class: Nasal, Voiced: true, DurationMS: nasalMS, Formants: formants(300, 1500, 2500)},
		{ASCII: "J", IPA: "ɲ", Class: Nasal, Voiced: true, DurationMS: nasalMS, Formants: formants(300, 1900, 2700)},

		// Liquids. The tap is short; the trill runs long.
		{ASCII: "l", IPA: "l", Class: Liquid, Voiced: true, DurationMS: liquidMS, Formants: formants(350, 1100, 2700)},
		{ASCII: "L", IPA: "ʎ", Class: Liquid, Voiced: true, DurationMS: liquidMS, Formants: formants(300, 1900, 2700)},
		{ASCII: "r", IPA: "ɾ", Class: Liquid, Voiced: true, DurationMS: 40, Formants: formants(400, 1400, 2200)},
		{ASCII: "rr", IPA: "r", Class: Liquid, Voiced: true, DurationMS: 120, Formants: formants(400, 1400, 2200)},

		// Glides.
		{ASCII: "j", IPA: "j", Class: Glide, Voiced: true, DurationMS: glideMS, Formants: formants(280, 2300, 3000)},
		{ASCII: "w", IPA: "w", Class: Glide, Voiced: true, DurationMS: glideMS, Formants: formants(300, 700, 2400)},

		{ASCII: SilenceSymbol, IPA: "", Class: Silence, Voiced: false, DurationMS: silenceMS},
	})
}
