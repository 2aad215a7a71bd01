package phoneme

func formants(f1, f2, f3 float64) *Formants {
	f := NewFormants(f1, f2, f3)
	return &f
}

// English returns the General American English inventory. The core
// vowel formant values (i, E, A, O, u) follow the classic reference
// measurements for adult speakers.
func English() *Inventory {
	return build("en", []Phoneme{
		// Monophthongs.
		{ASCII: "i", IPA: "iː", Class: Vowel, Voiced: true, DurationMS: vowelMS, Formants: formants(270, 2290, 3010)},
		{ASCII: "I", IPA: "ɪ", Class: Vowel, Voiced: true, DurationMS: vowelMS, Formants: formants(390, 1990, 2550)},
		{ASCII: "E", IPA: "ɛ", Class: Vowel, Voiced: true, DurationMS: vowelMS, Formants: formants(610, 1900, 2530)},
		{ASCII: "&", IPA: "æ", Class: Vowel, Voiced: true, DurationMS: vowelMS, Formants: formants(660, 1720, 2410)},
		{ASCII: "A", IPA: "ɑː", Class: Vowel, Voiced: true, DurationMS: vowelMS, Formants: formants(730, 1090, 2440)},
		{ASCII: "O", IPA: "ɔː", Class: Vowel, Voiced: true, DurationMS: vowelMS, Formants: formants(570, 840, 2410)},
		{ASCII: "U", IPA: "ʊ", Class: Vowel, Voiced: true, DurationMS: vowelMS, Formants: formants(440, 1020, 2240)},
		{ASCII: "u", IPA: "uː", Class: Vowel, Voiced: true, DurationMS: vowelMS, Formants: formants(300, 870, 2240)},
		{ASCII: "@", IPA: "ə", Class: Vowel, Voiced: true, DurationMS: vowelMS, Formants: formants(500, 1500, 2500)},
		{ASCII: "3", IPA: "ɜː", Class: Vowel, Voiced: true, DurationMS: vowelMS, Formants: formants(580, 1380, 2530)},
		{ASCII: "V", IPA: "ʌ", Class: Vowel, Voiced: true, DurationMS: vowelMS, Formants: formants(640, 1190, 2390)},

		// Diphthongs glide from Formants to Glide across the segment.
		{ASCII: "e", IPA: "eɪ", Class: Diphthong, Voiced: true, DurationMS: diphthongMS, Formants: formants(530, 1840, 2480), Glide: formants(390, 1990, 2550)},
		{ASCII: "o", IPA: "oʊ", Class: Diphthong, Voiced: true, DurationMS: diphthongMS, Formants: formants(450, 1030, 2380), Glide: formants(440, 1020, 2240)},
		{ASCII: "aI", IPA: "aɪ", Class: Diphthong, Voiced: true, DurationMS: diphthongMS, Formants: formants(700, 1200, 2600), Glide: formants(390, 1990, 2550)},
		{ASCII: "aU", IPA: "aʊ", Class: Diphthong, Voiced: true, DurationMS: diphthongMS, Formants: formants(700, 1000, 2400), Glide: formants(440, 1020, 2240)},
		{ASCII: "OI", IPA: "ɔɪ", Class: Diphthong, Voiced: true, DurationMS: diphthongMS, Formants: formants(570, 1000, 2500), Glide: formants(390, 1990, 2550)},

		// Stops.
		{ASCII: "p", IPA: "p", Class: Stop, Voiced: false, DurationMS: stopMS, BurstHz: 800},
		{ASCII: "b", IPA: "b", Class: Stop, Voiced: true, DurationMS: stopMS, BurstHz: 800},
		{ASCII: "t", IPA: "t", Class: Stop, Voiced: false, DurationMS: stopMS, BurstHz: 4000},
		{ASCII: "d", IPA: "d", Class: Stop, Voiced: true, DurationMS: stopMS, BurstHz: 4000},
		{ASCII: "k", IPA: "k", Class: Stop, Voiced: false, DurationMS: stopMS, BurstHz: 1800},
		{ASCII: "g", IPA: "g", Class: Stop, Voiced: true, DurationMS: stopMS, BurstHz: 1800},

		// Fricatives.
		{ASCII: "f", IPA: "f", Class: Fricative, Voiced: false, DurationMS: fricativeMS, CutoffHz: 4000},
		{ASCII: "v", IPA: "v", Class: Fricative, Voiced: true, DurationMS: fricativeMS, CutoffHz: 3500},
		{ASCII: "T", IPA: "θ", Class: Fricative, Voiced: false, DurationMS: fricativeMS, CutoffHz: 5000},
		{ASCII: "D", IPA: "ð", Class: Fricative, Voiced: true, DurationMS: fricativeMS, CutoffHz: 4500},
		{ASCII: "s", IPA: "s", Class: Fricative, Voiced: false, DurationMS: fricativeMS, CutoffHz: 4500, ResonanceHz: 6500},
		{ASCII: "z", IPA: "z", Class: Fricative, Voiced: true, DurationMS: fricativeMS, CutoffHz: 4500, ResonanceHz: 6500},
		{ASCII: "S", IPA: "ʃ", Class: Fricative, Voiced: false, DurationMS: fricativeMS, CutoffHz: 2000, ResonanceHz: 2600},
		{ASCII: "Z", IPA: "ʒ", Class: Fricative, Voiced: true, DurationMS: fricativeMS, CutoffHz: 2000, ResonanceHz: 2600},
		{ASCII: "h", IPA: "h", Class: Fricative, Voiced: false, DurationMS: fricativeMS, CutoffHz: 500, ResonanceHz: 1500},

		// Affricates.
		{ASCII: "tS", IPA: "tʃ", Class: Affricate, Voiced: false, DurationMS: affricateMS, BurstHz: 2600, CutoffHz: 2000, ResonanceHz: 2600},
		{ASCII: "dZ", IPA: "dʒ", Class: Affricate, Voiced: true, DurationMS: affricateMS, BurstHz: 2600, CutoffHz: 2000, ResonanceHz: 2600},

		// Nasals.
		{ASCII: "m", IPA: "m", Class: Nasal, Voiced: true, DurationMS: nasalMS, Formants: formants(300, 1000, 2500)},
		{ASCII: "n", IPA: "n", Class: Nasal, Voiced: true, DurationMS: nasalMS, Formants: formants(300, 1500, 2500)},
		{ASCII: "N", IPA: "ŋ", Class: Nasal, Voiced: true, DurationMS: nasalMS, Formants: formants(300, 2000, 2500)},

		// Liquids.
		{ASCII: "l", IPA: "l", Class: Liquid, Voiced: true, DurationMS: liquidMS, Formants: formants(350, 1100, 2700)},
		{ASCII: "r", IPA: "ɹ", Class: Liquid, Voiced: true, DurationMS: liquidMS, Formants: formants(350, 1300, 1700)},

		// Glides.
		{ASCII: "w", IPA: "w", Class: Glide, Voiced: true, DurationMS: glideMS, Formants: formants(300, 700, 2400)},
		{ASCII: "j", IPA: "j", Class: Glide, Voiced: true, DurationMS: glideMS, Formants: formants(280, 2300, 3000)},

		{ASCII: SilenceSymbol, IPA: "", Class: Silence, Voiced: false, DurationMS: silenceMS},
	})
}
