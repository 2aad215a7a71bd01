package g2p

import "github.com/dgnsrekt/vocalize/speech/phoneme"

// Spanish returns the Spanish grapheme-to-phoneme converter. Spanish
// orthography is regular enough that no exception lexicon is needed.
func Spanish() *Converter {
	c := &Converter{
		language:    "es",
		inventory:   phoneme.Spanish(),
		rules:       make(map[rune][]rule),
		exceptions:  map[string][]string{},
		stressFinal: true,
		digits: [10]string{
			"cero", "uno", "dos", "tres", "cuatro",
			"cinco", "seis", "siete", "ocho", "nueve",
		},
	}
	loadSpanishRules(c)
	return c
}

func loadSpanishRules(c *Converter) {
	// Digraphs.
	c.addRule("ch", "", "", []string{"tS"}, 20)
	c.addRule("ll", "", "", []string{"L"}, 20)
	c.addRule("rr", "", "", []string{"rr"}, 20)
	c.addRule("qu", "", "[ei]", []string{"k"}, 20)
	c.addRule("gu", "", "[ei]", []string{"g"}, 20)

	// Vowels, including accented forms.
	c.addRule("a", "", "", []string{"a"}, 1)
	c.addRule("e", "", "", []string{"e"}, 1)
	c.addRule("i", "", "", []string{"i"}, 1)
	c.addRule("o", "", "", []string{"o"}, 1)
	c.addRule("u", "", "", []string{"u"}, 1)
	c.addRule("á", "", "", []string{"a"}, 1)
	c.addRule("é", "", "", []string{"e"}, 1)
	c.addRule("í", "", "", []string{"i"}, 1)
	c.addRule("ó", "", "", []string{"o"}, 1)
	c.addRule("ú", "", "", []string{"u"}, 1)
	c.addRule("ü", "", "", []string{"u"}, 1)

	// Soft/hard c and g (ceceo reading for c/z).
	c.addRule("c", "", "[ei]", []string{"T"}, 10)
	c.addRule("c", "", "", []string{"k"}, 1)
	c.addRule("g", "", "[ei]", []string{"x"}, 10)
	c.addRule("g", "", "", []string{"g"}, 1)

	// Single consonants.
	c.addRule("b", "", "", []string{"b"}, 1)
	c.addRule("d", "", "", []string{"d"}, 1)
	c.addRule("f", "", "", []string{"f"}, 1)
	c.addRule("h", "", "", nil, 1) // silent
	c.addRule("j", "", "", []string{"x"}, 1)
	c.addRule("k", "", "", []string{"k"}, 1)
	c.addRule("l", "", "", []string{"l"}, 1)
	c.addRule("m", "", "", []string{"m"}, 1)
	c.addRule("n", "", "", []string{"n"}, 1)
	c.addRule("ñ", "", "", []string{"J"}, 20)
	c.addRule("p", "", "", []string{"p"}, 1)
	c.addRule("r", "^", "", []string{"rr"}, 5) // initial r trills
	c.addRule("r", "", "", []string{"r"}, 1)
	c.addRule("s", "", "", []string{"s"}, 1)
	c.addRule("t", "", "", []string{"t"}, 1)
	c.addRule("v", "", "", []string{"b"}, 1)
	c.addRule("w", "", "", []string{"w"}, 1)
	c.addRule("x", "", "", []string{"k", "s"}, 1)
	c.addRule("y", "", "$", []string{"i"}, 10)
	c.addRule("y", "", "", []string{"j"}, 1)
	c.addRule("z", "", "", []string{"T"}, 1)
}
