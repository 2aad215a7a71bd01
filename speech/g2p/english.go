package g2p

import "github.com/dgnsrekt/vocalize/speech/phoneme"

// English returns the English grapheme-to-phoneme converter.
func English() *Converter {
	c := &Converter{
		language:   "en",
		inventory:  phoneme.English(),
		rules:      make(map[rune][]rule),
		exceptions: englishExceptions(),
		digits: [10]string{
			"zero", "one", "two", "three", "four",
			"five", "six", "seven", "eight", "nine",
		},
	}
	loadEnglishRules(c)
	return c
}

func loadEnglishRules(c *Converter) {
	// Digraphs and longer clusters first (priority wins, then length).
	c.addRule("ch", "", "", []string{"tS"}, 20)
	c.addRule("sh", "", "", []string{"S"}, 20)
	c.addRule("th", "", "", []string{"T"}, 15)
	c.addRule("ng", "", "", []string{"N"}, 20)
	c.addRule("ph", "", "", []string{"f"}, 20)
	c.addRule("wh", "", "", []string{"w"}, 15)
	c.addRule("ck", "", "", []string{"k"}, 20)
	c.addRule("ght", "", "", []string{"t"}, 25)
	c.addRule("gh", "", "", nil, 20) // silent
	c.addRule("qu", "", "", []string{"k", "w"}, 15)

	// Vowel teams.
	c.addRule("ea", "", "", []string{"i"}, 15)
	c.addRule("ee", "", "", []string{"i"}, 15)
	c.addRule("oo", "", "", []string{"u"}, 15)
	c.addRule("ou", "", "", []string{"aU"}, 15)
	c.addRule("ow", "", "", []string{"aU"}, 10)
	c.addRule("oi", "", "", []string{"OI"}, 15)
	c.addRule("oy", "", "", []string{"OI"}, 15)
	c.addRule("ai", "", "", []string{"e"}, 15)
	c.addRule("ay", "", "", []string{"e"}, 15)
	c.addRule("au", "", "", []string{"O"}, 15)
	c.addRule("aw", "", "", []string{"O"}, 15)

	// Vowels directly followed by a word-final e ("tie"), then defaults.
	c.addRule("a", "", "e$", []string{"e"}, 10)
	c.addRule("a", "", "", []string{"&"}, 1)
	c.addRule("e", "", "e$", []string{"i"}, 10)
	c.addRule("e", "", "$", nil, 5) // silent final e
	c.addRule("e", "", "", []string{"E"}, 1)
	c.addRule("i", "", "e$", []string{"aI"}, 10)
	c.addRule("i", "", "", []string{"I"}, 1)
	c.addRule("o", "", "e$", []string{"o"}, 10)
	c.addRule("o", "", "", []string{"A"}, 1)
	c.addRule("u", "", "e$", []string{"u"}, 10)
	c.addRule("u", "", "", []string{"V"}, 1)

	// Single consonants.
	c.addRule("b", "", "", []string{"b"}, 1)
	c.addRule("c", "", "[ei]", []string{"s"}, 10)
	c.addRule("c", "", "", []string{"k"}, 1)
	c.addRule("d", "", "", []string{"d"}, 1)
	c.addRule("f", "", "", []string{"f"}, 1)
	c.addRule("g", "", "[ei]", []string{"dZ"}, 8)
	c.addRule("g", "", "", []string{"g"}, 1)
	c.addRule("h", "", "", []string{"h"}, 1)
	c.addRule("j", "", "", []string{"dZ"}, 1)
	c.addRule("k", "", "", []string{"k"}, 1)
	c.addRule("l", "", "", []string{"l"}, 1)
	c.addRule("m", "", "", []string{"m"}, 1)
	c.addRule("n", "", "", []string{"n"}, 1)
	c.addRule("p", "", "", []string{"p"}, 1)
	c.addRule("r", "", "", []string{"r"}, 1)
	c.addRule("s", "", "", []string{"s"}, 1)
	c.addRule("t", "", "", []string{"t"}, 1)
	c.addRule("v", "", "", []string{"v"}, 1)
	c.addRule("w", "", "", []string{"w"}, 1)
	c.addRule("x", "", "", []string{"k", "s"}, 1)
	c.addRule("y", "^", "", []string{"j"}, 10)
	c.addRule("y", "", "", []string{"i"}, 1)
	c.addRule("z", "", "", []string{"z"}, 1)
}

// englishExceptions is a small lexicon of frequent words whose
// spellings defeat the rules.
func englishExceptions() map[string][]string {
	return map[string][]string{
		"the":   {"D", "@"},
		"a":     {"@"},
		"is":    {"I", "z"},
		"are":   {"A", "r"},
		"was":   {"w", "A", "z"},
		"were":  {"w", "3", "r"},
		"have":  {"h", "&", "v"},
		"has":   {"h", "&", "z"},
		"had":   {"h", "&", "d"},
		"do":    {"d", "u"},
		"does":  {"d", "V", "z"},
		"did":   {"d", "I", "d"},
		"to":    {"t", "u"},
		"of":    {"@", "v"},
		"for":   {"f", "O", "r"},
		"with":  {"w", "I", "T"},
		"you":   {"j", "u"},
		"this":  {"D", "I", "s"},
		"that":  {"D", "&", "t"},
		"one":   {"w", "V", "n"},
		"two":   {"t", "u"},
		"hello": {"h", "E", "l", "o"},
		"world": {"w", "3", "r", "l", "d"},
	}
}
