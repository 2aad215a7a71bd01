// Package g2p converts orthographic text into phoneme token sequences
// using ordered, context-sensitive rewrite rules.
package g2p

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/dgnsrekt/vocalize/speech/phoneme"
)

// Stress marks the stress level of a phoneme token.
type Stress int

const (
	// StressNone is an unstressed phoneme.
	StressNone Stress = iota
	// StressSecondary marks secondary stress.
	StressSecondary
	// StressPrimary marks primary stress.
	StressPrimary
)

// Break durations inserted for punctuation, in milliseconds.
const (
	// WordBreakMS separates words.
	WordBreakMS = 60
	// CommaBreakMS follows commas and other phrase punctuation.
	CommaBreakMS = 60
	// SentenceBreakMS follows sentence-final punctuation.
	SentenceBreakMS = 250
)

// Token is one phoneme emitted by conversion. Silence tokens use the
// inventory's silence symbol and carry a break duration; sentence-final
// silences also carry the punctuation rune that produced them.
type Token struct {
	// Key is the ASCII phoneme symbol.
	Key string
	// Stress is the stress level (non-silence tokens only).
	Stress Stress
	// BreakMS is the pause length for silence tokens.
	BreakMS int
	// Punct is the sentence punctuation behind a silence token
	// ('.', '!', '?'), or 0.
	Punct rune
}

// Silent reports whether the token is a pause.
func (t Token) Silent() bool {
	return t.Key == phoneme.SilenceSymbol
}

// SentenceEnd reports whether the token closes a sentence.
func (t Token) SentenceEnd() bool {
	return t.Punct == '.' || t.Punct == '!' || t.Punct == '?'
}

// rule rewrites a grapheme window into zero or more phonemes. Rules
// with higher priority win; ties break toward the longer pattern.
type rule struct {
	pattern  string
	left     string // "" any, "^" word start
	right    string // "" any, "$" word end, "e$" letter e then end, "[..]" next letter in set
	phonemes []string
	priority int
}

// Converter is a per-language grapheme-to-phoneme converter. It is
// immutable after construction and safe for concurrent readers.
type Converter struct {
	language   string
	inventory  *phoneme.Inventory
	rules      map[rune][]rule
	exceptions map[string][]string
	digits     [10]string
	// stressFinal decides final-syllable stress for words ending in
	// a consonant (Spanish rule; English always falls back to the
	// penult).
	stressFinal bool
}

// Language returns the converter's language code.
func (c *Converter) Language() string {
	return c.language
}

// Inventory returns the phoneme inventory backing this converter.
func (c *Converter) Inventory() *phoneme.Inventory {
	return c.inventory
}

func (c *Converter) addRule(pattern, left, right string, out []string, priority int) {
	r := rule{pattern: pattern, left: left, right: right, phonemes: out, priority: priority}
	key := []rune(pattern)[0]
	rules := append(c.rules[key], r)
	// Keep rules ordered by priority, then pattern length, so matching
	// can take the first hit.
	for i := len(rules) - 1; i > 0; i-- {
		a, b := rules[i-1], rules[i]
		if b.priority > a.priority ||
			(b.priority == a.priority && len(b.pattern) > len(a.pattern)) {
			rules[i-1], rules[i] = b, a
		} else {
			break
		}
	}
	c.rules[key] = rules
}

// Convert turns text into a phoneme token sequence. Punctuation becomes
// silence tokens; everything the language cannot map is skipped. An
// input that normalizes to nothing yields an empty (non-nil is not
// guaranteed) sequence.
func (c *Converter) Convert(text string) []Token {
	var tokens []Token
	wordOpen := false

	flushWord := func(word []rune) {
		if len(word) == 0 {
			return
		}
		keys := c.convertWord(string(word))
		if len(keys) == 0 {
			return
		}
		if wordOpen {
			tokens = append(tokens, Token{Key: phoneme.SilenceSymbol, BreakMS: WordBreakMS})
		}
		tokens = append(tokens, c.stressWord(string(word), keys)...)
		wordOpen = true
	}

	appendBreak := func(ms int, punct rune) {
		// Merge with a pending word gap rather than stacking pauses.
		if n := len(tokens); n > 0 && tokens[n-1].Silent() && tokens[n-1].Punct == 0 {
			tokens = tokens[:n-1]
		}
		if n := len(tokens); n == 0 || (tokens[n-1].Silent() && tokens[n-1].Punct != 0) {
			return
		}
		tokens = append(tokens, Token{Key: phoneme.SilenceSymbol, BreakMS: ms, Punct: punct})
		wordOpen = false
	}

	var word []rune
	for _, r := range c.normalize(text) {
		switch {
		case unicode.IsLetter(r) || r == '\'':
			word = append(word, r)
		case unicode.IsSpace(r):
			flushWord(word)
			word = word[:0]
		case r == ',' || r == ';' || r == ':':
			flushWord(word)
			word = word[:0]
			appendBreak(CommaBreakMS, 0)
		case r == '.' || r == '!' || r == '?':
			flushWord(word)
			word = word[:0]
			appendBreak(SentenceBreakMS, r)
		}
	}
	flushWord(word)
	return tokens
}

// normalize lowercases, applies Unicode NFC, spells out digits as
// words, and drops everything except letters, digits, apostrophes,
// whitespace and punctuation markers.
func (c *Converter) normalize(text string) string {
	text = norm.NFC.String(strings.ToLower(text))
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsDigit(r):
			// Each digit is spoken as its own word.
			b.WriteByte(' ')
			b.WriteString(c.digits[r-'0'])
			b.WriteByte(' ')
		case unicode.IsLetter(r) || r == '\'' || unicode.IsSpace(r):
			b.WriteRune(r)
		case r == ',' || r == ';' || r == ':' || r == '.' || r == '!' || r == '?':
			b.WriteRune(r)
		case r == '¿' || r == '¡':
			// Inverted marks open a sentence; the closing mark carries
			// the pause.
		}
	}
	return b.String()
}

// convertWord maps a single word to phoneme keys using the exception
// lexicon first, then the rewrite rules.
func (c *Converter) convertWord(word string) []string {
	word = strings.ReplaceAll(word, "'", "")
	if word == "" {
		return nil
	}
	if keys, ok := c.exceptions[word]; ok {
		out := make([]string, len(keys))
		copy(out, keys)
		return out
	}

	runes := []rune(word)
	var out []string
	for i := 0; i < len(runes); {
		matched := false
		for _, r := range c.rules[runes[i]] {
			pat := []rune(r.pattern)
			if !runesHavePrefix(runes[i:], pat) {
				continue
			}
			if !matchLeft(r.left, i) || !matchRight(r.right, runes, i+len(pat)) {
				continue
			}
			out = append(out, r.phonemes...)
			i += len(pat)
			matched = true
			break
		}
		if !matched {
			i++
		}
	}
	return out
}

func runesHavePrefix(s, prefix []rune) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}

func matchLeft(ctx string, pos int) bool {
	switch ctx {
	case "":
		return true
	case "^":
		return pos == 0
	default:
		return true
	}
}

func matchRight(ctx string, runes []rune, after int) bool {
	switch {
	case ctx == "":
		return true
	case ctx == "$":
		return after >= len(runes)
	case strings.HasSuffix(ctx, "$") && len(ctx) == 2:
		// A single literal letter followed by end of word.
		return after == len(runes)-1 && runes[after] == rune(ctx[0])
	case strings.HasPrefix(ctx, "[") && strings.HasSuffix(ctx, "]"):
		if after >= len(runes) {
			return false
		}
		return strings.ContainsRune(ctx[1:len(ctx)-1], runes[after])
	default:
		return true
	}
}

// stressWord assigns lexical stress over a word's phoneme keys:
// monosyllables stress their vowel; longer words take the penult,
// except Spanish words ending in a consonant other than n/s, which
// stress the final syllable.
func (c *Converter) stressWord(word string, keys []string) []Token {
	tokens := make([]Token, len(keys))
	var vowels []int
	for i, k := range keys {
		tokens[i] = Token{Key: k}
		if p, ok := c.inventory.Get(k); ok && (p.Class == phoneme.Vowel || p.Class == phoneme.Diphthong) {
			vowels = append(vowels, i)
		}
	}
	if len(vowels) == 0 {
		return tokens
	}

	idx := vowels[0]
	if len(vowels) > 1 {
		idx = vowels[len(vowels)-2]
		if c.stressFinal {
			last, _ := utf8Last(word)
			if !strings.ContainsRune("aeiouáéíóúns", last) {
				idx = vowels[len(vowels)-1]
			}
		}
	}
	tokens[idx].Stress = StressPrimary
	return tokens
}

func utf8Last(s string) (rune, bool) {
	var last rune
	found := false
	for _, r := range s {
		last = r
		found = true
	}
	return last, found
}
