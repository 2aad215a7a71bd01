package g2p

import (
	"strings"
	"testing"

	"github.com/dgnsrekt/vocalize/speech/phoneme"
)

func keys(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Key
	}
	return out
}

func TestEnglishWords(t *testing.T) {
	conv := English()
	tests := []struct {
		word string
		want string
	}{
		{"the", "D @"},
		{"hello", "h E l o"},
		{"world", "w 3 r l d"},
		{"chip", "tS I p"},
		{"sing", "s I N"},
		{"night", "n I t"},
		{"quick", "k w I k"},
		{"tie", "t aI"},
		{"see", "s i"},
		{"out", "aU t"},
		{"boy", "b OI"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got := strings.Join(keys(conv.Convert(tt.word)), " ")
			if got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestSpanishWords(t *testing.T) {
	conv := Spanish()
	tests := []struct {
		word string
		want string
	}{
		{"aeiou", "a e i o u"},
		{"hola", "o l a"},
		{"perro", "p e rr o"},
		{"rosa", "rr o s a"}, // initial r trills
		{"chile", "tS i l e"},
		{"llama", "L a m a"},
		{"queso", "k e s o"},
		{"gente", "x e n t e"},
		{"cielo", "T i e l o"},
		{"vaca", "b a k a"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got := strings.Join(keys(conv.Convert(tt.word)), " ")
			if got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestSpanishEnye(t *testing.T) {
	conv := Spanish()
	got := keys(conv.Convert("ñame"))
	if strings.Join(got, " ") != "J a m e" {
		t.Errorf("Convert(ñame) = %v, want [J a m e]", got)
	}
}

func TestEmptyAndUnmappable(t *testing.T) {
	conv := English()
	for _, input := range []string{"", "   ", "%%%%", "\t\n"} {
		if tokens := conv.Convert(input); len(tokens) != 0 {
			t.Errorf("Convert(%q) = %v, want no tokens", input, tokens)
		}
	}
}

func TestPunctuationBreaks(t *testing.T) {
	conv := English()
	tokens := conv.Convert("hello, world!")

	var breaks []Token
	for _, tok := range tokens {
		if tok.Silent() {
			breaks = append(breaks, tok)
		}
	}
	if len(breaks) != 2 {
		t.Fatalf("got %d breaks, want 2: %v", len(breaks), tokens)
	}
	if breaks[0].BreakMS != CommaBreakMS || breaks[0].Punct != 0 {
		t.Errorf("comma break = %+v, want %dms, no punct", breaks[0], CommaBreakMS)
	}
	if breaks[1].BreakMS != SentenceBreakMS || breaks[1].Punct != '!' {
		t.Errorf("sentence break = %+v, want %dms with '!'", breaks[1], SentenceBreakMS)
	}
	if !breaks[1].SentenceEnd() {
		t.Error("sentence break not marked as sentence end")
	}
}

func TestWordGap(t *testing.T) {
	conv := English()
	tokens := conv.Convert("go on")
	gap := -1
	for i, tok := range tokens {
		if tok.Silent() {
			gap = i
		}
	}
	if gap <= 0 || gap == len(tokens)-1 {
		t.Fatalf("expected an interior word gap, got %v", tokens)
	}
	if tokens[gap].BreakMS != WordBreakMS {
		t.Errorf("word gap = %dms, want %dms", tokens[gap].BreakMS, WordBreakMS)
	}
}

func TestNoLeadingOrDoubledBreaks(t *testing.T) {
	conv := English()
	tests := []string{". hello", "hi!! there", "a,, b", "...", "hello."}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			tokens := conv.Convert(input)
			if len(tokens) > 0 && tokens[0].Silent() {
				t.Errorf("leading silence for %q: %v", input, tokens)
			}
			for i := 1; i < len(tokens); i++ {
				if tokens[i].Silent() && tokens[i-1].Silent() {
					t.Errorf("doubled silence for %q: %v", input, tokens)
				}
			}
		})
	}
}

func TestStressAssignment(t *testing.T) {
	en := English()
	es := Spanish()
	tests := []struct {
		name   string
		conv   *Converter
		word   string
		wantAt string // phoneme key carrying primary stress
	}{
		{"monosyllable", en, "chip", "I"},
		{"english penult", en, "hello", "E"},
		{"spanish vowel-final penult", es, "hola", "o"},
		{"spanish consonant-final last", es, "comer", "e"},
		{"spanish n-final penult", es, "comen", "o"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := tt.conv.Convert(tt.word)
			var stressed []string
			for _, tok := range tokens {
				if tok.Stress == StressPrimary {
					stressed = append(stressed, tok.Key)
				}
			}
			if len(stressed) != 1 {
				t.Fatalf("want exactly one primary stress, got %v in %v", stressed, tokens)
			}
			if stressed[0] != tt.wantAt {
				t.Errorf("primary stress on %q, want %q (%v)", stressed[0], tt.wantAt, tokens)
			}
		})
	}
}

// "comer" stresses the final syllable: vowels o, e and the word ends
// in r. "comen" ends in n, so the penult keeps the stress.

func TestDigitsSpelledOut(t *testing.T) {
	en := English()
	got := strings.Join(keys(en.Convert("7")), " ")
	want := strings.Join(keys(en.Convert("seven")), " ")
	if got != want {
		t.Errorf("Convert(7) = %q, want %q", got, want)
	}

	es := Spanish()
	got = strings.Join(keys(es.Convert("2")), " ")
	want = strings.Join(keys(es.Convert("dos")), " ")
	if got != want {
		t.Errorf("Convert(2) = %q, want %q", got, want)
	}
}

func TestApostropheDropped(t *testing.T) {
	conv := English()
	got := strings.Join(keys(conv.Convert("dont")), " ")
	apos := strings.Join(keys(conv.Convert("don't")), " ")
	if got != apos {
		t.Errorf("Convert(don't) = %q, want %q", apos, got)
	}
}

// TestRuleOutputsInInventory checks the inventory contract: every
// phoneme a ruleset can emit resolves in the matching inventory.
func TestRuleOutputsInInventory(t *testing.T) {
	for _, conv := range []*Converter{English(), Spanish()} {
		inv := conv.Inventory()
		for _, rules := range conv.rules {
			for _, r := range rules {
				for _, key := range r.phonemes {
					if _, ok := inv.Get(key); !ok {
						t.Errorf("%s rule %q emits %q, missing from inventory",
							conv.Language(), r.pattern, key)
					}
				}
			}
		}
		for word, ks := range conv.exceptions {
			for _, key := range ks {
				if _, ok := inv.Get(key); !ok {
					t.Errorf("%s exception %q emits %q, missing from inventory",
						conv.Language(), word, key)
				}
			}
		}
	}
}

func TestRenderFormatsDescribeSameTokens(t *testing.T) {
	conv := English()
	tokens := conv.Convert("hello world")

	ascii := conv.RenderASCII(tokens)
	ipa := conv.RenderIPA(tokens)
	if ascii == "" || ipa == "" {
		t.Fatalf("empty rendering: ascii=%q ipa=%q", ascii, ipa)
	}

	// Each non-silence ASCII token maps to exactly one IPA rendering.
	var rebuilt strings.Builder
	for _, tok := range tokens {
		if tok.Silent() {
			rebuilt.WriteByte(' ')
			continue
		}
		p, ok := conv.Inventory().Get(tok.Key)
		if !ok {
			t.Fatalf("token %q not in inventory", tok.Key)
		}
		rebuilt.WriteString(p.IPA)
	}
	if got := strings.TrimSpace(rebuilt.String()); got != ipa {
		t.Errorf("IPA rendering mismatch: %q vs %q", got, ipa)
	}
}

func TestConvertIsDeterministic(t *testing.T) {
	conv := English()
	a := conv.Convert("The quick brown fox jumps over the lazy dog.")
	b := conv.Convert("The quick brown fox jumps over the lazy dog.")
	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("token %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestNormalizeKeepsSilenceSymbolDistinct(t *testing.T) {
	conv := English()
	for _, tok := range conv.Convert("a b. c") {
		if tok.Silent() && tok.Key != phoneme.SilenceSymbol {
			t.Errorf("silent token with unexpected key %q", tok.Key)
		}
	}
}
