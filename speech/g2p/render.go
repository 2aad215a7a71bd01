package g2p

import "strings"

// RenderASCII joins a token sequence into the internal space-separated
// phoneme notation. Silences render as the silence symbol.
func (c *Converter) RenderASCII(tokens []Token) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		parts = append(parts, t.Key)
	}
	return strings.Join(parts, " ")
}

// RenderIPA renders a token sequence using the inventory's IPA
// spellings. Each ASCII symbol has exactly one IPA rendering; silences
// become word spaces.
func (c *Converter) RenderIPA(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.Silent() {
			b.WriteByte(' ')
			continue
		}
		if p, ok := c.inventory.Get(t.Key); ok {
			b.WriteString(p.IPA)
		} else {
			b.WriteString(t.Key)
		}
	}
	return strings.TrimSpace(b.String())
}
