package domain

import (
	"fmt"
	"strings"
)

// QuoteToken encodes a token so that the tokenizer reads it back unchanged.
// Plain tokens are returned as is; anything else is double quoted with
// escapes.
func QuoteToken(tok string) string {
	if !needsQuoting(tok) {
		return tok
	}
	var b strings.Builder
	b.Grow(len(tok) + 2)
	b.WriteByte('"')
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		switch {
		case c == '\\' || c == '"':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\t':
			b.WriteString(`\t`)
		case c == '\r':
			b.WriteString(`\r`)
		case c < 0x20 || c == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Encode renders the line as the single line of text kept in history. A
// no-op line encodes to the empty string.
func (c CommandLine) Encode() string {
	if c.IsNoop() && len(c) <= 1 {
		return ""
	}
	parts := make([]string, len(c))
	for i, tok := range c {
		parts[i] = QuoteToken(tok)
	}
	return strings.Join(parts, " ")
}

func needsQuoting(tok string) bool {
	if tok == "" {
		return true
	}
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c == ' ' || c == '\t' || c == '\'' || c == '"' || c == '\\' || c < 0x20 || c == 0x7f {
			return true
		}
	}
	return false
}
