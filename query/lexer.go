package query

import "strings"

// Lexer splits a filter query into terms. Terms are separated by
// whitespace, but double-quoted phrases keep their internal spaces, so
// `Title:contains:"login page"` is one term.
type Lexer struct {
	input string
	pos   int
}

// NewLexer creates a new lexer over the query string.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// NextTerm returns the next term and true, or "" and false at the end
// of input. Quotes are preserved in the returned term; the parser
// strips them when it interprets values.
func (l *Lexer) NextTerm() (string, bool) {
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		return "", false
	}

	var term strings.Builder
	inQuotes := false
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == '"' {
			inQuotes = !inQuotes
		}
		if !inQuotes && (ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r') {
			break
		}
		term.WriteByte(ch)
		l.pos++
	}
	return term.String(), true
}

// skipWhitespace advances past whitespace characters.
func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

// SplitTerms returns all terms of the query in order.
func SplitTerms(input string) []string {
	lexer := NewLexer(input)
	var terms []string
	for {
		term, ok := lexer.NextTerm()
		if !ok {
			break
		}
		terms = append(terms, term)
	}
	return terms
}

// SplitValueList splits a comma-separated value list into items,
// protecting commas inside double-quoted segments: the list
// `"In Progress",(empty)` yields two items, not three. Quotes are
// stripped from the returned items and surrounding whitespace trimmed.
func SplitValueList(input string) []string {
	var items []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(input); i++ {
		ch := input[i]
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			if item := strings.TrimSpace(current.String()); item != "" {
				items = append(items, item)
			}
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	if item := strings.TrimSpace(current.String()); item != "" {
		items = append(items, item)
	}
	return items
}

// Unquote strips one pair of surrounding double quotes, if present.
// Interior quotes are left alone.
func Unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
