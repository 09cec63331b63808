package common

import (
	"strings"
	"unicode/utf8"

	"charm.land/lipgloss/v2"
)

// MatchSpan locates the first case-insensitive occurrence of query in s and
// returns its byte offsets, or (-1, -1).
func MatchSpan(s, query string) (start, end int) {
	if query == "" {
		return -1, -1
	}
	// Lowering can change byte lengths, so walk rune boundaries in s and
	// compare folded prefixes.
	q := strings.ToLower(query)
	for i := 0; i < len(s); {
		if j, ok := foldedPrefix(s[i:], q); ok {
			return i, i + j
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return -1, -1
}

// foldedPrefix reports whether s starts with lowered q, returning the byte
// length of the matched prefix of s.
func foldedPrefix(s, q string) (int, bool) {
	i := 0
	for _, qr := range q {
		if i >= len(s) {
			return 0, false
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if strings.ToLower(string(r)) != string(qr) {
			return 0, false
		}
		i += size
	}
	return i, true
}

// Highlight renders s with base, marking the first match of query with hl.
// s is plain text; width handling is the caller's job.
func Highlight(s, query string, base, hl lipgloss.Style) string {
	start, end := MatchSpan(s, query)
	if start < 0 {
		return base.Render(s)
	}
	var b strings.Builder
	if start > 0 {
		b.WriteString(base.Render(s[:start]))
	}
	b.WriteString(hl.Render(s[start:end]))
	if end < len(s) {
		b.WriteString(base.Render(s[end:]))
	}
	return b.String()
}
