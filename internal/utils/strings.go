package utils

import (
	"strings"
)

// TrimOrEmpty trims ids, references and notes typed at the front desk.
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace folds guest names and room numbers to single-spaced text.
// Non-breaking spaces pasted from spreadsheets count as whitespace.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitList reads list-valued settings such as CORS_ALLOWED_ORIGINS.
// Entries may be separated by commas, semicolons or newlines; blanks and repeats are dropped.
func SplitList(raw string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, p := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	}) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
