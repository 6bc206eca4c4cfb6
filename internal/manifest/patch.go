package manifest

import (
	"regexp"
	"strings"
)

// Patch replaces the first quoted value of the named field with newValue,
// leaving the key, colon and surrounding whitespace untouched. It reports
// whether a replacement occurred. An empty newValue is a no-op: an absent
// translation must never blank out an existing field. Patching is
// idempotent, so applying the same value twice yields identical text.
func Patch(text, field, newValue string) (string, bool) {
	if newValue == "" {
		return text, false
	}

	loc := fieldValuePattern(field).FindStringSubmatchIndex(text)
	if loc == nil {
		return text, false
	}

	// loc[2]:loc[3] is the span of the current value between the quotes.
	return text[:loc[2]] + escapeValue(newValue) + text[loc[3]:], true
}

// The value span tolerates escaped quotes so that a previously patched
// value is matched in full; without this, re-patching a value containing
// a quote would stop at the first backslash-escaped quote and corrupt the
// document instead of being idempotent.
func fieldValuePattern(field string) *regexp.Regexp {
	return regexp.MustCompile(`"` + regexp.QuoteMeta(field) + `"\s*:\s*"((?:[^"\\]|\\.)*)"`)
}

// escapeValue doubles backslashes before escaping quotes; the other order
// would re-escape the backslashes the quote step just inserted.
func escapeValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, `"`, `\"`)
}
