package taskparse

import (
	"strings"
	"unicode"
)

// normalizeSpace collapses whitespace runs to single spaces and trims.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// normalizeStatement prepares raw input for parsing: whitespace is collapsed
// and one trailing period or semicolon is dropped.
func normalizeStatement(s string) string {
	s = normalizeSpace(s)
	if n := len(s); n > 0 && (s[n-1] == '.' || s[n-1] == ';') {
		s = strings.TrimSpace(s[:n-1])
	}
	return s
}

// trimPunct drops sentence punctuation from the edges of a field. Internal
// characters, slashes and hyphens included, are left alone.
func trimPunct(s string) string {
	return strings.Trim(s, ".,;:()")
}

// isCapitalized reports whether the first rune of s is upper case.
func isCapitalized(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

// isGerund reports whether w looks like a gerund or participle form.
// Short words such as "sing" or "bring" do not qualify.
func isGerund(w string) bool {
	return len(w) >= 6 && strings.HasSuffix(strings.ToLower(w), "ing")
}

// pascalWord upper-cases the first letter of each alphanumeric run in w and
// joins the runs into a PascalCase identifier fragment. A trailing possessive
// is dropped. Words with no letters or digits yield "".
func pascalWord(w string) string {
	w = strings.TrimSuffix(w, "'s")
	w = strings.TrimSuffix(w, "’s")
	var b strings.Builder
	start := true
	for _, r := range w {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			start = true
			continue
		}
		if start {
			b.WriteRune(unicode.ToUpper(r))
			start = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// pascalWords concatenates the PascalCase fragments of words, skipping any
// that reduce to "".
func pascalWords(words []string) string {
	var b strings.Builder
	for _, w := range words {
		b.WriteString(pascalWord(w))
	}
	return b.String()
}

// joinNonEmpty joins parts with single spaces, skipping empty strings.
func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
