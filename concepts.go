package taskparse

import "strings"

// NormalizeConcepts rewrites known multi-word concept phrases into their
// canonical single-token ids ("information technology" becomes
// "InformationTechnology"). Matching slides over the words, trying longer
// phrases first; trailing punctuation on the last matched word survives the
// rewrite. The rewrite is idempotent.
func (lex *Lexicon) NormalizeConcepts(text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	concepts := lex.sortedConcepts()
	out := make([]string, 0, len(words))
	for i := 0; i < len(words); {
		c, tail := matchConcept(concepts, words[i:])
		if c == nil {
			out = append(out, words[i])
			i++
			continue
		}
		out = append(out, c.ID+tail)
		i += len(c.words)
	}
	return strings.Join(out, " ")
}

// matchConcept tries every concept against the head of window, returning
// the first match plus the trailing punctuation carried by the last matched
// word. Words before the last must match exactly, so a comma inside the
// window blocks the phrase.
func matchConcept(concepts []*ConceptEntry, window []string) (*ConceptEntry, string) {
	for _, c := range concepts {
		n := len(c.words)
		if n == 0 || n > len(window) {
			continue
		}
		ok := true
		for k := 0; k < n-1; k++ {
			if !strings.EqualFold(window[k], c.words[k]) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		last := window[n-1]
		trimmed := strings.TrimRight(last, ".,;:)")
		if !strings.EqualFold(trimmed, c.words[n-1]) {
			continue
		}
		return c, last[len(trimmed):]
	}
	return nil, ""
}
