// Package titles expands compound occupational titles into elementary
// titles. Catalog titles pack several occupations into one line through
// slashes, comma lists over a shared head noun, and inverted qualifiers
// ("Engineers, Civil"); Expand unpacks them with heuristics close to, but
// distinct from, the task-statement expander. The package is self-contained
// and consults no lexicon.
package titles

import "strings"

// Expand rewrites a compound occupational title into its elementary titles.
// A title without compound structure comes back unchanged as a single
// element; blank input yields none.
func Expand(title string) []string {
	title = strings.Join(strings.Fields(title), " ")
	if title == "" {
		return nil
	}
	if isAllOther(title) {
		return []string{title}
	}
	if head, except, ok := splitExcept(title); ok {
		var out []string
		for _, alt := range Expand(head) {
			out = append(out, alt+", "+except)
		}
		return out
	}
	if strings.Contains(title, ",") {
		var out []string
		for _, a := range expandComma(title) {
			out = append(out, Expand(a)...)
		}
		return unique(out)
	}
	if alts, ok := expandSlash(title); ok {
		var out []string
		for _, a := range alts {
			out = append(out, Expand(a)...)
		}
		return unique(out)
	}
	if alts, ok := expandConj(strings.Fields(title)); ok {
		return alts
	}
	return []string{title}
}

// isAllOther spots catch-all bucket titles ("Managers, All Other"), which
// never expand.
func isAllOther(title string) bool {
	return strings.HasSuffix(strings.ToLower(title), "all other")
}

// splitExcept cuts an exclusion clause off the title. The clause reattaches
// verbatim to every expansion and its own conjunctions never expand.
func splitExcept(title string) (head, except string, ok bool) {
	i := strings.Index(strings.ToLower(title), ", except ")
	if i < 0 {
		return "", "", false
	}
	return title[:i], title[i+2:], true
}

// expandSlash resolves a slash alternation. A plural word after the slash
// is a parallel head ("Supervisors/Managers of X") and every part shares
// the surrounding words; a non-plural one starts a fresh title that claims
// the trailing words ("Secretaries/Administrative Assistants").
func expandSlash(title string) ([]string, bool) {
	fields := strings.Fields(title)
	at := -1
	for i, f := range fields {
		if strings.Contains(f, "/") && !strings.EqualFold(f, "and/or") {
			at = i
			break
		}
	}
	if at < 0 {
		return nil, false
	}
	var parts []string
	for _, part := range strings.Split(fields[at], "/") {
		if part = strings.Trim(part, " ,"); part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) < 2 {
		return nil, false
	}
	prefix := strings.Join(fields[:at], " ")
	suffix := strings.Join(fields[at+1:], " ")
	var out []string
	if isPlural(parts[len(parts)-1]) {
		for _, part := range parts {
			out = append(out, joinTitle(prefix, part, suffix))
		}
		return out, true
	}
	for _, part := range parts[:len(parts)-1] {
		out = append(out, joinTitle(prefix, part))
	}
	return append(out, joinTitle(parts[len(parts)-1], suffix)), true
}

// expandComma handles the two comma shapes: an enumeration over a shared
// head noun ("Painting, Coating, and Decorating Workers") and an inverted
// trailing qualifier ("Engineers, Civil").
func expandComma(title string) []string {
	var segs []string
	for _, s := range strings.Split(title, ",") {
		if s = strings.TrimSpace(s); s != "" {
			segs = append(segs, s)
		}
	}
	if len(segs) < 2 {
		return []string{strings.Join(segs, "")}
	}
	last := segs[len(segs)-1]
	lastFields := strings.Fields(last)
	leadsWithConj := isConj(lastFields[0])
	if len(segs) > 2 || leadsWithConj {
		if leadsWithConj {
			last = strings.Join(lastFields[1:], " ")
		}
		return distributeHead(append(segs[:len(segs)-1:len(segs)-1], last))
	}

	head := segs[0]
	alts, ok := expandConj(lastFields)
	if !ok {
		alts = []string{last}
	}
	var out []string
	for _, q := range alts {
		out = append(out, joinTitle(q, head))
	}
	return out
}

// distributeHead shares the head noun of the final enumeration item with
// the bare items before it: ["Painting", "Coating", "Decorating Workers"]
// all become Workers. Items keep their own heads when the final item has
// none to share.
func distributeHead(items []string) []string {
	lastFields := strings.Fields(items[len(items)-1])
	if len(lastFields) < 2 {
		return items
	}
	for _, item := range items[:len(items)-1] {
		if len(strings.Fields(item)) != 1 {
			return items
		}
	}
	head := strings.Join(lastFields[1:], " ")
	out := make([]string, 0, len(items))
	for _, item := range items[:len(items)-1] {
		out = append(out, joinTitle(item, head))
	}
	return append(out, items[len(items)-1])
}

// expandConj splits "<left> (and|or) <middle> <suffix>" and distributes the
// suffix over both sides ("Farm and Home Management Advisors").
func expandConj(fields []string) ([]string, bool) {
	k := -1
	for i, f := range fields {
		if isConj(f) {
			k = i
			break
		}
	}
	if k <= 0 || k >= len(fields)-1 {
		return nil, false
	}
	left := strings.Join(fields[:k], " ")
	middle := fields[k+1]
	suffix := strings.Join(fields[k+2:], " ")
	return []string{joinTitle(left, suffix), joinTitle(middle, suffix)}, true
}

func isConj(f string) bool {
	return strings.EqualFold(f, "and") || strings.EqualFold(f, "or") ||
		strings.EqualFold(f, "and/or")
}

// isPlural is a cheap surface test for a complete head noun.
func isPlural(w string) bool {
	lw := strings.ToLower(w)
	return len(lw) >= 4 && strings.HasSuffix(lw, "s") && !strings.HasSuffix(lw, "ss")
}

func joinTitle(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

func unique(ss []string) []string {
	if len(ss) < 2 {
		return ss
	}
	seen := make(map[string]bool, len(ss))
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
