package taskparse

import "strings"

// connectorPhrases link a subject noun phrase to a governed object phrase.
// The earliest occurrence in a phrase wins.
var connectorPhrases = []string{
	"concerned with",
	"related to",
	"involved in",
	"responsible for",
	"engaged in",
	"associated with",
	"dealing with",
	"focused on",
	"pertaining to",
	"regarding",
}

// idiomPairs are two-word compounds never torn apart by suffix sharing.
var idiomPairs = map[string]bool{
	"record keeping":  true,
	"cost reduction":  true,
	"quality control": true,
	"risk management": true,
	"decision making": true,
	"policy making":   true,
	"law enforcement": true,
}

// businessVerbs may head a shared gerund object ("plan and direct
// staffing"). For any other middle word a bare gerund suffix blocks the
// suffix-sharing split.
var businessVerbs = map[string]bool{
	"conduct":    true,
	"coordinate": true,
	"direct":     true,
	"improve":    true,
	"manage":     true,
	"oversee":    true,
	"perform":    true,
	"plan":       true,
	"support":    true,
}

// expandRule is one coordination pattern. Rules are tried in order and the
// first match wins; a rule that stands down returns false and leaves the
// phrase for the rules after it.
type expandRule struct {
	name  string
	apply func(p *Parser, phrase string, fields []string) ([]string, bool)
}

// phraseRules is filled in by init: several rules re-enter expandPhrase,
// which reads the table back, so a package-level initializer would cycle.
var phraseRules []expandRule

func init() {
	phraseRules = []expandRule{
		{"such-as", (*Parser).expandSuchAs},
		{"slash", (*Parser).expandSlash},
		{"connector", (*Parser).expandConnector},
		{"oxford-list", (*Parser).expandOxfordList},
		{"comma-list", (*Parser).expandCommaList},
		{"shared-suffix", (*Parser).expandSharedSuffix},
		{"alternation", (*Parser).expandAlternation},
	}
}

// Expand rewrites a coordinated phrase into its elementary alternatives.
// A phrase without coordinating structure comes back unchanged as a single
// alternative. Results are deduplicated preserving first occurrence.
func (p *Parser) Expand(phrase string) []string {
	p.mustBeReady()
	return p.expandPhrase(normalizeSpace(phrase))
}

func (p *Parser) expandPhrase(phrase string) []string {
	if phrase == "" {
		return nil
	}
	fields := strings.Fields(phrase)
	for _, r := range phraseRules {
		if alts, ok := r.apply(p, phrase, fields); ok {
			return uniqueStrings(alts)
		}
	}
	return []string{phrase}
}

// expandSuchAs splits "<category> such as <list>" into the category plus
// the listed examples. The list flattens on commas and conjunctions.
func (p *Parser) expandSuchAs(phrase string, fields []string) ([]string, bool) {
	i := findPhrase(fields, "such", "as")
	if i < 0 {
		return nil, false
	}
	category := strings.TrimRight(strings.Join(fields[:i], " "), ",")
	items := p.splitListItems(fields[i+2:])
	if len(items) == 0 {
		return nil, false
	}
	var alts []string
	if category != "" {
		alts = append(alts, category)
	}
	return append(alts, items...), true
}

// expandSlash distributes a slash alternation over the words around it.
// The rule stands down when a cartesian conjunction is present; "and/or"
// itself reads as a conjunction, not as a slash alternation.
func (p *Parser) expandSlash(phrase string, fields []string) ([]string, bool) {
	if !strings.Contains(phrase, "/") {
		return nil, false
	}
	for _, f := range fields {
		if p.isConjField(f) {
			return nil, false
		}
	}
	start := -1
	for i, f := range fields {
		if strings.Contains(f, "/") {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, false
	}
	end := start
	for end+1 < len(fields) && strings.Contains(fields[end+1], "/") {
		end++
	}
	var parts []string
	for _, part := range strings.Split(strings.Join(fields[start:end+1], ""), "/") {
		if part = trimPunct(part); part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) < 2 {
		return nil, false
	}
	prefix := strings.Join(fields[:start], " ")
	suffix := strings.Join(fields[end+1:], " ")
	var alts []string
	for _, part := range parts {
		alts = append(alts, joinNonEmpty(prefix, part, suffix))
	}
	return alts, true
}

// expandConnector splits "<subject> <connector> <object>" when the subject
// carries a comma-free alternation and the object side is itself a list or
// alternation. Both sides expand independently and recombine through the
// connector.
func (p *Parser) expandConnector(phrase string, fields []string) ([]string, bool) {
	best := -1
	var bestWords []string
	for _, c := range connectorPhrases {
		words := strings.Fields(c)
		if i := findPhrase(fields, words...); i >= 0 && (best < 0 || i < best) {
			best, bestWords = i, words
		}
	}
	if best <= 0 || best+len(bestWords) >= len(fields) {
		return nil, false
	}
	subject := strings.Join(fields[:best], " ")
	connector := strings.Join(bestWords, " ")
	object := strings.Join(fields[best+len(bestWords):], " ")
	if strings.Contains(subject, ",") || !p.containsAlternation(subject) {
		return nil, false
	}
	if !strings.Contains(object, ",") && !p.containsAlternation(object) {
		return nil, false
	}
	var alts []string
	for _, s := range p.expandPhrase(subject) {
		for _, o := range p.expandPhrase(object) {
			alts = append(alts, s+" "+connector+" "+o)
		}
	}
	return alts, true
}

// expandOxfordList splits "<first>, <middle...>, (and|or) <last>" lists.
// Every item re-expands, so nested alternations flatten fully.
func (p *Parser) expandOxfordList(phrase string, fields []string) ([]string, bool) {
	k := -1
	for i, f := range fields {
		if p.isConjField(f) && i > 0 && i < len(fields)-1 && strings.HasSuffix(fields[i-1], ",") {
			k = i
		}
	}
	if k < 0 {
		return nil, false
	}
	var alts []string
	for _, item := range strings.Split(strings.Join(fields[:k], " "), ",") {
		if item = strings.TrimSpace(item); item != "" {
			alts = append(alts, p.expandPhrase(item)...)
		}
	}
	alts = append(alts, p.expandPhrase(strings.Join(fields[k+1:], " "))...)
	return alts, true
}

// expandCommaList splits a plain comma list; it stands down whenever a
// conjunction is present.
func (p *Parser) expandCommaList(phrase string, fields []string) ([]string, bool) {
	if !strings.Contains(phrase, ",") {
		return nil, false
	}
	for _, f := range fields {
		if p.isConjField(f) {
			return nil, false
		}
	}
	var alts []string
	for _, part := range strings.Split(phrase, ",") {
		if part = strings.TrimSpace(part); part != "" {
			alts = append(alts, p.expandPhrase(part)...)
		}
	}
	if len(alts) < 2 {
		return nil, false
	}
	return alts, true
}

// expandSharedSuffix handles "<left> (and|or) <middle> <suffix...>",
// reading the suffix as a trailing noun phrase shared by both alternatives
// ("generation or mechanical equipment"). The split anchors at the last
// conjunction. Guards keep fixed compounds and verb phrases intact; on any
// guard the rule stands down and plain alternation takes over.
func (p *Parser) expandSharedSuffix(phrase string, fields []string) ([]string, bool) {
	k := -1
	for i, f := range fields {
		if p.isConjField(f) {
			k = i
		}
	}
	if k <= 0 || k+2 >= len(fields) {
		return nil, false
	}
	middle := trimPunct(fields[k+1])
	suffix := strings.Join(fields[k+2:], " ")
	left := strings.TrimRight(strings.Join(fields[:k], " "), ",")
	mid := strings.ToLower(middle)
	switch {
	case middle == "":
		return nil, false
	case p.lex.IsDeterminer(mid):
		return nil, false
	case p.lex.hasConceptPair(mid, strings.ToLower(suffix)):
		return nil, false
	case idiomPairs[mid+" "+strings.ToLower(suffix)]:
		return nil, false
	case len(fields[k+2:]) == 1 && isGerund(suffix) && !businessVerbs[mid]:
		return nil, false
	case p.lex.IsVerb(mid) && !p.singleVerb(fields[:k]):
		return nil, false
	}
	alts := append(p.expandPhrase(left), p.expandPhrase(middle)...)
	out := make([]string, 0, len(alts))
	for _, a := range alts {
		if hasWordSuffix(a, suffix) {
			out = append(out, a)
		} else {
			out = append(out, a+" "+suffix)
		}
	}
	if p.containsCoordination(suffix) {
		var re []string
		for _, a := range out {
			re = append(re, p.expandPhrase(a)...)
		}
		out = re
	}
	return out, true
}

// expandAlternation is the fallback: split once at the first cartesian
// conjunction and expand both sides. A leading "both" is dropped first.
func (p *Parser) expandAlternation(phrase string, fields []string) ([]string, bool) {
	if len(fields) > 0 && strings.EqualFold(fields[0], "both") {
		fields = fields[1:]
	}
	k := -1
	for i, f := range fields {
		if p.isConjField(f) {
			k = i
			break
		}
	}
	if k <= 0 || k >= len(fields)-1 {
		return nil, false
	}
	left := strings.TrimRight(strings.Join(fields[:k], " "), ",")
	right := strings.Join(fields[k+1:], " ")
	return append(p.expandPhrase(left), p.expandPhrase(right)...), true
}

// isConjField reports whether a field is a cartesian conjunction.
func (p *Parser) isConjField(f string) bool {
	return p.lex.isCartesian(trimPunct(f))
}

// containsAlternation reports whether a cartesian conjunction joins words
// inside text.
func (p *Parser) containsAlternation(text string) bool {
	for _, f := range strings.Fields(text) {
		if p.isConjField(f) {
			return true
		}
	}
	return false
}

// containsCoordination reports whether text shows any coordinating
// structure: a cartesian conjunction, a comma, a slash or a "such as".
func (p *Parser) containsCoordination(text string) bool {
	if strings.Contains(text, ",") || strings.Contains(text, "/") {
		return true
	}
	fields := strings.Fields(text)
	for i, f := range fields {
		if p.isConjField(f) {
			return true
		}
		if i+1 < len(fields) && strings.EqualFold(f, "such") && strings.EqualFold(trimPunct(fields[i+1]), "as") {
			return true
		}
	}
	return false
}

// splitListItems cuts a field run at commas and cartesian conjunctions,
// dropping the separators.
func (p *Parser) splitListItems(fields []string) []string {
	var items []string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			items = append(items, strings.Join(cur, " "))
			cur = nil
		}
	}
	for _, f := range fields {
		if p.isConjField(f) {
			flush()
			continue
		}
		trailing := strings.HasSuffix(f, ",")
		if w := strings.TrimSuffix(f, ","); w != "" {
			cur = append(cur, w)
		}
		if trailing {
			flush()
		}
	}
	flush()
	return items
}

// singleVerb reports whether fields is exactly one lexicon verb.
func (p *Parser) singleVerb(fields []string) bool {
	return len(fields) == 1 && p.lex.IsVerb(trimPunct(fields[0]))
}

// findPhrase locates the word sequence words inside fields, comparing
// case-insensitively with edge punctuation ignored. It returns the field
// index of the first word, or -1.
func findPhrase(fields []string, words ...string) int {
	for i := 0; i+len(words) <= len(fields); i++ {
		ok := true
		for k, w := range words {
			if !strings.EqualFold(trimPunct(fields[i+k]), w) {
				ok = false
				break
			}
		}
		if ok {
			return i
		}
	}
	return -1
}

// hasWordSuffix reports whether s ends with the word sequence suffix,
// compared case-insensitively on a word boundary.
func hasWordSuffix(s, suffix string) bool {
	ls, lf := strings.ToLower(s), strings.ToLower(suffix)
	if !strings.HasSuffix(ls, lf) {
		return false
	}
	return len(ls) == len(lf) || ls[len(ls)-len(lf)-1] == ' '
}

// uniqueStrings deduplicates preserving first occurrence.
func uniqueStrings(ss []string) []string {
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
