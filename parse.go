package taskparse

import "strings"

// Parse analyzes one imperative task statement. A compound statement comes
// back as an internal node whose Expansions hold the elementary
// alternatives; a simple statement comes back as a single leaf. Verb-level
// coordination (slash pairs, Oxford verb lists, two-verb conjunctions) is
// recognized ahead of whole-text expansion.
func (p *Parser) Parse(text string) *ParsedStatement {
	p.mustBeReady()
	text = normalizeStatement(text)
	if st, ok := p.parseSlashVerbs(text); ok {
		return st
	}
	if st, ok := p.parseVerbList(text); ok {
		return st
	}
	if st, ok := p.parseVerbPair(text); ok {
		return st
	}
	if p.containsCoordination(text) {
		if alts := p.expandStatement(text); len(alts) > 1 {
			return p.newExpansion(text, alts)
		}
	}
	return p.parseLeaf(text)
}

// parseLeaf builds a leaf: concept phrases collapse to their canonical
// tokens, tokens are tagged, slots extracted.
func (p *Parser) parseLeaf(text string) *ParsedStatement {
	toks := p.lex.tagTokens(tokenize(p.lex.NormalizeConcepts(text)))
	st := p.extractSlots(text, toks)
	st.HasConjunction = p.containsCoordination(text)
	return st
}

// newExpansion builds an internal node: its own slots summarize the whole
// compound text, its expansions are the parsed alternatives.
func (p *Parser) newExpansion(text string, alts []string) *ParsedStatement {
	st := p.parseLeaf(text)
	st.HasConjunction = true
	for _, a := range alts {
		st.Expansions = append(st.Expansions, p.parseLeaf(a))
	}
	return st
}

// parseSlashVerbs handles a leading verb pair written "Verb1/Verb2". Each
// verb reparses over the shared remainder, so a remainder with its own
// coordination deepens the tree.
func (p *Parser) parseSlashVerbs(text string) (*ParsedStatement, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.Contains(fields[0], "/") {
		return nil, false
	}
	parts := strings.Split(trimPunct(fields[0]), "/")
	if len(parts) != 2 || !p.lex.IsVerb(parts[0]) || !p.lex.IsVerb(parts[1]) {
		return nil, false
	}
	rest := strings.Join(fields[1:], " ")
	st := p.parseLeaf(text)
	st.HasConjunction = true
	for _, v := range parts {
		st.Expansions = append(st.Expansions, p.Parse(joinNonEmpty(v, rest)))
	}
	return st, true
}

// parseVerbList handles an Oxford verb list: "Collect, analyze, and report
// data" distributes the remainder over every verb. At least three verbs are
// required and the remainder must not itself start with a verb.
func (p *Parser) parseVerbList(text string) (*ParsedStatement, bool) {
	fields := strings.Fields(text)
	var verbs []string
	i := 0
	for i < len(fields) && strings.HasSuffix(fields[i], ",") {
		w := trimPunct(fields[i])
		if !p.lex.IsVerb(w) {
			break
		}
		verbs = append(verbs, w)
		i++
	}
	if len(verbs) < 2 || i >= len(fields) || !p.isConjField(fields[i]) {
		return nil, false
	}
	i++
	if i >= len(fields) {
		return nil, false
	}
	last := trimPunct(fields[i])
	if !p.lex.IsVerb(last) {
		return nil, false
	}
	verbs = append(verbs, last)
	i++
	if i < len(fields) && p.lex.IsVerb(trimPunct(fields[i])) {
		return nil, false
	}
	rest := strings.Join(fields[i:], " ")
	st := p.parseLeaf(text)
	st.HasConjunction = true
	for _, v := range verbs {
		st.Expansions = append(st.Expansions, p.Parse(joinNonEmpty(v, rest)))
	}
	return st, true
}

// parseVerbPair handles "Verb1 (and|or) Verb2 <rest>". The shared rest
// expands once and distributes over both verbs as a cartesian product.
func (p *Parser) parseVerbPair(text string) (*ParsedStatement, bool) {
	fields := strings.Fields(text)
	if len(fields) < 3 {
		return nil, false
	}
	if !p.lex.IsVerb(fields[0]) || !p.isConjField(fields[1]) || !p.lex.IsVerb(fields[2]) {
		return nil, false
	}
	rest := strings.Join(fields[3:], " ")
	restAlts := []string{""}
	if rest != "" {
		restAlts = p.expandObjectPhrase(rest)
	}
	st := p.parseLeaf(text)
	st.HasConjunction = true
	for _, v := range []string{fields[0], fields[2]} {
		for _, r := range restAlts {
			st.Expansions = append(st.Expansions, p.parseLeaf(joinNonEmpty(v, r)))
		}
	}
	return st, true
}

// expandStatement expands whole statement text. When the text opens with a
// known verb the expansion anchors on it: the remainder expands on its own
// and the verb distributes over the alternatives, keeping "Inspect
// generation or mechanical equipment" verbful on both branches. An
// alternative opening with its own verb ("assign responsibilities" out of
// "Confer with department heads and assign responsibilities") is left
// alone; a fixed compound whose first word merely spells like a verb
// ("record keeping") still takes the shared verb.
func (p *Parser) expandStatement(text string) []string {
	fields := strings.Fields(text)
	if len(fields) > 1 && p.lex.IsVerb(fields[0]) {
		verb := fields[0]
		alts := p.expandObjectPhrase(strings.Join(fields[1:], " "))
		out := make([]string, 0, len(alts))
		for _, a := range alts {
			if p.standsAlone(a) {
				out = append(out, a)
				continue
			}
			out = append(out, joinNonEmpty(verb, a))
		}
		return uniqueStrings(out)
	}
	return p.expandPhrase(text)
}

// standsAlone reports whether an expansion alternative opens with a verb
// of its own. A known concept or idiom pair headed by a verb spelling is
// a nominal compound, not an imperative, and does not stand alone.
func (p *Parser) standsAlone(alt string) bool {
	fields := strings.Fields(alt)
	if len(fields) == 0 || !p.lex.IsVerb(fields[0]) {
		return false
	}
	if len(fields) > 1 {
		head := strings.ToLower(fields[0])
		rest := strings.ToLower(strings.Join(fields[1:], " "))
		if p.lex.hasConceptPair(head, rest) || idiomPairs[head+" "+rest] {
			return false
		}
	}
	return true
}

// expandObjectPhrase expands an object-and-complement phrase. The split at
// the first preposition runs ahead of the object-only patterns so that
// "reports on findings or recommendations" multiplies around "on".
func (p *Parser) expandObjectPhrase(rest string) []string {
	if alts, ok := p.expandPrepSplit(rest); ok {
		return alts
	}
	return p.expandPhrase(rest)
}

// expandPrepSplit cuts "<object> <prep> <complement>" at the first lexicon
// preposition and expands both sides independently when either carries
// coordination, recombining them as a cartesian product. The "as" of
// "such as" never counts as a split point.
func (p *Parser) expandPrepSplit(s string) ([]string, bool) {
	fields := strings.Fields(s)
	k := -1
	for i, f := range fields {
		if i == 0 || i == len(fields)-1 {
			continue
		}
		w := strings.ToLower(trimPunct(f))
		if !p.lex.IsPreposition(w) {
			continue
		}
		if w == "as" && strings.EqualFold(trimPunct(fields[i-1]), "such") {
			continue
		}
		k = i
		break
	}
	if k < 0 {
		return nil, false
	}
	obj := strings.Join(fields[:k], " ")
	comp := strings.Join(fields[k+1:], " ")
	if !p.containsCoordination(obj) && !p.containsCoordination(comp) {
		return nil, false
	}
	prep := strings.ToLower(trimPunct(fields[k]))
	var alts []string
	for _, o := range p.expandPhrase(obj) {
		for _, c := range p.expandPhrase(comp) {
			alts = append(alts, o+" "+prep+" "+c)
		}
	}
	return alts, true
}
