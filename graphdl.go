package taskparse

import "strings"

// infinitiveSuffixes mark verb-like complement heads ("organize",
// "activate", "classify", "inspect", "reduce", "purchase") when the word is
// not in the verb table. Gerunds never qualify.
var infinitiveSuffixes = []string{"ize", "ate", "ify", "ect", "uce", "ase"}

// ToGraphDL serializes a parse tree as dotted GraphDL paths: predicates and
// prepositions lowercase, object and complement phrases PascalCase with
// internal prepositions kept lowercase as segments of their own. An
// internal node renders as a bracketed list of its expansions, at any
// depth.
func (p *Parser) ToGraphDL(st *ParsedStatement) string {
	p.mustBeReady()
	if st == nil {
		return ""
	}
	if !st.IsLeaf() {
		parts := make([]string, 0, len(st.Expansions))
		for _, e := range st.Expansions {
			parts = append(parts, p.ToGraphDL(e))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return p.leafPath(st)
}

func (p *Parser) leafPath(st *ParsedStatement) string {
	var segs []string
	if st.Predicate != "" {
		segs = append(segs, strings.ToLower(st.Predicate))
	}
	if st.Object != "" {
		if s := p.phrasePath(st.Object); s != "" {
			segs = append(segs, s)
		}
	}
	if st.Preposition != "" {
		segs = append(segs, strings.ToLower(st.Preposition))
	}
	if st.Complement != "" {
		if s := p.complementPath(st.Preposition, st.Complement); s != "" {
			segs = append(segs, s)
		}
	}
	// A leaf with no filled slots renders its original text as a nominal
	// path, never as an empty list entry.
	if len(segs) == 0 {
		return p.phrasePath(st.Original)
	}
	return strings.Join(segs, ".")
}

// phrasePath renders a nominal phrase: words group into PascalCase runs,
// internal prepositions become their own lowercase segments ("quality of
// customer service" → "Quality.of.CustomerService"), conjunctions and
// determiners drop out.
func (p *Parser) phrasePath(phrase string) string {
	var segs []string
	var run []string
	flush := func() {
		if len(run) > 0 {
			if w := pascalWords(run); w != "" {
				segs = append(segs, w)
			}
			run = nil
		}
	}
	for _, f := range strings.Fields(phrase) {
		w := strings.ToLower(trimPunct(f))
		switch {
		case w == "":
		case p.lex.IsPreposition(w):
			flush()
			segs = append(segs, w)
		case p.lex.isCartesian(w) || p.lex.IsDeterminer(w):
			// dropped from paths
		default:
			run = append(run, f)
		}
	}
	flush()
	return strings.Join(segs, ".")
}

// complementPath renders the complement, honoring the preposition that
// introduced it. Infinitive heads render lowercase; "<subject> to <verb>"
// and connector-verb shapes keep their linking words as segments; anything
// else falls back to nominal rendering.
func (p *Parser) complementPath(prep, comp string) string {
	words := strings.Fields(comp)
	if len(words) == 0 {
		return ""
	}
	if strings.EqualFold(prep, "to") && p.isInfinitive(words[0]) {
		return p.infinitivePath(words[0], words[1:])
	}
	if len(words) >= 2 && strings.EqualFold(trimPunct(words[0]), "to") && p.isInfinitive(words[1]) {
		return p.infinitivePath(words[1], words[2:])
	}
	for i := 1; i+1 < len(words); i++ {
		if strings.EqualFold(trimPunct(words[i]), "to") && p.isInfinitive(words[i+1]) {
			subject := p.phrasePath(strings.Join(words[:i], " "))
			return joinPath(subject, "to", p.infinitivePath(words[i+1], words[i+2:]))
		}
	}
	if s, ok := p.connectorPath(words); ok {
		return s
	}
	return p.phrasePath(comp)
}

// infinitivePath renders "<verb> <rest>" with a lowercase head.
func (p *Parser) infinitivePath(verb string, rest []string) string {
	head := strings.ToLower(trimPunct(verb))
	if len(rest) == 0 {
		return head
	}
	return joinPath(head, p.phrasePath(strings.Join(rest, " ")))
}

// connectorPath renders "<subject> <connector> <object>" complements:
// "businesses concerned with production" keeps the connector verb and its
// preposition as lowercase segments between the two nominals.
func (p *Parser) connectorPath(words []string) (string, bool) {
	for i := 1; i < len(words); i++ {
		for _, c := range connectorPhrases {
			cw := strings.Fields(c)
			if i+len(cw) >= len(words) {
				continue
			}
			ok := true
			for k, w := range cw {
				if !strings.EqualFold(trimPunct(words[i+k]), w) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			subject := p.phrasePath(strings.Join(words[:i], " "))
			object := p.phrasePath(strings.Join(words[i+len(cw):], " "))
			return joinPath(subject, strings.Join(cw, "."), object), true
		}
	}
	return "", false
}

// isInfinitive reports whether w can head an infinitive complement: a
// lexicon verb, or a word carrying a verb-forming suffix.
func (p *Parser) isInfinitive(w string) bool {
	w = strings.ToLower(trimPunct(w))
	if w == "" || isGerund(w) {
		return false
	}
	if p.lex.IsVerb(w) {
		return true
	}
	for _, suf := range infinitiveSuffixes {
		if len(w) > len(suf)+1 && strings.HasSuffix(w, suf) {
			return true
		}
	}
	return false
}

func joinPath(parts ...string) string {
	var kept []string
	for _, s := range parts {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, ".")
}
