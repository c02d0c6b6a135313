package taskparse

import (
	"sort"
	"strings"
)

// VerbEntry is one verb form in the lexicon.
type VerbEntry struct {
	// Form is the lowercase surface form matched against tokens.
	Form string
	// Canonical is the base form used for grouping ("filed" → "file").
	Canonical string
	// Category is an opaque semantic role label ("analyze", "create", ...).
	Category string
}

// ConceptEntry is a multi-word phrase rewritten to a single canonical token
// before slot extraction ("information technology" → "InformationTechnology").
type ConceptEntry struct {
	// Phrase is the lowercase source phrase.
	Phrase string
	// ID is the canonical single-token spelling.
	ID string
	// Base is the head noun of the phrase, when known.
	Base string
	// Modifiers are the qualifying words of the phrase, when known.
	Modifiers []string
	// Category is an opaque domain label.
	Category string

	words []string // split phrase, cached for window matching
}

// Expansion policies attached to conjunction entries.
const (
	// PolicyCartesian distributes alternatives into separate statements.
	PolicyCartesian = "cartesian"
	// PolicyCompound keeps the joined phrase as a single unit.
	PolicyCompound = "compound"
	// PolicyConditional marks subordinating links, never expanded.
	PolicyConditional = "conditional"
)

// ConjunctionEntry is one conjunction with its structural kind and its
// expansion policy.
type ConjunctionEntry struct {
	Form   string
	Kind   string // "coordinating", "correlative" or "subordinating"
	Policy string
}

// Lexicon holds the word tables driving tagging, expansion and slot
// extraction. NewLexicon returns one preloaded with the built-in tables;
// loaders may layer further entries on top. A Lexicon is not safe for
// concurrent mutation, but read-only use from multiple goroutines is fine.
type Lexicon struct {
	verbs        map[string]VerbEntry
	concepts     []*ConceptEntry
	conceptIDs   map[string]string // lowercase id → canonical id
	phrases      map[string]*ConceptEntry
	prepositions map[string]bool
	conjunctions map[string]ConjunctionEntry
	determiners  map[string]bool
	pronouns     map[string]bool
	adverbs      map[string]bool
	adjectives   map[string]bool
	unsorted     bool
}

// NewLexicon returns a lexicon preloaded with the built-in word tables.
func NewLexicon() *Lexicon {
	lex := newEmptyLexicon()
	lex.loadDefaults()
	return lex
}

func newEmptyLexicon() *Lexicon {
	return &Lexicon{
		verbs:        make(map[string]VerbEntry),
		conceptIDs:   make(map[string]string),
		phrases:      make(map[string]*ConceptEntry),
		prepositions: make(map[string]bool),
		conjunctions: make(map[string]ConjunctionEntry),
		determiners:  make(map[string]bool),
		pronouns:     make(map[string]bool),
		adverbs:      make(map[string]bool),
		adjectives:   make(map[string]bool),
	}
}

// AddVerb registers a verb form. An empty canonical defaults to the form
// itself.
func (lex *Lexicon) AddVerb(form, canonical, category string) {
	form = strings.ToLower(strings.TrimSpace(form))
	if form == "" {
		return
	}
	if canonical == "" {
		canonical = form
	}
	lex.verbs[form] = VerbEntry{Form: form, Canonical: strings.ToLower(canonical), Category: category}
}

// AddConcept registers a multi-word concept phrase. An empty id is derived
// from the phrase by PascalCasing its words.
func (lex *Lexicon) AddConcept(phrase, id, base string, modifiers []string, category string) {
	phrase = strings.ToLower(normalizeSpace(phrase))
	if phrase == "" {
		return
	}
	words := strings.Fields(phrase)
	if id == "" {
		id = pascalWords(words)
	}
	c := &ConceptEntry{
		Phrase:    phrase,
		ID:        id,
		Base:      base,
		Modifiers: modifiers,
		Category:  category,
		words:     words,
	}
	lex.concepts = append(lex.concepts, c)
	lex.phrases[phrase] = c
	lex.conceptIDs[strings.ToLower(id)] = id
	lex.unsorted = true
}

// AddConjunction registers a conjunction with its kind and policy.
func (lex *Lexicon) AddConjunction(form, kind, policy string) {
	form = strings.ToLower(strings.TrimSpace(form))
	if form == "" {
		return
	}
	lex.conjunctions[form] = ConjunctionEntry{Form: form, Kind: kind, Policy: policy}
}

// AddPreposition registers a preposition form.
func (lex *Lexicon) AddPreposition(form string) { addWord(lex.prepositions, form) }

// AddDeterminer registers a determiner form.
func (lex *Lexicon) AddDeterminer(form string) { addWord(lex.determiners, form) }

// AddPronoun registers a pronoun form.
func (lex *Lexicon) AddPronoun(form string) { addWord(lex.pronouns, form) }

// AddAdverb registers an adverb form.
func (lex *Lexicon) AddAdverb(form string) { addWord(lex.adverbs, form) }

// AddAdjective registers an adjective form.
func (lex *Lexicon) AddAdjective(form string) { addWord(lex.adjectives, form) }

func addWord(set map[string]bool, form string) {
	form = strings.ToLower(strings.TrimSpace(form))
	if form != "" {
		set[form] = true
	}
}

// Verb looks up a verb form.
func (lex *Lexicon) Verb(w string) (VerbEntry, bool) {
	e, ok := lex.verbs[strings.ToLower(w)]
	return e, ok
}

// IsVerb reports whether w is a known verb form.
func (lex *Lexicon) IsVerb(w string) bool {
	_, ok := lex.verbs[strings.ToLower(w)]
	return ok
}

// IsPreposition reports whether w is a known preposition.
func (lex *Lexicon) IsPreposition(w string) bool { return lex.prepositions[strings.ToLower(w)] }

// IsDeterminer reports whether w is a known determiner.
func (lex *Lexicon) IsDeterminer(w string) bool { return lex.determiners[strings.ToLower(w)] }

// IsPronoun reports whether w is a known pronoun.
func (lex *Lexicon) IsPronoun(w string) bool { return lex.pronouns[strings.ToLower(w)] }

// IsAdverb reports whether w is a known adverb.
func (lex *Lexicon) IsAdverb(w string) bool { return lex.adverbs[strings.ToLower(w)] }

// IsAdjective reports whether w is a known adjective.
func (lex *Lexicon) IsAdjective(w string) bool { return lex.adjectives[strings.ToLower(w)] }

// Conjunction looks up a conjunction form.
func (lex *Lexicon) Conjunction(w string) (ConjunctionEntry, bool) {
	e, ok := lex.conjunctions[strings.ToLower(w)]
	return e, ok
}

// isCartesian reports whether w is a conjunction whose alternatives multiply
// into separate statements ("and", "or", "and/or").
func (lex *Lexicon) isCartesian(w string) bool {
	e, ok := lex.conjunctions[strings.ToLower(w)]
	return ok && e.Policy == PolicyCartesian
}

// IsConceptPhrase reports whether s, lowercased and space-normalized, is a
// known concept phrase.
func (lex *Lexicon) IsConceptPhrase(s string) bool {
	return lex.phrases[strings.ToLower(normalizeSpace(s))] != nil
}

// conceptID resolves a lowercased concept id back to its canonical spelling.
func (lex *Lexicon) conceptID(norm string) (string, bool) {
	id, ok := lex.conceptIDs[norm]
	return id, ok
}

// hasConceptPair reports whether middle and suffix form a known concept in
// spaced, hyphenated or run-together spelling.
func (lex *Lexicon) hasConceptPair(middle, suffix string) bool {
	m := strings.ToLower(middle)
	s := strings.ToLower(suffix)
	if lex.phrases[m+" "+s] != nil || lex.phrases[m+"-"+s] != nil {
		return true
	}
	_, ok := lex.conceptIDs[m+s]
	return ok
}

// sortedConcepts returns the concept table ordered longest phrase first.
// Equal lengths keep table order.
func (lex *Lexicon) sortedConcepts() []*ConceptEntry {
	if lex.unsorted {
		sort.SliceStable(lex.concepts, func(i, j int) bool {
			return len(lex.concepts[i].words) > len(lex.concepts[j].words)
		})
		lex.unsorted = false
	}
	return lex.concepts
}

// Size reports the number of entries per table, keyed by table name.
func (lex *Lexicon) Size() map[string]int {
	return map[string]int{
		"verbs":        len(lex.verbs),
		"concepts":     len(lex.concepts),
		"prepositions": len(lex.prepositions),
		"conjunctions": len(lex.conjunctions),
		"determiners":  len(lex.determiners),
		"pronouns":     len(lex.pronouns),
		"adverbs":      len(lex.adverbs),
		"adjectives":   len(lex.adjectives),
	}
}
