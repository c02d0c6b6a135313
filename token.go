package taskparse

import (
	"strings"
	"unicode"
)

// PosTag is the coarse part-of-speech category assigned to a token.
type PosTag rune

const (
	TagDeterminer  PosTag = 'd'
	TagPronoun     PosTag = 'p'
	TagVerb        PosTag = 'v'
	TagPreposition PosTag = 'r'
	TagConjunction PosTag = 'c'
	TagAdverb      PosTag = 'b'
	TagAdjective   PosTag = 'a'
	TagNoun        PosTag = 'n'

	// TagVerbLike marks a lowercase-initial word found in no lexicon table.
	// Statements are imperative, so such words default to verbs.
	TagVerbLike PosTag = 'V'

	// TagCapitalized marks an uppercase-initial word found in no lexicon
	// table. Read as a noun (proper name or canonical concept id).
	TagCapitalized PosTag = 'N'

	TagPunctuation PosTag = '.'
	TagUnknown     PosTag = '-'
)

// String returns the tag name used in diagnostics.
func (t PosTag) String() string {
	switch t {
	case TagDeterminer:
		return "determiner"
	case TagPronoun:
		return "pronoun"
	case TagVerb:
		return "verb"
	case TagPreposition:
		return "preposition"
	case TagConjunction:
		return "conjunction"
	case TagAdverb:
		return "adverb"
	case TagAdjective:
		return "adjective"
	case TagNoun:
		return "noun"
	case TagVerbLike:
		return "unknown-verb-like"
	case TagCapitalized:
		return "unknown-capitalized"
	case TagPunctuation:
		return "punctuation"
	default:
		return "unknown"
	}
}

// IsVerb reports whether the tag can serve as a statement predicate.
// Unclassified lowercase-initial words count: the grammar is imperative.
func (t PosTag) IsVerb() bool {
	return t == TagVerb || t == TagVerbLike
}

// IsNominal reports whether the tag reads as a noun.
func (t PosTag) IsNominal() bool {
	return t == TagNoun || t == TagCapitalized
}

// IsUnclassified reports whether the lexicon had no entry for the token.
func (t PosTag) IsUnclassified() bool {
	return t == TagVerbLike || t == TagCapitalized || t == TagUnknown
}

// Token is a single word or punctuation mark cut from a phrase.
// Tokens are immutable once tagged.
type Token struct {
	// Text is the surface form as written.
	Text string
	// Norm is the lowercase form used for lexicon lookups.
	Norm string
	// Tag is the part-of-speech category.
	Tag PosTag
	// Position is the token's ordinal index within its phrase.
	Position int
}

// punctMarks are the punctuation characters kept as standalone tokens.
// Characters outside letters, internal apostrophes and this set are dropped.
const punctMarks = ".,;:-/()"

// terminalMarks end slot extraction early when they appear mid-phrase.
const terminalMarks = ".;)"

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

// tokenize splits text into word and punctuation tokens. A word is a maximal
// letter run, permitting an internal apostrophe ("company's"). Empty input
// yields no tokens.
func tokenize(text string) []Token {
	var toks []Token
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case unicode.IsLetter(r):
			j := i + 1
			for j < len(runes) {
				if unicode.IsLetter(runes[j]) {
					j++
					continue
				}
				if isApostrophe(runes[j]) && j+1 < len(runes) && unicode.IsLetter(runes[j+1]) {
					j += 2
					continue
				}
				break
			}
			word := string(runes[i:j])
			toks = append(toks, Token{Text: word, Norm: strings.ToLower(word), Position: len(toks)})
			i = j - 1
		case strings.ContainsRune(punctMarks, r):
			toks = append(toks, Token{Text: string(r), Norm: string(r), Position: len(toks)})
		}
	}
	return toks
}

// isTerminal reports whether a tagged token halts slot extraction.
func isTerminal(t Token) bool {
	return t.Tag == TagPunctuation && strings.Contains(terminalMarks, t.Norm)
}
