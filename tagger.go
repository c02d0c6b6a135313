package taskparse

import (
	"strings"
	"unicode"
)

// tagTokens assigns part-of-speech tags in two passes: table lookups in a
// fixed priority order, then a contextual correction pass for "-ing" verb
// forms.
func (lex *Lexicon) tagTokens(toks []Token) []Token {
	for i := range toks {
		toks[i].Tag = lex.lookupTag(toks[i])
	}
	retagGerunds(toks)
	return toks
}

// lookupTag classifies one token by table lookups in priority order.
// Unclassified capitalized words read as nouns; unclassified lowercase
// words read as verbs, the input grammar being imperative.
func (lex *Lexicon) lookupTag(t Token) PosTag {
	_, isConj := lex.Conjunction(t.Norm)
	switch {
	case lex.IsDeterminer(t.Norm):
		return TagDeterminer
	case lex.IsPronoun(t.Norm):
		return TagPronoun
	case lex.IsVerb(t.Norm):
		return TagVerb
	case lex.IsPreposition(t.Norm):
		return TagPreposition
	case isConj:
		return TagConjunction
	case lex.IsAdverb(t.Norm):
		return TagAdverb
	case lex.IsAdjective(t.Norm):
		return TagAdjective
	}
	if _, ok := lex.conceptID(t.Norm); ok {
		return TagNoun
	}
	if isWordToken(t) {
		if isCapitalized(t.Text) {
			return TagCapitalized
		}
		return TagVerbLike
	}
	if len(t.Norm) == 1 && strings.ContainsRune(punctMarks, rune(t.Norm[0])) {
		return TagPunctuation
	}
	return TagUnknown
}

func isWordToken(t Token) bool {
	for _, r := range t.Text {
		return unicode.IsLetter(r)
	}
	return false
}

// retagGerunds nominalizes "-ing" verb forms in two spots: before a nominal
// ("managing editor") and in final position ("oversee recruiting"). A
// following unclassified lowercase word keeps the "-ing" form verbal
// ("developing strategy"): the grammar is imperative and such words read as
// objects, not heads.
func retagGerunds(toks []Token) {
	for i := range toks {
		if toks[i].Tag != TagVerb || !isGerund(toks[i].Norm) {
			continue
		}
		if i == len(toks)-1 {
			toks[i].Tag = TagNoun
			continue
		}
		next := toks[i+1]
		if next.Tag.IsNominal() || next.Tag == TagUnknown ||
			(next.Tag == TagVerb && !isGerund(next.Norm)) ||
			isCapitalized(next.Text) {
			toks[i].Tag = TagNoun
		}
	}
}
