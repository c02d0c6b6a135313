// Package taskparse parses imperative job-task statements ("Develop or
// implement plans for sustainable regeneration") into predicate, object,
// preposition and complement slots, expands coordinated phrasings into
// elementary statements, and serializes the result as dotted GraphDL paths.
//
// Parsing is lexicon-driven and heuristic: statements are annotated
// best-effort, never rejected. The built-in lexicon covers common business
// vocabulary; LoadDir layers domain tables on top of it.
package taskparse

import "errors"

// Parser analyzes task statements against a lexicon. A Parser is safe for
// concurrent use once built, provided its lexicon is not mutated afterwards.
type Parser struct {
	lex *Lexicon
}

// New returns a parser over lex. Callers layering data files load them into
// lex first.
func New(lex *Lexicon) (*Parser, error) {
	if lex == nil {
		return nil, errors.New("taskparse: nil lexicon")
	}
	return &Parser{lex: lex}, nil
}

// NewDefault returns a parser over the built-in lexicon.
func NewDefault() *Parser {
	p, err := New(NewLexicon())
	if err != nil {
		panic(err)
	}
	return p
}

// NewFromDir returns a parser over the built-in lexicon overlaid with the
// data files found in dir. See LoadDir for the recognized files.
func NewFromDir(dir string) (*Parser, error) {
	lex := NewLexicon()
	if err := lex.LoadDir(dir); err != nil {
		return nil, err
	}
	return New(lex)
}

// Lexicon exposes the parser's lexicon for inspection.
func (p *Parser) Lexicon() *Lexicon {
	return p.lex
}

// ParseToGraphDL parses text and serializes the tree in one step.
func (p *Parser) ParseToGraphDL(text string) string {
	return p.ToGraphDL(p.Parse(text))
}

// mustBeReady guards the exported entry points: parsing without an
// initialized lexicon is a programming error, not a runtime condition.
func (p *Parser) mustBeReady() {
	if p == nil || p.lex == nil {
		panic("taskparse: parser used before lexicon initialization")
	}
}
