package taskparse

// ParsedStatement is one node of a parse tree. A leaf carries the slots of
// an elementary statement. An internal node summarizes a compound statement
// and holds its coordinate alternatives in Expansions; Expansions is empty
// exactly when the node is a leaf. Nodes are built only by the parser.
type ParsedStatement struct {
	// Original is the normalized text this node was parsed from.
	Original string
	// Predicate is the main verb, surface form preserved.
	Predicate string
	// Object is the direct object phrase, determiners and commas dropped.
	Object string
	// Preposition is the relation introducing the complement.
	Preposition string
	// Complement is the phrase governed by the preposition.
	Complement string
	// Modifiers are adverb and adjective forms collected during extraction.
	Modifiers []string
	// Confidence starts at 1.0 and drops by 0.1 per token the tagger
	// rejected outright. Unclassified words read as imperatives cost
	// nothing.
	Confidence float64
	// UnknownWords lists the tokens the lexicon could not classify.
	UnknownWords []string
	// HasConjunction records whether coordinating structure was detected.
	HasConjunction bool
	// Expansions are the elementary alternatives of a compound statement.
	Expansions []*ParsedStatement
}

// IsLeaf reports whether the node is an elementary statement.
func (st *ParsedStatement) IsLeaf() bool {
	return len(st.Expansions) == 0
}

// Leaves returns the elementary statements of the tree in depth-first
// order. A leaf returns itself.
func (st *ParsedStatement) Leaves() []*ParsedStatement {
	if st == nil {
		return nil
	}
	if st.IsLeaf() {
		return []*ParsedStatement{st}
	}
	var leaves []*ParsedStatement
	for _, e := range st.Expansions {
		leaves = append(leaves, e.Leaves()...)
	}
	return leaves
}

// Walk visits every node depth-first in pre-order, passing each node and
// its depth to fn. Returning false from fn stops the walk.
func (st *ParsedStatement) Walk(fn func(node *ParsedStatement, depth int) bool) {
	st.walk(0, fn)
}

func (st *ParsedStatement) walk(depth int, fn func(*ParsedStatement, int) bool) bool {
	if st == nil {
		return true
	}
	if !fn(st, depth) {
		return false
	}
	for _, e := range st.Expansions {
		if !e.walk(depth+1, fn) {
			return false
		}
	}
	return true
}
