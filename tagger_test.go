package taskparse

import (
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Develop plans.", []string{"Develop", "plans", "."}},
		{"company's records", []string{"company's", "records"}},
		{"don’t stop", []string{"don’t", "stop"}},
		{"sales/marketing", []string{"sales", "/", "marketing"}},
		{"(now)", []string{"(", "now", ")"}},
		{"Prepare 10 reports", []string{"Prepare", "reports"}},
		{"", nil},
	}
	for _, tt := range tests {
		toks := tokenize(tt.in)
		if len(toks) != len(tt.want) {
			t.Errorf("tokenize(%q) = %d tokens, want %d", tt.in, len(toks), len(tt.want))
			continue
		}
		for i, w := range tt.want {
			if toks[i].Text != w {
				t.Errorf("tokenize(%q)[%d] = %q, want %q", tt.in, i, toks[i].Text, w)
			}
			if toks[i].Position != i {
				t.Errorf("tokenize(%q)[%d].Position = %d, want %d", tt.in, i, toks[i].Position, i)
			}
		}
	}
}

func TestLookupTags(t *testing.T) {
	lex := NewLexicon()
	tests := []struct {
		in   string
		want PosTag
	}{
		{"the", TagDeterminer},
		{"both", TagDeterminer},
		{"they", TagPronoun},
		{"develop", TagVerb},
		{"staff", TagVerb},
		{"for", TagPreposition},
		{"and", TagConjunction},
		{"carefully", TagAdverb},
		{"new", TagAdjective},
		{"InformationTechnology", TagNoun},
		{"plans", TagVerbLike},
		{"Algeria", TagCapitalized},
		{",", TagPunctuation},
	}
	for _, tt := range tests {
		toks := lex.tagTokens(tokenize(tt.in))
		if len(toks) != 1 {
			t.Fatalf("tokenize(%q) = %d tokens, want 1", tt.in, len(toks))
		}
		if toks[0].Tag != tt.want {
			t.Errorf("tag(%q) = %s, want %s", tt.in, toks[0].Tag, tt.want)
		}
	}
}

func TestRetagGerunds(t *testing.T) {
	lex := NewLexicon()
	tests := []struct {
		in   string
		pos  int
		want PosTag
	}{
		// before a plain verb: modifier reading
		{"managing design reviews", 0, TagNoun},
		// before an unclassified lowercase word: stays the predicate
		{"developing strategy", 0, TagVerb},
		// final position
		{"improve coordinating", 1, TagNoun},
		{"coordinating", 0, TagNoun},
		// before a nominal
		{"maintaining DataEntry", 0, TagNoun},
		// before a capitalized word
		{"analyzing Data", 0, TagNoun},
	}
	for _, tt := range tests {
		toks := lex.tagTokens(tokenize(tt.in))
		if toks[tt.pos].Tag != tt.want {
			t.Errorf("tag(%q)[%d] = %s, want %s", tt.in, tt.pos, toks[tt.pos].Tag, tt.want)
		}
	}
}

func TestNormalizeConcepts(t *testing.T) {
	lex := NewLexicon()
	tests := []struct {
		in   string
		want string
	}{
		{"improve customer service", "improve CustomerService"},
		{"Customer Service desk", "CustomerService desk"},
		{"provide customer service, record keeping", "provide CustomerService, RecordKeeping"},
		{"handle accounts payable and accounts receivable", "handle AccountsPayable and AccountsReceivable"},
		{"improve data", "improve data"},
		// a comma inside the window blocks the phrase
		{"customer, service counts", "customer, service counts"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := lex.NormalizeConcepts(tt.in); got != tt.want {
			t.Errorf("NormalizeConcepts(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeConceptsIdempotent(t *testing.T) {
	lex := NewLexicon()
	for _, in := range []string{
		"improve customer service",
		"handle accounts payable and accounts receivable",
		"support information technology",
	} {
		once := lex.NormalizeConcepts(in)
		twice := lex.NormalizeConcepts(once)
		if once != twice {
			t.Errorf("NormalizeConcepts not idempotent on %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalizeConceptsLongestFirst(t *testing.T) {
	lex := NewLexicon()
	lex.AddConcept("customer service desk", "", "desk", []string{"customer", "service"}, "operations")
	got := lex.NormalizeConcepts("customer service desk area")
	want := "CustomerServiceDesk area"
	if got != want {
		t.Errorf("NormalizeConcepts = %q, want %q (longest phrase first)", got, want)
	}
}
