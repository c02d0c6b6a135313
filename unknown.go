package taskparse

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// maxReportRows caps the unknown-word report size.
const maxReportRows = 100

// UnknownWords accumulates words the tagger could not classify, across any
// number of parses, for lexicon curation. Safe for concurrent use.
type UnknownWords struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewUnknownWords returns an empty accumulator.
func NewUnknownWords() *UnknownWords {
	return &UnknownWords{counts: make(map[string]int)}
}

// Record tallies the unknown words of every elementary statement in the
// tree. Internal nodes repeat their leaves' words and are skipped.
func (u *UnknownWords) Record(st *ParsedStatement) {
	if st == nil {
		return
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, leaf := range st.Leaves() {
		for _, w := range leaf.UnknownWords {
			u.counts[w]++
		}
	}
}

// Add tallies words directly.
func (u *UnknownWords) Add(words ...string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, w := range words {
		if w != "" {
			u.counts[w]++
		}
	}
}

// Len reports the number of distinct unknown words seen.
func (u *UnknownWords) Len() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.counts)
}

// Report renders a TSV table of the most frequent unknown words: word,
// frequency, and a suggested part of speech (capitalized words read as
// nouns, the rest as verbs). Rows sort by descending frequency, then by
// word, and cap at 100.
func (u *UnknownWords) Report() string {
	u.mu.Lock()
	type row struct {
		word string
		n    int
	}
	rows := make([]row, 0, len(u.counts))
	for w, n := range u.counts {
		rows = append(rows, row{w, n})
	}
	u.mu.Unlock()

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].n != rows[j].n {
			return rows[i].n > rows[j].n
		}
		return rows[i].word < rows[j].word
	})
	if len(rows) > maxReportRows {
		rows = rows[:maxReportRows]
	}
	var b strings.Builder
	b.WriteString("word\tfrequency\tsuggested_pos\n")
	for _, r := range rows {
		pos := "verb"
		if isCapitalized(r.word) {
			pos = "noun"
		}
		fmt.Fprintf(&b, "%s\t%d\t%s\n", r.word, r.n, pos)
	}
	return b.String()
}
