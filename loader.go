package taskparse

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Data files recognized by LoadDir. All are optional.
const (
	verbsFile        = "verbs.tsv"
	conceptsFile     = "concepts.tsv"
	conjunctionsFile = "conjunctions.tsv"
	prepositionsFile = "prepositions.txt"
	determinersFile  = "determiners.txt"
	adjectivesFile   = "adjectives.txt"
	adverbsFile      = "adverbs.txt"
	pronounsFile     = "pronouns.txt"
)

// LoadDir overlays the lexicon with the data files found in dir. Missing
// files are skipped; a malformed line fails the load with its file and line
// number. Blank lines and lines starting with '#' are ignored in every
// file.
func (lex *Lexicon) LoadDir(dir string) error {
	for _, l := range []struct {
		file string
		load func(string) error
	}{
		{verbsFile, lex.loadVerbs},
		{conceptsFile, lex.loadConcepts},
		{conjunctionsFile, lex.loadConjunctions},
		{prepositionsFile, func(p string) error { return lex.loadWordList(p, lex.AddPreposition) }},
		{determinersFile, func(p string) error { return lex.loadWordList(p, lex.AddDeterminer) }},
		{adjectivesFile, func(p string) error { return lex.loadWordList(p, lex.AddAdjective) }},
		{adverbsFile, func(p string) error { return lex.loadWordList(p, lex.AddAdverb) }},
		{pronounsFile, func(p string) error { return lex.loadWordList(p, lex.AddPronoun) }},
	} {
		path := filepath.Join(dir, l.file)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("stat %s: %w", path, err)
		}
		if err := l.load(path); err != nil {
			return err
		}
	}
	return nil
}

// forEachLine scans path line by line, skipping blanks and '#' comments.
func forEachLine(path string, fn func(lineno int, line string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(lineno, line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

// loadVerbs reads "form<TAB>canonical<TAB>category" rows. Canonical and
// category may be omitted.
func (lex *Lexicon) loadVerbs(path string) error {
	return forEachLine(path, func(lineno int, line string) error {
		parts := strings.Split(line, "\t")
		form := strings.TrimSpace(parts[0])
		if form == "" {
			return fmt.Errorf("%s:%d: empty verb form", path, lineno)
		}
		var canonical, category string
		if len(parts) > 1 {
			canonical = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			category = strings.TrimSpace(parts[2])
		}
		lex.AddVerb(form, canonical, category)
		return nil
	})
}

// loadConcepts reads "phrase<TAB>id<TAB>base<TAB>modifiers<TAB>category"
// rows. Every column after phrase may be omitted; modifiers are
// comma-separated; an omitted id derives from the phrase.
func (lex *Lexicon) loadConcepts(path string) error {
	return forEachLine(path, func(lineno int, line string) error {
		parts := strings.Split(line, "\t")
		phrase := strings.TrimSpace(parts[0])
		if phrase == "" {
			return fmt.Errorf("%s:%d: empty concept phrase", path, lineno)
		}
		col := func(i int) string {
			if i < len(parts) {
				return strings.TrimSpace(parts[i])
			}
			return ""
		}
		var mods []string
		for _, m := range strings.Split(col(3), ",") {
			if m = strings.TrimSpace(m); m != "" {
				mods = append(mods, m)
			}
		}
		lex.AddConcept(phrase, col(1), col(2), mods, col(4))
		return nil
	})
}

// loadConjunctions reads "form<TAB>kind<TAB>policy" rows. Kind defaults to
// coordinating and policy to cartesian; an unknown policy fails the load.
func (lex *Lexicon) loadConjunctions(path string) error {
	return forEachLine(path, func(lineno int, line string) error {
		parts := strings.Split(line, "\t")
		form := strings.TrimSpace(parts[0])
		if form == "" {
			return fmt.Errorf("%s:%d: empty conjunction form", path, lineno)
		}
		kind, policy := "coordinating", PolicyCartesian
		if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
			kind = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 && strings.TrimSpace(parts[2]) != "" {
			policy = strings.TrimSpace(parts[2])
		}
		switch policy {
		case PolicyCartesian, PolicyCompound, PolicyConditional:
		default:
			return fmt.Errorf("%s:%d: unknown conjunction policy %q", path, lineno, policy)
		}
		lex.AddConjunction(form, kind, policy)
		return nil
	})
}

// loadWordList reads one form per line into add.
func (lex *Lexicon) loadWordList(path string, add func(string)) error {
	return forEachLine(path, func(lineno int, line string) error {
		add(line)
		return nil
	})
}
