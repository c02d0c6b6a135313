package taskparse

import "strings"

// extractSlots runs the slot state machine over tagged tokens and builds a
// leaf for original. Stages: lead-in (skip to the first verb, collecting
// modifiers), predicate, object (until a preposition), preposition, then
// complement. A terminal mark mid-phrase halts extraction where it stands.
func (p *Parser) extractSlots(original string, toks []Token) *ParsedStatement {
	st := &ParsedStatement{Original: original, Confidence: 1.0}
	i, halted := 0, false

	for i < len(toks) && !toks[i].Tag.IsVerb() {
		if toks[i].Tag == TagAdverb || toks[i].Tag == TagAdjective {
			st.Modifiers = append(st.Modifiers, toks[i].Norm)
		}
		i++
	}
	if i < len(toks) {
		st.Predicate = toks[i].Text
		i++
	}

	var obj []string
	for i < len(toks) {
		t := toks[i]
		if isTerminal(t) {
			halted = true
			break
		}
		if t.Tag == TagPreposition {
			break
		}
		i++
		if t.Tag == TagDeterminer || t.Norm == "," {
			continue
		}
		obj = append(obj, t.Text)
	}
	st.Object = strings.Join(obj, " ")

	if !halted && i < len(toks) && toks[i].Tag == TagPreposition {
		st.Preposition = toks[i].Norm
		i++
		for i < len(toks) {
			t := toks[i]
			if t.Tag == TagDeterminer {
				i++
				continue
			}
			if t.Tag == TagAdverb || t.Tag == TagAdjective {
				st.Modifiers = append(st.Modifiers, t.Norm)
				i++
				continue
			}
			break
		}
		var comp []string
		for i < len(toks) {
			t := toks[i]
			if isTerminal(t) {
				break
			}
			i++
			if t.Tag == TagDeterminer {
				continue
			}
			comp = append(comp, t.Text)
		}
		st.Complement = strings.Join(comp, " ")
	}

	// Unclassified lowercase words are read as imperatives and cost nothing;
	// only tokens the tagger rejected outright dent the confidence score.
	unknown := 0
	for _, t := range toks {
		if t.Tag.IsUnclassified() {
			st.UnknownWords = append(st.UnknownWords, t.Text)
		}
		if t.Tag == TagUnknown {
			unknown++
		}
	}
	st.Confidence = 1 - 0.1*float64(unknown)
	return st
}
