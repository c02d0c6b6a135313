package taskparse

import (
	"fmt"
	"strings"
	"testing"
)

func TestUnknownWordsRecord(t *testing.T) {
	p := NewDefault()
	u := NewUnknownWords()
	u.Record(nil)
	u.Record(p.Parse("Develop or implement plans for sustainable regeneration"))
	if got := u.Len(); got != 3 {
		t.Fatalf("Len = %d, want 3 distinct words", got)
	}
	want := "word\tfrequency\tsuggested_pos\n" +
		"plans\t2\tverb\n" +
		"regeneration\t2\tverb\n" +
		"sustainable\t2\tverb\n"
	if got := u.Report(); got != want {
		t.Errorf("Report =\n%q\nwant\n%q", got, want)
	}
}

func TestUnknownWordsAdd(t *testing.T) {
	u := NewUnknownWords()
	u.Add("Algeria", "valves", "Algeria", "")
	if got := u.Len(); got != 2 {
		t.Fatalf("Len = %d, want 2", got)
	}
	want := "word\tfrequency\tsuggested_pos\n" +
		"Algeria\t2\tnoun\n" +
		"valves\t1\tverb\n"
	if got := u.Report(); got != want {
		t.Errorf("Report =\n%q\nwant\n%q", got, want)
	}
}

func TestUnknownWordsReportCap(t *testing.T) {
	u := NewUnknownWords()
	for i := 0; i < 150; i++ {
		u.Add(fmt.Sprintf("word%03d", i))
	}
	report := u.Report()
	if got := strings.Count(report, "\n"); got != maxReportRows+1 {
		t.Errorf("report has %d lines, want %d rows plus header", got, maxReportRows)
	}
	if !strings.HasPrefix(report, "word\tfrequency\tsuggested_pos\n") {
		t.Errorf("report header missing: %q", report[:40])
	}
}
