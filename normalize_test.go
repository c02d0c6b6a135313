package taskparse

import "testing"

func TestNormalizeStatement(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Develop   plans. ", "Develop plans"},
		{"Maintain records;", "Maintain records"},
		{"Operate", "Operate"},
		{"Review files..", "Review files."},
		{"", ""},
		{" . ", ""},
	}
	for _, tt := range tests {
		if got := normalizeStatement(tt.in); got != tt.want {
			t.Errorf("normalizeStatement(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTrimPunct(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"(now)", "now"},
		{"motors.", "motors"},
		{"and/or", "and/or"},
		{"risk-based", "risk-based"},
		{",", ""},
		{"valves,", "valves"},
	}
	for _, tt := range tests {
		if got := trimPunct(tt.in); got != tt.want {
			t.Errorf("trimPunct(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsGerund(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"training", true},
		{"Loading", true},
		{"processing", true},
		{"sing", false},
		{"bring", false},
		{"machine", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isGerund(tt.in); got != tt.want {
			t.Errorf("isGerund(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPascalWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"company's", "Company"},
		{"risk-based", "RiskBased"},
		{"(now)", "Now"},
		{"motors.", "Motors"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := pascalWord(tt.in); got != tt.want {
			t.Errorf("pascalWord(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := pascalWords([]string{"hand", "tools"}); got != "HandTools" {
		t.Errorf("pascalWords = %q, want %q", got, "HandTools")
	}
}

func TestJoinNonEmpty(t *testing.T) {
	if got := joinNonEmpty("Develop", "", "plans"); got != "Develop plans" {
		t.Errorf("joinNonEmpty = %q, want %q", got, "Develop plans")
	}
	if got := joinNonEmpty("", ""); got != "" {
		t.Errorf("joinNonEmpty of empties = %q, want empty", got)
	}
}
