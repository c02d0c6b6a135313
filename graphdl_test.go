package taskparse

import (
	"strings"
	"testing"
)

func TestToGraphDLLeaf(t *testing.T) {
	p := NewDefault()
	tests := []struct {
		in   string
		want string
	}{
		{
			"Develop plans for sustainable regeneration.",
			"develop.Plans.for.SustainableRegeneration",
		},
		{"Maintain equipment", "maintain.Equipment"},
		{"Analyze data", "analyze.Data"},
		{"Train employees to operate equipment", "train.Employees.to.operate.Equipment"},
		{"Train staff to negotiate", "train.Staff.to.negotiate"},
		{"Train staff to texturize fabrics", "train.Staff.to.texturize.Fabrics"},
		{"Commit to recycling programs", "commit.to.RecyclingPrograms"},
		{"Report on quality of customer service", "report.on.Quality.of.CustomerService"},
		{"Confer with managers to develop plans", "confer.with.Managers.to.develop.Plans"},
		{
			"Direct activities of businesses concerned with production",
			"direct.Activities.of.Businesses.concerned.with.Production",
		},
		{"Review company's policies", "review.CompanyPolicies"},
		{"Improve customer service", "improve.CustomerService"},
	}
	for _, tt := range tests {
		if got := p.ParseToGraphDL(tt.in); got != tt.want {
			t.Errorf("ParseToGraphDL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToGraphDLBracketed(t *testing.T) {
	p := NewDefault()
	tests := []struct {
		in   string
		want string
	}{
		{
			"Develop or implement plans for sustainable regeneration",
			"[develop.Plans.for.SustainableRegeneration, implement.Plans.for.SustainableRegeneration]",
		},
		{
			"Analyze sales/marketing data",
			"[analyze.SalesData, analyze.MarketingData]",
		},
		{
			"Improve filing and record keeping",
			"[improve.Filing, improve.RecordKeeping]",
		},
		{
			"Maintain equipment such as pumps, valves, and motors",
			"[maintain.Equipment, maintain.Pumps, maintain.Valves, maintain.Motors]",
		},
		{
			"Prepare or file reports on findings or recommendations",
			"[prepare.Reports.on.Findings, prepare.Reports.on.Recommendations, " +
				"file.Reports.on.Findings, file.Reports.on.Recommendations]",
		},
		{
			"Direct or coordinate activities of businesses or departments concerned with production",
			"[direct.Activities.of.Businesses.concerned.with.Production, " +
				"direct.Activities.of.Departments.concerned.with.Production, " +
				"coordinate.Activities.of.Businesses.concerned.with.Production, " +
				"coordinate.Activities.of.Departments.concerned.with.Production]",
		},
	}
	for _, tt := range tests {
		got := p.ParseToGraphDL(tt.in)
		if got != tt.want {
			t.Errorf("ParseToGraphDL(%q) =\n  %q\nwant\n  %q", tt.in, got, tt.want)
		}
		if strings.Contains(got, ",") && (!strings.HasPrefix(got, "[") || !strings.HasSuffix(got, "]")) {
			t.Errorf("ParseToGraphDL(%q) = %q contains commas outside brackets", tt.in, got)
		}
	}
}

func TestToGraphDLNested(t *testing.T) {
	p := NewDefault()
	got := p.ParseToGraphDL("Collect, analyze, and report data or samples")
	want := "[[collect.Data, collect.Samples], [analyze.Data, analyze.Samples], " +
		"[report.Data, report.Samples]]"
	if got != want {
		t.Errorf("nested serialization =\n  %q\nwant\n  %q", got, want)
	}
}

func TestToGraphDLEmpty(t *testing.T) {
	p := NewDefault()
	if got := p.ToGraphDL(nil); got != "" {
		t.Errorf("ToGraphDL(nil) = %q, want empty", got)
	}
	if got := p.ParseToGraphDL(""); got != "" {
		t.Errorf("ParseToGraphDL(\"\") = %q, want empty", got)
	}
}

func TestToGraphDLSlotlessLeaf(t *testing.T) {
	p := NewDefault()
	st := &ParsedStatement{Original: "record keeping"}
	if got := p.ToGraphDL(st); got != "RecordKeeping" {
		t.Errorf("ToGraphDL(slotless leaf) = %q, want %q", got, "RecordKeeping")
	}
}

func TestPhrasePath(t *testing.T) {
	p := NewDefault()
	tests := []struct {
		in   string
		want string
	}{
		{"pumps and valves", "PumpsValves"},
		{"quality of customer service", "Quality.of.CustomerService"},
		{"the new programs", "NewPrograms"},
		{"sales, marketing", "SalesMarketing"},
		{"company's policies", "CompanyPolicies"},
	}
	for _, tt := range tests {
		if got := p.phrasePath(tt.in); got != tt.want {
			t.Errorf("phrasePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsInfinitive(t *testing.T) {
	p := NewDefault()
	tests := []struct {
		in   string
		want bool
	}{
		{"operate", true},
		{"reduce", true},
		{"texturize", true},
		{"classify", true},
		{"renovate", true},
		{"recycling", false},
		{"equipment", false},
		{"base", false},
	}
	for _, tt := range tests {
		if got := p.isInfinitive(tt.in); got != tt.want {
			t.Errorf("isInfinitive(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
