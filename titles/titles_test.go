package titles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand_Simple(t *testing.T) {
	got := Expand("Electricians")

	require.Len(t, got, 1)
	assert.Equal(t, "Electricians", got[0])
}

func TestExpand_Blank(t *testing.T) {
	assert.Empty(t, Expand(""))
	assert.Empty(t, Expand("   "))
}

func TestExpand_TrailingQualifier(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Engineers, Civil", "Civil Engineers"},
		{"Teachers, Postsecondary", "Postsecondary Teachers"},
		{"Dancers, Ballet", "Ballet Dancers"},
	}
	for _, tt := range tests {
		got := Expand(tt.title)

		require.Len(t, got, 1, "title %q", tt.title)
		assert.Equal(t, tt.want, got[0])
	}
}

func TestExpand_QualifierAlternation(t *testing.T) {
	got := Expand("Sales Representatives, Wholesale and Manufacturing")

	require.Len(t, got, 2)
	assert.Equal(t, "Wholesale Sales Representatives", got[0])
	assert.Equal(t, "Manufacturing Sales Representatives", got[1])
}

func TestExpand_SharedHeadEnumeration(t *testing.T) {
	got := Expand("Painting, Coating, and Decorating Workers")

	require.Len(t, got, 3)
	assert.Equal(t, []string{
		"Painting Workers",
		"Coating Workers",
		"Decorating Workers",
	}, got)
}

func TestExpand_PlainEnumeration(t *testing.T) {
	// Every item carries its own head, so nothing is distributed.
	got := Expand("Lawyers, Judges, and Magistrates")

	assert.Equal(t, []string{"Lawyers", "Judges", "Magistrates"}, got)
}

func TestExpand_SlashParallelHeads(t *testing.T) {
	got := Expand("First-Line Supervisors/Managers of Construction Trades Workers")

	require.Len(t, got, 2)
	assert.Equal(t, "First-Line Supervisors of Construction Trades Workers", got[0])
	assert.Equal(t, "First-Line Managers of Construction Trades Workers", got[1])
}

func TestExpand_SlashFreshTitle(t *testing.T) {
	// "Administrative" is a modifier, not a parallel head: the right side
	// claims the trailing words and the left side stands alone.
	got := Expand("Secretaries/Administrative Assistants")

	require.Len(t, got, 2)
	assert.Equal(t, "Secretaries", got[0])
	assert.Equal(t, "Administrative Assistants", got[1])
}

func TestExpand_ConjunctionSharedSuffix(t *testing.T) {
	got := Expand("Farm and Home Management Advisors")

	require.Len(t, got, 2)
	assert.Equal(t, "Farm Management Advisors", got[0])
	assert.Equal(t, "Home Management Advisors", got[1])
}

func TestExpand_ConjunctionBare(t *testing.T) {
	got := Expand("Painters and Paperhangers")

	assert.Equal(t, []string{"Painters", "Paperhangers"}, got)
}

func TestExpand_AllOtherPassthrough(t *testing.T) {
	got := Expand("Managers, All Other")

	require.Len(t, got, 1)
	assert.Equal(t, "Managers, All Other", got[0])
}

func TestExpand_ExceptClausePreserved(t *testing.T) {
	got := Expand("Teacher Assistants, Except Postsecondary")

	require.Len(t, got, 1)
	assert.Equal(t, "Teacher Assistants, Except Postsecondary", got[0])
}

func TestExpand_ExceptClauseReattached(t *testing.T) {
	// The clause rides along on every expansion and its own conjunction
	// never splits.
	got := Expand("Painters and Paperhangers, Except Construction and Maintenance")

	require.Len(t, got, 2)
	assert.Equal(t, "Painters, Except Construction and Maintenance", got[0])
	assert.Equal(t, "Paperhangers, Except Construction and Maintenance", got[1])
}

func TestExpand_SlashThenQualifier(t *testing.T) {
	got := Expand("Supervisors/Managers, First-Line")

	require.Len(t, got, 2)
	assert.Equal(t, "First-Line Supervisors", got[0])
	assert.Equal(t, "First-Line Managers", got[1])
}

func TestExpand_CollapsesWhitespace(t *testing.T) {
	got := Expand("  Engineers,   Civil ")

	require.Len(t, got, 1)
	assert.Equal(t, "Civil Engineers", got[0])
}
