package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnumParsing(t *testing.T) {
	f, err := ParseFamily("crossword")
	require.NoError(t, err)
	require.Equal(t, FamilyCrossword, f)
	_, err = ParseFamily("maze")
	require.Error(t, err)

	d, err := ParseDifficulty("expert")
	require.NoError(t, err)
	require.Equal(t, Expert, d)
	_, err = ParseDifficulty("brutal")
	require.Error(t, err)
}

func TestSeverityBlocks(t *testing.T) {
	require.False(t, SeverityWarning.Blocks())
	require.True(t, SeverityError.Blocks())
	// Unknown severities stay on the blocking side.
	require.True(t, Severity(9).Blocks())
}

func TestPuzzleJSONRoundTrip(t *testing.T) {
	p := Puzzle{
		ID:         "crossword-7",
		Family:     FamilyCrossword,
		Difficulty: Hard,
		Seed:       7,
		CreatedAt:  123,
		Crossword: &CrosswordPayload{
			Size:     3,
			Grid:     []string{"...", "...", "..."},
			Solution: []string{"CAT", "ORE", "WEN"},
			Clues: []Clue{
				{Number: 1, Row: 0, Col: 0, Direction: Across, Length: 3},
				{Number: 1, Row: 0, Col: 0, Direction: Down, Length: 3},
			},
		},
	}
	data, err := json.Marshal(p)
	require.NoError(t, err)
	require.Contains(t, string(data), `"family":"crossword"`)
	require.Contains(t, string(data), `"difficulty":"hard"`)
	require.Contains(t, string(data), `"direction":"down"`)

	var got Puzzle
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, p, got)
}

func TestClueCount(t *testing.T) {
	var s SudokuPayload
	require.Zero(t, s.ClueCount())
	s.Givens[0][0] = 5
	s.Givens[8][8] = 1
	require.Equal(t, 2, s.ClueCount())
}

func TestFindingString(t *testing.T) {
	f := Finding{Severity: SeverityError, Category: "content", Message: "duplicate value 5 in clue grid row 0"}
	require.Equal(t, "ERROR [content] duplicate value 5 in clue grid row 0", f.String())
}

func TestReportCounts(t *testing.T) {
	r := Report{Findings: []Finding{
		{Severity: SeverityError},
		{Severity: SeverityWarning},
		{Severity: SeverityWarning},
	}}
	require.Equal(t, 1, r.ErrorCount())
	require.Equal(t, 2, r.WarningCount())
}
