package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}
	path := filepath.Join(t.TempDir(), "intakes.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestLoadIntakesDetectsColumnsByHeader(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Full Name", "Email", "Team", "Role", "Consent", "Interview Transcript", "Summary"},
		{"Jane Ops", "jane@example.com", "Finance", "Analyst", "yes", "Manual invoice chasing daily.", "Invoice friction"},
		{"", "", "", "", "", "", ""},
		{"Raj Patel", "raj@example.com", "", "", "no", "", "Weekly report compile takes 2 hours."},
	})

	intakes, err := LoadIntakes(path)
	require.NoError(t, err)
	require.Len(t, intakes, 2)

	first := intakes[0]
	assert.Equal(t, "Jane Ops", first.Respondent.Name)
	assert.Equal(t, "jane@example.com", first.Respondent.Email)
	assert.Equal(t, "Finance", first.Respondent.Team)
	assert.True(t, first.Respondent.Consent)
	assert.Equal(t, "Manual invoice chasing daily.", first.Transcript)
	assert.Equal(t, "Invoice friction", first.CallSummary)

	second := intakes[1]
	assert.Equal(t, "Unknown", second.Respondent.Team, "missing team defaults")
	assert.False(t, second.Respondent.Consent)
	assert.Empty(t, second.Transcript)
	assert.Equal(t, "Weekly report compile takes 2 hours.", second.CallSummary)
}

func TestLoadIntakesFallsBackToLastColumnForText(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Who", "Notes"},
		{"Jane", "Manual data entry wastes 30 minutes daily."},
	})

	intakes, err := LoadIntakes(path)
	require.NoError(t, err)
	require.Len(t, intakes, 1)
	assert.Equal(t, "Manual data entry wastes 30 minutes daily.", intakes[0].Transcript)
}

func TestLoadIntakesErrors(t *testing.T) {
	_, err := LoadIntakes(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)

	path := writeWorkbook(t, [][]any{{"Name", "Transcript"}})
	_, err = LoadIntakes(path)
	assert.Error(t, err)
}
