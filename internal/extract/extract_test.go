package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friction-finder-go/internal/types"
)

func TestReadsOperationalSignalsFromTranscript(t *testing.T) {
	transcript := "We manually compile weekly status reports in Jira and Excel 8 times per week, " +
		"it takes 50 minutes each run for 4 people. " +
		"Access approvals in ServiceNow happen daily and each takes 20 minutes."

	items := PainPoints(transcript, "")
	require.GreaterOrEqual(t, len(items), 2)

	first := items[0]
	assert.GreaterOrEqual(t, first.FrequencyPerWeek, 8.0)
	assert.GreaterOrEqual(t, first.MinutesPerOccurrence, 50.0)
	assert.GreaterOrEqual(t, first.PeopleAffected, 4)
	assert.True(t, contains(first.SystemsInvolved, "Jira") || contains(first.SystemsInvolved, "Excel"))

	second := items[1]
	assert.Equal(t, 5.0, second.FrequencyPerWeek)
	assert.Equal(t, 20.0, second.MinutesPerOccurrence)
	assert.Contains(t, second.SystemsInvolved, "ServiceNow")
}

func TestFallsBackToSummary(t *testing.T) {
	summary := "Finance team spends 30 minutes on invoice approvals twice a week in NetSuite."
	items := PainPoints("", summary)

	require.Len(t, items, 1)
	assert.Contains(t, []types.PainCategory{
		types.CategoryFinanceOps, types.CategoryApprovals, types.CategoryOther,
	}, items[0].Category)
	assert.GreaterOrEqual(t, items[0].MinutesPerOccurrence, 30.0)
	assert.Equal(t, 2.0, items[0].FrequencyPerWeek)
}

func TestEmptyInputYieldsNothing(t *testing.T) {
	assert.Empty(t, PainPoints("", ""))
	assert.Empty(t, PainPoints("   ", "\n"))
}

func TestNoFrictionFallsBackToFirstChunk(t *testing.T) {
	items := PainPoints("Everything is wonderful here. Truly nothing to improve.", "")
	require.Len(t, items, 1)
	assert.Equal(t, "Everything is wonderful here", items[0].Title)
}

func TestDeterministicAcrossCalls(t *testing.T) {
	transcript := "Manual invoice reconciliation takes 40 minutes daily in NetSuite.\n" +
		"We chase approval sign off twice a week in Slack."

	first := PainPoints(transcript, "summary text")
	second := PainPoints(transcript, "summary text")
	assert.Equal(t, first, second)
}

func TestDeduplicatesByLoweredTitle(t *testing.T) {
	// same first eight tokens, different tails
	transcript := "Manual status report compilation in Excel is slow every week. " +
		"manual status report compilation in excel is slow every single day."

	items := PainPoints(transcript, "")
	require.Len(t, items, 1)
	assert.Equal(t, "Manual status report compilation in Excel is slow", items[0].Title)
}

func TestCapsCandidatesAtEight(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 12; i++ {
		fmt.Fprintf(&b, "Manual step number %d causes delay for the team. ", i)
	}
	items := PainPoints(b.String(), "")
	assert.Len(t, items, 8)
}

func TestPlaceholderFieldsAreSet(t *testing.T) {
	items := PainPoints("Manual data entry wastes time.", "")
	require.Len(t, items, 1)
	assert.NotEmpty(t, items[0].CurrentWorkaround)
	assert.NotEmpty(t, items[0].FailureModes)
	assert.NotEmpty(t, items[0].SuccessDefinition)
}

func contains(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}
