package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friction-finder-go/internal/store"
	"friction-finder-go/internal/types"
)

func scoredPoint(id, team string, category types.PainCategory, priority, impact float64, quickWin bool) store.ScoredPainPoint {
	return store.ScoredPainPoint{
		PainPoint: types.PainPoint{
			ID: id,
			CanonicalPainPoint: types.CanonicalPainPoint{
				Title:    "pp-" + id,
				Category: category,
			},
		},
		Score: &types.Score{
			PainPointID:        id,
			ImpactHoursPerWeek: impact,
			PriorityScore:      priority,
			EffortScore:        2,
			QuickWin:           quickWin,
			SuggestedSolution:  "do the thing",
			OwnerSuggestion:    "someone",
		},
		Team: team,
	}
}

func TestSummarizeTotalsAndCategories(t *testing.T) {
	scored := []store.ScoredPainPoint{
		scoredPoint("1", "Finance", types.CategoryApprovals, 9.0, 12.0, true),
		scoredPoint("2", "Finance", types.CategoryApprovals, 4.0, 6.5, false),
		scoredPoint("3", "Engineering", types.CategoryAccessMgmt, 2.0, 3.0, false),
	}

	d := Summarize(scored)

	assert.Equal(t, 3, d.TotalPainPoints)
	assert.Equal(t, 21.5, d.TotalHoursPerWeek)
	require.NotEmpty(t, d.TopCategories)
	assert.Equal(t, types.CategoryApprovals, d.TopCategories[0].Category)
	assert.Equal(t, 2, d.TopCategories[0].Count)

	require.Len(t, d.TeamHeatmap, 2)
	assert.Equal(t, "Finance", d.TeamHeatmap[0].Team)
	assert.Equal(t, 2, d.TeamHeatmap[0].Total)
}

func TestSummarizeBacklogAndQuickWins(t *testing.T) {
	var scored []store.ScoredPainPoint
	// already priority-sorted, as the store returns it
	scored = append(scored, scoredPoint("a", "Finance", types.CategoryApprovals, 9.0, 12.0, true))
	for i := 0; i < 12; i++ {
		scored = append(scored, scoredPoint(string(rune('b'+i)), "Ops", types.CategoryOther, 1.0, 1.0, false))
	}

	d := Summarize(scored)
	require.Len(t, d.TopBacklog, 10)
	assert.Equal(t, "a", d.TopBacklog[0].PainPointID)
	require.Len(t, d.QuickWins, 1)
	assert.Equal(t, "a", d.QuickWins[0].PainPointID)
}

func TestSummarizeEmptyCorpus(t *testing.T) {
	d := Summarize(nil)
	assert.Equal(t, 0, d.TotalPainPoints)
	assert.Equal(t, "No scored pain points yet", d.ActionCard.Insight)
}

func TestActionCardNamesHeaviestTeam(t *testing.T) {
	scored := []store.ScoredPainPoint{
		scoredPoint("1", "Finance", types.CategoryApprovals, 9.0, 12.0, false),
		scoredPoint("2", "Finance", types.CategoryFinanceOps, 5.0, 6.0, false),
		scoredPoint("3", "Finance", types.CategoryReporting, 3.0, 2.0, false),
		scoredPoint("4", "Engineering", types.CategoryAccessMgmt, 2.0, 3.0, false),
	}

	d := Summarize(scored)
	assert.Contains(t, d.ActionCard.Insight, "Finance")
	assert.Contains(t, d.ActionCard.Insight, "pp-1")
}
