package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friction-finder-go/internal/types"
)

type fixedCorpus int

func (c fixedCorpus) CountByTitle(string) int { return int(c) }

func painPoint() types.PainPoint {
	return types.PainPoint{
		CanonicalPainPoint: types.CanonicalPainPoint{
			Title:                "Manual reporting",
			Description:          "Weekly manual reporting in Excel",
			Category:             types.CategoryReporting,
			FrequencyPerWeek:     10,
			MinutesPerOccurrence: 30,
			PeopleAffected:       4,
			SystemsInvolved:      []string{"Excel", "Jira"},
		},
	}
}

func TestImpactFormula(t *testing.T) {
	pp := painPoint()
	assert.Equal(t, 20.0, ImpactHoursPerWeek(pp))

	pp.FrequencyPerWeek = 20
	pp.PeopleAffected = 2
	assert.Equal(t, 20.0, ImpactHoursPerWeek(pp))

	// people floored at 1
	pp.PeopleAffected = 0
	assert.Equal(t, 10.0, ImpactHoursPerWeek(pp))
}

func TestEffortScoreTiers(t *testing.T) {
	pp := painPoint()
	pp.SystemsInvolved = nil
	pp.Description = "retype numbers into a sheet by hand"
	pp.Title = "Retyping numbers"
	assert.Equal(t, 2, EffortScore(pp))

	pp.SystemsInvolved = []string{"Excel", "Jira"}
	assert.Equal(t, 3, EffortScore(pp))

	pp.SystemsInvolved = nil
	pp.Description = "needs an API integration with SSO"
	assert.Equal(t, 3, EffortScore(pp))

	pp.SystemsInvolved = []string{"Excel", "Jira", "Slack", "Workday"}
	assert.Equal(t, 5, EffortScore(pp))

	pp.SystemsInvolved = nil
	pp.Description = "regulated data with an audit trail"
	assert.Equal(t, 5, EffortScore(pp))
}

func TestEffortScoreStaysInFixedSet(t *testing.T) {
	texts := []string{
		"", "manual", "api", "compliance", "zapier sheet",
		"approval workflow with security review",
	}
	for _, text := range texts {
		pp := painPoint()
		pp.Description = text
		effort := EffortScore(pp)
		assert.Contains(t, []int{2, 3, 5}, effort, "text=%q", text)
	}
}

func TestConfidenceScoreBounds(t *testing.T) {
	empty := types.PainPoint{}
	low := ConfidenceScore(empty, fixedCorpus(0))
	assert.GreaterOrEqual(t, low, 0.1)

	full := painPoint()
	full.SuccessDefinition = "One source of truth"
	full.Description = "Weekly manual reporting in Excel across four different delivery teams every Friday"
	high := ConfidenceScore(full, fixedCorpus(9))
	assert.LessOrEqual(t, high, 1.0)
	assert.Greater(t, high, low)
}

func TestConfidenceRepeatSignal(t *testing.T) {
	pp := painPoint()
	single := ConfidenceScore(pp, fixedCorpus(1))
	tripled := ConfidenceScore(pp, fixedCorpus(3))
	assert.Greater(t, tripled, single)

	// corpus count never drops below the self-match
	floor := ConfidenceScore(pp, fixedCorpus(0))
	assert.Equal(t, single, floor)
}

func TestScoreScenarioTwoSystems(t *testing.T) {
	engine := NewEngine(5.0)
	pp := types.PainPoint{
		CanonicalPainPoint: types.CanonicalPainPoint{
			Title:                "Invoice approval delays",
			Description:          "Invoice approval takes 30 minutes 20 times a week for 2 people",
			Category:             types.CategoryApprovals,
			FrequencyPerWeek:     20,
			MinutesPerOccurrence: 30,
			PeopleAffected:       2,
			SystemsInvolved:      []string{"NetSuite", "Outlook"},
			SuccessDefinition:    "Approval in one place",
		},
	}

	score := engine.Score(pp, fixedCorpus(1))
	assert.Equal(t, 20.0, score.ImpactHoursPerWeek)
	assert.Equal(t, 3, score.EffortScore)
	assert.Greater(t, score.PriorityScore, 0.0)
	assert.False(t, score.QuickWin)
	assert.NotEmpty(t, score.Rationale)
	assert.Equal(t, "NetSuite, Outlook", score.Dependencies)
}

func TestQuickWinBoundaryIsInclusive(t *testing.T) {
	engine := NewEngine(5.0)
	pp := types.PainPoint{
		CanonicalPainPoint: types.CanonicalPainPoint{
			Title:                "Retyping numbers",
			Description:          "retype numbers into a sheet by hand",
			Category:             types.CategoryOther,
			FrequencyPerWeek:     10,
			MinutesPerOccurrence: 30,
			PeopleAffected:       1,
		},
	}

	score := engine.Score(pp, fixedCorpus(1))
	require.Equal(t, 2, score.EffortScore)
	require.Equal(t, 5.0, score.ImpactHoursPerWeek)
	assert.True(t, score.QuickWin)

	pp.MinutesPerOccurrence = 29
	score = engine.Score(pp, fixedCorpus(1))
	assert.False(t, score.QuickWin)
}

func TestAutomationTypePrecedence(t *testing.T) {
	pp := painPoint()

	pp.Title = "Approval chasing"
	pp.Description = "approval threads"
	assert.Equal(t, types.AutomationLowCode, AutomationType(pp, 2))
	assert.Equal(t, types.AutomationAPIIntegration, AutomationType(pp, 3))

	pp.Title = "Status reports"
	pp.Description = "weekly report compile"
	assert.Equal(t, types.AutomationInternalTool, AutomationType(pp, 3))

	pp.Title = "Inbox triage"
	pp.Description = "drafting email replies"
	pp.Category = types.CategoryComms
	assert.Equal(t, types.AutomationAIAssist, AutomationType(pp, 3))

	pp.Title = "Vendor onboarding"
	pp.Description = "cross-system vendor setup"
	pp.Category = types.CategoryOnboarding
	assert.Equal(t, types.AutomationProcessChange, AutomationType(pp, 5))
	assert.Equal(t, types.AutomationAPIIntegration, AutomationType(pp, 3))
}

func TestOwnerSuggestion(t *testing.T) {
	pp := painPoint()
	pp.Category = types.CategoryFinanceOps
	assert.Equal(t, "Finance Operations Lead", SuggestOwner(pp))
	pp.Category = types.CategoryOther
	assert.Equal(t, "COO / Operations Excellence", SuggestOwner(pp))
}

func TestScoreRecomputeIsStable(t *testing.T) {
	engine := NewEngine(5.0)
	pp := painPoint()
	a := engine.Score(pp, fixedCorpus(2))
	b := engine.Score(pp, fixedCorpus(2))
	a.UpdatedAt = b.UpdatedAt
	assert.Equal(t, a, b)
}
