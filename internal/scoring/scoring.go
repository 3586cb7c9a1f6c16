// Package scoring converts a pain point's attributes into an
// auditable score: impact, effort, confidence, priority, a remediation
// recommendation, and a quick-win flag. Scoring is deterministic given
// the pain point and the corpus repeat count; recomputing overwrites
// the previous score.
package scoring

import (
	"fmt"
	"math"
	"strings"
	"time"

	"friction-finder-go/internal/types"
)

// Corpus exposes the one sibling signal scoring needs: how many
// persisted pain points share a title, case-insensitively. The count
// includes the pain point being scored.
type Corpus interface {
	CountByTitle(title string) int
}

// Engine scores pain points against an injected quick-win threshold.
type Engine struct {
	QuickWinThresholdHours float64
}

func NewEngine(quickWinThresholdHours float64) Engine {
	return Engine{QuickWinThresholdHours: quickWinThresholdHours}
}

var highRiskTerms = []string{"compliance", "regulated", "security", "pii", "audit"}
var integrationTerms = []string{"auth", "authentication", "api", "sso", "integration", "mapping"}

var ownerByCategory = map[types.PainCategory]string{
	types.CategoryFinanceOps: "Finance Operations Lead",
	types.CategorySalesOps:   "Sales Operations Lead",
	types.CategoryClientOps:  "Client Services Lead",
	types.CategoryOnboarding: "People Operations Lead",
	types.CategoryAccessMgmt: "IT / Security Lead",
	types.CategoryReporting:  "Data & Insights Lead",
}

const defaultOwner = "COO / Operations Excellence"

// ImpactHoursPerWeek is the canonical cost measure:
// frequency x minutes / 60 x max(1, people), rounded to 2 decimals.
func ImpactHoursPerWeek(pp types.PainPoint) float64 {
	impact := pp.FrequencyPerWeek * pp.MinutesPerOccurrence / 60.0 * float64(max(1, pp.PeopleAffected))
	return round(impact, 2)
}

// EffortScore is a coarse delivery-complexity scale fixed to {2, 3, 5}.
func EffortScore(pp types.PainPoint) int {
	text := strings.ToLower(strings.Join([]string{
		pp.Title, pp.Description, pp.CurrentWorkaround, pp.FailureModes,
	}, " "))
	systemsCount := len(pp.SystemsInvolved)

	if systemsCount >= 4 || containsAny(text, highRiskTerms) {
		return 5
	}
	if systemsCount >= 2 || containsAny(text, integrationTerms) {
		return 3
	}
	return 2
}

// ConfidenceScore blends field completeness, corpus repetition, and
// description clarity into [0.1, 1.0].
func ConfidenceScore(pp types.PainPoint, corpus Corpus) float64 {
	fields := []bool{
		pp.Title != "",
		pp.Description != "",
		pp.FrequencyPerWeek > 0,
		pp.MinutesPerOccurrence > 0,
		pp.PeopleAffected > 0,
		len(pp.SystemsInvolved) > 0,
		pp.SuccessDefinition != "",
	}
	present := 0
	for _, ok := range fields {
		if ok {
			present++
		}
	}
	completeness := float64(present) / float64(len(fields))

	repeats := 1
	if corpus != nil {
		if n := corpus.CountByTitle(pp.Title); n > repeats {
			repeats = n
		}
	}
	repeatFactor := math.Min(1.0, float64(repeats)/3.0)

	clarityFactor := 0.6
	if len(strings.Fields(pp.Description)) >= 10 {
		clarityFactor = 1.0
	}

	confidence := 0.25 + 0.45*completeness + 0.2*repeatFactor + 0.1*clarityFactor
	return round(math.Min(1.0, math.Max(0.1, confidence)), 2)
}

// AutomationType classifies the remediation approach by keyword
// precedence on title+description.
func AutomationType(pp types.PainPoint, effortScore int) types.AutomationType {
	description := strings.ToLower(pp.Title + " " + pp.Description)
	switch {
	case strings.Contains(description, "approval") || strings.Contains(description, "workflow"):
		if effortScore <= 2 {
			return types.AutomationLowCode
		}
		return types.AutomationAPIIntegration
	case strings.Contains(description, "report") || pp.Category == types.CategoryReporting:
		return types.AutomationInternalTool
	case strings.Contains(description, "email") || strings.Contains(description, "summary") || strings.Contains(description, "draft"):
		return types.AutomationAIAssist
	case effortScore >= 5:
		return types.AutomationProcessChange
	}
	return types.AutomationAPIIntegration
}

// SuggestSolution returns the fixed remediation template for an
// automation type.
func SuggestSolution(pp types.PainPoint, automationType types.AutomationType) string {
	systems := "existing systems"
	if len(pp.SystemsInvolved) > 0 {
		systems = strings.Join(pp.SystemsInvolved, ", ")
	}
	switch automationType {
	case types.AutomationLowCode:
		return fmt.Sprintf("Build a low-code workflow for approvals and notifications across %s.", systems)
	case types.AutomationAPIIntegration:
		return fmt.Sprintf("Implement API integration and data mapping between %s.", systems)
	case types.AutomationAIAssist:
		return "Deploy AI-assisted triage/summarisation to reduce manual handling effort."
	case types.AutomationInternalTool:
		return "Build an internal operations dashboard with automated data pulls and alerts."
	}
	return "Redesign process ownership and controls before automating high-risk steps."
}

// SuggestOwner maps category to a suggested owning role.
func SuggestOwner(pp types.PainPoint) string {
	if owner, ok := ownerByCategory[pp.Category]; ok {
		return owner
	}
	return defaultOwner
}

// Score computes the full score record for a pain point. Calling it
// twice with unchanged inputs yields identical output apart from
// UpdatedAt.
func (e Engine) Score(pp types.PainPoint, corpus Corpus) types.Score {
	impact := ImpactHoursPerWeek(pp)
	effort := EffortScore(pp)
	confidence := ConfidenceScore(pp, corpus)
	priority := round(impact*confidence/float64(effort), 4)
	automationType := AutomationType(pp, effort)
	quickWin := effort <= 2 && impact >= e.QuickWinThresholdHours

	rationale := fmt.Sprintf(
		"Impact=%vh/week from frequency(%v) x duration(%vm) x people(%d). Confidence=%v from completeness/repeat signals; effort=%d based on systems complexity (%d systems).",
		impact, pp.FrequencyPerWeek, pp.MinutesPerOccurrence, max(1, pp.PeopleAffected),
		confidence, effort, len(pp.SystemsInvolved),
	)

	return types.Score{
		PainPointID:        pp.ID,
		ImpactHoursPerWeek: impact,
		EffortScore:        effort,
		ConfidenceScore:    confidence,
		PriorityScore:      priority,
		AutomationType:     automationType,
		SuggestedSolution:  SuggestSolution(pp, automationType),
		Dependencies:       strings.Join(pp.SystemsInvolved, ", "),
		OwnerSuggestion:    SuggestOwner(pp),
		QuickWin:           quickWin,
		Rationale:          rationale,
		UpdatedAt:          time.Now().UTC(),
	}
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func round(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
