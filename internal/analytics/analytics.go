// Package analytics aggregates scored pain points into the dashboard
// view: totals, category counts, a team heatmap, the priority-ranked
// backlog, and flagged quick wins.
package analytics

import (
	"math"
	"sort"

	"friction-finder-go/internal/store"
	"friction-finder-go/internal/types"
)

const backlogLimit = 10

type CategoryCount struct {
	Category types.PainCategory `json:"category"`
	Count    int                `json:"count"`
}

type TeamHeatmapRow struct {
	Team       string         `json:"team"`
	Categories map[string]int `json:"categories"`
	Total      int            `json:"total"`
}

type BacklogItem struct {
	PainPointID        string               `json:"pain_point_id"`
	Title              string               `json:"title"`
	Team               string               `json:"team"`
	Category           types.PainCategory   `json:"category"`
	ImpactHoursPerWeek float64              `json:"impact_hours_per_week"`
	EffortScore        int                  `json:"effort_score"`
	ConfidenceScore    float64              `json:"confidence_score"`
	PriorityScore      float64              `json:"priority_score"`
	AutomationType     types.AutomationType `json:"automation_type"`
	SuggestedSolution  string               `json:"suggested_solution"`
	OwnerSuggestion    string               `json:"owner_suggestion"`
	QuickWin           bool                 `json:"quick_win"`
}

// ActionCard is the one-line takeaway for the dashboard header.
type ActionCard struct {
	Insight string `json:"insight"`
	Action  string `json:"action"`
	Impact  string `json:"impact"`
}

type Dashboard struct {
	TotalPainPoints   int              `json:"total_pain_points"`
	TotalHoursPerWeek float64          `json:"total_hours_per_week"`
	TopCategories     []CategoryCount  `json:"top_categories"`
	TeamHeatmap       []TeamHeatmapRow `json:"team_heatmap"`
	TopBacklog        []BacklogItem    `json:"top_backlog"`
	QuickWins         []BacklogItem    `json:"quick_wins"`
	ActionCard        ActionCard       `json:"action_card"`
}

// Summarize builds the dashboard from scored pain points.
func Summarize(scored []store.ScoredPainPoint) Dashboard {
	totalHours := 0.0
	categoryCounts := map[types.PainCategory]int{}
	heatmap := map[string]map[string]int{}

	for _, sp := range scored {
		if sp.Score != nil {
			totalHours += sp.Score.ImpactHoursPerWeek
		}
		categoryCounts[sp.PainPoint.Category]++
		if heatmap[sp.Team] == nil {
			heatmap[sp.Team] = map[string]int{}
		}
		heatmap[sp.Team][string(sp.PainPoint.Category)]++
	}

	var topCategories []CategoryCount
	for category, count := range categoryCounts {
		topCategories = append(topCategories, CategoryCount{Category: category, Count: count})
	}
	sort.Slice(topCategories, func(i, j int) bool {
		if topCategories[i].Count != topCategories[j].Count {
			return topCategories[i].Count > topCategories[j].Count
		}
		return topCategories[i].Category < topCategories[j].Category
	})
	if len(topCategories) > 8 {
		topCategories = topCategories[:8]
	}

	var teamHeatmap []TeamHeatmapRow
	for team, counts := range heatmap {
		total := 0
		for _, c := range counts {
			total += c
		}
		teamHeatmap = append(teamHeatmap, TeamHeatmapRow{Team: team, Categories: counts, Total: total})
	}
	sort.Slice(teamHeatmap, func(i, j int) bool {
		if teamHeatmap[i].Total != teamHeatmap[j].Total {
			return teamHeatmap[i].Total > teamHeatmap[j].Total
		}
		return teamHeatmap[i].Team < teamHeatmap[j].Team
	})

	// scored input is already priority-sorted by the store
	var backlog []BacklogItem
	var quickWins []BacklogItem
	for _, sp := range scored {
		if sp.Score == nil {
			continue
		}
		item := BacklogItem{
			PainPointID:        sp.PainPoint.ID,
			Title:              sp.PainPoint.Title,
			Team:               sp.Team,
			Category:           sp.PainPoint.Category,
			ImpactHoursPerWeek: sp.Score.ImpactHoursPerWeek,
			EffortScore:        sp.Score.EffortScore,
			ConfidenceScore:    sp.Score.ConfidenceScore,
			PriorityScore:      sp.Score.PriorityScore,
			AutomationType:     sp.Score.AutomationType,
			SuggestedSolution:  sp.Score.SuggestedSolution,
			OwnerSuggestion:    sp.Score.OwnerSuggestion,
			QuickWin:           sp.Score.QuickWin,
		}
		if len(backlog) < backlogLimit {
			backlog = append(backlog, item)
			if item.QuickWin {
				quickWins = append(quickWins, item)
			}
		}
	}

	return Dashboard{
		TotalPainPoints:   len(scored),
		TotalHoursPerWeek: math.Round(totalHours*100) / 100,
		TopCategories:     topCategories,
		TeamHeatmap:       teamHeatmap,
		TopBacklog:        backlog,
		QuickWins:         quickWins,
		ActionCard:        actionCard(teamHeatmap, backlog),
	}
}

func actionCard(heatmap []TeamHeatmapRow, backlog []BacklogItem) ActionCard {
	if len(backlog) == 0 {
		return ActionCard{
			Insight: "No scored pain points yet",
			Action:  "Run more interviews and collect intake submissions",
			Impact:  "Low immediate intervention",
		}
	}

	top := backlog[0]
	card := ActionCard{
		Insight: "Highest friction: " + top.Title,
		Action:  top.SuggestedSolution,
		Impact:  top.OwnerSuggestion,
	}
	if len(heatmap) > 0 && heatmap[0].Total >= 3 {
		card.Insight = "Heaviest friction sits with the " + heatmap[0].Team + " team; top item: " + top.Title
	}
	return card
}
