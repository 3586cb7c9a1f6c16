// Package signals holds the deterministic text heuristics that read a
// sentence of interview text and estimate the quantitative attributes
// of a pain point. Every function is pure: no state, no I/O.
package signals

import (
	"regexp"
	"strconv"
	"strings"

	"friction-finder-go/internal/types"
)

// FrictionHints is the vocabulary that marks a sentence as describing
// operational friction at all.
var FrictionHints = []string{
	"manual",
	"approval",
	"wait",
	"delay",
	"copy",
	"paste",
	"reconcile",
	"error",
	"chase",
	"follow up",
	"spreadsheet",
	"excel",
	"onboarding",
	"invoice",
	"quote",
	"status",
	"handoff",
}

type categoryKeywords struct {
	category types.PainCategory
	keywords []string
}

// Ordered: the first matching group wins.
var categoryTable = []categoryKeywords{
	{types.CategoryOnboarding, []string{"onboard", "new joiner", "provision", "training"}},
	{types.CategoryApprovals, []string{"approval", "sign off", "authorise", "authorize"}},
	{types.CategoryReporting, []string{"report", "dashboard", "kpi", "status update"}},
	{types.CategoryComms, []string{"slack", "email thread", "handoff", "communication"}},
	{types.CategoryFinanceOps, []string{"invoice", "expense", "purchase order", "budget", "finance"}},
	{types.CategorySalesOps, []string{"crm", "pipeline", "quote", "proposal", "salesforce", "hubspot"}},
	{types.CategoryClientOps, []string{"client", "account", "delivery", "qbr", "project status"}},
	{types.CategoryAccessMgmt, []string{"access", "permission", "sso", "jira admin", "okta"}},
}

type systemPattern struct {
	name string
	re   *regexp.Regexp
}

var systemTable = []systemPattern{
	{"Jira", regexp.MustCompile(`(?i)\bjira\b`)},
	{"Salesforce", regexp.MustCompile(`(?i)\bsalesforce\b`)},
	{"HubSpot", regexp.MustCompile(`(?i)\bhubspot\b`)},
	{"SAP", regexp.MustCompile(`(?i)\bsap\b`)},
	{"NetSuite", regexp.MustCompile(`(?i)\bnetsuite\b`)},
	{"Workday", regexp.MustCompile(`(?i)\bworkday\b`)},
	{"Slack", regexp.MustCompile(`(?i)\bslack\b`)},
	{"Teams", regexp.MustCompile(`(?i)\bteams\b`)},
	{"Excel", regexp.MustCompile(`(?i)\bexcel\b|\bspreadsheet\b`)},
	{"Google Sheets", regexp.MustCompile(`(?i)\bsheets\b`)},
	{"ServiceNow", regexp.MustCompile(`(?i)\bservicenow\b`)},
	{"Notion", regexp.MustCompile(`(?i)\bnotion\b`)},
}

var (
	timesPerWeekRE = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:times?)\s*(?:per|a)?\s*week`)
	slashWeekRE    = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*/\s*week`)
	dailyRE        = regexp.MustCompile(`(?i)daily|every day`)
	weeklyRE       = regexp.MustCompile(`(?i)weekly|once a week`)
	twiceWeekRE    = regexp.MustCompile(`(?i)twice a week`)

	minutesRE = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:minutes?|mins?)`)
	hoursRE   = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:hours?|hrs?)`)
	peopleRE  = regexp.MustCompile(`(?i)(\d+)\s*(?:people|engineers|analysts|consultants|team members|staff)`)

	wordSplitRE = regexp.MustCompile(`\s+`)
)

// Category returns the first category whose keyword group matches the
// text, defaulting to other.
func Category(text string) types.PainCategory {
	lowered := strings.ToLower(text)
	for _, entry := range categoryTable {
		for _, kw := range entry.keywords {
			if strings.Contains(lowered, kw) {
				return entry.category
			}
		}
	}
	return types.CategoryOther
}

// Systems returns the known system names mentioned in the text, in
// table order.
func Systems(text string) []string {
	var systems []string
	for _, sp := range systemTable {
		if sp.re.MatchString(text) {
			systems = append(systems, sp.name)
		}
	}
	return systems
}

// FrequencyPerWeek estimates how often the friction occurs. Defaults
// to 2.0, floored at 0.5.
func FrequencyPerWeek(text string) float64 {
	if m := timesPerWeekRE.FindStringSubmatch(text); m != nil {
		if f, err := strconv.ParseFloat(m[1], 64); err == nil {
			return max(0.5, f)
		}
	}
	if m := slashWeekRE.FindStringSubmatch(text); m != nil {
		if f, err := strconv.ParseFloat(m[1], 64); err == nil {
			return max(0.5, f)
		}
	}
	if dailyRE.MatchString(text) {
		return 5.0
	}
	if weeklyRE.MatchString(text) {
		return 1.0
	}
	if twiceWeekRE.MatchString(text) {
		return 2.0
	}
	return 2.0
}

// Minutes estimates the duration of one occurrence. Hours win over
// minutes; default 30.0.
func Minutes(text string) float64 {
	if m := hoursRE.FindStringSubmatch(text); m != nil {
		if f, err := strconv.ParseFloat(m[1], 64); err == nil {
			return f * 60
		}
	}
	if m := minutesRE.FindStringSubmatch(text); m != nil {
		if f, err := strconv.ParseFloat(m[1], 64); err == nil {
			return f
		}
	}
	return 30.0
}

// PeopleAffected estimates headcount: explicit "N people" style
// mentions win, then 4 if a team is mentioned, else 1.
func PeopleAffected(text string) int {
	if m := peopleRE.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return max(1, n)
		}
	}
	if strings.Contains(strings.ToLower(text), "team") {
		return 4
	}
	return 1
}

// TitleFromSentence derives a short title: the first eight tokens,
// trailing punctuation trimmed, first letter capitalized.
func TitleFromSentence(sentence string) string {
	words := wordSplitRE.Split(strings.TrimSpace(sentence), -1)
	var kept []string
	for _, w := range words {
		if w == "" {
			continue
		}
		kept = append(kept, w)
		if len(kept) == 8 {
			break
		}
	}
	base := strings.Trim(strings.Join(kept, " "), ".,;:-")
	if base == "" {
		return "Operational friction"
	}
	return strings.ToUpper(base[:1]) + base[1:]
}

// HasFrictionHint reports whether the sentence mentions any friction
// vocabulary at all.
func HasFrictionHint(sentence string) bool {
	lowered := strings.ToLower(sentence)
	for _, hint := range FrictionHints {
		if strings.Contains(lowered, hint) {
			return true
		}
	}
	return false
}
