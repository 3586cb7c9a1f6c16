package types

import "time"

// Persisted record shapes. IDs are assigned by the store, never by
// the analysis core.

type Respondent struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Team     string `json:"team"`
	Role     string `json:"role"`
	Location string `json:"location,omitempty"`
	Consent  bool   `json:"consent"`
}

type Interview struct {
	ID                 string         `json:"id"`
	RespondentID       string         `json:"respondent_id"`
	Channel            Channel        `json:"channel"`
	StartedAt          *time.Time     `json:"started_at,omitempty"`
	EndedAt            *time.Time     `json:"ended_at,omitempty"`
	TranscriptRaw      string         `json:"transcript_raw,omitempty"`
	TranscriptRedacted string         `json:"transcript_redacted,omitempty"`
	SummaryText        string         `json:"summary_text"`
	Metadata           map[string]any `json:"metadata,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
}

type PainPoint struct {
	ID          string    `json:"id"`
	InterviewID string    `json:"interview_id"`
	CanonicalPainPoint
	CreatedAt   time.Time `json:"created_at"`
}

// Score is derived 1:1 from a pain point and overwritten on every
// recompute.
type Score struct {
	PainPointID        string         `json:"pain_point_id"`
	ImpactHoursPerWeek float64        `json:"impact_hours_per_week"`
	EffortScore        int            `json:"effort_score"`
	ConfidenceScore    float64        `json:"confidence_score"`
	PriorityScore      float64        `json:"priority_score"`
	AutomationType     AutomationType `json:"automation_type"`
	SuggestedSolution  string         `json:"suggested_solution"`
	Dependencies       string         `json:"dependencies,omitempty"`
	OwnerSuggestion    string         `json:"owner_suggestion"`
	QuickWin           bool           `json:"quick_win"`
	Rationale          string         `json:"rationale"`
	UpdatedAt          time.Time      `json:"updated_at"`
}
