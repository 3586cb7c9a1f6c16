package types

import "time"

// CanonicalRespondent is the normalized view of whoever gave the
// interview. Consent gates whether raw transcript text may be stored.
type CanonicalRespondent struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Team     string `json:"team"`
	Role     string `json:"role"`
	Location string `json:"location,omitempty"`
	Consent  bool   `json:"consent"`
}

// CanonicalPainPoint is one discrete unit of operational friction.
type CanonicalPainPoint struct {
	Title                string       `json:"title"`
	Description          string       `json:"description"`
	Category             PainCategory `json:"category"`
	FrequencyPerWeek     float64      `json:"frequency_per_week"`
	MinutesPerOccurrence float64      `json:"minutes_per_occurrence"`
	PeopleAffected       int          `json:"people_affected"`
	SystemsInvolved      []string     `json:"systems_involved"`
	CurrentWorkaround    string       `json:"current_workaround,omitempty"`
	FailureModes         string       `json:"failure_modes,omitempty"`
	SuccessDefinition    string       `json:"success_definition,omitempty"`
	SensitiveFlag        bool         `json:"sensitive_flag"`
	RedactionNotes       string       `json:"redaction_notes,omitempty"`
}

// CanonicalIntake is the one shape every channel payload is mapped
// into before extraction and scoring. Built once per intake event by
// an adapter and consumed exactly once by the ingestion service.
type CanonicalIntake struct {
	Channel             Channel              `json:"channel"`
	Respondent          CanonicalRespondent  `json:"respondent"`
	StartedAt           *time.Time           `json:"started_at,omitempty"`
	EndedAt             *time.Time           `json:"ended_at,omitempty"`
	Transcript          string               `json:"transcript,omitempty"`
	CallSummary         string               `json:"call_summary"`
	ExtractedPainPoints []CanonicalPainPoint `json:"extracted_pain_points"`
	Metadata            map[string]any       `json:"metadata,omitempty"`
}
