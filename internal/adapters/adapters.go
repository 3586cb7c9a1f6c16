// Package adapters translates channel-specific intake payloads into
// the one canonical intake shape. Adapters never touch the network
// and never fail: anything unusable is dropped, not surfaced.
package adapters

import (
	"time"

	"friction-finder-go/internal/types"
)

// IntakeAdapter is the per-channel translation contract.
type IntakeAdapter interface {
	ToCanonical(payload map[string]any) types.CanonicalIntake
}

// VapiAdapter maps voice-assistant call payloads.
type VapiAdapter struct{}

func (VapiAdapter) ToCanonical(payload map[string]any) types.CanonicalIntake {
	return buildIntake(types.ChannelVapi, payload)
}

// InternalAdapter maps internal form submissions. Webform submissions
// arrive through this adapter as well.
type InternalAdapter struct{}

func (InternalAdapter) ToCanonical(payload map[string]any) types.CanonicalIntake {
	return buildIntake(types.ChannelInternal, payload)
}

func buildIntake(channel types.Channel, payload map[string]any) types.CanonicalIntake {
	respondentPayload, _ := payload["respondent"].(map[string]any)

	return types.CanonicalIntake{
		Channel: channel,
		Respondent: types.CanonicalRespondent{
			Name:     stringField(respondentPayload, "", "name"),
			Email:    stringField(respondentPayload, "", "email"),
			Team:     stringField(respondentPayload, "Unknown", "team"),
			Role:     stringField(respondentPayload, "Unknown", "role"),
			Location: stringField(respondentPayload, "", "location"),
			Consent:  boolField(respondentPayload, "consent"),
		},
		StartedAt:           timeField(payload, "started_at"),
		EndedAt:             timeField(payload, "ended_at"),
		Transcript:          stringField(payload, "", "transcript"),
		CallSummary:         stringField(payload, "", "call_summary"),
		ExtractedPainPoints: ParsePainPointItems(itemsField(payload, "extracted_fields")),
		Metadata:            metadataField(payload),
	}
}

func timeField(payload map[string]any, key string) *time.Time {
	v, ok := payload[key]
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case time.Time:
		return &t
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return &parsed
		}
	}
	return nil
}

func itemsField(payload map[string]any, key string) []map[string]any {
	raw, ok := payload[key].([]any)
	if !ok {
		return nil
	}
	var items []map[string]any
	for _, e := range raw {
		if m, ok := e.(map[string]any); ok {
			items = append(items, m)
		}
	}
	return items
}

func metadataField(payload map[string]any) map[string]any {
	if m, ok := payload["metadata_json"].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}
