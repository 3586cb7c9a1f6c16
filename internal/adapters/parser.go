package adapters

import (
	"fmt"
	"strconv"
	"strings"

	"friction-finder-go/internal/types"
)

// Defaults applied when an upstream extraction tool omitted a field.
const (
	defaultTitle       = "Untitled pain point"
	defaultDescription = "No description provided"
	defaultFrequency   = 1.0
	defaultMinutes     = 30.0
	defaultPeople      = 1
)

// ParsePainPointItems maps loosely-typed dictionaries from an
// upstream extraction tool into canonical pain points. Recognized key
// aliases:
//
//	description | detail
//	frequency_per_week | frequency
//	minutes_per_occurrence | minutes
//	people_affected | people
//	systems_involved | systems
//
// A malformed item is dropped; one bad item never aborts the batch.
func ParsePainPointItems(rawItems []map[string]any) []types.CanonicalPainPoint {
	if len(rawItems) == 0 {
		return nil
	}

	var parsed []types.CanonicalPainPoint
	for _, item := range rawItems {
		pp, err := parseItem(item)
		if err != nil {
			continue
		}
		parsed = append(parsed, pp)
	}
	return parsed
}

func parseItem(item map[string]any) (types.CanonicalPainPoint, error) {
	frequency, err := floatField(item, defaultFrequency, "frequency_per_week", "frequency")
	if err != nil {
		return types.CanonicalPainPoint{}, err
	}
	minutes, err := floatField(item, defaultMinutes, "minutes_per_occurrence", "minutes")
	if err != nil {
		return types.CanonicalPainPoint{}, err
	}
	people, err := intField(item, defaultPeople, "people_affected", "people")
	if err != nil {
		return types.CanonicalPainPoint{}, err
	}
	systems, err := stringListField(item, "systems_involved", "systems")
	if err != nil {
		return types.CanonicalPainPoint{}, err
	}

	return types.CanonicalPainPoint{
		Title:                stringField(item, defaultTitle, "title"),
		Description:          stringField(item, defaultDescription, "description", "detail"),
		Category:             types.ParsePainCategory(stringField(item, "other", "category")),
		FrequencyPerWeek:     frequency,
		MinutesPerOccurrence: minutes,
		PeopleAffected:       people,
		SystemsInvolved:      systems,
		CurrentWorkaround:    stringField(item, "", "current_workaround"),
		FailureModes:         stringField(item, "", "failure_modes"),
		SuccessDefinition:    stringField(item, "", "success_definition"),
		SensitiveFlag:        boolField(item, "sensitive_flag"),
		RedactionNotes:       stringField(item, "", "redaction_notes"),
	}, nil
}

func stringField(item map[string]any, def string, keys ...string) string {
	for _, k := range keys {
		if v, ok := item[k]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
	}
	return def
}

func floatField(item map[string]any, def float64, keys ...string) (float64, error) {
	for _, k := range keys {
		v, ok := item[k]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n, nil
		case int:
			return float64(n), nil
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
			if err != nil {
				return 0, fmt.Errorf("field %s: %w", k, err)
			}
			return f, nil
		default:
			return 0, fmt.Errorf("field %s: unsupported type %T", k, v)
		}
	}
	return def, nil
}

func intField(item map[string]any, def int, keys ...string) (int, error) {
	f, err := floatField(item, float64(def), keys...)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func stringListField(item map[string]any, keys ...string) ([]string, error) {
	for _, k := range keys {
		v, ok := item[k]
		if !ok || v == nil {
			continue
		}
		switch list := v.(type) {
		case []string:
			return list, nil
		case []any:
			out := make([]string, 0, len(list))
			for _, e := range list {
				out = append(out, fmt.Sprint(e))
			}
			return out, nil
		default:
			return nil, fmt.Errorf("field %s: unsupported type %T", k, v)
		}
	}
	return nil, nil
}

func boolField(item map[string]any, key string) bool {
	if v, ok := item[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}
