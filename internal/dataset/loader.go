// Package dataset loads seed interview intakes from an .xlsx workbook
// for demo runs. Column positions are auto-detected from the header
// row so exported sheets with varying layouts still load.
package dataset

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"friction-finder-go/internal/types"
)

type columnIndexes struct {
	name       int
	email      int
	team       int
	role       int
	location   int
	consent    int
	transcript int
	summary    int
}

// LoadIntakes reads the first sheet and returns one canonical intake
// per usable row. Rows with neither transcript nor summary are
// skipped quietly.
func LoadIntakes(path string) ([]types.CanonicalIntake, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return intakesFromFile(f)
}

func intakesFromFile(f *excelize.File) ([]types.CanonicalIntake, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data rows")
	}

	idx := detectColumns(rows[0])

	var intakes []types.CanonicalIntake
	for i, row := range rows {
		if i == 0 {
			continue
		}
		transcript := cell(row, idx.transcript)
		summary := cell(row, idx.summary)
		if transcript == "" && summary == "" {
			continue
		}

		intakes = append(intakes, types.CanonicalIntake{
			Channel: types.ChannelInternal,
			Respondent: types.CanonicalRespondent{
				Name:     cell(row, idx.name),
				Email:    cell(row, idx.email),
				Team:     cellOr(row, idx.team, "Unknown"),
				Role:     cellOr(row, idx.role, "Unknown"),
				Location: cell(row, idx.location),
				Consent:  parseConsent(cell(row, idx.consent)),
			},
			Transcript:  transcript,
			CallSummary: summary,
			Metadata:    map[string]any{"source": "dataset", "row": i + 1},
		})
	}
	return intakes, nil
}

func detectColumns(header []string) columnIndexes {
	idx := columnIndexes{
		name: -1, email: -1, team: -1, role: -1,
		location: -1, consent: -1, transcript: -1, summary: -1,
	}
	for i, h := range header {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case idx.email == -1 && strings.Contains(l, "email"):
			idx.email = i
		case idx.name == -1 && strings.Contains(l, "name"):
			idx.name = i
		case idx.team == -1 && (strings.Contains(l, "team") || strings.Contains(l, "department")):
			idx.team = i
		case idx.role == -1 && (strings.Contains(l, "role") || strings.Contains(l, "title")):
			idx.role = i
		case idx.location == -1 && (strings.Contains(l, "location") || strings.Contains(l, "office")):
			idx.location = i
		case idx.consent == -1 && strings.Contains(l, "consent"):
			idx.consent = i
		case idx.transcript == -1 && (strings.Contains(l, "transcript") || strings.Contains(l, "interview")):
			idx.transcript = i
		case idx.summary == -1 && strings.Contains(l, "summary"):
			idx.summary = i
		}
	}
	// fallback: the free text tends to sit in the last column
	if idx.transcript == -1 && idx.summary == -1 && len(header) > 0 {
		idx.transcript = len(header) - 1
	}
	return idx
}

func cell(row []string, i int) string {
	if i >= 0 && i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

func cellOr(row []string, i int, def string) string {
	if v := cell(row, i); v != "" {
		return v
	}
	return def
}

func parseConsent(v string) bool {
	switch strings.ToLower(v) {
	case "true", "yes", "y", "1":
		return true
	}
	return false
}
