// Package extract is the deterministic pain-point miner used whenever
// no upstream extraction supplied structured pain points.
package extract

import (
	"strings"

	"friction-finder-go/internal/signals"
	"friction-finder-go/internal/types"
)

const maxCandidates = 8

const (
	defaultWorkaround        = "Manual follow-up and spreadsheet updates"
	defaultFailureModes      = "Delays, missed updates, and inconsistent data"
	defaultSuccessDefinition = "Workflow is automated with clear ownership and visibility"
)

// PainPoints mines transcript (preferred) or summary text for
// candidate sentences and enriches each into a canonical pain point.
// Pure function: identical input always yields the identical ordered
// list. Empty input yields nil.
func PainPoints(transcript, summary string) []types.CanonicalPainPoint {
	transcript = strings.TrimSpace(transcript)
	summary = strings.TrimSpace(summary)

	source := transcript
	if source == "" {
		source = summary
	}
	if source == "" {
		return nil
	}

	chunks := splitSentences(source)
	var candidates []string
	for _, chunk := range chunks {
		if signals.HasFrictionHint(chunk) {
			candidates = append(candidates, chunk)
		}
	}
	if len(candidates) == 0 {
		if summary != "" {
			candidates = []string{summary}
		} else if len(chunks) > 0 {
			candidates = chunks[:1]
		}
	}
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}

	var painPoints []types.CanonicalPainPoint
	seen := map[string]bool{}
	for _, sentence := range candidates {
		title := signals.TitleFromSentence(sentence)
		key := strings.ToLower(title)
		if seen[key] {
			continue
		}
		seen[key] = true

		painPoints = append(painPoints, types.CanonicalPainPoint{
			Title:                title,
			Description:          sentence,
			Category:             signals.Category(sentence),
			FrequencyPerWeek:     signals.FrequencyPerWeek(sentence),
			MinutesPerOccurrence: signals.Minutes(sentence),
			PeopleAffected:       signals.PeopleAffected(sentence),
			SystemsInvolved:      signals.Systems(sentence),
			CurrentWorkaround:    defaultWorkaround,
			FailureModes:         defaultFailureModes,
			SuccessDefinition:    defaultSuccessDefinition,
		})
	}

	return painPoints
}

// splitSentences breaks text into sentence-like chunks on newlines and
// on whitespace following sentence punctuation.
func splitSentences(text string) []string {
	var chunks []string
	var b strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\n' || r == '\r' {
			flush(&chunks, &b)
			continue
		}
		b.WriteRune(r)
		if (r == '.' || r == '!' || r == '?') && i+1 < len(runes) && isSpace(runes[i+1]) {
			flush(&chunks, &b)
		}
	}
	flush(&chunks, &b)
	return chunks
}

func flush(chunks *[]string, b *strings.Builder) {
	if s := strings.TrimSpace(b.String()); s != "" {
		*chunks = append(*chunks, s)
	}
	b.Reset()
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
