// Package aiextract is the optional LLM-backed pain-point extractor
// the ingestion pipeline consults before falling back to the
// deterministic miner. Every failure mode returns an error to the
// caller; nothing here is ever surfaced to an end user.
package aiextract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"friction-finder-go/internal/adapters"
	"friction-finder-go/internal/config"
	"friction-finder-go/internal/types"
)

const extractionPrompt = `Extract operational pain points from this interview transcript and summary.
Return ONLY JSON as an array. Each item must include:
title, description, category, frequency_per_week, minutes_per_occurrence, people_affected,
systems_involved (array), current_workaround, failure_modes, success_definition, sensitive_flag.
Use categories from: onboarding, approvals, reporting, comms, finance_ops, sales_ops, client_ops, access_mgmt, other.`

const maxRetryTime = 45 * time.Second

// Extractor produces pain points from raw interview text, or an error
// when the provider is unavailable or returned garbage.
type Extractor interface {
	Extract(ctx context.Context, transcript, summary string) ([]types.CanonicalPainPoint, error)
}

// New builds the extractor selected by configuration. Provider "none"
// disables AI extraction entirely and returns nil.
func New(cfg config.Config, log *logrus.Entry) Extractor {
	switch cfg.AIProvider {
	case config.ProviderOpenAI:
		return newOpenAIExtractor(cfg, log)
	case config.ProviderOllama:
		return newOllamaExtractor(cfg, log)
	}
	return nil
}

// retryChat runs one chat attempt with exponential backoff, treating
// client-side errors as permanent.
func retryChat(ctx context.Context, log *logrus.Entry, attempt func(context.Context) (string, error)) (string, error) {
	var content string
	op := func() error {
		c, err := attempt(ctx)
		if err != nil {
			log.WithError(err).Warn("llm request failed")
			return err
		}
		content = c
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = maxRetryTime

	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		return "", fmt.Errorf("llm extract failed: %w", err)
	}
	return content, nil
}

// parsePainPointItems pulls the first balanced JSON array or object
// out of an LLM reply, tolerating markdown fences, and maps its items
// through the canonical item parser.
func parsePainPointItems(content string) ([]types.CanonicalPainPoint, error) {
	cleaned := stripFences(content)
	if cleaned == "" {
		return nil, errors.New("empty llm response")
	}

	var items []map[string]any
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		var wrapper struct {
			PainPoints []map[string]any `json:"pain_points"`
		}
		if err := json.Unmarshal([]byte(cleaned), &wrapper); err != nil {
			return nil, fmt.Errorf("parse llm json: %w", err)
		}
		items = wrapper.PainPoints
	}
	if len(items) == 0 {
		return nil, errors.New("no pain points in llm response")
	}

	parsed := adapters.ParsePainPointItems(items)
	if len(parsed) == 0 {
		return nil, errors.New("no usable pain points in llm response")
	}
	return parsed, nil
}

// stripFences removes markdown code fences and trims to the first
// balanced JSON value.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	for _, fence := range []string{"```json", "```yaml", "```text", "```", "`json", "`"} {
		s = strings.ReplaceAll(s, fence, "")
	}
	s = strings.TrimSpace(s)

	start := strings.IndexAny(s, "[{")
	if start == -1 {
		return ""
	}
	open := s[start]
	closer := byte(']')
	if open == '{' {
		closer = '}'
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case open:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return strings.TrimSpace(s[start : i+1])
			}
		}
	}
	return strings.TrimSpace(s[start:])
}

func userPayload(transcript, summary string) string {
	body, _ := json.Marshal(map[string]string{
		"transcript": transcript,
		"summary":    summary,
	})
	return string(body)
}
