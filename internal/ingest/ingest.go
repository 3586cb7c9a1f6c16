// Package ingest orchestrates one intake event end to end: respondent
// upsert, interview persistence with consent gating, pain-point
// extraction (AI first, deterministic fallback), scoring, and a
// best-effort downstream workflow notification.
package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"friction-finder-go/internal/aiextract"
	"friction-finder-go/internal/config"
	"friction-finder-go/internal/extract"
	"friction-finder-go/internal/redact"
	"friction-finder-go/internal/scoring"
	"friction-finder-go/internal/store"
	"friction-finder-go/internal/types"
)

const notifyTimeout = 5 * time.Second

// Result carries the store-assigned IDs back to the caller.
type Result struct {
	InterviewID  string   `json:"interview_id"`
	RespondentID string   `json:"respondent_id"`
	PainPointIDs []string `json:"pain_point_ids"`
}

type Service struct {
	store     *store.Store
	extractor aiextract.Extractor // nil when AI extraction is disabled
	engine    scoring.Engine
	cfg       config.Config
	notify    *http.Client
	log       *logrus.Entry
}

func NewService(st *store.Store, extractor aiextract.Extractor, engine scoring.Engine, cfg config.Config, log *logrus.Entry) *Service {
	return &Service{
		store:     st,
		extractor: extractor,
		engine:    engine,
		cfg:       cfg,
		notify:    &http.Client{Timeout: notifyTimeout},
		log:       log,
	}
}

// Ingest runs the full pipeline for one canonical intake. It never
// fails on degraded extraction: a garbled transcript just produces
// fewer pain points.
func (s *Service) Ingest(ctx context.Context, canonical types.CanonicalIntake) (Result, error) {
	respondent := s.store.UpsertRespondent(canonical.Respondent)

	interview := types.Interview{
		RespondentID: respondent.ID,
		Channel:      canonical.Channel,
		StartedAt:    canonical.StartedAt,
		EndedAt:      canonical.EndedAt,
		SummaryText:  canonical.CallSummary,
		Metadata:     canonical.Metadata,
	}
	if respondent.Consent {
		interview.TranscriptRaw = canonical.Transcript
		if canonical.Transcript != "" {
			interview.TranscriptRedacted = redact.Text(canonical.Transcript, respondent.Name)
		}
	}
	interview = s.store.InsertInterview(interview)

	extracted := canonical.ExtractedPainPoints
	if len(extracted) == 0 {
		extracted = s.extractPainPoints(ctx, canonical)
	}

	painPointIDs := make([]string, 0, len(extracted))
	for _, item := range extracted {
		pp := types.PainPoint{
			InterviewID:        interview.ID,
			CanonicalPainPoint: item,
		}
		pp.FrequencyPerWeek = max(0.1, item.FrequencyPerWeek)
		pp.MinutesPerOccurrence = max(1.0, item.MinutesPerOccurrence)
		pp.PeopleAffected = max(1, item.PeopleAffected)

		pp = s.store.InsertPainPoint(pp)
		s.store.UpsertScore(s.engine.Score(pp, s.store))
		painPointIDs = append(painPointIDs, pp.ID)
	}

	s.notifyWorkflow(interview.ID, respondent.ID, canonical.Metadata)

	return Result{
		InterviewID:  interview.ID,
		RespondentID: respondent.ID,
		PainPointIDs: painPointIDs,
	}, nil
}

// RecomputeScores rescores every persisted pain point in place.
func (s *Service) RecomputeScores() int {
	painPoints := s.store.ListPainPoints()
	for _, pp := range painPoints {
		s.store.UpsertScore(s.engine.Score(pp, s.store))
	}
	return len(painPoints)
}

// extractPainPoints consults the AI extractor when configured and
// falls back to the deterministic miner on any failure or empty
// result. AI errors are logged and swallowed.
func (s *Service) extractPainPoints(ctx context.Context, canonical types.CanonicalIntake) []types.CanonicalPainPoint {
	if s.extractor != nil {
		items, err := s.extractor.Extract(ctx, canonical.Transcript, canonical.CallSummary)
		if err != nil {
			s.log.WithError(err).Warn("ai extraction failed, falling back to deterministic")
		} else if len(items) > 0 {
			return items
		}
	}
	return extract.PainPoints(canonical.Transcript, canonical.CallSummary)
}

// notifyWorkflow fires the downstream workflow webhook. Failures are
// swallowed entirely: ingestion succeeded regardless.
func (s *Service) notifyWorkflow(interviewID, respondentID string, metadata map[string]any) {
	if s.cfg.WorkflowWebhookURL == "" {
		return
	}

	payload := map[string]any{
		"interview_id":  interviewID,
		"respondent_id": respondentID,
	}
	if sessionID, ok := metadata["session_id"]; ok {
		payload["session_id"] = sessionID
	}
	body, _ := json.Marshal(payload)

	req, err := http.NewRequest(http.MethodPost, s.cfg.WorkflowWebhookURL, bytes.NewReader(body))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-webhook-secret", s.cfg.WorkflowWebhookSecret)

	resp, err := s.notify.Do(req)
	if err != nil {
		s.log.WithError(err).Debug("workflow notification failed")
		return
	}
	resp.Body.Close()
}
