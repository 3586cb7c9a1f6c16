// Package store is the in-memory persistence collaborator the
// ingestion pipeline and HTTP surface run against. It upholds the
// invariants the analysis core expects from any backing store:
// respondent upsert serialized per email, one score per pain point,
// and cascade delete from respondent down.
package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"friction-finder-go/internal/types"
)

type Store struct {
	mu          sync.RWMutex
	respondents map[string]*types.Respondent
	interviews  map[string]*types.Interview
	painPoints  map[string]*types.PainPoint
	scores      map[string]*types.Score // keyed by pain point ID
}

func New() *Store {
	return &Store{
		respondents: map[string]*types.Respondent{},
		interviews:  map[string]*types.Interview{},
		painPoints:  map[string]*types.PainPoint{},
		scores:      map[string]*types.Score{},
	}
}

// UpsertRespondent creates or updates a respondent keyed by email.
// Team, role, location, and consent are overwritten on every intake;
// name only when newly supplied. Intakes without an email always
// create a fresh respondent. The store mutex serializes concurrent
// upserts for the same email.
func (s *Store) UpsertRespondent(incoming types.CanonicalRespondent) types.Respondent {
	s.mu.Lock()
	defer s.mu.Unlock()

	if incoming.Email != "" {
		for _, r := range s.respondents {
			if r.Email == incoming.Email {
				if incoming.Name != "" {
					r.Name = incoming.Name
				}
				r.Team = incoming.Team
				r.Role = incoming.Role
				if incoming.Location != "" {
					r.Location = incoming.Location
				}
				r.Consent = incoming.Consent
				return *r
			}
		}
	}

	r := &types.Respondent{
		ID:       uuid.New().String(),
		Name:     incoming.Name,
		Email:    incoming.Email,
		Team:     incoming.Team,
		Role:     incoming.Role,
		Location: incoming.Location,
		Consent:  incoming.Consent,
	}
	s.respondents[r.ID] = r
	return *r
}

func (s *Store) GetRespondent(id string) (types.Respondent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.respondents[id]
	if !ok {
		return types.Respondent{}, false
	}
	return *r, true
}

func (s *Store) InsertInterview(iv types.Interview) types.Interview {
	s.mu.Lock()
	defer s.mu.Unlock()
	iv.ID = uuid.New().String()
	iv.CreatedAt = time.Now().UTC()
	s.interviews[iv.ID] = &iv
	return iv
}

func (s *Store) GetInterview(id string) (types.Interview, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	iv, ok := s.interviews[id]
	if !ok {
		return types.Interview{}, false
	}
	return *iv, true
}

func (s *Store) InsertPainPoint(pp types.PainPoint) types.PainPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	pp.ID = uuid.New().String()
	pp.CreatedAt = time.Now().UTC()
	s.painPoints[pp.ID] = &pp
	return pp
}

func (s *Store) GetPainPoint(id string) (types.PainPoint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pp, ok := s.painPoints[id]
	if !ok {
		return types.PainPoint{}, false
	}
	return *pp, true
}

// UpsertScore overwrites the one score owned by a pain point.
func (s *Store) UpsertScore(score types.Score) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[score.PainPointID] = &score
}

// CountByTitle counts persisted pain points whose title matches
// case-insensitively, including the one being scored.
func (s *Store) CountByTitle(title string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lowered := strings.ToLower(title)
	count := 0
	for _, pp := range s.painPoints {
		if strings.ToLower(pp.Title) == lowered {
			count++
		}
	}
	return count
}

// ScoredPainPoint pairs a pain point with its score and owning team
// for listing and analytics.
type ScoredPainPoint struct {
	PainPoint types.PainPoint `json:"pain_point"`
	Score     *types.Score    `json:"score,omitempty"`
	Team      string          `json:"team"`
}

// ListScored returns all pain points with scores and owning teams,
// sorted by priority score descending.
func (s *Store) ListScored() []ScoredPainPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ScoredPainPoint, 0, len(s.painPoints))
	for _, pp := range s.painPoints {
		entry := ScoredPainPoint{PainPoint: *pp, Team: "Unknown"}
		if score, ok := s.scores[pp.ID]; ok {
			sc := *score
			entry.Score = &sc
		}
		if iv, ok := s.interviews[pp.InterviewID]; ok {
			if r, ok := s.respondents[iv.RespondentID]; ok {
				entry.Team = r.Team
			}
		}
		out = append(out, entry)
	}

	sort.Slice(out, func(i, j int) bool {
		pi, pj := 0.0, 0.0
		if out[i].Score != nil {
			pi = out[i].Score.PriorityScore
		}
		if out[j].Score != nil {
			pj = out[j].Score.PriorityScore
		}
		if pi != pj {
			return pi > pj
		}
		return out[i].PainPoint.ID < out[j].PainPoint.ID
	})
	return out
}

// ListPainPoints returns every persisted pain point.
func (s *Store) ListPainPoints() []types.PainPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.PainPoint, 0, len(s.painPoints))
	for _, pp := range s.painPoints {
		out = append(out, *pp)
	}
	return out
}

// DeleteRespondent removes a respondent and cascades through its
// interviews, their pain points, and their scores.
func (s *Store) DeleteRespondent(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.respondents[id]; !ok {
		return
	}
	delete(s.respondents, id)

	for ivID, iv := range s.interviews {
		if iv.RespondentID != id {
			continue
		}
		delete(s.interviews, ivID)
		for ppID, pp := range s.painPoints {
			if pp.InterviewID != ivID {
				continue
			}
			delete(s.painPoints, ppID)
			delete(s.scores, ppID)
		}
	}
}
