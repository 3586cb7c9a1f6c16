package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"friction-finder-go/internal/adapters"
	"friction-finder-go/internal/aiextract"
	"friction-finder-go/internal/analytics"
	"friction-finder-go/internal/config"
	"friction-finder-go/internal/dataset"
	"friction-finder-go/internal/ingest"
	"friction-finder-go/internal/logger"
	"friction-finder-go/internal/scoring"
	"friction-finder-go/internal/seed"
	"friction-finder-go/internal/store"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "friction-finder-go").Info("starting service")

	cfg := config.FromEnv()
	st := store.New()
	engine := scoring.NewEngine(cfg.QuickWinThresholdHours)
	extractor := aiextract.New(cfg, log.Component("aiextract"))
	if extractor == nil {
		log.Info("ai extraction disabled, deterministic extraction only")
	} else {
		log.WithField("provider", string(cfg.AIProvider)).Info("ai extraction enabled")
	}
	service := ingest.NewService(st, extractor, engine, cfg, log.Component("ingest"))

	mux := http.NewServeMux()

	// health
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).Info("health check")
		fmt.Fprint(w, "ok")
	})

	mux.HandleFunc("/intake/vapi", intakeHandler(service, adapters.VapiAdapter{}))
	mux.HandleFunc("/intake/internal", intakeHandler(service, adapters.InternalAdapter{}))

	// scored pain points, priority order
	mux.HandleFunc("/pain-points", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).WithField("handler", "pain-points").Info("listing pain points")
		writeJSON(w, http.StatusOK, st.ListScored())
	})

	mux.HandleFunc("/scores/recompute", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "recompute")
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		n := service.RecomputeScores()
		reqLog.WithField("rescored", n).Info("scores recomputed")
		writeJSON(w, http.StatusOK, map[string]int{"rescored": n})
	})

	mux.HandleFunc("/dashboard", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).WithField("handler", "dashboard").Info("dashboard requested")
		writeJSON(w, http.StatusOK, analytics.Summarize(st.ListScored()))
	})

	// demo endpoint: ingest seed fixtures (plus the xlsx dataset when configured)
	mux.HandleFunc("/demo", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "demo")
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		reqLog.Info("demo ingestion invoked")

		intakes := seed.DemoIntakes()
		if cfg.DatasetPath != "" {
			loaded, err := dataset.LoadIntakes(cfg.DatasetPath)
			if err != nil {
				reqLog.WithError(err).Warn("dataset load failed, using built-in fixtures only")
			} else {
				reqLog.WithField("rows", len(loaded)).Info("dataset intakes loaded")
				intakes = append(intakes, loaded...)
			}
		}

		var results []ingest.Result
		for _, canonical := range intakes {
			res, err := service.Ingest(r.Context(), canonical)
			if err != nil {
				reqLog.WithError(err).Warn("demo intake failed")
				continue
			}
			results = append(results, res)
		}
		writeJSON(w, http.StatusOK, results)
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}

func intakeHandler(service *ingest.Service, adapter adapters.IntakeAdapter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "intake")
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			reqLog.WithError(err).Warn("bad intake payload")
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		canonical := adapter.ToCanonical(payload)
		start := time.Now()
		res, err := service.Ingest(r.Context(), canonical)
		reqLog.WithField("duration_ms", time.Since(start).Milliseconds()).
			WithField("pain_points", len(res.PainPointIDs)).Info("intake processed")
		if err != nil {
			reqLog.WithError(err).Error("ingestion failed")
			http.Error(w, "ingestion failed", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
