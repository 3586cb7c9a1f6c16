package aiextract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"friction-finder-go/internal/config"
	"friction-finder-go/internal/types"
)

const ollamaTimeout = 30 * time.Second

type ollamaExtractor struct {
	baseURL string
	model   string
	client  *http.Client
	log     *logrus.Entry
}

func newOllamaExtractor(cfg config.Config, log *logrus.Entry) *ollamaExtractor {
	return &ollamaExtractor{
		baseURL: strings.TrimRight(cfg.OllamaBaseURL, "/"),
		model:   cfg.OllamaModel,
		client:  &http.Client{Timeout: ollamaTimeout},
		log:     log.WithField("provider", "ollama"),
	}
}

func (e *ollamaExtractor) Extract(ctx context.Context, transcript, summary string) ([]types.CanonicalPainPoint, error) {
	ctx, cancel := context.WithTimeout(ctx, ollamaTimeout)
	defer cancel()

	payload := map[string]any{
		"model":  e.model,
		"stream": false,
		"format": "json",
		"messages": []map[string]string{
			{"role": "system", "content": extractionPrompt},
			{"role": "user", "content": userPayload(transcript, summary)},
		},
	}
	data, _ := json.Marshal(payload)

	content, err := retryChat(ctx, e.log, func(ctx context.Context) (string, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/api/chat", bytes.NewReader(data))
		if err != nil {
			return "", backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := e.client.Do(req)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return "", backoff.Permanent(fmt.Errorf("ollama client error: %s", resp.Status))
		}
		if resp.StatusCode >= 500 {
			return "", fmt.Errorf("ollama server error: %s", resp.Status)
		}

		var parsed struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		}
		if err := json.Unmarshal(body, &parsed); err != nil {
			return "", fmt.Errorf("decode ollama response: %w", err)
		}
		return parsed.Message.Content, nil
	})
	if err != nil {
		return nil, err
	}

	return parsePainPointItems(content)
}
