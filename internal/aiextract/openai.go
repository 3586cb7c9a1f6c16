package aiextract

import (
	"context"
	"errors"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"friction-finder-go/internal/config"
	"friction-finder-go/internal/types"
)

const openaiTimeout = 20 * time.Second

type openaiExtractor struct {
	client *openai.Client
	model  string
	log    *logrus.Entry
}

func newOpenAIExtractor(cfg config.Config, log *logrus.Entry) *openaiExtractor {
	clientCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAIBaseURL
	}
	return &openaiExtractor{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.OpenAIModel,
		log:    log.WithField("provider", "openai"),
	}
}

func (e *openaiExtractor) Extract(ctx context.Context, transcript, summary string) ([]types.CanonicalPainPoint, error) {
	ctx, cancel := context.WithTimeout(ctx, openaiTimeout)
	defer cancel()

	content, err := retryChat(ctx, e.log, func(ctx context.Context) (string, error) {
		resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       e.model,
			Temperature: 0,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: extractionPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPayload(transcript, summary)},
			},
		})
		if err != nil {
			return "", err
		}
		if len(resp.Choices) == 0 {
			return "", errors.New("no choices in completion")
		}
		return resp.Choices[0].Message.Content, nil
	})
	if err != nil {
		return nil, err
	}

	return parsePainPointItems(content)
}
