package config

import (
	"os"
	"strconv"
)

// AIProvider selects the optional LLM extraction strategy.
type AIProvider string

const (
	ProviderNone   AIProvider = "none"
	ProviderOpenAI AIProvider = "openai"
	ProviderOllama AIProvider = "ollama"
)

// Config carries all externally supplied settings. It is built once
// in main and passed into each component; nothing reads the
// environment after startup.
type Config struct {
	Environment string
	Port        string
	DatasetPath string

	AIProvider    AIProvider
	OpenAIBaseURL string
	OpenAIAPIKey  string
	OpenAIModel   string
	OllamaBaseURL string
	OllamaModel   string

	QuickWinThresholdHours float64

	WorkflowWebhookURL    string
	WorkflowWebhookSecret string
}

// FromEnv reads the process environment into a Config, applying
// defaults for anything unset.
func FromEnv() Config {
	cfg := Config{
		Environment:            envOr("ENVIRONMENT", "local"),
		Port:                   envOr("PORT", "8080"),
		DatasetPath:            os.Getenv("DATASET_PATH"),
		AIProvider:             ProviderNone,
		OpenAIBaseURL:          envOr("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIAPIKey:           os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:            envOr("OPENAI_MODEL", "gpt-4o-mini"),
		OllamaBaseURL:          envOr("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:            envOr("OLLAMA_MODEL", "llama3.1"),
		QuickWinThresholdHours: 5.0,
		WorkflowWebhookURL:     os.Getenv("WORKFLOW_WEBHOOK_URL"),
		WorkflowWebhookSecret:  os.Getenv("WORKFLOW_WEBHOOK_SECRET"),
	}

	switch AIProvider(os.Getenv("AI_PROVIDER")) {
	case ProviderOpenAI:
		cfg.AIProvider = ProviderOpenAI
	case ProviderOllama:
		cfg.AIProvider = ProviderOllama
	}

	if v := os.Getenv("QUICKWIN_IMPACT_THRESHOLD_HOURS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.QuickWinThresholdHours = f
		}
	}

	return cfg
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
