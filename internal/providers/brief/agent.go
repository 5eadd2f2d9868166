// Package brief implements the briefing agent that interviews planners and drafts
// the production master plan through OpenAI or Gemini chat completions.
package brief

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	openAIDefaultTimeout = 30 * time.Second
	geminiDefaultTimeout = 25 * time.Second
)

// KeySource supplies API keys stored outside the environment.
type KeySource interface {
	Token(ctx context.Context, provider string) (string, error)
}

// Options controls how the agent reaches its providers.
type Options struct {
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	DemoStub      bool
	MaxRetries    int
	Backoff       time.Duration
	Keys          KeySource
	HTTPClient    *http.Client
	Logger        zerolog.Logger
}

// ChatRequest is one turn sent by the planner UI.
type ChatRequest struct {
	History     []Message      `json:"history"`
	CurrentPlan map[string]any `json:"current_plan"`
}

// ChatResponse carries the agent reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

type Agent struct {
	opts  Options
	sleep func(ctx context.Context, d time.Duration) error
}

func NewAgent(opts Options) *Agent {
	opts.OpenAIModel = coalesce(opts.OpenAIModel, "gpt-4o")
	opts.OpenAIBaseURL = strings.TrimRight(coalesce(opts.OpenAIBaseURL, "https://api.openai.com/v1"), "/")
	opts.GeminiModel = coalesce(opts.GeminiModel, "gemini-2.5-pro")
	opts.GeminiBaseURL = strings.TrimRight(coalesce(opts.GeminiBaseURL, "https://generativelanguage.googleapis.com/v1beta"), "/")
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	if opts.Backoff <= 0 {
		opts.Backoff = defaultBackoff
	}
	return &Agent{opts: opts, sleep: sleepContext}
}

// Reply answers the latest turn. OpenAI is used whenever a key for it resolves,
// otherwise Gemini. A missing key yields a guidance reply rather than an error.
func (a *Agent) Reply(ctx context.Context, req ChatRequest) (string, error) {
	system := BuildSystemPrompt(req.CurrentPlan)
	if key := a.key(ctx, ProviderOpenAI, a.opts.OpenAIAPIKey); key != "" {
		backend := &openAIBackend{
			apiKey:  key,
			model:   a.opts.OpenAIModel,
			baseURL: a.opts.OpenAIBaseURL,
			poster:  a.poster(ProviderOpenAI, openAIDefaultTimeout),
		}
		return backend.reply(ctx, system, req.History)
	}
	if a.opts.DemoStub {
		return demoReply, nil
	}
	key := a.key(ctx, ProviderGemini, a.opts.GeminiAPIKey)
	if key == "" {
		a.opts.Logger.Warn().Msg("brief agent has no provider key configured")
		return missingGeminiKeyReply, nil
	}
	backend := &geminiBackend{
		apiKey:  key,
		model:   a.opts.GeminiModel,
		baseURL: a.opts.GeminiBaseURL,
		poster:  a.poster(ProviderGemini, geminiDefaultTimeout),
	}
	return backend.reply(ctx, system, req.History)
}

// key prefers the configured value and falls back to the key store.
func (a *Agent) key(ctx context.Context, provider, configured string) string {
	if key := strings.TrimSpace(configured); key != "" {
		return key
	}
	if a.opts.Keys == nil {
		return ""
	}
	key, err := a.opts.Keys.Token(ctx, provider)
	if err != nil {
		a.opts.Logger.Warn().Err(err).Str("provider", provider).Msg("load stored api key")
		return ""
	}
	return strings.TrimSpace(key)
}

func (a *Agent) poster(provider string, timeout time.Duration) *poster {
	client := a.opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &poster{
		provider:   provider,
		client:     client,
		maxRetries: a.opts.MaxRetries,
		backoff:    a.opts.Backoff,
		sleep:      a.sleep,
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
