// Package app resolves configuration once at startup and wires the fetcher,
// style collector, generative provider, and HTTP API together.
package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/pageclone/internal/api"
	"github.com/hyperifyio/pageclone/internal/clone"
	"github.com/hyperifyio/pageclone/internal/fetch"
	"github.com/hyperifyio/pageclone/internal/llm"
	"github.com/hyperifyio/pageclone/internal/robots"
	"github.com/hyperifyio/pageclone/internal/scrape"
	"github.com/hyperifyio/pageclone/internal/styles"
)

// App owns the wired pipeline components for the lifetime of the process.
type App struct {
	cfg        Config
	Summarizer *scrape.Summarizer
	Cloner     *clone.Assembler
	Server     *api.Server
}

// New validates cfg, applies defaults, and builds the pipeline. A missing
// generative API key is a fatal startup condition: every clone request
// would fail, so the process refuses to start instead.
func New(cfg Config) (*App, error) {
	cfg.applyDefaults()
	if strings.TrimSpace(cfg.LLMAPIKey) == "" {
		return nil, errors.New("missing generative API key: set LLM_API_KEY or GEMINI_API_KEY")
	}

	transportCfg := openai.DefaultConfig(cfg.LLMAPIKey)
	transportCfg.BaseURL = cfg.LLMBaseURL
	transportCfg.HTTPClient = newLLMHTTPClient()
	ai := openai.NewClientWithConfig(transportCfg)

	primary, subsidiary, rb := buildFetch(cfg)
	summarizer := &scrape.Summarizer{Client: primary, Robots: rb}
	cloner := &clone.Assembler{
		Client:    primary,
		Styles:    &styles.Collector{Client: subsidiary, MaxBytes: cfg.StyleMaxBytes},
		Generator: &llm.Generator{Client: &llm.OpenAIProvider{Inner: ai}, Model: cfg.LLMModel},
		Robots:    rb,
		MaxDepth:  cfg.DOMMaxDepth,
	}
	server := &api.Server{
		Summarizer:  summarizer,
		Cloner:      cloner,
		CORSOrigins: cfg.CORSOrigins,
	}
	return &App{cfg: cfg, Summarizer: summarizer, Cloner: cloner, Server: server}, nil
}

// NewSummarizer builds only the simple scrape path, which needs no API key.
func NewSummarizer(cfg Config) *scrape.Summarizer {
	cfg.applyDefaults()
	primary, _, rb := buildFetch(cfg)
	return &scrape.Summarizer{Client: primary, Robots: rb}
}

func buildFetch(cfg Config) (primary, subsidiary *fetch.Client, rb *robots.Manager) {
	httpClient := newFetchHTTPClient()
	primary = &fetch.Client{
		HTTPClient: httpClient,
		UserAgent:  cfg.UserAgent,
		Timeout:    cfg.FetchTimeout,
	}
	subsidiary = &fetch.Client{
		HTTPClient: httpClient,
		UserAgent:  cfg.UserAgent,
		Timeout:    cfg.StyleFetchTimeout,
	}
	if !cfg.IgnoreRobots {
		ua := cfg.UserAgent
		if ua == "" {
			ua = fetch.DefaultUserAgent
		}
		rb = &robots.Manager{
			HTTPClient: httpClient,
			UserAgent:  ua,
			AgentToken: "pageclone",
		}
	}
	return primary, subsidiary, rb
}

// ListenAndServe runs the HTTP API until ctx is cancelled, then shuts down
// gracefully.
func (a *App) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.cfg.Addr,
		Handler:           a.Server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Info().Str("addr", a.cfg.Addr).Str("model", a.cfg.LLMModel).Msg("pageclone listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
