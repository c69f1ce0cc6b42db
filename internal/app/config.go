package app

import "time"

// Config holds runtime configuration for the service. It is resolved once
// at process start and passed into the orchestration as an immutable value.
type Config struct {
	// HTTP API
	Addr        string
	CORSOrigins []string

	// Generative collaborator (OpenAI-compatible endpoint)
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	// Fetching
	UserAgent         string
	FetchTimeout      time.Duration
	StyleFetchTimeout time.Duration
	IgnoreRobots      bool

	// Extraction limits
	StyleMaxBytes int
	DOMMaxDepth   int

	Verbose bool
}

func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = ":8000"
	}
	if len(c.CORSOrigins) == 0 {
		c.CORSOrigins = []string{"http://localhost:3000"}
	}
	if c.LLMBaseURL == "" {
		c.LLMBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	}
	if c.LLMModel == "" {
		c.LLMModel = "gemini-2.5-flash"
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = 15 * time.Second
	}
	if c.StyleFetchTimeout <= 0 {
		c.StyleFetchTimeout = 5 * time.Second
	}
}
