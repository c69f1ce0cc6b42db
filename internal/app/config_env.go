package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.LLMAPIKey == "" {
		// GEMINI_API_KEY kept for parity with existing deployments.
		v := os.Getenv("LLM_API_KEY")
		if v == "" {
			v = os.Getenv("GEMINI_API_KEY")
		}
		cfg.LLMAPIKey = v
	}
	if cfg.LLMBaseURL == "" {
		cfg.LLMBaseURL = os.Getenv("LLM_BASE_URL")
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = os.Getenv("LLM_MODEL")
	}
	if cfg.Addr == "" {
		cfg.Addr = os.Getenv("ADDR")
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = os.Getenv("USER_AGENT")
	}
	if len(cfg.CORSOrigins) == 0 {
		if s := strings.TrimSpace(os.Getenv("CORS_ORIGINS")); s != "" {
			parts := strings.Split(s, ",")
			list := make([]string, 0, len(parts))
			for _, p := range parts {
				if v := strings.TrimSpace(p); v != "" {
					list = append(list, v)
				}
			}
			cfg.CORSOrigins = list
		}
	}
	if cfg.StyleMaxBytes == 0 {
		if n, err := strconv.Atoi(os.Getenv("STYLE_MAX_BYTES")); err == nil && n > 0 {
			cfg.StyleMaxBytes = n
		}
	}
	if cfg.DOMMaxDepth == 0 {
		if n, err := strconv.Atoi(os.Getenv("DOM_MAX_DEPTH")); err == nil && n > 0 {
			cfg.DOMMaxDepth = n
		}
	}
	if cfg.FetchTimeout == 0 {
		if d, err := time.ParseDuration(os.Getenv("FETCH_TIMEOUT")); err == nil && d > 0 {
			cfg.FetchTimeout = d
		}
	}
	if cfg.StyleFetchTimeout == 0 {
		if d, err := time.ParseDuration(os.Getenv("STYLE_FETCH_TIMEOUT")); err == nil && d > 0 {
			cfg.StyleFetchTimeout = d
		}
	}
	if !cfg.IgnoreRobots {
		s := strings.ToLower(strings.TrimSpace(os.Getenv("IGNORE_ROBOTS")))
		if s == "1" || s == "true" || s == "yes" || s == "on" {
			cfg.IgnoreRobots = true
		}
	}
}
