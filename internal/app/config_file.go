package app

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the optional single-file configuration schema. Nested
// sections map naturally to flags and env.
type FileConfig struct {
	Addr string `yaml:"addr"`

	CORS struct {
		Origins []string `yaml:"origins"`
	} `yaml:"cors"`

	LLM struct {
		BaseURL string `yaml:"base"`
		Model   string `yaml:"model"`
		APIKey  string `yaml:"key"`
	} `yaml:"llm"`

	Fetch struct {
		UserAgent    string        `yaml:"userAgent"`
		Timeout      time.Duration `yaml:"timeout"`
		StyleTimeout time.Duration `yaml:"styleTimeout"`
		IgnoreRobots bool          `yaml:"ignoreRobots"`
	} `yaml:"fetch"`

	Limits struct {
		StyleMaxBytes int `yaml:"styleMaxBytes"`
		DOMMaxDepth   int `yaml:"domMaxDepth"`
	} `yaml:"limits"`

	Verbose bool `yaml:"verbose"`
}

// LoadConfigFile reads and parses a YAML config file.
func LoadConfigFile(path string) (*FileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &fc, nil
}

// MergeFileConfig fills unset cfg fields from fc. Flag and env values set
// earlier take precedence.
func MergeFileConfig(cfg *Config, fc *FileConfig) {
	if cfg == nil || fc == nil {
		return
	}
	if cfg.Addr == "" {
		cfg.Addr = fc.Addr
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = fc.CORS.Origins
	}
	if cfg.LLMBaseURL == "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if cfg.LLMAPIKey == "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = fc.Fetch.UserAgent
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = fc.Fetch.Timeout
	}
	if cfg.StyleFetchTimeout == 0 {
		cfg.StyleFetchTimeout = fc.Fetch.StyleTimeout
	}
	if !cfg.IgnoreRobots {
		cfg.IgnoreRobots = fc.Fetch.IgnoreRobots
	}
	if cfg.StyleMaxBytes == 0 {
		cfg.StyleMaxBytes = fc.Limits.StyleMaxBytes
	}
	if cfg.DOMMaxDepth == 0 {
		cfg.DOMMaxDepth = fc.Limits.DOMMaxDepth
	}
	if !cfg.Verbose {
		cfg.Verbose = fc.Verbose
	}
}
