// Package cli implements the pageclone commands using Cobra.
package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hyperifyio/pageclone/internal/app"
)

var (
	flagConfig  string
	flagVerbose bool

	flagAddr         string
	flagCORS         string
	flagLLMBase      string
	flagLLMModel     string
	flagLLMKey       string
	flagUserAgent    string
	flagPageTimeout  time.Duration
	flagStyleTimeout time.Duration
	flagStyleMax     int
	flagMaxDepth     int
	flagIgnoreRobots bool
)

var rootCmd = &cobra.Command{
	Use:   "pageclone",
	Short: "pageclone extracts a web page's structure and styles and clones it with a generative model",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		zerolog.TimeFieldFormat = time.RFC3339
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		if flagVerbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to YAML config file")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose logging")
	pf.StringVar(&flagAddr, "addr", "", "HTTP listen address (default :8000)")
	pf.StringVar(&flagCORS, "cors.origins", "", "Comma-separated allowed CORS origins")
	pf.StringVar(&flagLLMBase, "llm.base", "", "OpenAI-compatible base URL for the generative model")
	pf.StringVar(&flagLLMModel, "llm.model", "", "Generative model name")
	pf.StringVar(&flagLLMKey, "llm.key", "", "API key for the generative model")
	pf.StringVar(&flagUserAgent, "ua", "", "Override the bot User-Agent")
	pf.DurationVar(&flagPageTimeout, "timeout.page", 0, "Primary page fetch timeout (default 15s)")
	pf.DurationVar(&flagStyleTimeout, "timeout.style", 0, "Linked stylesheet fetch timeout (default 5s)")
	pf.IntVar(&flagStyleMax, "style.maxBytes", 0, "Max aggregate bytes of collected CSS (default 99999)")
	pf.IntVar(&flagMaxDepth, "dom.maxDepth", 0, "Max DOM reduction depth (0 = unbounded)")
	pf.BoolVar(&flagIgnoreRobots, "ignore-robots", false, "Skip the robots.txt courtesy check")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveConfig layers flags over env over the optional config file.
func resolveConfig() (app.Config, error) {
	cfg := app.Config{
		Addr:              flagAddr,
		LLMBaseURL:        flagLLMBase,
		LLMModel:          flagLLMModel,
		LLMAPIKey:         flagLLMKey,
		UserAgent:         flagUserAgent,
		FetchTimeout:      flagPageTimeout,
		StyleFetchTimeout: flagStyleTimeout,
		StyleMaxBytes:     flagStyleMax,
		DOMMaxDepth:       flagMaxDepth,
		IgnoreRobots:      flagIgnoreRobots,
		Verbose:           flagVerbose,
	}
	if s := strings.TrimSpace(flagCORS); s != "" {
		for _, p := range strings.Split(s, ",") {
			if v := strings.TrimSpace(p); v != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, v)
			}
		}
	}
	app.ApplyEnvToConfig(&cfg)
	if flagConfig != "" {
		fc, err := app.LoadConfigFile(flagConfig)
		if err != nil {
			return app.Config{}, err
		}
		app.MergeFileConfig(&cfg, fc)
	}
	return cfg, nil
}
