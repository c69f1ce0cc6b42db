package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hyperifyio/pageclone/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the pageclone HTTP API",
	Long: `Serve exposes the extraction pipeline over HTTP:

  GET  /scrape-website?url=...   title, H1 headings, and paragraphs
  POST /clone-website            full style/DOM extraction plus a generated clone`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return a.ListenAndServe(ctx)
}
