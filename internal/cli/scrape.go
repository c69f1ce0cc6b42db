package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hyperifyio/pageclone/internal/app"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url>",
	Short: "Print a page's title, H1 headings, and paragraphs as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	s := app.NewSummarizer(cfg)
	sum, err := s.Summarize(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("scrape failed: %w", err)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(sum)
}
