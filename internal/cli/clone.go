package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hyperifyio/pageclone/internal/app"
)

var flagHTMLOnly bool

var cloneCmd = &cobra.Command{
	Use:   "clone <url>",
	Short: "Extract a page and generate an HTML clone of it",
	Long: `Clone fetches the page, collects its stylesheets and inline styles,
reduces the DOM tree, and asks the generative model for a complete HTML
document reproducing the page. Requires an API key (--llm.key, LLM_API_KEY,
or GEMINI_API_KEY).`,
	Args: cobra.ExactArgs(1),
	RunE: runClone,
}

func init() {
	cloneCmd.Flags().BoolVar(&flagHTMLOnly, "html", false, "Print only the generated HTML instead of the full JSON result")
	rootCmd.AddCommand(cloneCmd)
}

func runClone(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	res, err := a.Cloner.Clone(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("clone failed: %w", err)
	}
	if flagHTMLOnly {
		fmt.Println(res.GeneratedHTML)
		return nil
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
