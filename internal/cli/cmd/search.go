package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/webdeck/internal/application/usecase"
	"github.com/bnema/webdeck/internal/cli/styles"
)

var (
	searchJSON  bool
	searchLimit int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy search shortcuts by name and URL",
	Long: `Rank shortcuts against a query. Names are matched before URLs, and
typos are tolerated.

Examples:
  webdeck search you
  webdeck search "chat gpt" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (0 for all)")
}

// searchResult is the JSON shape of one match.
type searchResult struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	URL   string  `json:"url"`
	Score float64 `json:"score"`
	Field string  `json:"field"`
}

func runSearch(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	out := app.SearchUC.Search(app.Ctx(), usecase.SearchShortcutsInput{
		Query: strings.Join(args, " "),
		Limit: searchLimit,
	})

	if searchJSON {
		results := make([]searchResult, 0, len(out.Matches))
		for _, m := range out.Matches {
			results = append(results, searchResult{
				ID:    int64(m.Shortcut.ID),
				Name:  m.Shortcut.Name,
				URL:   m.Shortcut.URL,
				Score: m.Score,
				Field: string(m.Field),
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	fmt.Println(styles.RenderMatchTable(app.Theme, out.Matches))
	return nil
}
