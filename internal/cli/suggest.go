package cli

import (
	"context"
	"fmt"
	"strings"

	"pkgscout/internal/ui"
	"pkgscout/pkg/source"
	"pkgscout/pkg/suggest"

	"github.com/spf13/cobra"
)

var suggestSearch bool

var suggestCmd = &cobra.Command{
	Use:   "suggest [purpose]...",
	Short: "Suggest packages for a purpose",
	Long: `Suggest curated packages for a purpose description instead of a
package name. Purposes can be category names ("browser") or free-form
phrases ("I want to edit videos").

With --search, each suggestion is checked against the live sources so
the table shows where it can actually be installed from.

Examples:
  pkgscout suggest                  # List known categories
  pkgscout suggest web browser
  pkgscout suggest edit videos --search`,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().BoolVar(&suggestSearch, "search", false, "check which sources carry each suggestion")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		ui.HeaderMsg("Suggestion categories")
		for _, cat := range app.catalog.Categories() {
			ui.Println("  - %s", cat)
		}
		ui.MutedMsg("\nAsk with a purpose, e.g.: pkgscout suggest web browser")
		return nil
	}

	purpose := strings.Join(args, " ")
	entries := app.catalog.ByPurpose(purpose)
	if len(entries) == 0 {
		ui.InfoMsg("No curated picks for %q", purpose)
		ui.MutedMsg("Known categories: %s", strings.Join(app.catalog.Categories(), ", "))
		return nil
	}

	if suggestSearch {
		return app.printCheckedSuggestions(purpose, entries)
	}

	ui.HeaderMsg("Suggestions for %q", purpose)
	table := ui.NewTable([]string{"name", "category", "description"})
	for _, e := range entries {
		table.AddRow(ui.PackageName.Sprint(e.Canonical), e.Category, e.Blurb)
	}
	table.Render()
	ui.MutedMsg("\nInstall one with: pkgscout <name>")
	return nil
}

// printCheckedSuggestions verifies each suggestion against the live sources
// and adds an availability column. Checks run through the normal search
// path, so cached results are reused.
func (a *App) printCheckedSuggestions(purpose string, entries []suggest.Entry) error {
	ctx := context.Background()

	names := a.defaultSourceNames()
	if len(names) == 0 {
		return ErrNoSources
	}
	selected, err := a.reg.Select(names)
	if err != nil {
		return err
	}

	var adapters []source.Adapter
	for _, ad := range selected {
		if ad.Available() {
			adapters = append(adapters, ad)
		}
	}
	if len(adapters) == 0 {
		return ErrNoSources
	}

	if store := a.openResultCache(); store != nil {
		defer store.Close()
		a.reg.AttachCache(store)
	}

	sp := ui.NewSpinner("Checking availability...")
	sp.Start()

	available := make([]string, len(entries))
	for i, e := range entries {
		sp.UpdateMessage(fmt.Sprintf("Checking %s...", e.Canonical))
		available[i] = strings.Join(sourcesCarrying(ctx, e, adapters), ", ")
	}
	sp.Stop()

	ui.HeaderMsg("Suggestions for %q", purpose)
	table := ui.NewTable([]string{"name", "category", "available", "description"})
	for i, e := range entries {
		avail := available[i]
		if avail == "" {
			avail = ui.Muted.Sprint("-")
		}
		table.AddRow(ui.PackageName.Sprint(e.Canonical), e.Category, avail, e.Blurb)
	}
	table.Render()
	return nil
}

// sourcesCarrying returns the names of the sources whose search reports an
// exact match for the entry. Source failures read as "not carried".
func sourcesCarrying(ctx context.Context, e suggest.Entry, adapters []source.Adapter) []string {
	var hits []string
	for _, ad := range adapters {
		want := e.NameFor(ad.Name())
		records, err := ad.Search(ctx, want)
		if err != nil {
			continue
		}
		for _, r := range records {
			if strings.EqualFold(r.Name, want) {
				hits = append(hits, ad.Name())
				break
			}
		}
	}
	return hits
}
