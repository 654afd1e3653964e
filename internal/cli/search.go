package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pkgscout/internal/config"
	"pkgscout/internal/executor"
	"pkgscout/internal/tracker"
	"pkgscout/internal/tui"
	"pkgscout/internal/ui"
	"pkgscout/pkg/cache"
	"pkgscout/pkg/install"
	"pkgscout/pkg/rank"
	"pkgscout/pkg/source"

	"github.com/spf13/cobra"
)

var (
	searchPreferAUR bool
	searchNoCache   bool
	searchLimit     int
	searchSources   []string
	searchBrowse    bool
	searchYes       bool
	searchNoInstall bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search every package source at once",
	Long: `Search all available package sources concurrently and rank the merged
results. Multi-word queries are joined into one query string.

A source that fails or times out is reported and skipped; the others
still answer. Results come back ranked, best match first, and pkgscout
offers to install the one you pick.

Examples:
  pkgscout search firefox
  pkgscout search visual studio code     # Multi-word query
  pkgscout search htop --no-install      # Print candidates only
  pkgscout search spotify --prefer-aur   # Prefer AUR on name collisions
  pkgscout search vlc -s flatpak -s snap
  pkgscout search firefox --browse       # Full-screen results browser`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchPreferAUR, "prefer-aur", false, "prefer AUR packages when names collide")
	searchCmd.Flags().BoolVar(&searchNoCache, "no-cache", false, "skip the results cache")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 0, "maximum candidates to show (0 = config default)")
	searchCmd.Flags().StringSliceVarP(&searchSources, "source", "s", nil, "search only these sources (repeatable)")
	searchCmd.Flags().BoolVar(&searchBrowse, "browse", false, "browse results in a full-screen UI")
	searchCmd.Flags().BoolVarP(&searchYes, "yes", "y", false, "install the selection without confirming")
	searchCmd.Flags().BoolVar(&searchNoInstall, "no-install", false, "print ranked candidates and exit")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return ErrNoQuery
	}

	// Aliases rewrite the query before anything else sees it.
	if resolved := app.cfg.ResolveAlias(query); resolved != query {
		ui.MutedMsg("Using alias: %s -> %s", query, resolved)
		query = resolved
	}

	adapters, err := app.pickAdapters()
	if err != nil {
		return err
	}

	if store := app.openResultCache(); store != nil {
		defer store.Close()
		app.reg.AttachCache(store)
	}

	sp := ui.NewSpinner(fmt.Sprintf("Searching %d sources for %q...", len(adapters), query))
	sp.Start()
	outcomes := app.reg.SearchAll(ctx, query, adapters)
	sp.Stop()

	var records []source.Record
	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			warnSkipped(o)
			continue
		}
		records = append(records, o.Records...)
	}

	if failed == len(outcomes) {
		return fmt.Errorf("all %d sources failed", len(outcomes))
	}

	candidates := app.rankRecords(query, records)
	if len(candidates) == 0 {
		app.reportNothingFound(query)
		return nil
	}

	if searchNoInstall {
		ui.PrintCandidates(candidates)
		return nil
	}

	chosen, err := pickCandidate(query, candidates)
	if err != nil {
		return err
	}
	if chosen == nil {
		ui.MutedMsg("Nothing installed")
		return nil
	}

	return app.installCandidate(ctx, chosen)
}

// pickAdapters resolves which sources this search fans out to.
func (a *App) pickAdapters() ([]source.Adapter, error) {
	names := searchSources
	if len(names) == 0 {
		names = a.defaultSourceNames()
	}
	if len(names) == 0 {
		return nil, ErrNoSources
	}
	return a.reg.Select(names)
}

// openResultCache opens the results cache, or returns nil when caching is
// off or unavailable. Cache trouble never stops a search.
func (a *App) openResultCache() *cache.Cache {
	if !a.cfg.Cache.Enabled || searchNoCache {
		return nil
	}
	if err := config.EnsureCacheDir(); err != nil {
		return nil
	}

	store, err := cache.Open(config.CachePath(), cache.Options{
		TTL:        a.cfg.Cache.TTL(),
		MaxEntries: a.cfg.Cache.MaxEntries,
	})
	if err != nil {
		if a.cfg.Output.Verbose {
			ui.WarningMsg("Results cache unavailable: %v", err)
		}
		return nil
	}
	return store
}

func warnSkipped(o source.Outcome) {
	reason, hint := source.Skip(o.Err)
	ui.WarningMsg("%s: %s", o.Source, reason)
	if hint != "" {
		ui.MutedMsg("  %s", hint)
	}
}

// rankRecords runs the ranking pipeline under the configured policy.
func (a *App) rankRecords(query string, records []source.Record) []rank.Candidate {
	limit := searchLimit
	if limit <= 0 {
		limit = a.cfg.General.Limit
	}

	engine := rank.New(a.cfg.Scoring.Policy())
	return engine.Rank(query, records, rank.Options{
		PreferAUR: searchPreferAUR || a.cfg.General.PreferAUR,
		Limit:     limit,
	})
}

// reportNothingFound prints the empty-result message plus alternate query
// terms worth trying. Distinct from the all-sources-failed error path.
func (a *App) reportNothingFound(query string) {
	ui.InfoMsg("No packages found matching %q", query)

	if alternates := a.catalog.Alternates(query); len(alternates) > 0 {
		ui.MutedMsg("Try: %s", strings.Join(alternates, ", "))
	}
	if len(a.catalog.ByPurpose(query)) > 0 {
		ui.MutedMsg("Or ask for curated picks: pkgscout suggest %q", query)
	}
}

// pickCandidate lets the user choose a candidate; nil means they backed out.
func pickCandidate(query string, candidates []rank.Candidate) (*rank.Candidate, error) {
	if searchBrowse {
		return tui.Run(query, candidates)
	}

	prompt := fmt.Sprintf("Select a package to install (%d found)", len(candidates))
	chosen, err := ui.SelectCandidate(candidates, prompt)
	if errors.Is(err, ui.ErrAborted) {
		return nil, nil
	}
	return chosen, err
}

// installCandidate confirms, generates and runs the install command, then
// hands the completed install to the tracker.
func (a *App) installCandidate(ctx context.Context, chosen *rank.Candidate) error {
	name, src := chosen.Record.Name, chosen.Record.Source

	if !searchYes && !a.cfg.General.AutoConfirm {
		confirmed, err := ui.Confirm(fmt.Sprintf("Install %s from %s?", name, src), true)
		if errors.Is(err, ui.ErrAborted) || !confirmed {
			ui.MutedMsg("Nothing installed")
			return nil
		}
	}

	x, err := install.Command(name, src)
	if err != nil {
		return err
	}
	if !a.cfg.General.DryRun {
		if err := executor.CheckPrivileges(x.Sudo); err != nil {
			return err
		}
	}

	ui.InfoMsg("Running: %s", x.String())
	if err := install.Run(ctx, a.runner, x); err != nil {
		return fmt.Errorf("install failed: %w", err)
	}

	if a.cfg.General.DryRun {
		ui.MutedMsg("Dry run: nothing was installed")
		return nil
	}

	ui.SuccessMsg("Installed %s", name)
	a.trackInstall(ctx, name, src, x)
	return nil
}

// trackInstall records a completed install. Tracker trouble is a warning,
// never a failed install.
func (a *App) trackInstall(ctx context.Context, name, src string, x *install.Exec) {
	version := install.InstalledVersion(ctx, a.runner, name, src)

	store, err := openTracker()
	if err != nil {
		ui.WarningMsg("Could not record install: %v", err)
		return
	}
	defer store.Close()

	if err := store.Record(tracker.Install{
		Name:    name,
		Source:  src,
		Version: version,
		Via:     x.String(),
	}); err != nil {
		ui.WarningMsg("Could not record install: %v", err)
	}
}
