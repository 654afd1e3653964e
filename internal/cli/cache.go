package cli

import (
	"fmt"
	"sort"
	"strconv"

	"pkgscout/internal/config"
	"pkgscout/internal/ui"
	"pkgscout/pkg/cache"

	"github.com/spf13/cobra"
)

var cacheClearSource string

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the results cache",
	Long: `Inspect or clear the on-disk results cache.

Search results are cached per source so repeated queries answer
instantly. Entries expire after the configured TTL and are refreshed
on the next search.`,
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache contents and hit counts",
	RunE:  runCacheStats,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached search results",
	Long: `Remove cached search results, either for every source or for a
single one with --source.

Examples:
  pkgscout cache clear
  pkgscout cache clear --source aur`,
	RunE: runCacheClear,
}

func init() {
	cacheClearCmd.Flags().StringVarP(&cacheClearSource, "source", "s", "", "clear entries for one source only")
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}

func (a *App) openCache() (*cache.Cache, error) {
	if err := config.EnsureCacheDir(); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}
	return cache.Open(config.CachePath(), cache.Options{
		TTL:        a.cfg.Cache.TTL(),
		MaxEntries: a.cfg.Cache.MaxEntries,
	})
}

func runCacheStats(cmd *cobra.Command, args []string) error {
	store, err := app.openCache()
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		return fmt.Errorf("read cache stats: %w", err)
	}

	ui.HeaderMsg("Cache")
	ui.Println("  %s %s", ui.Cyan("Path:"), config.CachePath())
	ui.Println("  %s %s", ui.Cyan("TTL:"), store.TTL().String())
	ui.Println("  %s %d (%d valid, %d expired)",
		ui.Cyan("Entries:"), stats.Total, stats.Valid, stats.Total-stats.Valid)
	if stats.Total > 0 {
		ui.Println("  %s %.1f", ui.Cyan("Avg hits per entry:"), stats.AvgAccess)
	}

	if len(stats.PerSource) == 0 {
		ui.MutedMsg("\nThe cache is empty")
		return nil
	}

	names := make([]string, 0, len(stats.PerSource))
	for name := range stats.PerSource {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println()
	table := ui.NewTable([]string{"source", "entries"})
	for _, name := range names {
		table.AddRow(ui.SourceTag(name), strconv.Itoa(stats.PerSource[name]))
	}
	table.Render()

	return nil
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	store, err := app.openCache()
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer store.Close()

	removed, err := store.Clear(cacheClearSource)
	if err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}

	if cacheClearSource != "" {
		ui.SuccessMsg("Removed %d cached entries for %s", removed, cacheClearSource)
	} else {
		ui.SuccessMsg("Removed %d cached entries", removed)
	}
	return nil
}
