package cli

import (
	"context"
	"fmt"

	"pkgscout/internal/tracker"
	"pkgscout/internal/ui"
	"pkgscout/pkg/source"

	"github.com/spf13/cobra"
)

var updatesCmd = &cobra.Command{
	Use:   "updates",
	Short: "Check tracked installs for updates",
	Long: `Check every tracked install for a newer version in its source.

Version checks are best effort. A source that cannot answer reports the
package as unknown instead of failing the whole run.

Examples:
  pkgscout updates`,
	RunE: runUpdates,
}

func runUpdates(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	store, err := openTracker()
	if err != nil {
		return fmt.Errorf("open install log: %w", err)
	}
	defer store.Close()

	total, err := store.Count()
	if err != nil {
		return fmt.Errorf("read install log: %w", err)
	}
	if total == 0 {
		ui.MutedMsg("No tracked installs to check")
		return nil
	}

	// AUR version checks go over the RPC API, not through a helper binary.
	var aurClient *source.AUR
	if ad, ok := app.reg.Get("aur"); ok {
		if a, ok := ad.(*source.AUR); ok {
			aurClient = a
		}
	}
	checker := tracker.NewChecker(store, aurClient, app.runner)

	sp := ui.NewSpinner(fmt.Sprintf("Checking %d tracked installs...", total))
	sp.Start()
	updates, err := checker.CheckAll(ctx)
	sp.Stop()
	if err != nil {
		return fmt.Errorf("check updates: %w", err)
	}

	ui.PrintUpdates(updates)

	pending := 0
	for _, u := range updates {
		if u.Status == tracker.UpdateAvailable {
			pending++
		}
	}

	fmt.Println()
	if pending == 0 {
		ui.SuccessMsg("Everything is up to date")
	} else {
		ui.InfoMsg("%d update(s) available; install again to upgrade", pending)
	}
	return nil
}
