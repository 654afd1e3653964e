package cli

import (
	"fmt"

	"pkgscout/internal/config"
	"pkgscout/internal/tracker"
	"pkgscout/internal/ui"

	"github.com/spf13/cobra"
)

var (
	installedLimit  int
	installedForget string
)

var installedCmd = &cobra.Command{
	Use:   "installed",
	Short: "List packages installed through pkgscout",
	Long: `List the packages pkgscout has installed, newest first.

Only installs made through pkgscout are tracked; packages installed
directly with a package manager do not appear here.

Examples:
  pkgscout installed
  pkgscout installed --limit 10
  pkgscout installed --forget htop   # Drop a package from the log`,
	RunE: runInstalled,
}

func init() {
	installedCmd.Flags().IntVarP(&installedLimit, "limit", "l", 0, "show at most this many installs (0 = all)")
	installedCmd.Flags().StringVar(&installedForget, "forget", "", "remove a package from the install log")
}

func openTracker() (*tracker.Store, error) {
	if err := config.EnsureDataDir(); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return tracker.Open(config.InstalledPath())
}

func runInstalled(cmd *cobra.Command, args []string) error {
	store, err := openTracker()
	if err != nil {
		return fmt.Errorf("open install log: %w", err)
	}
	defer store.Close()

	if installedForget != "" {
		removed, err := store.Remove(installedForget)
		if err != nil {
			return fmt.Errorf("forget %s: %w", installedForget, err)
		}
		if removed == 0 {
			ui.InfoMsg("%s is not in the install log", installedForget)
			return nil
		}
		ui.SuccessMsg("Forgot %s", installedForget)
		return nil
	}

	installs, err := store.List(installedLimit)
	if err != nil {
		return fmt.Errorf("read install log: %w", err)
	}
	if len(installs) == 0 {
		ui.MutedMsg("No tracked installs yet; install something with: pkgscout <query>")
		return nil
	}

	ui.PrintInstalls(installs)

	if total, err := store.Count(); err == nil && total > len(installs) {
		ui.MutedMsg("\nShowing %d of %d tracked installs", len(installs), total)
	}
	return nil
}
