package cli

import (
	"context"
	"strings"
	"time"

	"pkgscout/internal/config"
	"pkgscout/internal/ui"
	"pkgscout/pkg/install"

	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose package source issues",
	Long: `Check which package sources are installed, whether each one responds,
and whether the environment is ready for installs.

Examples:
  pkgscout doctor           # Run diagnostics`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	issues := 0

	ui.HeaderMsg("Running diagnostics...")

	// Check distribution detection
	if app.dist.ID == "" {
		ui.WarningMsg("Distribution detection failed; relying on PATH lookups only")
	} else {
		name := app.dist.PrettyName
		if name == "" {
			name = app.dist.ID
		}
		ui.SuccessMsg("Distribution detected: %s (%s family)", name, app.dist.Family())
	}

	// Check every source: installed, and responding
	ui.HeaderMsg("Package Sources")
	available := 0
	for _, ad := range app.reg.All() {
		if !ad.Available() {
			ui.MutedMsg("  - %s: not installed", ad.Name())
			continue
		}
		available++

		start := time.Now()
		err := ad.Probe(ctx)
		elapsed := time.Since(start).Round(time.Millisecond)
		if err != nil {
			ui.ErrorMsg("%s is installed but not responding: %v", ad.Name(), err)
			issues++
			continue
		}
		ui.SuccessMsg("%s: %s (%s)", ad.Name(), ad.DisplayName(), elapsed)
	}
	if available == 0 {
		ui.ErrorMsg("No package sources found on this system")
		issues++
	}

	// Check AUR helper (if on an Arch-family system)
	if app.dist.Family().SupportsAUR() {
		ui.HeaderMsg("AUR Helper")
		if helper, ok := install.AURHelper(); ok {
			ui.SuccessMsg("AUR helper available: %s", helper)
		} else {
			ui.WarningMsg("No AUR helper found (install yay or paru for AUR installs)")
		}
	}

	// Check config and data paths
	ui.HeaderMsg("Configuration")
	ui.Println("  %s %s", ui.Cyan("Config file:"), config.ConfigPath())
	ui.Println("  %s %s", ui.Cyan("Results cache:"), config.CachePath())
	ui.Println("  %s %s", ui.Cyan("Install log:"), config.InstalledPath())
	if order := app.defaultSourceNames(); len(order) > 0 {
		ui.Println("  %s %s", ui.Cyan("Search order:"), strings.Join(order, ", "))
	}

	// Summary
	ui.HeaderMsg("Summary")
	if issues == 0 {
		ui.SuccessMsg("No issues found. pkgscout is ready to use.")
	} else {
		ui.WarningMsg("Found %d issue(s). Some sources may not answer searches.", issues)
	}

	return nil
}
