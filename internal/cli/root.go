// Package cli implements the command-line interface for pkgscout.
package cli

import (
	"pkgscout/internal/config"
	"pkgscout/internal/executor"
	"pkgscout/internal/ui"
	"pkgscout/pkg/distro"
	"pkgscout/pkg/source"
	"pkgscout/pkg/suggest"

	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile string
	dryRun  bool
	verbose bool
	noColor bool
)

// App bundles the state every command works through: the loaded config and
// the handles built from it. One App is constructed per process by the root
// command's PersistentPreRunE; tests can build isolated instances.
type App struct {
	cfg     *config.Config
	reg     *source.Registry
	runner  *executor.Executor
	dist    *distro.Info
	catalog *suggest.Catalog
}

// app is the composition-root handle the commands read.
var app *App

// Build metadata - set at build time via ldflags
var (
	Version   = "0.1.0-dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "pkgscout [query]",
	Short: "Find packages across every package source on your system",
	Long: `Pkgscout searches all the package sources available on this machine
at once - the native repositories, the AUR, Flatpak and Snap - then
merges and ranks what they return so the best match comes first.
Pick a result and pkgscout generates and runs the right install
command for its source.

Sources: pacman, apt, dnf, zypper, aur, flatpak, snap

Examples:
  pkgscout firefox                  # Search everywhere, then offer to install
  pkgscout search vscode --prefer-aur
  pkgscout search htop -s pacman -s aur
  pkgscout suggest "video editor"   # Curated picks for a purpose
  pkgscout doctor                   # Check which sources are usable`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeApp()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare "pkgscout <query>" behaves like "pkgscout search <query>".
		if len(args) == 0 {
			return cmd.Help()
		}
		return runSearch(cmd, args)
	},
}

func init() {
	rootCmd.Version = Version

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "print install commands without executing them")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(installedCmd)
	rootCmd.AddCommand(updatesCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		ui.ErrorMsg("%v", err)
	}
	return err
}

func initializeApp() error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	app = a
	return nil
}

// buildApp loads configuration, applies the global flag overrides, and wires
// the executor, registry, catalog and distro detection together.
func buildApp() (*App, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	// Apply global flag overrides
	if dryRun {
		cfg.General.DryRun = true
	}
	if verbose {
		cfg.Output.Verbose = true
	}
	if noColor {
		cfg.Output.Color = false
	}

	ui.Init(cfg.ShouldUseColor(), cfg.Output.Unicode)

	a := &App{
		cfg:     cfg,
		reg:     source.DefaultRegistry(),
		catalog: suggest.Default(),
	}

	// The runner executes install and version-query commands. Searches run
	// inside the adapters, so dry-run stops installs without breaking search.
	a.runner = executor.New(cfg.General.DryRun, cfg.Output.Verbose)

	for name := range cfg.Sources.Timeouts {
		a.reg.SetTimeout(name, cfg.Sources.TimeoutFor(name))
	}

	// Detect the distribution. An undetectable system still gets the
	// distro-independent sources.
	a.dist, err = distro.Detect()
	if err != nil {
		if cfg.Output.Verbose {
			ui.WarningMsg("Distro detection: %v", err)
		}
		a.dist = &distro.Info{}
	}

	return a, nil
}

// defaultSourceNames returns the sources a search fans out to when the user
// did not restrict them: the distro's order filtered by the config allow-list.
func (a *App) defaultSourceNames() []string {
	var names []string
	for _, name := range a.dist.Family().Sources() {
		if a.cfg.Sources.Allows(name) {
			names = append(names, name)
		}
	}
	return names
}

// Version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print pkgscout version",
	Run: func(cmd *cobra.Command, args []string) {
		ui.InfoMsg("pkgscout version %s", Version)
		if Commit != "unknown" {
			ui.MutedMsg("  Commit: %s", Commit)
		}
		if BuildTime != "unknown" {
			ui.MutedMsg("  Built:  %s", BuildTime)
		}
	},
}
