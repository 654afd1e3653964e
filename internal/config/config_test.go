package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	if cfg.General.Limit != 5 {
		t.Errorf("default Limit = %d", cfg.General.Limit)
	}
	if cfg.General.PreferAUR || cfg.General.AutoConfirm || cfg.General.DryRun {
		t.Error("expected PreferAUR, AutoConfirm and DryRun to be false by default")
	}

	if !cfg.Cache.Enabled {
		t.Error("expected cache to be enabled by default")
	}
	if cfg.Cache.TTLMinutes != 60 {
		t.Errorf("default TTLMinutes = %d", cfg.Cache.TTLMinutes)
	}
	if cfg.Cache.MaxEntries != 512 {
		t.Errorf("default MaxEntries = %d", cfg.Cache.MaxEntries)
	}

	if len(cfg.Sources.Enabled) != 0 {
		t.Errorf("default enabled sources = %v, expected none (all)", cfg.Sources.Enabled)
	}

	if !cfg.Output.Color {
		t.Error("expected Color to be true by default")
	}
	if !cfg.Output.Unicode {
		t.Error("expected Unicode to be true by default")
	}
	if cfg.Output.Verbose {
		t.Error("expected Verbose to be false by default")
	}

	if cfg.Scoring.ExactMatch != 150 {
		t.Errorf("default ExactMatch = %d", cfg.Scoring.ExactMatch)
	}
	if cfg.Aliases == nil {
		t.Error("Aliases map not initialized")
	}
}

func TestScoringPolicyRoundTrip(t *testing.T) {
	policy := Default().Scoring.Policy()

	if policy.ExactMatch != 150 || policy.VariantMatch != 140 || policy.SubstringMatch != 80 {
		t.Errorf("name-match bonuses = %d/%d/%d", policy.ExactMatch, policy.VariantMatch, policy.SubstringMatch)
	}
	if policy.NativeBonus != 40 || policy.StoreBonus != 5 {
		t.Errorf("tier bonuses = %d/%d", policy.NativeBonus, policy.StoreBonus)
	}
	if policy.HighCoverageMin != 0.8 || policy.MidCoverageMin != 0.5 {
		t.Errorf("coverage thresholds = %v/%v", policy.HighCoverageMin, policy.MidCoverageMin)
	}
	if len(policy.JunkKeywords) == 0 || len(policy.BoostKeywords) == 0 {
		t.Error("keyword lists not carried into the policy")
	}
}

func TestCacheTTL(t *testing.T) {
	c := CacheConfig{TTLMinutes: 90}
	if c.TTL() != 90*time.Minute {
		t.Errorf("TTL() = %v", c.TTL())
	}
}

func TestSourcesAllows(t *testing.T) {
	all := SourcesConfig{}
	for _, name := range []string{"pacman", "aur", "snap"} {
		if !all.Allows(name) {
			t.Errorf("empty enabled list should allow %q", name)
		}
	}

	restricted := SourcesConfig{Enabled: []string{"pacman", "aur"}}
	if !restricted.Allows("pacman") || !restricted.Allows("aur") {
		t.Error("listed sources should be allowed")
	}
	if restricted.Allows("snap") {
		t.Error("unlisted source should be rejected")
	}
}

func TestTimeoutFor(t *testing.T) {
	s := SourcesConfig{Timeouts: map[string]int{"aur": 10}}

	if got := s.TimeoutFor("aur"); got != 10*time.Second {
		t.Errorf("TimeoutFor(aur) = %v", got)
	}
	if got := s.TimeoutFor("pacman"); got != 0 {
		t.Errorf("TimeoutFor(pacman) = %v, expected zero", got)
	}
}

func TestLoadFromOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[general]
limit = 10
prefer_aur = true

[cache]
ttl_minutes = 5

[sources]
enabled = ["pacman", "aur"]

[sources.timeouts]
aur = 10

[scoring]
exact_match = 200

[aliases]
vscode = "visual-studio-code"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.General.Limit != 10 {
		t.Errorf("Limit = %d", cfg.General.Limit)
	}
	if !cfg.General.PreferAUR {
		t.Error("PreferAUR not loaded")
	}
	if cfg.Cache.TTLMinutes != 5 {
		t.Errorf("TTLMinutes = %d", cfg.Cache.TTLMinutes)
	}
	if len(cfg.Sources.Enabled) != 2 || cfg.Sources.Enabled[0] != "pacman" {
		t.Errorf("Enabled = %v", cfg.Sources.Enabled)
	}
	if cfg.Sources.TimeoutFor("aur") != 10*time.Second {
		t.Errorf("aur timeout = %v", cfg.Sources.TimeoutFor("aur"))
	}
	if cfg.Scoring.ExactMatch != 200 {
		t.Errorf("ExactMatch = %d", cfg.Scoring.ExactMatch)
	}
	if cfg.ResolveAlias("vscode") != "visual-studio-code" {
		t.Errorf("alias = %q", cfg.ResolveAlias("vscode"))
	}

	// Untouched settings keep their defaults.
	if cfg.Scoring.SubstringMatch != 80 {
		t.Errorf("SubstringMatch = %d, expected the default", cfg.Scoring.SubstringMatch)
	}
	if !cfg.Cache.Enabled {
		t.Error("cache should stay enabled when the file does not disable it")
	}
	if !cfg.Output.Unicode {
		t.Error("Unicode should keep its default")
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	// Loading non-existent file should return default config
	cfg, err := LoadFrom("/non/existent/path/config.toml")
	if err != nil {
		t.Fatalf("LoadFrom() should not error for non-existent file: %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadFrom() should return default config for non-existent file")
	}
	if !cfg.Output.Color {
		t.Error("expected default Color to be true")
	}
}

func TestLoadSaveConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.General.Limit = 8
	cfg.Aliases["test"] = "test-package"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if loaded.General.Limit != 8 {
		t.Errorf("round-tripped Limit = %d", loaded.General.Limit)
	}
	if loaded.ResolveAlias("test") != "test-package" {
		t.Error("loaded config doesn't have expected alias")
	}
}

func TestResolveAlias(t *testing.T) {
	cfg := &Config{
		Aliases: map[string]string{
			"vim":  "neovim",
			"code": "visual-studio-code",
		},
	}

	tests := []struct {
		input    string
		expected string
	}{
		{"vim", "neovim"},
		{"code", "visual-studio-code"},
		{"git", "git"}, // No alias, returns original
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := cfg.ResolveAlias(tt.input)
			if result != tt.expected {
				t.Errorf("ResolveAlias(%s) = %s, want %s", tt.input, result, tt.expected)
			}
		})
	}
}

func TestShouldUseColor(t *testing.T) {
	cfg := &Config{
		Output: OutputConfig{Color: true},
	}

	// Should return true when Color is true and NO_COLOR is not set
	os.Unsetenv("NO_COLOR")
	if !cfg.ShouldUseColor() {
		t.Error("expected ShouldUseColor() to return true")
	}

	// Should return false when NO_COLOR is set
	os.Setenv("NO_COLOR", "1")
	if cfg.ShouldUseColor() {
		t.Error("expected ShouldUseColor() to return false when NO_COLOR is set")
	}
	os.Unsetenv("NO_COLOR")

	// Should return false when Color is false
	cfg.Output.Color = false
	if cfg.ShouldUseColor() {
		t.Error("expected ShouldUseColor() to return false when Color is false")
	}
}
