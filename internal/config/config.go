package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"pkgscout/pkg/rank"
)

// Config represents the complete pkgscout configuration.
type Config struct {
	General GeneralConfig     `toml:"general"`
	Cache   CacheConfig       `toml:"cache"`
	Sources SourcesConfig     `toml:"sources"`
	Output  OutputConfig      `toml:"output"`
	Scoring ScoringConfig     `toml:"scoring"`
	Aliases map[string]string `toml:"aliases"`
}

// GeneralConfig contains general pkgscout settings.
type GeneralConfig struct {
	// Limit is the number of ranked candidates shown per search.
	Limit int `toml:"limit"`

	// PreferAUR keeps the AUR entry when the same package name exists in
	// several sources.
	PreferAUR bool `toml:"prefer_aur"`

	// AutoConfirm skips confirmation prompts when true (like -y flag).
	AutoConfirm bool `toml:"auto_confirm"`

	// DryRun shows what would happen without executing when true.
	DryRun bool `toml:"dry_run"`
}

// CacheConfig controls the on-disk result cache.
type CacheConfig struct {
	// Enabled toggles result caching entirely.
	Enabled bool `toml:"enabled"`

	// TTLMinutes is how long cached results stay fresh.
	TTLMinutes int `toml:"ttl_minutes"`

	// MaxEntries caps the cache before least-used entries are evicted.
	MaxEntries int `toml:"max_entries"`
}

// TTL returns the configured cache lifetime as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// SourcesConfig restricts and tunes which sources are searched.
type SourcesConfig struct {
	// Enabled lists the sources to search. Empty means every source the
	// system supports.
	Enabled []string `toml:"enabled"`

	// Timeouts holds per-source search timeout overrides in seconds.
	Timeouts map[string]int `toml:"timeouts"`
}

// Allows reports whether a source passes the enabled list.
func (s SourcesConfig) Allows(name string) bool {
	if len(s.Enabled) == 0 {
		return true
	}
	for _, enabled := range s.Enabled {
		if enabled == name {
			return true
		}
	}
	return false
}

// TimeoutFor returns the timeout override for a source, or zero when the
// source keeps its default.
func (s SourcesConfig) TimeoutFor(name string) time.Duration {
	return time.Duration(s.Timeouts[name]) * time.Second
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	// Color enables colored output (respects NO_COLOR env var).
	Color bool `toml:"color"`

	// Unicode enables unicode symbols in output.
	Unicode bool `toml:"unicode"`

	// Verbose enables detailed output.
	Verbose bool `toml:"verbose"`
}

// ScoringConfig exposes every ranking knob. Default() pre-fills the stock
// policy, so a config file only needs the values it changes.
type ScoringConfig struct {
	ExactMatch     int `toml:"exact_match"`
	VariantMatch   int `toml:"variant_match"`
	SubstringMatch int `toml:"substring_match"`

	HighCoverage    int     `toml:"high_coverage"`
	MidCoverage     int     `toml:"mid_coverage"`
	HighCoverageMin float64 `toml:"high_coverage_min"`
	MidCoverageMin  float64 `toml:"mid_coverage_min"`
	OverlapUnit     int     `toml:"overlap_unit"`

	NamePrefix  int `toml:"name_prefix"`
	DescPrefix  int `toml:"desc_prefix"`
	MinTokenLen int `toml:"min_token_len"`

	BoostBonus         int `toml:"boost_bonus"`
	LowPriorityPenalty int `toml:"low_priority_penalty"`
	BinSuffixBonus     int `toml:"bin_suffix_bonus"`

	NativeBonus    int `toml:"native_bonus"`
	CommunityBonus int `toml:"community_bonus"`
	ContainerBonus int `toml:"container_bonus"`
	StoreBonus     int `toml:"store_bonus"`

	JunkKeywords        []string `toml:"junk_keywords"`
	BoostKeywords       []string `toml:"boost_keywords"`
	LowPriorityKeywords []string `toml:"low_priority_keywords"`
}

// Policy converts the scoring section into a ranking policy.
func (s ScoringConfig) Policy() rank.Policy {
	return rank.Policy{
		ExactMatch:     s.ExactMatch,
		VariantMatch:   s.VariantMatch,
		SubstringMatch: s.SubstringMatch,

		HighCoverage:    s.HighCoverage,
		MidCoverage:     s.MidCoverage,
		HighCoverageMin: s.HighCoverageMin,
		MidCoverageMin:  s.MidCoverageMin,
		OverlapUnit:     s.OverlapUnit,

		NamePrefix:  s.NamePrefix,
		DescPrefix:  s.DescPrefix,
		MinTokenLen: s.MinTokenLen,

		BoostBonus:         s.BoostBonus,
		LowPriorityPenalty: s.LowPriorityPenalty,
		BinSuffixBonus:     s.BinSuffixBonus,

		NativeBonus:    s.NativeBonus,
		CommunityBonus: s.CommunityBonus,
		ContainerBonus: s.ContainerBonus,
		StoreBonus:     s.StoreBonus,

		JunkKeywords:        s.JunkKeywords,
		BoostKeywords:       s.BoostKeywords,
		LowPriorityKeywords: s.LowPriorityKeywords,
	}
}

// defaultScoring mirrors the stock ranking policy into config form.
func defaultScoring() ScoringConfig {
	p := rank.DefaultPolicy()
	return ScoringConfig{
		ExactMatch:     p.ExactMatch,
		VariantMatch:   p.VariantMatch,
		SubstringMatch: p.SubstringMatch,

		HighCoverage:    p.HighCoverage,
		MidCoverage:     p.MidCoverage,
		HighCoverageMin: p.HighCoverageMin,
		MidCoverageMin:  p.MidCoverageMin,
		OverlapUnit:     p.OverlapUnit,

		NamePrefix:  p.NamePrefix,
		DescPrefix:  p.DescPrefix,
		MinTokenLen: p.MinTokenLen,

		BoostBonus:         p.BoostBonus,
		LowPriorityPenalty: p.LowPriorityPenalty,
		BinSuffixBonus:     p.BinSuffixBonus,

		NativeBonus:    p.NativeBonus,
		CommunityBonus: p.CommunityBonus,
		ContainerBonus: p.ContainerBonus,
		StoreBonus:     p.StoreBonus,

		JunkKeywords:        p.JunkKeywords,
		BoostKeywords:       p.BoostKeywords,
		LowPriorityKeywords: p.LowPriorityKeywords,
	}
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			Limit:       rank.DefaultLimit,
			PreferAUR:   false,
			AutoConfirm: false,
			DryRun:      false,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTLMinutes: 60,
			MaxEntries: 512,
		},
		Sources: SourcesConfig{},
		Output: OutputConfig{
			Color:   true,
			Unicode: true,
			Verbose: false,
		},
		Scoring: defaultScoring(),
		Aliases: map[string]string{},
	}
}

// Load loads the configuration from the default path.
// If the config file doesn't exist, it returns the default configuration.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom loads the configuration from a specific path.
// If the config file doesn't exist, it returns the default configuration.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	// Parse the config file over the defaults
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

// SaveTo writes the configuration to a specific path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(c)
}

// ResolveAlias returns the replacement query for an alias, or the original
// query if no alias exists.
func (c *Config) ResolveAlias(query string) string {
	if alias, ok := c.Aliases[query]; ok {
		return alias
	}
	return query
}

// ShouldUseColor returns true if colored output should be used.
// Respects the NO_COLOR environment variable.
func (c *Config) ShouldUseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return c.Output.Color
}
