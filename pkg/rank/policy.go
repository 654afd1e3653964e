// Package rank merges the per-source search results for one query into a
// single ranked candidate list: junk filtering, cross-source deduplication,
// additive scoring and a top-K cut.
package rank

import "pkgscout/pkg/source"

// DefaultLimit is the number of candidates returned when the caller does
// not ask for a specific count.
const DefaultLimit = 5

// Default keyword lists. Junk keywords match against descriptions only;
// boost and low-priority keywords match against both name and description.
var (
	DefaultJunkKeywords = []string{
		"icon", "dummy", "meta", "symlink", "wrap", "material", "launcher", "unionfs",
	}

	DefaultBoostKeywords = []string{
		"editor", "browser", "ide", "official", "gui", "android", "studio", "stable", "canary", "beta",
	}

	DefaultLowPriorityKeywords = []string{
		"extension", "plugin", "helper", "daemon", "patch", "theme",
	}
)

// Policy holds the scoring constants and keyword lists. The numbers are
// tuning, not semantics; only their relative ordering is relied upon
// (exact > variant > substring > coverage bonuses, and native > community >
// container > store).
type Policy struct {
	// Name-match bonuses, mutually exclusive per candidate.
	ExactMatch     int
	VariantMatch   int
	SubstringMatch int

	// Token-coverage bonuses for multi-word queries.
	HighCoverage    int
	MidCoverage     int
	HighCoverageMin float64
	MidCoverageMin  float64

	// OverlapUnit scores absolute token overlap when no coverage bonus
	// applies.
	OverlapUnit int

	// Per-token prefix bonuses. Query tokens shorter than MinTokenLen are
	// ignored for prefix matching.
	NamePrefix  int
	DescPrefix  int
	MinTokenLen int

	// Flat keyword adjustments, applied once per keyword matched.
	BoostBonus         int
	LowPriorityPenalty int

	// BinSuffixBonus rewards names ending in "-bin".
	BinSuffixBonus int

	// Source-tier bonuses.
	NativeBonus    int
	CommunityBonus int
	ContainerBonus int
	StoreBonus     int

	JunkKeywords        []string
	BoostKeywords       []string
	LowPriorityKeywords []string
}

// DefaultPolicy returns the stock scoring policy.
func DefaultPolicy() Policy {
	return Policy{
		ExactMatch:     150,
		VariantMatch:   140,
		SubstringMatch: 80,

		HighCoverage:    70,
		MidCoverage:     40,
		HighCoverageMin: 0.8,
		MidCoverageMin:  0.5,
		OverlapUnit:     8,

		NamePrefix:  4,
		DescPrefix:  1,
		MinTokenLen: 2,

		BoostBonus:         3,
		LowPriorityPenalty: 10,

		BinSuffixBonus: 5,

		NativeBonus:    40,
		CommunityBonus: 20,
		ContainerBonus: 10,
		StoreBonus:     5,

		JunkKeywords:        DefaultJunkKeywords,
		BoostKeywords:       DefaultBoostKeywords,
		LowPriorityKeywords: DefaultLowPriorityKeywords,
	}
}

// tierBonus maps a record's source tier to its trust bonus.
func (p Policy) tierBonus(t source.Tier) int {
	switch t {
	case source.TierNative:
		return p.NativeBonus
	case source.TierCommunity:
		return p.CommunityBonus
	case source.TierContainer:
		return p.ContainerBonus
	case source.TierStore:
		return p.StoreBonus
	}
	return 0
}

// Options are the per-call knobs of one ranking pass.
type Options struct {
	// PreferAUR inverts the default dedup precedence so an AUR hit beats
	// a native-repo hit for the same package name.
	PreferAUR bool

	// Limit caps the ranked output; zero or negative means DefaultLimit.
	Limit int
}

func (o Options) limit() int {
	if o.Limit <= 0 {
		return DefaultLimit
	}
	return o.Limit
}
