package rank

import (
	"sort"
	"strings"

	"pkgscout/pkg/source"
)

// Candidate is one scored record. It lives only for the duration of a
// ranking pass and is never persisted.
type Candidate struct {
	Record source.Record
	Score  int
}

// Engine runs the ranking pipeline under one policy.
type Engine struct {
	policy Policy
}

// New creates an engine with the given policy.
func New(policy Policy) *Engine {
	return &Engine{policy: policy}
}

// Rank turns the union of all sources' records for one query into a ranked
// top-K list. Stages run in fixed order: junk filtering, deduplication,
// scoring, zero-cutoff, stable sort, truncation.
func (e *Engine) Rank(query string, records []source.Record, opts Options) []Candidate {
	if len(records) == 0 {
		return []Candidate{}
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []Candidate{}
	}

	survivors := e.Dedup(e.FilterJunk(records), opts.PreferAUR)

	// Query normalization happens once per pass, not per candidate.
	queryTokens := strings.Fields(q)
	hyphenVariant := strings.Join(queryTokens, "-")
	compactVariant := strings.Join(queryTokens, "")
	multiWord := len(queryTokens) > 1

	candidates := make([]Candidate, 0, len(survivors))
	for _, rec := range survivors {
		score := e.score(rec, q, queryTokens, hyphenVariant, compactVariant, multiWord)
		if score <= 0 {
			continue
		}
		candidates = append(candidates, Candidate{Record: rec, Score: score})
	}

	// Stable: ties keep discovery order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if limit := opts.limit(); len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// Score computes one record's relevance score against a query. Rank
// precomputes the query context once per pass instead of calling this per
// record; Score is for scoring records in isolation.
func (e *Engine) Score(query string, rec source.Record) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0
	}

	queryTokens := strings.Fields(q)
	hyphenVariant := strings.Join(queryTokens, "-")
	compactVariant := strings.Join(queryTokens, "")
	return e.score(rec, q, queryTokens, hyphenVariant, compactVariant, len(queryTokens) > 1)
}

// FilterJunk drops records whose description contains a junk keyword.
// Names are never inspected here; a package legitimately named
// "papirus-icon-theme" is junk, but one merely describing itself as
// providing icons is judged by that description alone.
func (e *Engine) FilterJunk(records []source.Record) []source.Record {
	kept := make([]source.Record, 0, len(records))
	for _, rec := range records {
		if e.isJunk(rec) {
			continue
		}
		kept = append(kept, rec)
	}
	return kept
}

func (e *Engine) isJunk(rec source.Record) bool {
	desc := strings.ToLower(rec.Description)
	if desc == "" {
		return false
	}
	for _, junk := range e.policy.JunkKeywords {
		if strings.Contains(desc, junk) {
			return true
		}
	}
	return false
}

// Dedup collapses records sharing an exact name to one representative.
// Precedence: with preferAUR an AUR member wins; otherwise the first
// native-repo member wins; otherwise the first-seen member stands. Group
// order follows first appearance in the input.
func (e *Engine) Dedup(records []source.Record, preferAUR bool) []source.Record {
	index := make(map[string]int, len(records))
	deduped := make([]source.Record, 0, len(records))

	for _, rec := range records {
		at, seen := index[rec.Name]
		if !seen {
			index[rec.Name] = len(deduped)
			deduped = append(deduped, rec)
			continue
		}
		if e.outranks(rec, deduped[at], preferAUR) {
			deduped[at] = rec
		}
	}
	return deduped
}

// outranks reports whether challenger should replace incumbent as the
// representative of a duplicate-name group.
func (e *Engine) outranks(challenger, incumbent source.Record, preferAUR bool) bool {
	challengerTier := source.TierOf(challenger.Source)
	incumbentTier := source.TierOf(incumbent.Source)

	if preferAUR {
		if challenger.Source == "aur" && incumbent.Source != "aur" {
			return true
		}
		if incumbent.Source == "aur" {
			return false
		}
	}

	// First-seen wins within the same tier, so strict inequality only.
	return challengerTier == source.TierNative && incumbentTier != source.TierNative
}

// score computes the additive relevance score for one candidate.
func (e *Engine) score(rec source.Record, q string, queryTokens []string, hyphenVariant, compactVariant string, multiWord bool) int {
	p := e.policy

	nameL := strings.ToLower(rec.Name)
	descL := strings.ToLower(rec.Description)
	nameTokens := tokenSet(strings.ReplaceAll(nameL, "-", " "))
	descTokens := tokenSet(descL)

	score := 0

	// Name matching, strongest signal first and mutually exclusive.
	switch {
	case nameL == q:
		score += p.ExactMatch
	case multiWord && (nameL == hyphenVariant || nameL == compactVariant):
		score += p.VariantMatch
	case strings.Contains(nameL, q):
		score += p.SubstringMatch
	}

	// Token coverage.
	overlap := 0
	for _, qt := range queryTokens {
		if nameTokens[qt] {
			overlap++
		}
	}
	if multiWord {
		coverage := float64(overlap) / float64(len(queryTokens))
		switch {
		case coverage >= p.HighCoverageMin:
			score += p.HighCoverage
		case coverage >= p.MidCoverageMin:
			score += p.MidCoverage
		default:
			score += overlap * p.OverlapUnit
		}
	} else {
		score += overlap * p.OverlapUnit
	}

	// Prefix matching over name and description tokens.
	for _, qt := range queryTokens {
		if len(qt) < p.MinTokenLen {
			continue
		}
		for token := range nameTokens {
			if strings.HasPrefix(token, qt) {
				score += p.NamePrefix
			}
		}
		for token := range descTokens {
			if strings.HasPrefix(token, qt) {
				score += p.DescPrefix
			}
		}
	}

	// Flat keyword adjustments, once per keyword.
	for _, word := range p.BoostKeywords {
		if strings.Contains(nameL, word) || strings.Contains(descL, word) {
			score += p.BoostBonus
		}
	}
	for _, word := range p.LowPriorityKeywords {
		if strings.Contains(nameL, word) || strings.Contains(descL, word) {
			score -= p.LowPriorityPenalty
		}
	}

	if strings.HasSuffix(nameL, "-bin") {
		score += p.BinSuffixBonus
	}

	score += p.tierBonus(source.TierOf(rec.Source))

	return score
}

// tokenSet splits on whitespace into a membership set.
func tokenSet(s string) map[string]bool {
	fields := strings.Fields(s)
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}
