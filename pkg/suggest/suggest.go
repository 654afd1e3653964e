// Package suggest maps purpose descriptions ("web browser", "edit videos")
// to curated package candidates, and proposes alternate query terms when a
// search comes back empty.
package suggest

import (
	"sort"
	"strings"
)

// maxAlternates caps how many alternate query terms Alternates proposes.
const maxAlternates = 5

// minAlternateToken is the shortest query token matched against catalog
// entry names.
const minAlternateToken = 3

// Entry is one curated package recommendation.
type Entry struct {
	// Canonical is the common package name, valid for most sources.
	Canonical string

	// Category groups entries by purpose ("browser", "editor", ...).
	Category string

	// Sources holds per-source name overrides for sources where the
	// package goes by a different name, e.g. flatpak application IDs.
	Sources map[string]string

	// Blurb is a one-line description shown in suggestion tables.
	Blurb string
}

// NameFor returns the package name to use when searching or installing
// from the given source.
func (e Entry) NameFor(source string) string {
	if name, ok := e.Sources[source]; ok {
		return name
	}
	return e.Canonical
}

// Catalog indexes curated entries by category and purpose keyword.
type Catalog struct {
	entries    []Entry
	byCategory map[string][]int
	keywords   map[string]string
}

// New builds a catalog over the given entries using the default purpose
// keyword table.
func New(entries []Entry) *Catalog {
	c := &Catalog{
		entries:    entries,
		byCategory: make(map[string][]int),
		keywords:   purposeKeywords,
	}
	for i, e := range entries {
		c.byCategory[e.Category] = append(c.byCategory[e.Category], i)
	}
	return c
}

// Default returns a catalog seeded with the built-in entries.
func Default() *Catalog {
	return New(builtinEntries)
}

// Size returns the number of entries in the catalog.
func (c *Catalog) Size() int {
	return len(c.entries)
}

// Categories returns all category names in sorted order.
func (c *Catalog) Categories() []string {
	out := make([]string, 0, len(c.byCategory))
	for cat := range c.byCategory {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

// ByPurpose returns curated candidates for a purpose description. Both
// bare category names ("browser") and free-form phrases ("I want to edit
// videos") work; every token that maps to a known category contributes
// that category's entries, in the order the tokens appear.
func (c *Catalog) ByPurpose(purpose string) []Entry {
	p := strings.ToLower(strings.TrimSpace(purpose))
	if p == "" {
		return nil
	}

	var out []Entry
	seen := make(map[string]bool)
	addCategory := func(cat string) {
		if seen[cat] {
			return
		}
		seen[cat] = true
		for _, i := range c.byCategory[cat] {
			out = append(out, c.entries[i])
		}
	}

	if cat, ok := c.keywords[p]; ok {
		addCategory(cat)
	}
	for _, tok := range strings.Fields(strings.ReplaceAll(p, "-", " ")) {
		if cat, ok := c.keywords[tok]; ok {
			addCategory(cat)
		} else if _, ok := c.byCategory[tok]; ok {
			addCategory(tok)
		}
	}

	return out
}

// Alternates proposes replacement query terms for a search that found
// nothing: catalog entries matched by any query token, the first token
// alone, and hyphen/space variants of the full query.
func (c *Catalog) Alternates(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []string
	seen := map[string]bool{q: true}
	add := func(s string) {
		if len(out) >= maxAlternates || s == "" || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}

	tokens := strings.Fields(strings.ReplaceAll(q, "-", " "))
	for _, tok := range tokens {
		if len(tok) < minAlternateToken {
			continue
		}
		for _, e := range c.entries {
			if strings.Contains(e.Canonical, tok) {
				add(e.Canonical)
			}
		}
	}

	if len(tokens) > 1 {
		add(tokens[0])
	}

	switch {
	case strings.Contains(q, " "):
		add(strings.ReplaceAll(q, " ", "-"))
		add(strings.ReplaceAll(q, " ", ""))
	case strings.Contains(q, "-"):
		add(strings.ReplaceAll(q, "-", " "))
	}

	return out
}
