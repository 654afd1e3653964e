package source

import (
	"bufio"
	"context"
	"strings"
	"time"
)

// APT searches the Debian/Ubuntu package index via apt-cache.
type APT struct {
	*BaseAdapter
}

// NewAPT creates the apt adapter.
func NewAPT() *APT {
	return &APT{
		BaseAdapter: NewBaseAdapter("apt", "APT (Debian/Ubuntu)", "apt-cache", TierNative, DefaultTimeoutAPT),
	}
}

// Search finds packages matching the query.
func (a *APT) Search(ctx context.Context, query string) ([]Record, error) {
	if err := CheckQuery(query); err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)

	if results, ok := a.cached(query); ok {
		return results, nil
	}
	if err := a.ready(ctx); err != nil {
		return nil, err
	}

	sctx, cancel := context.WithTimeout(ctx, a.SearchTimeout())
	defer cancel()

	start := time.Now()
	stdout, stderr, err := a.Executor().OutputSeparate(sctx, a.Binary(), "search", query)
	if terr := a.timedOut(sctx, start); terr != nil {
		return nil, terr
	}
	if err != nil {
		// apt-cache reports an unknown package on stderr rather than
		// returning an empty result set.
		if strings.Contains(stderr, "Unable to locate package") {
			return []Record{}, nil
		}
		return nil, NewSearchFailed(a.Name(), stderr, err)
	}

	results := a.parseSearchOutput(stdout)
	a.store(query, results)
	return results, nil
}

// parseSearchOutput parses apt-cache search output: "name - description".
func (a *APT) parseSearchOutput(output string) []Record {
	var results []Record
	scanner := bufio.NewScanner(strings.NewReader(output))

	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.SplitN(line, " - ", 2)
		if len(parts) < 2 {
			continue
		}

		results = append(results, Record{
			Name:        strings.TrimSpace(parts[0]),
			Description: strings.TrimSpace(parts[1]),
			Source:      "apt",
		})
	}

	return results
}
