package source

import (
	"bufio"
	"context"
	"strings"
	"time"

	"pkgscout/internal/executor"
)

// Zypper searches the openSUSE repositories via zypper.
type Zypper struct {
	*BaseAdapter
}

// NewZypper creates the zypper adapter.
func NewZypper() *Zypper {
	return &Zypper{
		BaseAdapter: NewBaseAdapter("zypper", "Zypper (openSUSE)", "zypper", TierNative, DefaultTimeoutZypper),
	}
}

// Search finds packages matching the query.
func (z *Zypper) Search(ctx context.Context, query string) ([]Record, error) {
	if err := CheckQuery(query); err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)

	if results, ok := z.cached(query); ok {
		return results, nil
	}
	if err := z.ready(ctx); err != nil {
		return nil, err
	}

	sctx, cancel := context.WithTimeout(ctx, z.SearchTimeout())
	defer cancel()

	start := time.Now()
	stdout, stderr, err := z.Executor().OutputSeparate(sctx, z.Binary(), "--non-interactive", "search", query)
	if terr := z.timedOut(sctx, start); terr != nil {
		return nil, terr
	}
	if err != nil {
		// Exit 104 is zypper's "no matches found".
		if executor.ExitCode(err) == 104 {
			return []Record{}, nil
		}
		return nil, NewSearchFailed(z.Name(), stderr, err)
	}

	results := z.parseSearchOutput(stdout)
	z.store(query, results)
	return results, nil
}

// parseSearchOutput parses zypper's search table: rows of
// "status | name | summary | type" after the dashed header separator.
func (z *Zypper) parseSearchOutput(output string) []Record {
	var results []Record
	scanner := bufio.NewScanner(strings.NewReader(output))
	inTable := false

	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "--") {
			inTable = true
			continue
		}
		if !inTable {
			continue
		}

		parts := strings.Split(line, "|")
		if len(parts) < 3 {
			continue
		}

		results = append(results, Record{
			Name:        strings.TrimSpace(parts[1]),
			Description: strings.TrimSpace(parts[2]),
			Source:      "zypper",
		})
	}

	return results
}
