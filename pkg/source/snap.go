package source

import (
	"bufio"
	"context"
	"strings"
	"time"

	"pkgscout/internal/executor"
)

// snapDescriptionLimit caps how much of a snap summary is kept; the store
// descriptions run long and the selection list is one line per candidate.
const snapDescriptionLimit = 100

// Snap searches the Snap Store via snap find.
type Snap struct {
	*BaseAdapter
}

// NewSnap creates the snap adapter.
func NewSnap() *Snap {
	return &Snap{
		BaseAdapter: NewBaseAdapter("snap", "Snap Store", "snap", TierStore, DefaultTimeoutSnap),
	}
}

// Search finds snaps matching the query.
func (s *Snap) Search(ctx context.Context, query string) ([]Record, error) {
	if err := CheckQuery(query); err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)

	if results, ok := s.cached(query); ok {
		return results, nil
	}
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	sctx, cancel := context.WithTimeout(ctx, s.SearchTimeout())
	defer cancel()

	start := time.Now()
	stdout, stderr, err := s.Executor().OutputSeparate(sctx, s.Binary(), "find", query)
	if terr := s.timedOut(sctx, start); terr != nil {
		return nil, terr
	}
	if err != nil {
		// Exit 1 is snap's "no snaps found".
		if executor.ExitCode(err) == 1 {
			return []Record{}, nil
		}
		return nil, NewSearchFailed(s.Name(), stderr, err)
	}

	results := s.parseSearchOutput(stdout)
	s.store(query, results)
	return results, nil
}

// parseSearchOutput parses snap find output: a header row, then
// whitespace-separated columns of name, version, publisher, notes, summary.
func (s *Snap) parseSearchOutput(output string) []Record {
	var results []Record
	scanner := bufio.NewScanner(strings.NewReader(output))
	headerSkipped := false

	for scanner.Scan() {
		line := scanner.Text()

		if !headerSkipped {
			headerSkipped = true
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		var description string
		if len(fields) >= 5 {
			description = strings.Join(fields[4:], " ")
		} else {
			description = strings.Join(fields[1:], " ")
		}
		if len(description) > snapDescriptionLimit {
			description = description[:snapDescriptionLimit] + "..."
		}

		results = append(results, Record{
			Name:        fields[0],
			Description: description,
			Source:      "snap",
		})
	}

	return results
}
