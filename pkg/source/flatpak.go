package source

import (
	"bufio"
	"context"
	"strings"
	"time"

	"pkgscout/internal/executor"
)

// Flatpak searches configured flatpak remotes (normally Flathub).
type Flatpak struct {
	*BaseAdapter
}

// NewFlatpak creates the flatpak adapter.
func NewFlatpak() *Flatpak {
	return &Flatpak{
		BaseAdapter: NewBaseAdapter("flatpak", "Flatpak (Flathub)", "flatpak", TierContainer, DefaultTimeoutFlatpak),
	}
}

// Search finds applications matching the query.
func (f *Flatpak) Search(ctx context.Context, query string) ([]Record, error) {
	if err := CheckQuery(query); err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)

	if results, ok := f.cached(query); ok {
		return results, nil
	}
	if err := f.ready(ctx); err != nil {
		return nil, err
	}

	sctx, cancel := context.WithTimeout(ctx, f.SearchTimeout())
	defer cancel()

	start := time.Now()
	stdout, stderr, err := f.Executor().OutputSeparate(sctx, f.Binary(), "search", query)
	if terr := f.timedOut(sctx, start); terr != nil {
		return nil, terr
	}
	if err != nil {
		// Exit 1 is flatpak's "no matches found".
		if executor.ExitCode(err) == 1 {
			return []Record{}, nil
		}
		if strings.Contains(stderr, "No remotes found") {
			return nil, &SearchFailedError{
				Source: f.Name(),
				Stderr: stderr,
				Kind:   FailureMisconfigured,
				Hint:   "Add Flathub first: flatpak remote-add --if-not-exists flathub https://flathub.org/repo/flathub.flatpakrepo",
				Err:    err,
			}
		}
		return nil, NewSearchFailed(f.Name(), stderr, err)
	}

	if strings.Contains(stdout, "No matches found") {
		return []Record{}, nil
	}

	results := f.parseSearchOutput(stdout)
	f.store(query, results)
	return results, nil
}

// parseSearchOutput parses flatpak search output: tab-separated columns of
// name, description and application ID. The application ID is the name the
// install command needs, so it becomes the record name and the human name
// folds into the description.
func (f *Flatpak) parseSearchOutput(output string) []Record {
	var results []Record
	scanner := bufio.NewScanner(strings.NewReader(output))
	headerSkipped := false

	for scanner.Scan() {
		line := scanner.Text()

		if !headerSkipped {
			headerSkipped = true
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			continue
		}

		name := strings.TrimSpace(fields[0])
		description := strings.TrimSpace(fields[1])
		appID := strings.TrimSpace(fields[2])
		if appID == "" {
			continue
		}

		results = append(results, Record{
			Name:        appID,
			Description: name + " - " + description,
			Source:      "flatpak",
		})
	}

	return results
}
