package source

import (
	"bufio"
	"context"
	"regexp"
	"strings"
	"time"

	"pkgscout/internal/executor"
)

// DNF searches the Fedora/RHEL repositories via dnf.
type DNF struct {
	*BaseAdapter
}

// NewDNF creates the dnf adapter.
func NewDNF() *DNF {
	return &DNF{
		BaseAdapter: NewBaseAdapter("dnf", "DNF (Fedora/RHEL)", "dnf", TierNative, DefaultTimeoutDNF),
	}
}

// Search finds packages matching the query.
func (d *DNF) Search(ctx context.Context, query string) ([]Record, error) {
	if err := CheckQuery(query); err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)

	if results, ok := d.cached(query); ok {
		return results, nil
	}
	if err := d.ready(ctx); err != nil {
		return nil, err
	}

	sctx, cancel := context.WithTimeout(ctx, d.SearchTimeout())
	defer cancel()

	start := time.Now()
	stdout, stderr, err := d.Executor().OutputSeparate(sctx, d.Binary(), "search", query)
	if terr := d.timedOut(sctx, start); terr != nil {
		return nil, terr
	}
	if err != nil {
		// Exit 1 is dnf's "no matches found".
		if executor.ExitCode(err) == 1 {
			return []Record{}, nil
		}
		return nil, NewSearchFailed(d.Name(), stderr, err)
	}

	results := d.parseSearchOutput(stdout)
	d.store(query, results)
	return results, nil
}

// rpmArchSuffix matches trailing RPM architecture tags on package names.
var rpmArchSuffix = regexp.MustCompile(`\.(x86_64|i686|aarch64|armv7hl|ppc64le|s390x|noarch|src)$`)

// parseSearchOutput parses dnf search output: "name.arch : description"
// lines between metadata banners and section headers.
func (d *DNF) parseSearchOutput(output string) []Record {
	var results []Record
	scanner := bufio.NewScanner(strings.NewReader(output))
	var current *Record

	for scanner.Scan() {
		line := scanner.Text()

		// Skip empty lines, section headers and sync banners.
		if line == "" || strings.HasPrefix(line, "=") || strings.HasPrefix(line, "Last metadata") {
			continue
		}

		if strings.Contains(line, " : ") {
			parts := strings.SplitN(line, " : ", 2)
			name := rpmArchSuffix.ReplaceAllString(strings.TrimSpace(parts[0]), "")

			// Wrapped summaries continue on lines whose name column is blank.
			if name == "" {
				if current != nil {
					current.Description += " " + strings.TrimSpace(parts[1])
				}
				continue
			}

			if current != nil {
				results = append(results, *current)
			}
			current = &Record{
				Name:        name,
				Description: strings.TrimSpace(parts[1]),
				Source:      "dnf",
			}
		} else if current != nil && strings.HasPrefix(line, " ") {
			current.Description += " " + strings.TrimSpace(line)
		}
	}

	if current != nil {
		results = append(results, *current)
	}

	return results
}
