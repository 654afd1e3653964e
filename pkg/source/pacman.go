package source

import (
	"context"
	"strings"
	"time"

	"pkgscout/internal/executor"
)

// Pacman searches the Arch Linux repositories via pacman -Ss.
type Pacman struct {
	*BaseAdapter
}

// NewPacman creates the pacman adapter.
func NewPacman() *Pacman {
	return &Pacman{
		BaseAdapter: NewBaseAdapter("pacman", "Pacman (Arch repositories)", "pacman", TierNative, DefaultTimeoutPacman),
	}
}

// Search finds packages matching the query.
func (p *Pacman) Search(ctx context.Context, query string) ([]Record, error) {
	if err := CheckQuery(query); err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)

	if results, ok := p.cached(query); ok {
		return results, nil
	}
	if err := p.ready(ctx); err != nil {
		return nil, err
	}

	sctx, cancel := context.WithTimeout(ctx, p.SearchTimeout())
	defer cancel()

	start := time.Now()
	stdout, stderr, err := p.Executor().OutputSeparate(sctx, p.Binary(), "-Ss", query)
	if terr := p.timedOut(sctx, start); terr != nil {
		return nil, terr
	}
	if err != nil {
		// Exit 1 with no output means no matches.
		if executor.ExitCode(err) == 1 && strings.TrimSpace(stdout) == "" && strings.TrimSpace(stderr) == "" {
			return []Record{}, nil
		}
		return nil, NewSearchFailed(p.Name(), stderr, err)
	}

	results := p.parseSearchOutput(stdout)
	p.store(query, results)
	return results, nil
}

// parseSearchOutput parses pacman -Ss output: a "repo/name version" line
// followed by an indented description line.
func (p *Pacman) parseSearchOutput(output string) []Record {
	var results []Record
	lines := strings.Split(output, "\n")

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if !strings.Contains(line, "/") || strings.HasPrefix(line, " ") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}

		repoPkg := strings.SplitN(parts[0], "/", 2)
		if len(repoPkg) < 2 {
			continue
		}

		var description string
		if i+1 < len(lines) && strings.HasPrefix(lines[i+1], " ") {
			description = strings.TrimSpace(lines[i+1])
			i++
		}

		results = append(results, Record{
			Name:        repoPkg[1],
			Description: description,
			Source:      "pacman",
		})
	}

	return results
}
