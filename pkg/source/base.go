package source

import (
	"context"
	"os/exec"
	"time"

	"pkgscout/internal/executor"
)

// probeTimeout bounds the pre-search health check for every tool.
const probeTimeout = 5 * time.Second

// Default per-source search timeouts. DNF gets longer because metadata
// refreshes routinely stall its first search of the day.
const (
	DefaultTimeoutPacman  = 30 * time.Second
	DefaultTimeoutAPT     = 30 * time.Second
	DefaultTimeoutDNF     = 45 * time.Second
	DefaultTimeoutZypper  = 30 * time.Second
	DefaultTimeoutAUR     = 15 * time.Second
	DefaultTimeoutFlatpak = 30 * time.Second
	DefaultTimeoutSnap    = 30 * time.Second
)

// BaseAdapter provides the common machinery for subprocess-backed adapters:
// availability and health checks, timeout bookkeeping, and cache write-through.
type BaseAdapter struct {
	name          string
	displayName   string
	binary        string
	tier          Tier
	searchTimeout time.Duration
	exec          *executor.Executor
	cache         ResultCache
}

// NewBaseAdapter creates a BaseAdapter with the given parameters.
func NewBaseAdapter(name, displayName, binary string, tier Tier, searchTimeout time.Duration) *BaseAdapter {
	return &BaseAdapter{
		name:          name,
		displayName:   displayName,
		binary:        binary,
		tier:          tier,
		searchTimeout: searchTimeout,
		exec:          executor.New(false, false),
	}
}

// Name returns the source identifier.
func (b *BaseAdapter) Name() string {
	return b.name
}

// DisplayName returns the human-readable name.
func (b *BaseAdapter) DisplayName() string {
	return b.displayName
}

// Tier returns the trust tier.
func (b *BaseAdapter) Tier() Tier {
	return b.tier
}

// Binary returns the tool invoked by this adapter.
func (b *BaseAdapter) Binary() string {
	return b.binary
}

// SearchTimeout returns the per-search time budget.
func (b *BaseAdapter) SearchTimeout() time.Duration {
	return b.searchTimeout
}

// SetSearchTimeout overrides the per-search time budget.
func (b *BaseAdapter) SetSearchTimeout(d time.Duration) {
	if d > 0 {
		b.searchTimeout = d
	}
}

// Executor returns the executor instance.
func (b *BaseAdapter) Executor() *executor.Executor {
	return b.exec
}

// SetExecutor sets the executor instance.
func (b *BaseAdapter) SetExecutor(exec *executor.Executor) {
	b.exec = exec
}

// AttachCache supplies the write-through result cache. A nil cache (the
// default) disables caching for this adapter.
func (b *BaseAdapter) AttachCache(c ResultCache) {
	b.cache = c
}

// Available reports whether the tool binary is on PATH.
func (b *BaseAdapter) Available() bool {
	_, err := exec.LookPath(b.binary)
	return err == nil
}

// Probe verifies the tool answers a version check within probeTimeout.
func (b *BaseAdapter) Probe(ctx context.Context) error {
	if !b.Available() {
		return &ToolNotFoundError{Source: b.name, Tool: b.binary}
	}

	pctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	if _, err := b.exec.OutputQuiet(pctx, b.binary, "--version"); err != nil {
		return &ToolUnresponsiveError{Source: b.name, Tool: b.binary, Elapsed: time.Since(start)}
	}
	return nil
}

// ready runs the pre-search checks: tool present, tool responsive.
func (b *BaseAdapter) ready(ctx context.Context) error {
	return b.Probe(ctx)
}

// cached consults the attached cache for a fresh entry.
func (b *BaseAdapter) cached(query string) ([]Record, bool) {
	if b.cache == nil {
		return nil, false
	}
	return b.cache.Get(query, b.name)
}

// store writes a successful non-empty result through to the attached cache.
// Cache write errors are dropped.
func (b *BaseAdapter) store(query string, records []Record) {
	if b.cache == nil || len(records) == 0 {
		return
	}
	_ = b.cache.Set(query, b.name, records)
}

// timedOut converts a deadline expiry on the search context into the typed
// timeout error, or returns nil when the context is still live.
func (b *BaseAdapter) timedOut(ctx context.Context, start time.Time) error {
	if ctx.Err() == context.DeadlineExceeded {
		return &SearchTimeoutError{Source: b.name, Elapsed: time.Since(start)}
	}
	return nil
}
