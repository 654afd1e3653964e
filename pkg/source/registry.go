package source

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Outcome is the result of searching one source: either its records or the
// error that stopped it. A search across sources degrades gracefully, so
// callers always receive one Outcome per adapter asked.
type Outcome struct {
	Source  string
	Records []Record
	Err     error
}

// Registry holds the known source adapters and provides unified access.
type Registry struct {
	adapters map[string]Adapter
	order    []string
	mu       sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		adapters: make(map[string]Adapter),
	}
}

// DefaultRegistry creates a registry with every built-in adapter registered
// in canonical order.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewPacman())
	r.Register(NewAPT())
	r.Register(NewDNF())
	r.Register(NewZypper())
	r.Register(NewAUR())
	r.Register(NewFlatpak())
	r.Register(NewSnap())
	return r
}

// Register adds an adapter to the registry. Registering a name twice
// replaces the adapter but keeps its original position.
func (r *Registry) Register(a Adapter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := a.Name()
	if _, ok := r.adapters[name]; !ok {
		r.order = append(r.order, name)
	}
	r.adapters[name] = a
}

// Get returns a specific adapter by source name.
func (r *Registry) Get(name string) (Adapter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.adapters[name]
	return a, ok
}

// All returns every registered adapter in registration order.
func (r *Registry) All() []Adapter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adapters := make([]Adapter, 0, len(r.order))
	for _, name := range r.order {
		adapters = append(adapters, r.adapters[name])
	}
	return adapters
}

// Available returns the registered adapters whose tool is usable on this
// system, in registration order.
func (r *Registry) Available() []Adapter {
	var available []Adapter
	for _, a := range r.All() {
		if a.Available() {
			available = append(available, a)
		}
	}
	return available
}

// Select resolves source names to adapters, in the order given. Unknown
// names are rejected so a typo in --source fails loudly instead of
// silently searching nothing.
func (r *Registry) Select(names []string) ([]Adapter, error) {
	adapters := make([]Adapter, 0, len(names))
	for _, name := range names {
		a, ok := r.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown source %q (known: %v)", name, r.Names())
		}
		adapters = append(adapters, a)
	}
	return adapters, nil
}

// Names returns the registered source names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// AttachCache supplies the result cache to every registered adapter that
// supports one.
func (r *Registry) AttachCache(c ResultCache) {
	for _, a := range r.All() {
		if ca, ok := a.(CacheAttacher); ok {
			ca.AttachCache(c)
		}
	}
}

// SetTimeout overrides the search timeout of one registered adapter.
// Unknown names and adapters without a tunable timeout are ignored.
func (r *Registry) SetTimeout(name string, d time.Duration) {
	if d <= 0 {
		return
	}
	if a, ok := r.Get(name); ok {
		if ts, ok := a.(TimeoutSetter); ok {
			ts.SetSearchTimeout(d)
		}
	}
}

// SearchAll queries the given adapters concurrently, one goroutine per
// source. It returns one Outcome per adapter in the same order as the
// input; a failing source never suppresses another source's records.
func (r *Registry) SearchAll(ctx context.Context, query string, adapters []Adapter) []Outcome {
	if adapters == nil {
		adapters = r.Available()
	}

	outcomes := make([]Outcome, len(adapters))

	var wg sync.WaitGroup
	for i, a := range adapters {
		wg.Add(1)
		go func(i int, a Adapter) {
			defer wg.Done()

			records, err := a.Search(ctx, query)
			outcomes[i] = Outcome{Source: a.Name(), Records: records, Err: err}
		}(i, a)
	}
	wg.Wait()

	return outcomes
}
