package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// aurBaseURL is the AUR RPC API endpoint.
	aurBaseURL = "https://aur.archlinux.org/rpc/"

	aurUserAgent = "pkgscout/1.0"
)

// aurPackage is one package in an AUR RPC response.
type aurPackage struct {
	Name        string  `json:"Name"`
	Version     string  `json:"Version"`
	Description string  `json:"Description"`
	NumVotes    int     `json:"NumVotes"`
	Popularity  float64 `json:"Popularity"`
}

// aurResponse is the AUR RPC API response envelope.
type aurResponse struct {
	Version     int          `json:"version"`
	Type        string       `json:"type"`
	ResultCount int          `json:"resultcount"`
	Results     []aurPackage `json:"results"`
	Error       string       `json:"error,omitempty"`
}

// AUR searches the Arch User Repository through its RPC API. Unlike the
// subprocess adapters it talks HTTP: Available is unconditional and Probe
// is a lightweight RPC round trip.
type AUR struct {
	baseURL       string
	httpClient    *http.Client
	limiter       *rate.Limiter
	searchTimeout time.Duration
	cache         ResultCache
}

// NewAUR creates the AUR adapter.
func NewAUR() *AUR {
	return &AUR{
		baseURL: aurBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeoutAUR,
		},
		// The AUR asks API consumers to keep request rates modest; the
		// suggest flow can issue several lookups back to back.
		limiter:       rate.NewLimiter(rate.Limit(2), 4),
		searchTimeout: DefaultTimeoutAUR,
	}
}

// Name returns the source identifier.
func (a *AUR) Name() string {
	return "aur"
}

// DisplayName returns the human-readable name.
func (a *AUR) DisplayName() string {
	return "AUR (Arch User Repository)"
}

// Tier returns the trust tier.
func (a *AUR) Tier() Tier {
	return TierCommunity
}

// Available always reports true; reachability of the remote endpoint is
// Probe's concern.
func (a *AUR) Available() bool {
	return true
}

// SetSearchTimeout overrides the per-search time budget.
func (a *AUR) SetSearchTimeout(d time.Duration) {
	if d > 0 {
		a.searchTimeout = d
		a.httpClient.Timeout = d
	}
}

// SetBaseURL overrides the RPC endpoint. Tests point this at a local server.
func (a *AUR) SetBaseURL(u string) {
	if u != "" {
		a.baseURL = u
	}
}

// AttachCache supplies the write-through result cache.
func (a *AUR) AttachCache(c ResultCache) {
	a.cache = c
}

// Probe checks that the RPC endpoint answers within the probe budget.
func (a *AUR) Probe(ctx context.Context) error {
	pctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	if _, err := a.request(pctx, a.baseURL+"?v=5&type=info&arg[]=pkgscout-probe"); err != nil {
		return &ToolUnresponsiveError{Source: a.Name(), Tool: "aur.archlinux.org", Elapsed: time.Since(start)}
	}
	return nil
}

// Search queries the RPC search endpoint.
func (a *AUR) Search(ctx context.Context, query string) ([]Record, error) {
	if err := CheckQuery(query); err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)

	if results, ok := a.cachedResults(query); ok {
		return results, nil
	}

	sctx, cancel := context.WithTimeout(ctx, a.searchTimeout)
	defer cancel()

	start := time.Now()
	endpoint := fmt.Sprintf("%s?v=5&type=search&arg=%s", a.baseURL, url.QueryEscape(query))
	resp, err := a.request(sctx, endpoint)
	if err != nil {
		if sctx.Err() == context.DeadlineExceeded {
			return nil, &SearchTimeoutError{Source: a.Name(), Elapsed: time.Since(start)}
		}
		return nil, &SearchFailedError{
			Source: a.Name(),
			Stderr: err.Error(),
			Kind:   FailureNetwork,
			Hint:   "Check your internet connection and try again",
			Err:    err,
		}
	}

	if resp.Type == "error" {
		return nil, &SearchFailedError{
			Source: a.Name(),
			Stderr: resp.Error,
			Kind:   FailureMisconfigured,
			Hint:   "The AUR RPC rejected the request; try a simpler query",
		}
	}

	results := make([]Record, 0, len(resp.Results))
	for _, pkg := range resp.Results {
		if pkg.Name == "" {
			continue
		}
		results = append(results, Record{
			Name:        pkg.Name,
			Description: pkg.Description,
			Source:      "aur",
		})
	}

	a.storeResults(query, results)
	return results, nil
}

// InfoVersion returns the version the AUR currently advertises for an exact
// package name, or an empty string when the package is unknown.
func (a *AUR) InfoVersion(ctx context.Context, name string) (string, error) {
	ictx, cancel := context.WithTimeout(ctx, a.searchTimeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s?v=5&type=info&arg[]=%s", a.baseURL, url.QueryEscape(name))
	resp, err := a.request(ictx, endpoint)
	if err != nil {
		return "", err
	}
	if len(resp.Results) == 0 {
		return "", nil
	}
	return resp.Results[0].Version, nil
}

// request performs a rate-limited GET against the RPC API.
func (a *AUR) request(ctx context.Context, endpoint string) (*aurResponse, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", aurUserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var envelope aurResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("invalid response from AUR: %w", err)
	}

	return &envelope, nil
}

func (a *AUR) cachedResults(query string) ([]Record, bool) {
	if a.cache == nil {
		return nil, false
	}
	return a.cache.Get(query, a.Name())
}

func (a *AUR) storeResults(query string, results []Record) {
	if a.cache == nil || len(results) == 0 {
		return
	}
	_ = a.cache.Set(query, a.Name(), results)
}
