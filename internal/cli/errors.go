package cli

import "errors"

var (
	// ErrNoQuery is returned when a search is invoked without a query.
	ErrNoQuery = errors.New("no search query provided")

	// ErrNoSources is returned when no package sources are left to search.
	ErrNoSources = errors.New("no package sources to search; check [sources] enabled in the config")
)
