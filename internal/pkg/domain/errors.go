package domain

import (
	"fmt"
	"sort"
	"strings"
)

// InvalidIdentifierError is returned when a DOI or DOI URL can not be recognized.
type InvalidIdentifierError struct {
	Input string
}

func (e InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid DOI URL format: %q", e.Input)
}

// UnsupportedRegistryError is returned when a DOI can not be resolved through
// any of the enabled registries.
type UnsupportedRegistryError struct {
	DOI      string
	Registry string
}

func (e UnsupportedRegistryError) Error() string {
	return fmt.Sprintf(
		"the DOI %s is not available on %s, we currently only support importing from %s (use a DOI such as https://doi.org/10.5281/zenodo.XXXXX)",
		e.DOI, e.Registry, e.Registry,
	)
}

// FetchError wraps a failure to retrieve metadata from a registry API.
type FetchError struct {
	Registry   string
	URL        string
	StatusCode int
	Err        error
}

func (e FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch %s metadata from %s (status %d): %s", e.Registry, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("failed to fetch %s metadata from %s: %s", e.Registry, e.URL, e.Err)
}

func (e FetchError) Unwrap() error {
	return e.Err
}

// ValidationFailure is returned when the catalog store rejects a record.
type ValidationFailure struct {
	Message string
	Fields  map[string][]string
}

func (e ValidationFailure) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	details := make([]string, 0, len(keys))
	for _, k := range keys {
		details = append(details, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], ", ")))
	}

	if e.Message == "" {
		return strings.Join(details, "; ")
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(details, "; "))
}

// NotAuthorizedError is returned when the catalog store refuses an action.
type NotAuthorizedError struct {
	Action  string
	Message string
}

func (e NotAuthorizedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("not authorized to call %s", e.Action)
	}
	return fmt.Sprintf("not authorized to call %s: %s", e.Action, e.Message)
}

// NotFoundError is returned when the catalog store has no object with the given id.
type NotFoundError struct {
	Action string
	ID     string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s: object '%s' not found", e.Action, e.ID)
}

// EnrichmentWarning reports a failed, optional enrichment call. It is logged and
// never aborts a sync.
type EnrichmentWarning struct {
	Source string
	ID     string
	Err    error
}

func (e EnrichmentWarning) Error() string {
	return fmt.Sprintf("could not fetch %s data for id %s: %s", e.Source, e.ID, e.Err)
}

func (e EnrichmentWarning) Unwrap() error {
	return e.Err
}
