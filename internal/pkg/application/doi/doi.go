// Package doi turns user supplied identifiers and landing page URLs into
// canonical DOIs of the form 10.<prefix>/<suffix>. Nothing in here touches the
// network.
package doi

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/obis/doi-harvester/internal/pkg/domain"
)

const (
	ResolverBaseURL string = "https://doi.org/"
	ZenodoPrefix    string = "10.5281"
)

type urlPattern struct {
	re      *regexp.Regexp
	extract func(m []string) string
}

var urlPatterns = []urlPattern{
	{
		re:      regexp.MustCompile(`doi\.org/(.+)$`),
		extract: func(m []string) string { return m[1] },
	},
	{
		re:      regexp.MustCompile(`zenodo\.org/records?/(\d+)`),
		extract: func(m []string) string { return fmt.Sprintf("%s/zenodo.%s", ZenodoPrefix, m[1]) },
	},
	{
		re:      regexp.MustCompile(`zenodo\.org/doi/(.+)$`),
		extract: func(m []string) string { return m[1] },
	},
}

var zenodoSuffix = regexp.MustCompile(`(?i)zenodo\.(\d+)`)

// Resolve returns the canonical DOI for a bare DOI or one of the supported URL
// shapes. Anything else yields a domain.InvalidIdentifierError.
func Resolve(identifier string) (string, error) {
	identifier = strings.TrimSpace(identifier)

	if strings.HasPrefix(identifier, "10.") {
		return identifier, nil
	}

	for _, p := range urlPatterns {
		if m := p.re.FindStringSubmatch(identifier); m != nil {
			return p.extract(m), nil
		}
	}

	return "", domain.InvalidIdentifierError{Input: identifier}
}

// IsZenodo reports whether a DOI was minted by Zenodo, or at least mentions it.
func IsZenodo(doi string) bool {
	return strings.Contains(strings.ToLower(doi), "zenodo")
}

// ZenodoRecordID extracts the numeric record id from a Zenodo DOI.
func ZenodoRecordID(doi string) (string, bool) {
	m := zenodoSuffix.FindStringSubmatch(doi)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// URL returns the doi.org resolver URL for a DOI.
func URL(doi string) string {
	return ResolverBaseURL + Strip(doi)
}

// Strip removes any resolver prefix from a DOI.
func Strip(doi string) string {
	doi = strings.TrimSpace(doi)
	for _, prefix := range []string{"https://doi.org/", "http://doi.org/", "https://dx.doi.org/", "http://dx.doi.org/", "doi:"} {
		if len(doi) >= len(prefix) && strings.EqualFold(doi[:len(prefix)], prefix) {
			return doi[len(prefix):]
		}
	}
	return doi
}

// Fold returns the DOI without resolver prefix and with its suffix in lower
// case, so that DOIs that are Equal fold to the same string.
func Fold(doi string) string {
	doi = Strip(doi)

	prefix, suffix, ok := strings.Cut(doi, "/")
	if !ok {
		return doi
	}

	return prefix + "/" + strings.ToLower(suffix)
}

// Equal compares two DOIs. The prefix must match exactly while the suffix is
// compared without regard to case.
func Equal(a, b string) bool {
	a, b = Strip(a), Strip(b)

	pa, sa, oka := strings.Cut(a, "/")
	pb, sb, okb := strings.Cut(b, "/")
	if !oka || !okb {
		return a == b
	}

	return pa == pb && strings.EqualFold(sa, sb)
}
