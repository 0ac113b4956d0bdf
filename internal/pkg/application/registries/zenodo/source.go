package zenodo

import (
	"context"
	"time"

	"github.com/obis/doi-harvester/internal/pkg/application/doi"
	"github.com/obis/doi-harvester/internal/pkg/domain"
)

// Source fetches and maps Zenodo records in one step.
type Source struct {
	client *Client
	mapper Mapper
}

func NewSource(client *Client, mapper Mapper) *Source {
	return &Source{client: client, mapper: mapper}
}

func (s *Source) Name() string {
	return SourceName
}

func (s *Source) Fetch(ctx context.Context, identifier string) (domain.Dataset, error) {
	rec, err := s.client.FetchMetadata(ctx, identifier)
	if err != nil {
		return domain.Dataset{}, err
	}
	return s.mapper.Map(rec, identifier)
}

func (s *Source) LastModified(ctx context.Context, identifier string) (time.Time, bool, error) {
	return s.client.LastModified(ctx, identifier)
}

// LandingPage returns the landing page a Zenodo DOI maps to without asking
// Zenodo. Other DOIs yield false.
func (s *Source) LandingPage(identifier string) (string, bool) {
	id, ok := doi.ZenodoRecordID(identifier)
	if !ok {
		return "", false
	}
	return s.mapper.landingPage(id), true
}
