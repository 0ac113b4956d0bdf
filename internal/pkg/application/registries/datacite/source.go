package datacite

import (
	"context"

	"github.com/obis/doi-harvester/internal/pkg/domain"
)

type Source struct {
	client *Client
}

func NewSource(client *Client) *Source {
	return &Source{client: client}
}

func (s *Source) Name() string {
	return SourceName
}

func (s *Source) Fetch(ctx context.Context, doi string) (domain.Dataset, error) {
	rec, err := s.client.FetchMetadata(ctx, doi)
	if err != nil {
		return domain.Dataset{}, err
	}
	return Map(rec, doi)
}
