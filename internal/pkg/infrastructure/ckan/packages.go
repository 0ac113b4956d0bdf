package ckan

import (
	"context"

	"github.com/obis/doi-harvester/internal/pkg/domain"
)

type searchResult struct {
	Count   int                      `json:"count"`
	Results []domain.PersistedRecord `json:"results"`
}

// PackageSearch runs a Solr query against the package index.
func (c *Client) PackageSearch(ctx context.Context, query string, rows int) ([]domain.PersistedRecord, error) {
	result := searchResult{}

	err := c.call(ctx, "package_search", map[string]any{"q": query, "rows": rows}, &result)
	if err != nil {
		return nil, err
	}

	return result.Results, nil
}

func (c *Client) PackageShow(ctx context.Context, id string) (*domain.PersistedRecord, error) {
	pkg := &domain.PersistedRecord{}
	if err := c.call(ctx, "package_show", map[string]any{"id": id}, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (c *Client) PackageCreate(ctx context.Context, ds domain.Dataset) (*domain.PersistedRecord, error) {
	pkg := &domain.PersistedRecord{}
	if err := c.call(ctx, "package_create", ds, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (c *Client) PackageUpdate(ctx context.Context, ds domain.Dataset) (*domain.PersistedRecord, error) {
	pkg := &domain.PersistedRecord{}
	if err := c.call(ctx, "package_update", ds, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}
