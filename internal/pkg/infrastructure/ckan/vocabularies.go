package ckan

import (
	"context"

	"github.com/obis/doi-harvester/internal/pkg/domain"
)

func (c *Client) VocabularyShow(ctx context.Context, id string) (*domain.Vocabulary, error) {
	v := &domain.Vocabulary{}
	if err := c.call(ctx, "vocabulary_show", map[string]any{"id": id}, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (c *Client) VocabularyCreate(ctx context.Context, name string) (*domain.Vocabulary, error) {
	v := &domain.Vocabulary{}
	if err := c.call(ctx, "vocabulary_create", map[string]any{"name": name}, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (c *Client) TagCreate(ctx context.Context, tag domain.Tag) error {
	return c.call(ctx, "tag_create", tag, nil)
}
