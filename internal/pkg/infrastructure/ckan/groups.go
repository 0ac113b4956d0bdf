package ckan

import (
	"context"

	"github.com/obis/doi-harvester/internal/pkg/domain"
)

// Organizations and groups share the same CKAN shape and differ only in the
// action prefix.

func (c *Client) OrganizationList(ctx context.Context) ([]string, error) {
	return c.list(ctx, "organization_list")
}

func (c *Client) OrganizationShow(ctx context.Context, id string) (*domain.Group, error) {
	return c.group(ctx, "organization_show", map[string]any{"id": id})
}

func (c *Client) OrganizationCreate(ctx context.Context, org domain.Group) (*domain.Group, error) {
	return c.group(ctx, "organization_create", org)
}

func (c *Client) OrganizationUpdate(ctx context.Context, org domain.Group) (*domain.Group, error) {
	return c.group(ctx, "organization_update", org)
}

// OrganizationListForUser returns the organizations in which the token's owner
// holds the given permission, e.g. "create_dataset".
func (c *Client) OrganizationListForUser(ctx context.Context, permission string) ([]domain.Group, error) {
	orgs := []domain.Group{}
	if err := c.call(ctx, "organization_list_for_user", map[string]any{"permission": permission}, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

func (c *Client) GroupList(ctx context.Context) ([]string, error) {
	return c.list(ctx, "group_list")
}

func (c *Client) GroupShow(ctx context.Context, id string) (*domain.Group, error) {
	return c.group(ctx, "group_show", map[string]any{"id": id})
}

func (c *Client) GroupCreate(ctx context.Context, group domain.Group) (*domain.Group, error) {
	return c.group(ctx, "group_create", group)
}

func (c *Client) GroupUpdate(ctx context.Context, group domain.Group) (*domain.Group, error) {
	return c.group(ctx, "group_update", group)
}

func (c *Client) list(ctx context.Context, action string) ([]string, error) {
	names := []string{}
	if err := c.call(ctx, action, map[string]any{}, &names); err != nil {
		return nil, err
	}
	return names, nil
}

func (c *Client) group(ctx context.Context, action string, payload any) (*domain.Group, error) {
	g := &domain.Group{}
	if err := c.call(ctx, action, payload, g); err != nil {
		return nil, err
	}
	return g, nil
}
