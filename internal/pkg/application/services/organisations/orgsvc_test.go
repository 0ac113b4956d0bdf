package organisations

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/obis/doi-harvester/internal/pkg/application/registries/obis"
	"github.com/obis/doi-harvester/internal/pkg/domain"
	"github.com/rs/zerolog"
)

func TestThatNewNodesAreCreatedAndKnownNodesUpdated(t *testing.T) {
	is := is.New(t)

	catalog := testCatalog(domain.Group{ID: "org-1", Name: "eurobis", Title: "EurOBIS"})
	out := &bytes.Buffer{}

	svc := NewNodeSync(zerolog.Logger{}, testRegistry(), catalog, out)
	summary, err := svc.Sync(context.Background())
	is.NoErr(err)

	is.Equal(summary.Total, 2)
	is.Equal(summary.Updated, 1)
	is.Equal(summary.Created, 2) // OBIS USA and the secretariat
	is.Equal(summary.ExitCode(), 0)

	updated := catalog.OrganizationUpdateCalls()[0].Org
	is.Equal(updated.ID, "org-1")
	is.Equal(updated.Name, "eurobis")

	created := catalog.OrganizationCreateCalls()
	is.Equal(created[0].Org.Name, "obis-usa")
	is.Equal(created[1].Org.Name, "obis-secretariat")
	is.Equal(created[1].Org.Title, "OBIS Secretariat")

	is.True(bytes.Contains(out.Bytes(), []byte("↻ Updated organization: EurOBIS (URL: https://www.eurobis.org)")))
}

func TestThatAnExistingSecretariatIsKept(t *testing.T) {
	is := is.New(t)

	catalog := testCatalog(
		domain.Group{ID: "org-1", Name: "eurobis"},
		domain.Group{ID: "org-2", Name: "obis-usa"},
		domain.Group{ID: "org-3", Name: "obis-secretariat"},
	)

	svc := NewNodeSync(zerolog.Logger{}, testRegistry(), catalog, nil)
	summary, err := svc.Sync(context.Background())
	is.NoErr(err)

	is.Equal(summary.Created, 0)
	is.Equal(summary.Updated, 2)
	is.Equal(len(catalog.OrganizationCreateCalls()), 0)
}

func TestThatCatalogFailuresAreCounted(t *testing.T) {
	is := is.New(t)

	catalog := testCatalog()
	catalog.OrganizationCreateFunc = func(ctx context.Context, org domain.Group) (*domain.Group, error) {
		if org.Name == "obis-usa" {
			return nil, domain.ValidationFailure{Message: "Validation Error", Fields: map[string][]string{"name": {"Group name already exists in database"}}}
		}
		return &org, nil
	}

	svc := NewNodeSync(zerolog.Logger{}, testRegistry(), catalog, nil)
	summary, err := svc.Sync(context.Background())
	is.NoErr(err)

	is.Equal(summary.Failed, 1)
	is.Equal(summary.Created, 2)
	is.Equal(summary.ExitCode(), 1)
}

func TestThatARegistryFailureStopsTheSync(t *testing.T) {
	is := is.New(t)

	registry := &NodeRegistryMock{
		NodesFunc: func(ctx context.Context) ([]obis.Node, error) {
			return nil, domain.FetchError{Registry: obis.RegistryName, StatusCode: 500}
		},
	}

	svc := NewNodeSync(zerolog.Logger{}, registry, testCatalog(), nil)
	_, err := svc.Sync(context.Background())

	var fe domain.FetchError
	is.True(errors.As(err, &fe))
}

func TestOrganisationFromNode(t *testing.T) {
	is := is.New(t)

	org := OrganisationFromNode(testNodes()[0])

	is.Equal(org.Name, "eurobis")
	is.Equal(org.Title, "EurOBIS")
	is.Equal(org.Description, "European node of OBIS")

	extra := func(key string) string {
		v, ok := org.Extra(key)
		is.True(ok)
		return v
	}

	is.Equal(extra("obis_node_id"), "0a7a3f8e")
	is.Equal(extra("node_type"), "regional")
	is.Equal(extra("node_url"), "https://www.eurobis.org")
	is.Equal(extra("longitude"), "2.92")
	is.Equal(extra("latitude"), "51.23")
	is.Equal(extra("contacts"), `[{"email":"info@eurobis.org","name":"Data Centre"}]`)
	is.Equal(extra("feeds"), "[]")
}

func testRegistry() *NodeRegistryMock {
	return &NodeRegistryMock{
		NodesFunc: func(ctx context.Context) ([]obis.Node, error) {
			return testNodes(), nil
		},
	}
}

func testNodes() []obis.Node {
	return []obis.Node{
		{
			ID:          "0a7a3f8e",
			Name:        "EurOBIS",
			Description: "European node of OBIS",
			Type:        "regional",
			URLRaw:      json.RawMessage(`["https://www.eurobis.org"]`),
			LonRaw:      json.RawMessage(`2.92`),
			LatRaw:      json.RawMessage(`51.23`),
			Contacts:    json.RawMessage(`[{"name": "Data Centre", "email": "info@eurobis.org"}]`),
		},
		{
			ID:   "4bf79a01",
			Name: "OBIS USA",
			Type: "national",
		},
	}
}

func testCatalog(existing ...domain.Group) *CatalogMock {
	return &CatalogMock{
		OrganizationListFunc: func(ctx context.Context) ([]string, error) {
			names := []string{}
			for _, org := range existing {
				names = append(names, org.Name)
			}
			return names, nil
		},
		OrganizationShowFunc: func(ctx context.Context, id string) (*domain.Group, error) {
			for _, org := range existing {
				if org.Name == id {
					o := org
					return &o, nil
				}
			}
			return nil, domain.NotFoundError{Action: "organization_show", ID: id}
		},
		OrganizationCreateFunc: func(ctx context.Context, org domain.Group) (*domain.Group, error) {
			return &org, nil
		},
		OrganizationUpdateFunc: func(ctx context.Context, org domain.Group) (*domain.Group, error) {
			return &org, nil
		},
	}
}
