package harvester

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/obis/doi-harvester/internal/pkg/application/doi"
	"github.com/obis/doi-harvester/internal/pkg/application/slug"
	"github.com/obis/doi-harvester/internal/pkg/domain"
)

//go:generate moq -rm -out store_mock.go . DatasetStore
type DatasetStore interface {
	PackageSearch(ctx context.Context, query string, rows int) ([]domain.PersistedRecord, error)
	PackageCreate(ctx context.Context, ds domain.Dataset) (*domain.PersistedRecord, error)
	PackageUpdate(ctx context.Context, ds domain.Dataset) (*domain.PersistedRecord, error)
}

type Whitelist interface {
	Append(doi string) (bool, error)
}

// Coordinator creates or updates catalog records so that each DOI maps to at
// most one record.
type Coordinator struct {
	store     DatasetStore
	whitelist Whitelist
}

func NewCoordinator(store DatasetStore, whitelist Whitelist) *Coordinator {
	return &Coordinator{
		store:     store,
		whitelist: whitelist,
	}
}

// Lookup finds the record carrying the DOI, or the landing page, if any.
func (c *Coordinator) Lookup(ctx context.Context, canonical, landingURL string) (*domain.PersistedRecord, error) {
	query := lookupQuery(canonical, landingURL)
	if query == "" {
		return nil, nil
	}

	results, err := c.store.PackageSearch(ctx, query, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to look up dataset: %w", err)
	}

	if len(results) == 0 {
		return nil, nil
	}

	return &results[0], nil
}

func (c *Coordinator) Upsert(ctx context.Context, ds domain.Dataset, ownerOrg string, contributingOrgs []string) (record *domain.PersistedRecord, err error) {
	ctx, span := tracer.Start(ctx, "upsert-dataset")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	if ds.Authors != "" {
		authors, validationErr := domain.NormalizeJSONArray(ds.Authors)
		if validationErr != nil {
			err = domain.ValidationFailure{
				Message: "invalid authors",
				Fields:  map[string][]string{"authors": {validationErr.Error()}},
			}
			return nil, err
		}
		ds.Authors = authors
	}

	if ownerOrg != "" {
		ds.OwnerOrg = ownerOrg
	}
	if len(contributingOrgs) > 0 {
		ds.ContributingOrganizations = contributingOrgs
	}

	existing, err := c.Lookup(ctx, ds.DOI(), ds.URL)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		ds.ID = existing.ID
		ds.Name = existing.Name

		record, err = c.store.PackageUpdate(ctx, ds)
		if err != nil {
			err = fmt.Errorf("failed to update dataset: %w", err)
			return nil, err
		}

		log.Debug().Str("name", record.Name).Msg("updated existing dataset")
		return record, nil
	}

	ds.ID = ""
	ds.Name = slug.Dataset(ds.Title)

	record, err = c.store.PackageCreate(ctx, ds)
	if err != nil {
		err = fmt.Errorf("failed to create dataset: %w", err)
		return nil, err
	}

	log.Debug().Str("name", record.Name).Msg("created dataset")

	if c.whitelist != nil && strings.Contains(strings.ToLower(ds.URL), "zenodo") && ds.DOI() != "" {
		added, wlErr := c.whitelist.Append(doi.URL(ds.DOI()))
		if wlErr != nil {
			log.Warn().Err(wlErr).Msg("could not add doi to whitelist")
		} else if added {
			log.Info().Str("doi", ds.DOI()).Msg("added doi to whitelist")
		}
	}

	return record, nil
}

func lookupQuery(canonical, landingURL string) string {
	clauses := []string{}

	if canonical != "" {
		clauses = append(clauses, fmt.Sprintf(`identifier:"%s"`, escapeQuery(canonical)))

		// identifiers are stored folded
		if folded := doi.Fold(canonical); folded != canonical {
			clauses = append(clauses, fmt.Sprintf(`identifier:"%s"`, escapeQuery(folded)))
		}
	}
	if landingURL != "" {
		clauses = append(clauses, fmt.Sprintf(`url:"%s"`, escapeQuery(landingURL)))
	}

	return strings.Join(clauses, " OR ")
}

func escapeQuery(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

func isUnsupported(err error) bool {
	var ure domain.UnsupportedRegistryError
	return errors.As(err, &ure)
}
