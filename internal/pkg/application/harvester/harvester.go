package harvester

import (
	"context"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/obis/doi-harvester/internal/pkg/application/doi"
	"github.com/obis/doi-harvester/internal/pkg/domain"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("doi-harvester/harvester")

// Fetcher fetches a DOI from a registry and maps it to a catalog dataset.
type Fetcher interface {
	Fetch(ctx context.Context, doi string) (domain.Dataset, error)
}

//go:generate moq -rm -out source_mock.go . MetadataSource
type MetadataSource interface {
	Fetcher
	LastModified(ctx context.Context, doi string) (time.Time, bool, error)
	LandingPage(doi string) (string, bool)
}

//go:generate moq -rm -out importer_mock.go . Importer
type Importer interface {
	// Import resolves, fetches, maps and upserts a single identifier.
	Import(ctx context.Context, identifier, ownerOrg string, contributingOrgs []string) (*domain.PersistedRecord, error)
	// Lookup returns the catalog record for a canonical DOI, or nil if there is none.
	Lookup(ctx context.Context, doi string) (*domain.PersistedRecord, error)
	LastModified(ctx context.Context, doi string) (time.Time, bool, error)
}

func NewImporter(logger zerolog.Logger, source MetadataSource, coordinator *Coordinator) Importer {
	return &importer{
		source:      source,
		coordinator: coordinator,
		log:         logger,
	}
}

type importer struct {
	source      MetadataSource
	coordinator *Coordinator
	log         zerolog.Logger
}

func (i *importer) Import(ctx context.Context, identifier, ownerOrg string, contributingOrgs []string) (record *domain.PersistedRecord, err error) {
	ctx, span := tracer.Start(ctx, "import-doi")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, i.log, ctx)

	canonical, err := doi.Resolve(identifier)
	if err != nil {
		return nil, err
	}

	log = log.With().Str("doi", canonical).Logger()

	ds, err := i.source.Fetch(ctx, canonical)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch metadata")
		return nil, err
	}

	record, err = i.coordinator.Upsert(ctx, ds, ownerOrg, contributingOrgs)
	if err != nil {
		log.Error().Err(err).Msg("failed to store dataset")
		return nil, err
	}

	log.Info().Str("name", record.Name).Msg("dataset imported")

	return record, nil
}

func (i *importer) Lookup(ctx context.Context, canonical string) (*domain.PersistedRecord, error) {
	landing, _ := i.source.LandingPage(canonical)
	return i.coordinator.Lookup(ctx, canonical, landing)
}

func (i *importer) LastModified(ctx context.Context, canonical string) (time.Time, bool, error) {
	return i.source.LastModified(ctx, canonical)
}

// WithFallback returns a source that asks fallback for DOIs that primary
// reports as unsupported. Timestamps and landing pages always come from primary.
func WithFallback(primary MetadataSource, fallback Fetcher) MetadataSource {
	if fallback == nil {
		return primary
	}
	return &fallbackSource{MetadataSource: primary, fallback: fallback}
}

type fallbackSource struct {
	MetadataSource
	fallback Fetcher
}

func (s *fallbackSource) Fetch(ctx context.Context, canonical string) (domain.Dataset, error) {
	ds, err := s.MetadataSource.Fetch(ctx, canonical)
	if err == nil {
		return ds, nil
	}

	if !isUnsupported(err) {
		return ds, err
	}

	ds, fallbackErr := s.fallback.Fetch(ctx, canonical)
	if fallbackErr != nil {
		if isUnsupported(fallbackErr) {
			return domain.Dataset{}, err
		}
		return domain.Dataset{}, fallbackErr
	}

	return ds, nil
}
