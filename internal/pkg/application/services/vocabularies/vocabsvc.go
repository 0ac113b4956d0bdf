package vocabularies

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/obis/doi-harvester/internal/pkg/domain"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("doi-harvester/svcs/vocabularies")

type Definition struct {
	Name string
	Tags []string
}

// Defaults are the controlled vocabularies the catalog forms rely on.
var Defaults = []Definition{
	{
		Name: "product_types",
		Tags: []string{
			"Raw Dataset", "Derived Dataset", "Model Output", "Report", "Presentation",
			"Data Visualization", "Map", "Workflow", "Software", "Standard",
		},
	},
	{
		Name: "thematics",
		Tags: []string{
			"Biodiversity", "Climate Change", "Ocean Acidification", "Marine Protected Areas", "Fisheries",
			"Pollution", "Coastal Management", "Deep Sea", "Coral Reefs", "Species Distribution",
		},
	},
}

//go:generate moq -rm -out catalog_mock.go . Catalog
type Catalog interface {
	VocabularyShow(ctx context.Context, id string) (*domain.Vocabulary, error)
	VocabularyCreate(ctx context.Context, name string) (*domain.Vocabulary, error)
	TagCreate(ctx context.Context, tag domain.Tag) error
}

type Summary struct {
	Created int
	Skipped int
	Failed  int
}

func (s Summary) ExitCode() int {
	if s.Failed > 0 {
		return 1
	}
	return 0
}

// Bootstrap creates each vocabulary in defs, with its tags, unless the catalog
// already has a vocabulary by that name. A failing vocabulary does not stop
// the others.
func Bootstrap(ctx context.Context, logger zerolog.Logger, catalog Catalog, out io.Writer, defs []Definition) (summary Summary, err error) {
	ctx, span := tracer.Start(ctx, "init-vocabularies")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

	if out == nil {
		out = io.Discard
	}

	fmt.Fprintf(out, "=== Initializing Vocabularies ===\n\n")

	for _, def := range defs {
		fmt.Fprintf(out, "Creating vocabulary: %s\n", def.Name)

		created, vErr := ensure(ctx, catalog, out, def)
		if vErr != nil {
			summary.Failed++
			fmt.Fprintf(out, "  ✗ Error creating %s: %s\n\n", def.Name, vErr.Error())
			log.Error().Err(vErr).Str("vocabulary", def.Name).Msg("failed to create vocabulary")
			continue
		}

		if !created {
			summary.Skipped++
			fmt.Fprintf(out, "  → Vocabulary '%s' already exists, skipping\n", def.Name)
			continue
		}

		summary.Created++
		fmt.Fprintf(out, "  ✓ Added %d tags to %s\n\n", len(def.Tags), def.Name)
	}

	fmt.Fprintf(out, "Done!\n")

	return summary, nil
}

func ensure(ctx context.Context, catalog Catalog, out io.Writer, def Definition) (bool, error) {
	_, err := catalog.VocabularyShow(ctx, def.Name)
	if err == nil {
		return false, nil
	}

	var nfe domain.NotFoundError
	if !errors.As(err, &nfe) {
		return false, fmt.Errorf("failed to look up vocabulary: %w", err)
	}

	vocab, err := catalog.VocabularyCreate(ctx, def.Name)
	if err != nil {
		return false, err
	}

	fmt.Fprintf(out, "  ✓ Created vocabulary: %s\n", def.Name)

	for _, tag := range def.Tags {
		if err := catalog.TagCreate(ctx, domain.Tag{Name: tag, VocabularyID: vocab.ID}); err != nil {
			return true, fmt.Errorf("failed to add tag %q: %w", tag, err)
		}
		fmt.Fprintf(out, "    + %s\n", tag)
	}

	return true, nil
}
