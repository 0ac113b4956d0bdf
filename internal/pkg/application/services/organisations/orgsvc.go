// Package organisations keeps catalog organizations in step with the OBIS node
// registry.
package organisations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/obis/doi-harvester/internal/pkg/application/registries/lenient"
	"github.com/obis/doi-harvester/internal/pkg/application/registries/obis"
	"github.com/obis/doi-harvester/internal/pkg/application/slug"
	"github.com/obis/doi-harvester/internal/pkg/domain"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("doi-harvester/svcs/organisations")

// Secretariat is added next to the nodes since the registry does not list it.
var Secretariat = obis.Node{
	ID:          "obis-secretariat",
	Name:        "OBIS Secretariat",
	Description: "The Ocean Biodiversity Information System (OBIS) Secretariat coordinates the global OBIS network.",
	Type:        "secretariat",
	URLRaw:      json.RawMessage(`["https://obis.org"]`),
	Contacts:    json.RawMessage(`[]`),
}

//go:generate moq -rm -out registry_mock.go . NodeRegistry
type NodeRegistry interface {
	Nodes(ctx context.Context) ([]obis.Node, error)
}

//go:generate moq -rm -out catalog_mock.go . Catalog
type Catalog interface {
	OrganizationList(ctx context.Context) ([]string, error)
	OrganizationShow(ctx context.Context, id string) (*domain.Group, error)
	OrganizationCreate(ctx context.Context, org domain.Group) (*domain.Group, error)
	OrganizationUpdate(ctx context.Context, org domain.Group) (*domain.Group, error)
}

type Summary struct {
	Total   int
	Created int
	Updated int
	Failed  int
}

func (s Summary) ExitCode() int {
	if s.Failed > 0 {
		return 1
	}
	return 0
}

func (s Summary) String() string {
	return fmt.Sprintf("Created: %d\nUpdated: %d\nFailed: %d\nTotal processed: %d\n", s.Created, s.Updated, s.Failed, s.Total)
}

type NodeSync struct {
	registry NodeRegistry
	catalog  Catalog
	out      io.Writer
	log      zerolog.Logger
}

func NewNodeSync(logger zerolog.Logger, registry NodeRegistry, catalog Catalog, out io.Writer) *NodeSync {
	if out == nil {
		out = io.Discard
	}

	return &NodeSync{
		registry: registry,
		catalog:  catalog,
		out:      out,
		log:      logger,
	}
}

// Sync creates an organization for every node that has none and updates the
// others. Organizations are matched on the slug of the node name.
func (s *NodeSync) Sync(ctx context.Context) (summary Summary, err error) {
	ctx, span := tracer.Start(ctx, "sync-nodes")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, s.log, ctx)

	fmt.Fprintf(s.out, "Fetching OBIS nodes...\n")

	nodes, err := s.registry.Nodes(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to fetch nodes: %w", err)
	}
	if len(nodes) == 0 {
		err = errors.New("no nodes found")
		return summary, err
	}

	fmt.Fprintf(s.out, "Fetching existing catalog organizations...\n")

	existing, err := s.existingOrganisations(ctx, log)
	if err != nil {
		return summary, err
	}

	fmt.Fprintf(s.out, "\nProcessing %d OBIS nodes...\n", len(nodes))

	for _, node := range nodes {
		summary.Total++
		s.syncNode(ctx, log, node, existing, &summary)
	}

	if sErr := s.ensureSecretariat(ctx, existing, &summary); sErr != nil {
		fmt.Fprintf(s.out, "✗ Failed to create %s: %s\n", Secretariat.Name, sErr.Error())
		log.Error().Err(sErr).Msg("failed to add the secretariat")
	}

	log.Info().Int("created", summary.Created).Int("updated", summary.Updated).Int("failed", summary.Failed).Msg("node sync complete")

	return summary, nil
}

func (s *NodeSync) syncNode(ctx context.Context, log zerolog.Logger, node obis.Node, existing map[string]domain.Group, summary *Summary) {
	name := slug.Make(node.Name)
	fmt.Fprintf(s.out, "Processing: %s → %s\n", node.Name, name)

	org := OrganisationFromNode(node)

	if current, ok := existing[name]; ok {
		org.ID = current.ID
		org.Name = current.Name

		if _, err := s.catalog.OrganizationUpdate(ctx, org); err != nil {
			summary.Failed++
			fmt.Fprintf(s.out, "✗ Failed to update %s: %s\n", node.Name, err.Error())
			log.Error().Err(err).Str("node", node.ID).Msg("failed to update organization")
			return
		}

		summary.Updated++
		fmt.Fprintf(s.out, "↻ Updated organization: %s (URL: %s)\n", node.Name, node.URL())
		return
	}

	created, err := s.catalog.OrganizationCreate(ctx, org)
	if err != nil {
		summary.Failed++
		fmt.Fprintf(s.out, "✗ Failed to create %s: %s\n", node.Name, err.Error())
		log.Error().Err(err).Str("node", node.ID).Msg("failed to create organization")
		return
	}

	summary.Created++
	existing[name] = *created
	fmt.Fprintf(s.out, "✓ Created organization: %s (URL: %s)\n", node.Name, node.URL())
}

func (s *NodeSync) ensureSecretariat(ctx context.Context, existing map[string]domain.Group, summary *Summary) error {
	name := slug.Make(Secretariat.Name)
	if _, ok := existing[name]; ok {
		fmt.Fprintf(s.out, "→ OBIS Secretariat already exists\n")
		return nil
	}

	created, err := s.catalog.OrganizationCreate(ctx, OrganisationFromNode(Secretariat))
	if err != nil {
		summary.Failed++
		return err
	}

	summary.Created++
	existing[name] = *created
	fmt.Fprintf(s.out, "✓ Created organization: %s (URL: %s)\n", Secretariat.Name, Secretariat.URL())

	return nil
}

func (s *NodeSync) existingOrganisations(ctx context.Context, log zerolog.Logger) (map[string]domain.Group, error) {
	names, err := s.catalog.OrganizationList(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	existing := make(map[string]domain.Group, len(names))
	for _, name := range names {
		org, err := s.catalog.OrganizationShow(ctx, name)
		if err != nil {
			log.Warn().Err(err).Str("organization", name).Msg("failed to fetch organization details")
			continue
		}
		existing[name] = *org
	}

	return existing, nil
}

// OrganisationFromNode maps a registry node to a catalog organization.
func OrganisationFromNode(node obis.Node) domain.Group {
	return domain.Group{
		Name:        slug.Make(node.Name),
		Title:       node.Name,
		Description: node.Description,
		Extras: []domain.Extra{
			{Key: "obis_node_id", Value: node.ID},
			{Key: "node_type", Value: node.Type},
			{Key: "node_url", Value: node.URL()},
			{Key: "longitude", Value: node.Longitude()},
			{Key: "latitude", Value: node.Latitude()},
			{Key: "theme", Value: node.Theme},
			{Key: "contacts", Value: jsonList(node.Contacts)},
			{Key: "feeds", Value: jsonList(node.Feeds)},
		},
	}
}

func jsonList(raw json.RawMessage) string {
	if !lenient.IsArray(raw) {
		return "[]"
	}

	s, err := domain.NormalizeJSONArray(string(raw))
	if err != nil || s == "" {
		return "[]"
	}
	return s
}
