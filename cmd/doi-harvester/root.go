package main

import (
	"context"
	"errors"
	"os"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/obis/doi-harvester/internal/pkg/application/harvester"
	"github.com/obis/doi-harvester/internal/pkg/application/registries/datacite"
	"github.com/obis/doi-harvester/internal/pkg/application/registries/zenodo"
	"github.com/obis/doi-harvester/internal/pkg/infrastructure/ckan"
	"github.com/obis/doi-harvester/internal/pkg/infrastructure/config"
	"github.com/obis/doi-harvester/internal/pkg/infrastructure/doilist"
	"github.com/spf13/cobra"
)

var configPath string

var errTokenRequired = errors.New("no catalog API token configured, set CKAN_API_TOKEN")

var rootCmd = &cobra.Command{
	Use:   "doi-harvester",
	Short: "Harvest DOI metadata into an OBIS data catalog",
	Long: `doi-harvester imports dataset records from Zenodo (and optionally DataCite)
into a CKAN catalog, and keeps catalog organizations and groups in step with
the OBIS node and institute registries.

Examples:
  doi-harvester serve
  doi-harvester harvest --registry zenodo_dois.txt --org obis-community
  doi-harvester harvest --force
  doi-harvester sync-nodes
  doi-harvester sync-institutes
  doi-harvester init-vocabularies`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("DOI_HARVESTER_CONFIG"), "Configuration file (YAML)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(harvestCmd)
	rootCmd.AddCommand(syncNodesCmd)
	rootCmd.AddCommand(syncInstitutesCmd)
	rootCmd.AddCommand(initVocabulariesCmd)
}

func loadConfig(ctx context.Context, requireToken bool) (*config.Config, error) {
	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return nil, err
	}

	if requireToken && cfg.Catalog.APIToken == "" {
		return nil, errTokenRequired
	}

	return cfg, nil
}

func newCatalog(cfg *config.Config) *ckan.Client {
	return ckan.NewClient(cfg.Catalog.URL, cfg.Catalog.APIToken, cfg.Catalog.Timeout)
}

// newImporter wires the registry chain to the catalog. DataCite is only asked
// when enabled and Zenodo does not know the DOI.
func newImporter(ctx context.Context, cfg *config.Config, catalog *ckan.Client) harvester.Importer {
	log := logging.GetFromContext(ctx)

	zenodoClient := zenodo.NewClient(log, cfg.Registries.Zenodo.APIURL, cfg.Registries.Zenodo.Timeout)

	var source harvester.MetadataSource = zenodo.NewSource(zenodoClient, zenodo.NewMapper(cfg.Registries.Zenodo.LandingURL))
	if cfg.Registries.DataCite.Fallback {
		dataciteClient := datacite.NewClient(log, cfg.Registries.DataCite.APIURL, cfg.Registries.DataCite.Timeout)
		source = harvester.WithFallback(source, datacite.NewSource(dataciteClient))
	}

	coordinator := harvester.NewCoordinator(catalog, doilist.NewFile(cfg.Harvest.WhitelistPath))

	return harvester.NewImporter(log, source, coordinator)
}
