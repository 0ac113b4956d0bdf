package main

import (
	"github.com/go-chi/chi/v5"
	"github.com/obis/doi-harvester/internal/pkg/presentation"
	"github.com/obis/doi-harvester/internal/pkg/presentation/handlers"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the DOI harvest HTTP API",
	Long: `Serve the DOI harvest HTTP API.

Routes:
  POST /api/harvest-doi     JSON {"doi_url": "...", "owner_org": "..."}, bearer token required
  POST /dataset/import-doi  form post from the catalog import page
  GET  /health`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(ctx, true)
	if err != nil {
		return err
	}

	catalog := newCatalog(cfg)

	api := presentation.NewAPI(
		chi.NewRouter(), ctx,
		newImporter(ctx, cfg, catalog),
		handlers.NewCatalogAuthorizer(catalog),
		presentation.Settings{CatalogURL: cfg.Catalog.URL, DefaultOrg: cfg.Harvest.DefaultOrg},
	)

	return api.Start(cfg.Service.Port)
}
