package presentation

import (
	"compress/flate"
	"context"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/obis/doi-harvester/internal/pkg/application/harvester"
	"github.com/obis/doi-harvester/internal/pkg/presentation/handlers"
	"github.com/riandyrn/otelchi"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

type API interface {
	Start(port string) error
}

type Settings struct {
	CatalogURL string
	DefaultOrg string
}

type harvesterAPI struct {
	router chi.Router
	log    zerolog.Logger
}

func NewAPI(r chi.Router, ctx context.Context, importer harvester.Importer, auth handlers.Authorizer, settings Settings) API {
	return newHarvesterAPI(r, ctx, importer, auth, settings)
}

func newHarvesterAPI(r chi.Router, ctx context.Context, importer harvester.Importer, auth handlers.Authorizer, settings Settings) *harvesterAPI {
	log := logging.GetFromContext(ctx)

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		Debug:            false,
	}).Handler)

	compressor := middleware.NewCompressor(flate.DefaultCompression, "application/json")
	r.Use(compressor.Handler)
	r.Use(otelchi.Middleware("doi-harvester", otelchi.WithChiRoutes(r)))

	a := &harvesterAPI{
		router: r,
		log:    log,
	}

	a.addHarvestHandlers(r, log, importer, auth, settings)
	a.addProbeHandlers(r)

	return a
}

func (a *harvesterAPI) Start(port string) error {
	a.log.Info().Msgf("Starting doi-harvester on port:%s", port)
	return http.ListenAndServe(":"+port, a.router)
}

func (a *harvesterAPI) addHarvestHandlers(r chi.Router, log zerolog.Logger, importer harvester.Importer, auth handlers.Authorizer, settings Settings) {
	r.Post(
		"/api/harvest-doi",
		handlers.NewHarvestDOIHandler(log, importer, auth, settings.DefaultOrg),
	)
	r.Post(
		"/dataset/import-doi",
		handlers.NewImportDOIFormHandler(log, importer, auth, settings.CatalogURL, settings.DefaultOrg),
	)
}

func (a *harvesterAPI) addProbeHandlers(r chi.Router) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}
