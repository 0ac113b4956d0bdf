package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/obis/doi-harvester/internal/pkg/application/harvester"
	"github.com/obis/doi-harvester/internal/pkg/domain"
	"github.com/obis/doi-harvester/internal/pkg/infrastructure/ckan"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"golang.org/x/exp/slices"
)

var tracer = otel.Tracer("doi-harvester/api")

const CreateDatasetPermission string = "create_dataset"

var (
	errTokenRequired  = errors.New("API token required")
	errNotOrgMember   = errors.New("not allowed to create datasets in this organization")
	errInvalidToken   = errors.New("invalid or expired token")
	errDOIURLRequired = errors.New("doi_url required")
	errInvalidRequest = errors.New("invalid request body")
)

//go:generate moq -rm -out authorizer_mock.go . Authorizer
type Authorizer interface {
	// Organizations returns the organizations the token may create datasets in.
	Organizations(ctx context.Context, token string) ([]domain.Group, error)
}

// NewCatalogAuthorizer asks the catalog on behalf of the caller's token.
func NewCatalogAuthorizer(c *ckan.Client) Authorizer {
	return &catalogAuthorizer{catalog: c}
}

type catalogAuthorizer struct {
	catalog *ckan.Client
}

func (a *catalogAuthorizer) Organizations(ctx context.Context, token string) ([]domain.Group, error) {
	return a.catalog.WithToken(token).OrganizationListForUser(ctx, CreateDatasetPermission)
}

type harvestRequest struct {
	DOIURL   string `json:"doi_url"`
	OwnerOrg string `json:"owner_org,omitempty"`
}

type harvestResponse struct {
	Success bool            `json:"success"`
	Dataset *datasetSummary `json:"dataset,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type datasetSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

// NewHarvestDOIHandler imports a single DOI on behalf of an API client.
func NewHarvestDOIHandler(logger zerolog.Logger, importer harvester.Importer, auth Authorizer, defaultOrg string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "harvest-doi")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		token, ok := bearerToken(r)
		if !ok {
			err = errTokenRequired
			writeJSONError(w, http.StatusUnauthorized, err)
			return
		}

		req := harvestRequest{}
		if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error().Err(err).Msg("bad request")
			writeJSONError(w, http.StatusBadRequest, errInvalidRequest)
			return
		}

		req.DOIURL = strings.TrimSpace(req.DOIURL)
		if req.DOIURL == "" {
			err = errDOIURLRequired
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		ownerOrg := valueOr(req.OwnerOrg, defaultOrg)

		if status, authErr := authorize(ctx, auth, token, ownerOrg); authErr != nil {
			err = authErr
			log.Warn().Err(err).Str("org", ownerOrg).Msg("harvest request rejected")
			writeJSONError(w, status, err)
			return
		}

		record, err := importer.Import(ctx, req.DOIURL, ownerOrg, nil)
		if err != nil {
			status := StatusFor(err)
			log.Error().Err(err).Int("status", status).Msg("harvest failed")
			writeJSONError(w, status, err)
			return
		}

		writeJSON(w, http.StatusOK, harvestResponse{
			Success: true,
			Dataset: &datasetSummary{ID: record.ID, Name: record.Name, Title: record.Title},
		})
	})
}

// NewImportDOIFormHandler imports a DOI posted from the catalog's import form
// and redirects the browser to the new dataset page.
func NewImportDOIFormHandler(logger zerolog.Logger, importer harvester.Importer, auth Authorizer, catalogURL, defaultOrg string) http.HandlerFunc {
	catalogURL = strings.TrimSuffix(catalogURL, "/")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "import-doi-form")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		token, ok := bearerToken(r)
		if !ok {
			err = errTokenRequired
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		if err = r.ParseForm(); err != nil {
			http.Error(w, errInvalidRequest.Error(), http.StatusBadRequest)
			return
		}

		doiURL := strings.TrimSpace(r.PostForm.Get("doi_url"))
		if doiURL == "" {
			err = errors.New("please provide a DOI URL")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ownerOrg := valueOr(r.PostForm.Get("owner_org"), defaultOrg)
		contributingOrgs := r.PostForm["contributing_organizations"]

		if status, authErr := authorize(ctx, auth, token, ownerOrg); authErr != nil {
			err = authErr
			http.Error(w, err.Error(), status)
			return
		}

		record, err := importer.Import(ctx, doiURL, ownerOrg, contributingOrgs)
		if err != nil {
			status := StatusFor(err)
			log.Error().Err(err).Int("status", status).Msg("import failed")
			http.Error(w, fmt.Sprintf("Error importing dataset: %s", err.Error()), status)
			return
		}

		log.Info().Str("name", record.Name).Msg("dataset imported from form")

		http.Redirect(w, r, fmt.Sprintf("%s/dataset/%s", catalogURL, url.PathEscape(record.Name)), http.StatusSeeOther)
	})
}

func authorize(ctx context.Context, auth Authorizer, token, ownerOrg string) (int, error) {
	orgs, err := auth.Organizations(ctx, token)
	if err != nil {
		var nae domain.NotAuthorizedError
		if errors.As(err, &nae) {
			return http.StatusUnauthorized, errInvalidToken
		}
		return http.StatusInternalServerError, fmt.Errorf("failed to check organization membership: %w", err)
	}

	member := slices.IndexFunc(orgs, func(org domain.Group) bool {
		return org.Name == ownerOrg || org.ID == ownerOrg
	}) >= 0

	if !member {
		return http.StatusForbidden, errNotOrgMember
	}

	return http.StatusOK, nil
}

// StatusFor maps a harvest error to the HTTP status reported to callers.
func StatusFor(err error) int {
	var (
		iie domain.InvalidIdentifierError
		ure domain.UnsupportedRegistryError
		vf  domain.ValidationFailure
		fe  domain.FetchError
		nae domain.NotAuthorizedError
	)

	switch {
	case errors.As(err, &iie), errors.As(err, &ure), errors.As(err, &vf):
		return http.StatusBadRequest
	case errors.As(err, &fe):
		return http.StatusBadGateway
	case errors.As(err, &nae):
		return http.StatusForbidden
	}

	return http.StatusInternalServerError
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	token = strings.TrimSpace(token)
	return token, found && token != ""
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	b, _ := json.Marshal(body)
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

func writeJSONError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, harvestResponse{Success: false, Error: err.Error()})
}

func valueOr(value, defaultValue string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return defaultValue
}
