package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
	"github.com/obis/doi-harvester/internal/pkg/application/harvester"
	"github.com/obis/doi-harvester/internal/pkg/domain"
	"github.com/rs/zerolog"
)

func TestHarvestDOI(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()

	importer := testImporter(nil)
	r.Post("/api/harvest-doi", NewHarvestDOIHandler(zerolog.Logger{}, importer, testAuthorizer(), "obis-community"))

	resp, body := newPostRequest(is, ts, "/api/harvest-doi", "Bearer secret", "application/json", `{"doi_url": "https://zenodo.org/records/1234"}`)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, `{"success":true,"dataset":{"id":"abc-123","name":"benthic-survey","title":"Benthic survey"}}`)

	is.Equal(len(importer.ImportCalls()), 1)
	is.Equal(importer.ImportCalls()[0].Identifier, "https://zenodo.org/records/1234")
	is.Equal(importer.ImportCalls()[0].OwnerOrg, "obis-community")
}

func TestThatHarvestRequiresAToken(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()

	importer := testImporter(nil)
	r.Post("/api/harvest-doi", NewHarvestDOIHandler(zerolog.Logger{}, importer, testAuthorizer(), "obis-community"))

	resp, body := newPostRequest(is, ts, "/api/harvest-doi", "", "application/json", `{"doi_url": "10.5281/zenodo.1234"}`)

	is.Equal(resp.StatusCode, http.StatusUnauthorized)
	is.Equal(body, `{"success":false,"error":"API token required"}`)
	is.Equal(len(importer.ImportCalls()), 0)
}

func TestThatHarvestRequiresMembershipOfTheOwnerOrg(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()

	importer := testImporter(nil)
	r.Post("/api/harvest-doi", NewHarvestDOIHandler(zerolog.Logger{}, importer, testAuthorizer(), "obis-community"))

	resp, _ := newPostRequest(is, ts, "/api/harvest-doi", "Bearer secret", "application/json", `{"doi_url": "10.5281/zenodo.1234", "owner_org": "eurobis"}`)

	is.Equal(resp.StatusCode, http.StatusForbidden)
	is.Equal(len(importer.ImportCalls()), 0)
}

func TestThatRejectedTokensAreUnauthorized(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()

	auth := &AuthorizerMock{
		OrganizationsFunc: func(ctx context.Context, token string) ([]domain.Group, error) {
			return nil, domain.NotAuthorizedError{Action: "organization_list_for_user"}
		},
	}
	r.Post("/api/harvest-doi", NewHarvestDOIHandler(zerolog.Logger{}, testImporter(nil), auth, "obis-community"))

	resp, body := newPostRequest(is, ts, "/api/harvest-doi", "Bearer expired", "application/json", `{"doi_url": "10.5281/zenodo.1234"}`)

	is.Equal(resp.StatusCode, http.StatusUnauthorized)
	is.Equal(body, `{"success":false,"error":"invalid or expired token"}`)
}

func TestThatAMissingDOIIsABadRequest(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()

	r.Post("/api/harvest-doi", NewHarvestDOIHandler(zerolog.Logger{}, testImporter(nil), testAuthorizer(), "obis-community"))

	resp, _ := newPostRequest(is, ts, "/api/harvest-doi", "Bearer secret", "application/json", `{"owner_org": "obis-community"}`)
	is.Equal(resp.StatusCode, http.StatusBadRequest)

	resp, _ = newPostRequest(is, ts, "/api/harvest-doi", "Bearer secret", "application/json", `not json`)
	is.Equal(resp.StatusCode, http.StatusBadRequest)
}

func TestThatImportErrorsMapToStatusCodes(t *testing.T) {
	is := is.New(t)

	cases := []struct {
		err    error
		status int
	}{
		{domain.InvalidIdentifierError{Input: "nope"}, http.StatusBadRequest},
		{domain.UnsupportedRegistryError{DOI: "10.1000/x", Registry: "Zenodo"}, http.StatusBadRequest},
		{domain.FetchError{Registry: "Zenodo", StatusCode: 503}, http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		_, r, ts := setupTest(t)

		r.Post("/api/harvest-doi", NewHarvestDOIHandler(zerolog.Logger{}, testImporter(c.err), testAuthorizer(), "obis-community"))
		resp, _ := newPostRequest(is, ts, "/api/harvest-doi", "Bearer secret", "application/json", `{"doi_url": "10.5281/zenodo.1234"}`)
		ts.Close()

		is.Equal(resp.StatusCode, c.status)
	}
}

func TestThatWrappedValidationFailuresAreBadRequests(t *testing.T) {
	is := is.New(t)

	err := errors.Join(errors.New("failed to create dataset"), domain.ValidationFailure{Message: "Validation Error"})
	is.Equal(StatusFor(err), http.StatusBadRequest)
}

func TestImportDOIForm(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()

	importer := testImporter(nil)
	r.Post("/dataset/import-doi", NewImportDOIFormHandler(zerolog.Logger{}, importer, testAuthorizer(), "https://catalog.obis.org/", "obis-community"))

	form := url.Values{}
	form.Set("doi_url", "https://doi.org/10.5281/zenodo.1234")
	form.Set("owner_org", "obis-community")
	form.Add("contributing_organizations", "vliz")
	form.Add("contributing_organizations", "mba")

	resp, _ := newPostRequest(is, ts, "/dataset/import-doi", "Bearer secret", "application/x-www-form-urlencoded", form.Encode())

	is.Equal(resp.StatusCode, http.StatusSeeOther)
	is.Equal(resp.Header.Get("Location"), "https://catalog.obis.org/dataset/benthic-survey")
	is.Equal(importer.ImportCalls()[0].ContributingOrgs, []string{"vliz", "mba"})
}

func TestThatFormErrorsAreReported(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()

	importer := testImporter(domain.FetchError{Registry: "Zenodo", StatusCode: 500})
	r.Post("/dataset/import-doi", NewImportDOIFormHandler(zerolog.Logger{}, importer, testAuthorizer(), "https://catalog.obis.org", "obis-community"))

	resp, body := newPostRequest(is, ts, "/dataset/import-doi", "Bearer secret", "application/x-www-form-urlencoded", "doi_url=10.5281%2Fzenodo.1234")

	is.Equal(resp.StatusCode, http.StatusBadGateway)
	is.True(strings.HasPrefix(body, "Error importing dataset: "))
}

func testImporter(importErr error) *harvester.ImporterMock {
	return &harvester.ImporterMock{
		ImportFunc: func(ctx context.Context, identifier, ownerOrg string, contributingOrgs []string) (*domain.PersistedRecord, error) {
			if importErr != nil {
				return nil, importErr
			}
			return &domain.PersistedRecord{ID: "abc-123", Name: "benthic-survey", Title: "Benthic survey"}, nil
		},
		LookupFunc: func(ctx context.Context, doi string) (*domain.PersistedRecord, error) {
			return nil, nil
		},
		LastModifiedFunc: func(ctx context.Context, doi string) (time.Time, bool, error) {
			return time.Time{}, false, nil
		},
	}
}

func testAuthorizer() *AuthorizerMock {
	return &AuthorizerMock{
		OrganizationsFunc: func(ctx context.Context, token string) ([]domain.Group, error) {
			return []domain.Group{{ID: "org-1", Name: "obis-community"}}, nil
		},
	}
}

func newPostRequest(is *is.I, ts *httptest.Server, path, authorization, contentType, body string) (*http.Response, string) {
	req, err := http.NewRequest(http.MethodPost, ts.URL+path, strings.NewReader(body))
	is.NoErr(err)

	req.Header.Add("Content-Type", contentType)
	if authorization != "" {
		req.Header.Add("Authorization", authorization)
	}

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	resp, err := client.Do(req)
	is.NoErr(err) // http request failed
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	is.NoErr(err) // failed to read response body

	return resp, string(respBody)
}

func setupTest(t *testing.T) (*is.I, *chi.Mux, *httptest.Server) {
	is := is.New(t)
	r := chi.NewRouter()
	ts := httptest.NewServer(r)

	return is, r, ts
}
