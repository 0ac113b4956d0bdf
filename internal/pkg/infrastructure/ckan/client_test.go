package ckan

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"
	"github.com/obis/doi-harvester/internal/pkg/domain"
)

var Expects = testutils.Expects
var Returns = testutils.Returns
var anyInput = expects.AnyInput

func TestPackageSearchReturnsRecords(t *testing.T) {
	is, ms := testSetup(t, http.StatusOK, searchResponse)
	defer ms.Close()

	c := NewClient(ms.URL(), "token", time.Second)
	records, err := c.PackageSearch(context.Background(), `identifier:"10.5281/zenodo.1"`, 1)
	is.NoErr(err)

	is.Equal(len(records), 1)
	is.Equal(records[0].ID, "8f1c2f1e-0000-4000-8000-000000000001")
	is.Equal(records[0].Name, "benthic-survey")
	is.Equal(records[0].MetadataModified, "2024-01-01T10:00:00.000000")
}

func TestValidationErrorsAreTyped(t *testing.T) {
	is, ms := testSetup(t, http.StatusConflict, validationResponse)
	defer ms.Close()

	c := NewClient(ms.URL(), "token", time.Second)
	_, err := c.PackageCreate(context.Background(), domain.Dataset{Title: "x"})

	var vf domain.ValidationFailure
	is.True(errors.As(err, &vf))
	is.Equal(vf.Fields["name"], []string{"That URL is already in use."})
}

func TestAuthorizationErrorsAreTyped(t *testing.T) {
	is, ms := testSetup(t, http.StatusForbidden, `{"success": false, "error": {"__type": "Authorization Error", "message": "Access denied"}}`)
	defer ms.Close()

	c := NewClient(ms.URL(), "", time.Second)
	_, err := c.OrganizationCreate(context.Background(), domain.Group{Name: "x"})

	var nae domain.NotAuthorizedError
	is.True(errors.As(err, &nae))
	is.Equal(nae.Action, "organization_create")
}

func TestNotFoundErrorsAreTyped(t *testing.T) {
	is, ms := testSetup(t, http.StatusNotFound, `{"success": false, "error": {"__type": "Not Found Error", "message": "Not found"}}`)
	defer ms.Close()

	c := NewClient(ms.URL(), "", time.Second)
	_, err := c.VocabularyShow(context.Background(), "thematics")

	var nfe domain.NotFoundError
	is.True(errors.As(err, &nfe))
	is.Equal(nfe.ID, "thematics")
}

func TestThatTokenAndActionAreSent(t *testing.T) {
	is := is.New(t)

	var payload map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.Method, http.MethodPost)
		is.Equal(r.URL.Path, "/api/3/action/organization_list_for_user")
		is.Equal(r.Header.Get("Authorization"), "user-token")

		b, _ := io.ReadAll(r.Body)
		is.NoErr(json.Unmarshal(b, &payload))

		w.Header().Add("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "result": [{"id": "1", "name": "obis-community", "title": "OBIS Community"}]}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL+"/", "system-token", time.Second).WithToken("user-token")
	orgs, err := c.OrganizationListForUser(context.Background(), "create_dataset")
	is.NoErr(err)

	is.Equal(payload["permission"], "create_dataset")
	is.Equal(len(orgs), 1)
	is.Equal(orgs[0].Name, "obis-community")
}

func testSetup(t *testing.T, statusCode int, responseBody string) (*is.I, testutils.MockService) {
	is := is.New(t)

	ms := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.Code(statusCode),
			response.ContentType("application/json"),
			response.Body([]byte(responseBody)),
		),
	)

	return is, ms
}

const searchResponse string = `{
	"success": true,
	"result": {
		"count": 1,
		"results": [{
			"id": "8f1c2f1e-0000-4000-8000-000000000001",
			"name": "benthic-survey",
			"title": "Benthic survey",
			"url": "https://zenodo.org/records/1",
			"owner_org": "b6a2",
			"metadata_modified": "2024-01-01T10:00:00.000000",
			"extras": []
		}]
	}
}`

const validationResponse string = `{
	"success": false,
	"error": {
		"__type": "Validation Error",
		"name": ["That URL is already in use."]
	}
}`
