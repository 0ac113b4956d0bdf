package obis

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"
	"github.com/obis/doi-harvester/internal/pkg/domain"
	"github.com/rs/zerolog"
)

var Expects = testutils.Expects
var Returns = testutils.Returns
var anyInput = expects.AnyInput

func TestNodes(t *testing.T) {
	is, ms := testSetup(t, http.StatusOK, nodesJSON)
	defer ms.Close()

	c := NewClient(zerolog.Logger{}, ms.URL(), time.Second)
	nodes, err := c.Nodes(context.Background())
	is.NoErr(err)

	is.Equal(len(nodes), 2)
	is.Equal(nodes[0].Name, "EurOBIS")
	is.Equal(nodes[0].URL(), "https://www.eurobis.org")
	is.Equal(nodes[0].Longitude(), "2.92")
	is.Equal(nodes[0].Latitude(), "51.23")
	is.Equal(nodes[1].URL(), "") // null url list
}

func TestThatInstitutesWithoutOceanExpertIDAreDropped(t *testing.T) {
	is, ms := testSetup(t, http.StatusOK, institutesJSON)
	defer ms.Close()

	c := NewClient(zerolog.Logger{}, ms.URL(), time.Second)
	institutes, fetched, err := c.InstitutesWithOceanExpertID(context.Background())
	is.NoErr(err)

	is.Equal(fetched, 3)
	is.Equal(len(institutes), 2)
	is.Equal(institutes[0].OceanExpertID(), "7857")
	is.Equal(institutes[0].EDMOCode(), "1234")
	is.Equal(institutes[1].Name, "Flanders Marine Institute")
}

func TestThatServerErrorsAreFetchErrors(t *testing.T) {
	is, ms := testSetup(t, http.StatusServiceUnavailable, ``)
	defer ms.Close()

	c := NewClient(zerolog.Logger{}, ms.URL(), time.Second)
	_, err := c.Nodes(context.Background())

	var fe domain.FetchError
	is.True(errors.As(err, &fe))
	is.Equal(fe.Registry, RegistryName)
	is.Equal(fe.StatusCode, http.StatusServiceUnavailable)
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

const nodesJSON string = `{
	"total": 2,
	"results": [
		{
			"id": "0a7a3f8e-6cd4-4e2b-8ab1-5b1d7d7b0e9a",
			"name": "EurOBIS",
			"description": "European node of OBIS",
			"type": "regional",
			"url": ["https://www.eurobis.org", "https://www.vliz.be"],
			"lon": 2.92,
			"lat": 51.23,
			"theme": null,
			"contacts": [{"name": "Data Centre", "email": "info@eurobis.org"}],
			"feeds": []
		},
		{
			"id": "4bf79a01-65a9-4db6-b37b-18434f26ddfc",
			"name": "OBIS USA",
			"type": "national",
			"url": null,
			"lon": -77.0,
			"lat": 38.9
		}
	]
}`

const institutesJSON string = `{
	"total": 3,
	"results": [
		{"id": 7857, "name": "Marine Biological Association", "code": "MBA", "edmo_code": 1234, "country": "United Kingdom"},
		{"id": null, "name": "Unlinked Institute", "code": "UI"},
		{"id": 5051, "name": "Flanders Marine Institute", "code": "VLIZ", "edmo_code": null}
	]
}`
