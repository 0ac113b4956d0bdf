package oceanexpert

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

func TestInstitute(t *testing.T) {
	is, ms := testSetup(t, http.StatusOK, instituteJSON)
	defer ms.Close()

	c := NewClient(zerolog.Logger{}, ms.URL(), time.Second)
	rec, err := c.Institute(context.Background(), "7857")
	is.NoErr(err)

	inst := rec.Institute()
	is.Equal(inst.Get("instName"), "Marine Biological Association of the UK")
	is.Equal(inst.Get("countryCode"), "GB")
	is.Equal(inst.Get("edmoCode"), "545")
	is.Equal(inst.Get("instFax"), "")
	is.Equal(rec.MemberCount(), int64(42))
}

func TestThatRecordsWithoutInstituteHaveNoInstitute(t *testing.T) {
	is, ms := testSetup(t, http.StatusOK, `{"members": {"count": 0}}`)
	defer ms.Close()

	c := NewClient(zerolog.Logger{}, ms.URL(), time.Second)
	rec, err := c.Institute(context.Background(), "1")
	is.NoErr(err)
	is.True(rec.Institute() == nil)
}

func TestThatNonObjectResponsesFail(t *testing.T) {
	is, ms := testSetup(t, http.StatusOK, `[]`)
	defer ms.Close()

	c := NewClient(zerolog.Logger{}, ms.URL(), time.Second)
	_, err := c.Institute(context.Background(), "1")

	var fe domain.FetchError
	is.True(errors.As(err, &fe))
}

func TestThatMissingInstitutesAreFetchErrors(t *testing.T) {
	is, ms := testSetup(t, http.StatusNotFound, ``)
	defer ms.Close()

	c := NewClient(zerolog.Logger{}, ms.URL(), time.Second)
	_, err := c.Institute(context.Background(), "999999")

	var fe domain.FetchError
	is.True(errors.As(err, &fe))
	is.Equal(fe.StatusCode, http.StatusNotFound)
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

const instituteJSON string = `{
	"institute": {
		"instId": 7857,
		"instName": " Marine Biological Association of the UK ",
		"instNameEng": "Marine Biological Association",
		"instAddress": "The Laboratory, Citadel Hill",
		"city": "Plymouth",
		"postcode": "PL1 2PB",
		"country": "United Kingdom",
		"countryCode": "GB",
		"instUrl": "https://www.mba.ac.uk",
		"instEmail": "info@mba.ac.uk",
		"instFax": null,
		"edmoCode": 545,
		"acronym": "MBA",
		"insttypeName": "Research",
		"instLogo": "https://oceanexpert.org/upload/logo/7857.png",
		"lDateUpdated": "2021-03-04"
	},
	"members": {"count": 42}
}`
