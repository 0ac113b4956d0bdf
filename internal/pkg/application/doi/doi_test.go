package doi

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/obis/doi-harvester/internal/pkg/domain"
)

func TestResolveSupportedShapes(t *testing.T) {
	is := is.New(t)

	inputs := map[string]string{
		"10.5281/zenodo.1234567":                       "10.5281/zenodo.1234567",
		"  10.1234/abc.def  ":                          "10.1234/abc.def",
		"https://doi.org/10.5281/zenodo.1234567":       "10.5281/zenodo.1234567",
		"http://dx.doi.org/10.1000/xyz123":             "10.1000/xyz123",
		"https://zenodo.org/record/7654321":            "10.5281/zenodo.7654321",
		"https://zenodo.org/records/7654321":           "10.5281/zenodo.7654321",
		"https://zenodo.org/records/7654321?preview=1": "10.5281/zenodo.7654321",
		"https://zenodo.org/doi/10.5281/zenodo.999":    "10.5281/zenodo.999",
	}

	for input, expected := range inputs {
		actual, err := Resolve(input)
		is.NoErr(err)
		is.Equal(actual, expected) // resolved DOI should match
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	is := is.New(t)

	first, err := Resolve("https://zenodo.org/records/42")
	is.NoErr(err)
	second, err := Resolve("https://zenodo.org/records/42")
	is.NoErr(err)

	is.Equal(first, second)
}

func TestResolveRejectsUnknownShapes(t *testing.T) {
	is := is.New(t)

	for _, input := range []string{"", "hello", "https://example.com/dataset/1", "https://zenodo.org/communities/obis"} {
		_, err := Resolve(input)

		var iie domain.InvalidIdentifierError
		is.True(errors.As(err, &iie)) // should be an invalid identifier error
	}
}

func TestZenodoHelpers(t *testing.T) {
	is := is.New(t)

	is.True(IsZenodo("10.5281/zenodo.1"))
	is.True(!IsZenodo("10.1000/xyz123"))

	id, ok := ZenodoRecordID("10.5281/zenodo.7654321")
	is.True(ok)
	is.Equal(id, "7654321")

	_, ok = ZenodoRecordID("10.1000/xyz123")
	is.True(!ok)
}

func TestURLAndStrip(t *testing.T) {
	is := is.New(t)

	is.Equal(URL("10.5281/zenodo.1"), "https://doi.org/10.5281/zenodo.1")
	is.Equal(URL("https://doi.org/10.5281/zenodo.1"), "https://doi.org/10.5281/zenodo.1")
	is.Equal(Strip("doi:10.1000/ABC"), "10.1000/ABC")
}

func TestFoldLowersOnlyTheSuffix(t *testing.T) {
	is := is.New(t)

	is.Equal(Fold("https://doi.org/10.5281/ZENODO.1"), "10.5281/zenodo.1")
	is.Equal(Fold("10.14284/170"), "10.14284/170")
	is.True(Equal(Fold("10.1000/AbC"), "10.1000/abc"))
}

func TestEqualIgnoresSuffixCase(t *testing.T) {
	is := is.New(t)

	is.True(Equal("10.5281/ZENODO.1", "https://doi.org/10.5281/zenodo.1"))
	is.True(!Equal("10.5281/zenodo.1", "10.5282/zenodo.1"))
}
