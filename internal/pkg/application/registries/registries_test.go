package registries

import (
	"testing"

	"github.com/matryer/is"
)

func TestMapLicense(t *testing.T) {
	is := is.New(t)

	is.Equal(MapLicense("CC-BY-NC-4.0"), "cc-nc")
	is.Equal(MapLicense("cc-by-nc-4.0"), "cc-nc")
	is.Equal(MapLicense(" cc0-1.0 "), "cc-zero")
	is.Equal(MapLicense("Apache-2.0"), "apache2-license")
	is.Equal(MapLicense("MIT"), "mit-license")
	is.Equal(MapLicense("gpl-3.0"), "notspecified")
	is.Equal(MapLicense(""), "notspecified")
}
