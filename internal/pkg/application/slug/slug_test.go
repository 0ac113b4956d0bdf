package slug

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestMake(t *testing.T) {
	is := is.New(t)

	is.Equal(Make("Hello,   World!"), "hello-world")
	is.Equal(Make("  --Fish & Chips--  "), "fish-chips")
	is.Equal(Make("Instituto Español de Oceanografía"), "instituto-espanol-de-oceanografia")
	is.Equal(Make("OBIS Secretariat"), "obis-secretariat")
}

func TestDatasetSlugIsTruncated(t *testing.T) {
	is := is.New(t)

	s := Dataset("A very long title about benthic macrofauna sampled in the North Sea during 2021")
	is.True(len(s) <= DatasetMaxLength)
	is.True(!strings.HasSuffix(s, "-"))
	is.Equal(s, "a-very-long-title-about-benthic-macrofauna-sampled")
}

func TestDatasetSlugFallback(t *testing.T) {
	is := is.New(t)

	is.Equal(Dataset("!!!"), DatasetFallback)
	is.Equal(Dataset(""), DatasetFallback)
}

func TestInstitutionSlugIsCutAtWordBoundary(t *testing.T) {
	is := is.New(t)

	name := strings.Repeat("oceanography ", 12)
	s := Institution(name)

	is.True(len(s) <= InstitutionMaxLength)
	is.True(strings.HasSuffix(s, "oceanography")) // no partial words
	is.Equal(Institution("???"), InstitutionFallback)
}
