package zenodo

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/obis/doi-harvester/internal/pkg/application/doi"
	"github.com/obis/doi-harvester/internal/pkg/application/registries"
	"github.com/obis/doi-harvester/internal/pkg/domain"
)

const (
	DefaultLandingBaseURL string = "https://zenodo.org/records"

	SourceName string = "zenodo"
)

// product types keyed by the resource type with separators removed
var productTypes = map[string]string{
	"dataset":                 "derived_dataset",
	"software":                "model",
	"publicationreport":       "report",
	"publicationarticle":      "report",
	"publicationpresentation": "presentation",
	"presentation":            "presentation",
	"imagefigure":             "data_visualization",
	"imageplot":               "data_visualization",
	"imagediagram":            "data_visualization",
}

var productTypePrefixes = []struct {
	prefix      string
	productType string
}{
	{"publication", "report"},
	{"image", "data_visualization"},
}

// Mapper turns Zenodo records into catalog datasets. It performs no I/O.
type Mapper struct {
	LandingBaseURL string
}

func NewMapper(landingBaseURL string) Mapper {
	if landingBaseURL == "" {
		landingBaseURL = DefaultLandingBaseURL
	}
	return Mapper{LandingBaseURL: strings.TrimSuffix(landingBaseURL, "/")}
}

func (m Mapper) Map(rec *Record, identifier string) (domain.Dataset, error) {
	canonical := doi.Fold(identifier)
	landing := m.landingPage(rec.ID())

	ds := domain.Dataset{
		Title: registries.ValueOrDefault(rec.Title(), registries.DefaultTitle),
		Notes: rec.Description(),
		URL:   landing,
		Identifier: domain.Identifier{
			PropertyID: domain.IdentifierPropertyDOI,
			Value:      canonical,
			URL:        doi.URL(canonical),
		},
		Version:         registries.ValueOrDefault(rec.Version(), registries.DefaultVersion),
		LicenseID:       registries.MapLicense(rec.LicenseID()),
		TagString:       strings.Join(rec.Keywords(), ","),
		ProductType:     []string{MapProductType(rec.ResourceType())},
		UpdateFrequency: registries.DefaultUpdateFrequency,
		Resources:       m.resources(landing, rec.Files()),
		Extras:          []domain.Extra{{Key: "source", Value: SourceName}},
	}

	authors := []domain.Author{}
	for _, c := range rec.Creators() {
		authors = append(authors, domain.Author{Name: c.Name, Affiliation: c.Affiliation, Email: c.Email})
	}

	if len(authors) > 0 {
		encoded, err := domain.NormalizeJSONArray(authors)
		if err != nil {
			return domain.Dataset{}, fmt.Errorf("failed to encode authors: %w", err)
		}
		ds.Authors = encoded
	}

	if pd := rec.PublicationDate(); pd != "" {
		ds.Extras = append(ds.Extras, domain.Extra{Key: "publication_date", Value: pd})
	}

	return ds, nil
}

func (m Mapper) landingPage(recordID string) string {
	return fmt.Sprintf("%s/%s", m.LandingBaseURL, recordID)
}

func (m Mapper) resources(landing string, files []File) []domain.Resource {
	resources := []domain.Resource{{
		Name:        "Zenodo Record",
		URL:         landing,
		Format:      "HTML",
		Description: "View this dataset on Zenodo",
	}}

	for _, f := range files {
		name := f.Key
		if name == "" {
			name = "Download"
		}

		format := strings.ToUpper(f.Type)
		if format == "" {
			format = strings.ToUpper(strings.TrimPrefix(path.Ext(f.Key), "."))
		}

		resources = append(resources, domain.Resource{
			Name:        name,
			URL:         fmt.Sprintf("%s/files/%s", landing, url.PathEscape(f.Key)),
			Format:      format,
			Description: fmt.Sprintf("Download from Zenodo. File size: %d bytes", f.Size),
		})
	}

	return resources
}

// MapProductType maps a registry resource type to a catalog product type.
// Exact matches win over prefix rules.
func MapProductType(resourceType string) string {
	key := strings.ToLower(resourceType)
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)

	if pt, ok := productTypes[key]; ok {
		return pt
	}

	for _, p := range productTypePrefixes {
		if strings.HasPrefix(key, p.prefix) {
			return p.productType
		}
	}

	return registries.DefaultProductType
}
