package datacite

import (
	"strings"

	"github.com/obis/doi-harvester/internal/pkg/application/doi"
	"github.com/obis/doi-harvester/internal/pkg/application/registries"
	"github.com/obis/doi-harvester/internal/pkg/domain"
)

const SourceName string = "datacite"

var productTypes = map[string]string{
	"dataset":        "derived_dataset",
	"software":       "model",
	"model":          "model",
	"text":           "report",
	"report":         "report",
	"journalarticle": "report",
	"image":          "data_visualization",
	"workflow":       "workflow",
}

// Map builds a dataset from a DataCite record. The landing page is the DOI
// resolver URL unless DataCite knows a better one.
func Map(rec *Record, identifier string) (domain.Dataset, error) {
	canonical := doi.Fold(identifier)

	landing := rec.URL()
	if landing == "" {
		landing = doi.URL(canonical)
	}

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
		LicenseID:       registries.MapLicense(rec.RightsIdentifier()),
		TagString:       strings.Join(rec.Subjects(), ","),
		ProductType:     []string{mapProductType(rec.ResourceTypeGeneral())},
		UpdateFrequency: registries.DefaultUpdateFrequency,
		Resources: []domain.Resource{{
			Name:        "DOI Landing Page",
			URL:         landing,
			Format:      "HTML",
			Description: "View this dataset at its publisher",
		}},
		Extras: []domain.Extra{{Key: "source", Value: SourceName}},
	}

	authors := []domain.Author{}
	for _, c := range rec.Creators() {
		authors = append(authors, domain.Author{Name: c.Name, Affiliation: c.Affiliation})
	}

	if len(authors) > 0 {
		encoded, err := domain.NormalizeJSONArray(authors)
		if err != nil {
			return domain.Dataset{}, err
		}
		ds.Authors = encoded
	}

	if published := rec.Published(); published != "" {
		ds.Extras = append(ds.Extras, domain.Extra{Key: "publication_date", Value: published})
	}

	return ds, nil
}

func mapProductType(resourceTypeGeneral string) string {
	if pt, ok := productTypes[strings.ToLower(resourceTypeGeneral)]; ok {
		return pt
	}
	return registries.DefaultProductType
}
