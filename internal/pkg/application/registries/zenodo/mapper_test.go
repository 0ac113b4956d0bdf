package zenodo

import (
	"encoding/json"
	"testing"

	"github.com/matryer/is"
	"github.com/obis/doi-harvester/internal/pkg/application/registries"
	"github.com/obis/doi-harvester/internal/pkg/domain"
)

func TestMapLegacyRecord(t *testing.T) {
	is := is.New(t)

	ds := mapRecord(is, legacyRecordJSON, "10.5281/zenodo.1234567")

	is.Equal(ds.Title, "Benthic macrofauna of the Baltic Sea")
	is.Equal(ds.Version, "2.1")
	is.Equal(ds.LicenseID, "cc-by")
	is.Equal(ds.TagString, "benthos,baltic sea")
	is.Equal(ds.ProductType, []string{"derived_dataset"})
	is.Equal(ds.UpdateFrequency, "never")
	is.Equal(ds.URL, "https://zenodo.org/records/1234567")
	is.Equal(ds.Identifier, domain.Identifier{PropertyID: "DOI", Value: "10.5281/zenodo.1234567", URL: "https://doi.org/10.5281/zenodo.1234567"})
	is.Equal(ds.Authors, `[{"name":"Ström, Åsa","affiliation":"SMHI, Stockholm University","email":""},{"name":"Doe, John","affiliation":"","email":""}]`)

	is.Equal(len(ds.Resources), 3)
	is.Equal(ds.Resources[0].Name, "Zenodo Record") // landing page resource goes first
	is.Equal(ds.Resources[0].Format, "HTML")
	is.Equal(ds.Resources[1].URL, "https://zenodo.org/records/1234567/files/occurrence.csv")
	is.Equal(ds.Resources[1].Format, "CSV")
	is.Equal(ds.Resources[1].Description, "Download from Zenodo. File size: 2048 bytes")

	source, _ := ds.Extra("source")
	is.Equal(source, "zenodo")
	published, _ := ds.Extra("publication_date")
	is.Equal(published, "2023-05-04")
}

func TestMapInvenioRDMRecord(t *testing.T) {
	is := is.New(t)

	ds := mapRecord(is, rdmRecordJSON, "https://doi.org/10.5281/zenodo.7654321")

	is.Equal(ds.Title, "Untitled Dataset")
	is.Equal(ds.Version, "1.0")
	is.Equal(ds.LicenseID, "cc-zero")               // from rights[0]
	is.Equal(ds.ProductType, []string{"report"})    // publication-article
	is.Equal(ds.Identifier.Value, "10.5281/zenodo.7654321")
	is.Equal(ds.Authors, `[{"name":"Smith, Anna","affiliation":"VLIZ, UNESCO","email":""}]`)

	is.Equal(len(ds.Resources), 3)
	is.Equal(ds.Resources[1].Name, "a.nc")          // entries are ordered by key
	is.Equal(ds.Resources[1].Format, "NC")          // format from the file extension
	is.Equal(ds.Resources[2].Name, "b file.zip")
	is.Equal(ds.Resources[2].URL, "https://zenodo.org/records/7654321/files/b%20file.zip")

	_, ok := ds.Extra("publication_date")
	is.True(!ok)
}

func TestThatIdentifiersAreStoredWithALowerCaseSuffix(t *testing.T) {
	is := is.New(t)

	ds := mapRecord(is, rdmRecordJSON, "10.5281/ZENODO.7654321")

	is.Equal(ds.Identifier.Value, "10.5281/zenodo.7654321")
	is.Equal(ds.Identifier.URL, "https://doi.org/10.5281/zenodo.7654321")
}

func TestMappingIsDeterministic(t *testing.T) {
	is := is.New(t)

	first, err := json.Marshal(mapRecord(is, rdmRecordJSON, "10.5281/zenodo.7654321"))
	is.NoErr(err)
	second, err := json.Marshal(mapRecord(is, rdmRecordJSON, "10.5281/zenodo.7654321"))
	is.NoErr(err)

	is.Equal(string(first), string(second))
}

func TestMappingToleratesBrokenMetadata(t *testing.T) {
	is := is.New(t)

	ds := mapRecord(is, `{"id": 5, "metadata": "not an object", "files": 17}`, "10.5281/zenodo.5")

	is.Equal(ds.Title, registries.DefaultTitle)
	is.Equal(ds.LicenseID, registries.DefaultLicense)
	is.Equal(ds.ProductType, []string{registries.DefaultProductType})
	is.Equal(ds.Authors, "") // no authors, no field
	is.Equal(len(ds.Resources), 1)
}

func TestMapProductType(t *testing.T) {
	is := is.New(t)

	expectations := map[string]string{
		"dataset":                  "derived_dataset",
		"software":                 "model",
		"publication-report":       "report",
		"publication-article":      "report",
		"publication-presentation": "presentation",
		"publication-thesis":       "report",
		"image-figure":             "data_visualization",
		"image-photo":              "data_visualization",
		"video":                    "derived_dataset",
		"":                         "derived_dataset",
	}

	for resourceType, expected := range expectations {
		is.Equal(MapProductType(resourceType), expected)
	}
}

func TestResourceTypeShapes(t *testing.T) {
	is := is.New(t)

	shapes := map[string]string{
		`{"metadata": {"resource_type": "software"}}`:                                          "software",
		`{"metadata": {"resource_type": {"id": "publication-article"}}}`:                       "publication-article",
		`{"metadata": {"resource_type": {"type": "publication", "subtype": "report"}}}`:        "publication-report",
		`{"metadata": {"resource_type": {"type": "image", "subtype": "image-figure"}}}`:        "image-figure",
		`{"metadata": {"resource_type": {"type": "dataset"}}}`:                                 "dataset",
		`{"metadata": {}}`:                                                                     "dataset",
	}

	for payload, expected := range shapes {
		rec := &Record{}
		is.NoErr(json.Unmarshal([]byte(payload), rec))
		is.Equal(rec.ResourceType(), expected)
	}
}

func mapRecord(is *is.I, payload, identifier string) domain.Dataset {
	rec := &Record{}
	is.NoErr(json.Unmarshal([]byte(payload), rec))

	ds, err := NewMapper("").Map(rec, identifier)
	is.NoErr(err)

	return ds
}

const legacyRecordJSON string = `{
	"id": 1234567,
	"doi": "10.5281/zenodo.1234567",
	"updated": "2024-02-01T12:30:00.123456+00:00",
	"metadata": {
		"title": "Benthic macrofauna of the Baltic Sea",
		"description": "<p>Occurrences of benthic macrofauna.</p>",
		"version": "2.1",
		"publication_date": "2023-05-04",
		"keywords": ["benthos", " baltic sea ", ""],
		"license": {"id": "CC-BY-4.0"},
		"resource_type": {"type": "dataset", "title": "Dataset"},
		"creators": [
			{"name": "Ström, Åsa", "affiliation": ["SMHI", "Stockholm University"]},
			{"name": "Doe, John"}
		]
	},
	"files": [
		{"key": "occurrence.csv", "type": "csv", "size": 2048},
		{"filename": "README", "size": 12}
	]
}`

const rdmRecordJSON string = `{
	"id": "7654321",
	"updated": "2024-03-10T08:00:00+00:00",
	"metadata": {
		"resource_type": {"id": "publication-article"},
		"rights": [{"id": "cc0-1.0"}],
		"creators": [
			{"person_or_org": {"name": "Smith, Anna"}, "affiliations": [{"name": "VLIZ"}, {"name": "UNESCO"}]}
		]
	},
	"files": {
		"enabled": true,
		"entries": {
			"b file.zip": {"key": "b file.zip", "size": 10},
			"a.nc": {"size": 20}
		}
	}
}`
