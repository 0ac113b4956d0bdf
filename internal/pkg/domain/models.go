package domain

import "strings"

// Dataset is a catalog-ready dataset record, shaped like a CKAN package with the
// scheming fields used by the OBIS catalog.
type Dataset struct {
	ID              string     `json:"id,omitempty"`
	Name            string     `json:"name,omitempty"`
	Title           string     `json:"title"`
	Notes           string     `json:"notes"`
	URL             string     `json:"url"`
	Identifier      Identifier `json:"identifier"`
	Version         string     `json:"version"`
	LicenseID       string     `json:"license_id"`
	TagString       string     `json:"tag_string"`
	Authors         string     `json:"authors,omitempty"`
	ProductType     []string   `json:"product_type"`
	UpdateFrequency string     `json:"update_frequency"`
	Resources       []Resource `json:"resources"`
	Extras          []Extra    `json:"extras"`

	OwnerOrg                  string   `json:"owner_org,omitempty"`
	ContributingOrganizations []string `json:"contributing_organizations,omitempty"`
}

// DOI returns the DOI carried by the structured identifier, if any.
func (d *Dataset) DOI() string {
	if !strings.EqualFold(d.Identifier.PropertyID, IdentifierPropertyDOI) {
		return ""
	}
	return d.Identifier.Value
}

func (d *Dataset) Extra(key string) (string, bool) {
	for _, e := range d.Extras {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

const IdentifierPropertyDOI string = "DOI"

type Identifier struct {
	PropertyID string `json:"propertyID"`
	Value      string `json:"value"`
	URL        string `json:"url"`
}

type Author struct {
	Name        string `json:"name"`
	Affiliation string `json:"affiliation"`
	Email       string `json:"email"`
}

type Resource struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Format      string `json:"format"`
	Description string `json:"description"`
}

type Extra struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// PersistedRecord is the part of a stored catalog package that the harvester
// cares about. The store assigns ID and Name.
type PersistedRecord struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Title            string `json:"title"`
	URL              string `json:"url,omitempty"`
	OwnerOrg         string `json:"owner_org,omitempty"`
	MetadataModified string `json:"metadata_modified,omitempty"`
}

// Group is used for both CKAN organizations and CKAN groups, they share a shape.
type Group struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Type        string  `json:"type,omitempty"`
	State       string  `json:"state,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	Extras      []Extra `json:"extras"`
}

func (g *Group) Extra(key string) (string, bool) {
	for _, e := range g.Extras {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

type Vocabulary struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Tags []Tag  `json:"tags,omitempty"`
}

type Tag struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	VocabularyID string `json:"vocabulary_id,omitempty"`
}
