package datacite

import (
	"encoding/json"
	"strings"

	"github.com/obis/doi-harvester/internal/pkg/application/registries/lenient"
)

// Record is the JSON:API document returned by /dois/{doi}.
type Record struct {
	Data struct {
		ID            string          `json:"id"`
		AttributesRaw json.RawMessage `json:"attributes"`
	} `json:"data"`
}

func (r *Record) attributes() map[string]json.RawMessage {
	return lenient.Object(r.Data.AttributesRaw)
}

// Title reads titles[0].title and falls back to a plain title attribute.
func (r *Record) Title() string {
	attrs := r.attributes()
	for _, t := range lenient.Objects(attrs["titles"]) {
		if s := strings.TrimSpace(lenient.String(t["title"])); s != "" {
			return s
		}
	}
	return strings.TrimSpace(lenient.String(attrs["title"]))
}

func (r *Record) Description() string {
	for _, d := range lenient.Objects(r.attributes()["descriptions"]) {
		if s := lenient.String(d["description"]); s != "" {
			return s
		}
	}
	return ""
}

func (r *Record) Version() string {
	return lenient.String(r.attributes()["version"])
}

func (r *Record) URL() string {
	return lenient.String(r.attributes()["url"])
}

func (r *Record) ResourceTypeGeneral() string {
	return lenient.String(lenient.Object(r.attributes()["types"])["resourceTypeGeneral"])
}

func (r *Record) Subjects() []string {
	subjects := []string{}
	for _, s := range lenient.Objects(r.attributes()["subjects"]) {
		if subject := strings.TrimSpace(lenient.String(s["subject"])); subject != "" {
			subjects = append(subjects, subject)
		}
	}
	return subjects
}

func (r *Record) RightsIdentifier() string {
	for _, rights := range lenient.Objects(r.attributes()["rightsList"]) {
		if id := lenient.String(rights["rightsIdentifier"]); id != "" {
			return id
		}
	}
	return ""
}

func (r *Record) Published() string {
	attrs := r.attributes()
	if p := lenient.String(attrs["published"]); p != "" {
		return p
	}
	return lenient.String(attrs["publicationYear"])
}

type Creator struct {
	Name        string
	Affiliation string
}

func (r *Record) Creators() []Creator {
	creators := []Creator{}

	for _, c := range lenient.Objects(r.attributes()["creators"]) {
		affiliations := []string{}
		for _, a := range lenient.Strings(c["affiliation"]) {
			affiliations = append(affiliations, a)
		}
		for _, a := range lenient.Objects(c["affiliation"]) {
			if name := lenient.String(a["name"]); name != "" {
				affiliations = append(affiliations, name)
			}
		}

		creators = append(creators, Creator{
			Name:        lenient.String(c["name"]),
			Affiliation: strings.Join(affiliations, ", "),
		})
	}

	return creators
}
