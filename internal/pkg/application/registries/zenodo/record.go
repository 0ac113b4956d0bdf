package zenodo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/obis/doi-harvester/internal/pkg/application/registries/lenient"
	"golang.org/x/exp/maps"
)

// Record is a Zenodo record as returned by /api/records/{id}. Both the legacy
// API and InvenioRDM payloads are accepted, which is why most fields are kept
// raw and read through accessors.
type Record struct {
	IDRaw       json.RawMessage `json:"id"`
	RecIDRaw    json.RawMessage `json:"recid"`
	DOIRaw      json.RawMessage `json:"doi"`
	UpdatedRaw  json.RawMessage `json:"updated"`
	MetadataRaw json.RawMessage `json:"metadata"`
	FilesRaw    json.RawMessage `json:"files"`
}

func (r *Record) ID() string {
	if id := lenient.String(r.IDRaw); id != "" {
		return id
	}
	return lenient.String(r.RecIDRaw)
}

func (r *Record) DOI() string {
	if d := lenient.String(r.DOIRaw); d != "" {
		return d
	}
	return lenient.String(r.Metadata()["doi"])
}

// Updated returns the time the record was last modified on Zenodo.
func (r *Record) Updated() (time.Time, bool) {
	s := lenient.String(r.UpdatedRaw)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

func (r *Record) Metadata() map[string]json.RawMessage {
	return lenient.Object(r.MetadataRaw)
}

func (r *Record) Title() string {
	return strings.TrimSpace(lenient.String(r.Metadata()["title"]))
}

func (r *Record) Description() string {
	return lenient.String(r.Metadata()["description"])
}

func (r *Record) Version() string {
	return strings.TrimSpace(lenient.String(r.Metadata()["version"]))
}

func (r *Record) PublicationDate() string {
	return lenient.String(r.Metadata()["publication_date"])
}

func (r *Record) Keywords() []string {
	keywords := []string{}
	for _, kw := range lenient.Strings(r.Metadata()["keywords"]) {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// ResourceType returns the resource type as a single key such as "dataset" or
// "publication-article". Unknown or missing types yield "dataset".
func (r *Record) ResourceType() string {
	raw := r.Metadata()["resource_type"]

	if s := lenient.String(raw); s != "" {
		return s
	}

	obj := lenient.Object(raw)
	if id := lenient.String(obj["id"]); id != "" {
		return id
	}

	if t := lenient.String(obj["type"]); t != "" {
		if st := lenient.String(obj["subtype"]); st != "" {
			if strings.HasPrefix(st, t+"-") {
				return st
			}
			return t + "-" + st
		}
		return t
	}

	return "dataset"
}

// LicenseID returns the registry's license identifier from either the legacy
// license field (string or object) or the first InvenioRDM rights entry.
func (r *Record) LicenseID() string {
	md := r.Metadata()

	if s := lenient.String(md["license"]); s != "" {
		return s
	}

	if id := lenient.String(lenient.Object(md["license"])["id"]); id != "" {
		return id
	}

	for _, rights := range lenient.Objects(md["rights"]) {
		if id := lenient.String(rights["id"]); id != "" {
			return id
		}
	}

	return ""
}

type Creator struct {
	Name        string
	Affiliation string
	Email       string
}

func (r *Record) Creators() []Creator {
	creators := []Creator{}

	for _, c := range lenient.Objects(r.Metadata()["creators"]) {
		name := lenient.String(c["name"])
		if name == "" {
			name = lenient.String(lenient.Object(c["person_or_org"])["name"])
		}

		affiliationRaw := c["affiliation"]
		if len(affiliationRaw) == 0 {
			affiliationRaw = c["affiliations"]
		}

		creators = append(creators, Creator{
			Name:        name,
			Affiliation: affiliation(affiliationRaw),
			Email:       lenient.String(c["email"]),
		})
	}

	return creators
}

// affiliation accepts a string, an object with a name, or a list of either.
func affiliation(raw json.RawMessage) string {
	if s := lenient.String(raw); s != "" {
		return s
	}

	if lenient.IsObject(raw) {
		return lenient.String(lenient.Object(raw)["name"])
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return ""
	}

	names := []string{}
	for _, item := range items {
		if s := lenient.String(item); s != "" {
			names = append(names, s)
		} else if n := lenient.String(lenient.Object(item)["name"]); n != "" {
			names = append(names, n)
		}
	}

	return strings.Join(names, ", ")
}

type File struct {
	Key  string
	Type string
	Size int64
}

// Files accepts both a plain list of files and the InvenioRDM {"entries": ...}
// shape, where entries may be a list or a map keyed by file name.
func (r *Record) Files() []File {
	raw := r.FilesRaw

	if lenient.IsObject(raw) {
		entries := lenient.Object(raw)["entries"]
		if lenient.IsObject(entries) {
			byKey := lenient.Object(entries)
			keys := maps.Keys(byKey)
			sort.Strings(keys)

			files := []File{}
			for _, k := range keys {
				obj := lenient.Object(byKey[k])
				f := toFile(obj)
				if f.Key == "" {
					f.Key = k
				}
				files = append(files, f)
			}
			return files
		}
		raw = entries
	}

	files := []File{}
	for _, obj := range lenient.Objects(raw) {
		files = append(files, toFile(obj))
	}
	return files
}

func toFile(obj map[string]json.RawMessage) File {
	key := lenient.String(obj["key"])
	if key == "" {
		key = lenient.String(obj["filename"])
	}

	size, _ := lenient.Int(obj["size"])
	if size == 0 {
		size, _ = lenient.Int(obj["filesize"])
	}

	fileType := lenient.String(obj["type"])
	if fileType == "" {
		fileType = lenient.String(obj["ext"])
	}

	return File{Key: key, Type: fileType, Size: size}
}

type searchResponse struct {
	Hits struct {
		TotalRaw json.RawMessage   `json:"total"`
		Hits     []json.RawMessage `json:"hits"`
	} `json:"hits"`
}

func (s searchResponse) Total() int64 {
	if n, ok := lenient.Int(s.Hits.TotalRaw); ok {
		return n
	}
	n, _ := lenient.Int(lenient.Object(s.Hits.TotalRaw)["value"])
	return n
}

// FirstID returns the id of the first hit, if any.
func (s searchResponse) FirstID() (string, error) {
	if s.Total() == 0 || len(s.Hits.Hits) == 0 {
		return "", nil
	}

	hit := lenient.Object(s.Hits.Hits[0])
	id := lenient.String(hit["id"])
	if id == "" {
		id = lenient.String(hit["recid"])
	}
	if id == "" {
		return "", fmt.Errorf("search hit without a record id")
	}

	return id, nil
}
