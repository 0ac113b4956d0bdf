// Package registries holds what the registry mappers share: catalog defaults
// and the license vocabulary.
package registries

import "strings"

const (
	DefaultTitle           string = "Untitled Dataset"
	DefaultVersion         string = "1.0"
	DefaultLicense         string = "notspecified"
	DefaultProductType     string = "derived_dataset"
	DefaultUpdateFrequency string = "never"
)

var licenses = map[string]string{
	"cc-by-4.0":    "cc-by",
	"cc-by":        "cc-by",
	"cc-by-nc-4.0": "cc-nc",
	"cc-by-nc":     "cc-nc",
	"cc-by-sa-4.0": "cc-by-sa",
	"cc-by-sa":     "cc-by-sa",
	"cc0-1.0":      "cc-zero",
	"cc-zero":      "cc-zero",
	"mit":          "mit-license",
	"apache-2.0":   "apache2-license",
	"odc-by-1.0":   "odc-by",
	"odc-odbl-1.0": "odc-odbl",
	"odc-pddl-1.0": "odc-pddl",
}

// MapLicense maps a registry license id to a catalog license id, ignoring case.
// Unknown ids map to DefaultLicense.
func MapLicense(id string) string {
	if l, ok := licenses[strings.ToLower(strings.TrimSpace(id))]; ok {
		return l
	}
	return DefaultLicense
}

func ValueOrDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
