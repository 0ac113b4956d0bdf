// Package slug builds URL friendly catalog names.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	DatasetMaxLength     int = 50
	InstitutionMaxLength int = 100

	DatasetFallback     string = "imported-dataset"
	InstitutionFallback string = "unknown-institution"
)

var (
	invalidChars = regexp.MustCompile(`[^\w\s-]`)
	separators   = regexp.MustCompile(`[-\s]+`)
)

// Make folds text to lower case ASCII, drops punctuation and joins words with
// single hyphens.
func Make(text string) string {
	text = strings.ToLower(foldASCII(text))
	text = invalidChars.ReplaceAllString(text, "")
	text = separators.ReplaceAllString(text, "-")
	return strings.Trim(text, "-")
}

// Dataset returns the name used when a dataset is created from a title.
func Dataset(title string) string {
	s := Make(title)
	if len(s) > DatasetMaxLength {
		s = strings.Trim(s[:DatasetMaxLength], "-")
	}

	if s == "" {
		return DatasetFallback
	}
	return s
}

// Institution returns a group name cut at a word boundary so that it stays
// within InstitutionMaxLength.
func Institution(name string) string {
	s := Make(name)

	if len(s) > InstitutionMaxLength {
		parts := strings.Split(s, "-")
		s = parts[0]
		for _, part := range parts[1:] {
			if len(s)+1+len(part) > InstitutionMaxLength {
				break
			}
			s = s + "-" + part
		}
	}

	if s == "" {
		return InstitutionFallback
	}
	return s
}

func foldASCII(text string) string {
	var sb strings.Builder
	for _, r := range norm.NFKD.String(text) {
		if r <= unicode.MaxASCII {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
