// Package doilist reads and appends to the plain text DOI registry: one DOI or
// DOI URL per line, blank lines and lines starting with # are ignored.
package doilist

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/obis/doi-harvester/internal/pkg/application/doi"
	"golang.org/x/exp/slices"
)

var zenodoRecordURL = regexp.MustCompile(`zenodo\.org/records?/(\d+)`)

// Load reads the registry at path. A missing file is an error.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open doi registry: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads registry lines and rewrites Zenodo record URLs to DOI URLs.
func Parse(r io.Reader) ([]string, error) {
	dois := []string{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if m := zenodoRecordURL.FindStringSubmatch(line); m != nil {
			line = doi.URL(fmt.Sprintf("%s/zenodo.%s", doi.ZenodoPrefix, m[1]))
		}

		dois = append(dois, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read doi registry: %w", err)
	}

	return dois, nil
}

// File is a registry file that successful imports are appended to.
type File struct {
	path string
	mu   sync.Mutex
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Path() string {
	return f.path
}

// Append adds entry unless an equivalent DOI is already listed. It reports
// whether the file was changed. A missing file is treated as empty.
func (f *File) Append(entry string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	content, err := os.ReadFile(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to read whitelist: %w", err)
	}

	existing, err := Parse(bytes.NewReader(content))
	if err != nil {
		return false, err
	}

	if slices.IndexFunc(existing, func(e string) bool { return sameDOI(e, entry) }) >= 0 {
		return false, nil
	}

	out, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("failed to open whitelist for writing: %w", err)
	}
	defer out.Close()

	line := entry + "\n"
	if len(content) > 0 && !bytes.HasSuffix(content, []byte("\n")) {
		line = "\n" + line
	}

	if _, err = out.WriteString(line); err != nil {
		return false, fmt.Errorf("failed to append to whitelist: %w", err)
	}

	return true, nil
}

func sameDOI(a, b string) bool {
	if a == b {
		return true
	}

	da, errA := doi.Resolve(a)
	db, errB := doi.Resolve(b)
	if errA != nil || errB != nil {
		return false
	}

	return doi.Equal(da, db)
}
