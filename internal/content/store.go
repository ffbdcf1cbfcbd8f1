package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// Languages lists the dictionary codes every store must provide, default first.
var Languages = []string{"zh", "en"}

// ErrNotFound is returned when a lookup names an entry that does not exist.
var ErrNotFound = errors.New("not found")

//go:embed data/*.yaml
var embedded embed.FS

// Store holds one Dictionary per language. A Store is never mutated after
// loading; reloads build a new Store.
type Store struct {
	dicts map[string]*Dictionary
}

// Load returns the store compiled into the binary.
func Load() (*Store, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("opening embedded content: %w", err)
	}
	return LoadFS(sub)
}

// LoadDir reads <dir>/en.yaml and <dir>/zh.yaml.
func LoadDir(dir string) (*Store, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("accessing content dir %s: %w", dir, err)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads one <code>.yaml file per language from fsys and validates the result.
func LoadFS(fsys fs.FS) (*Store, error) {
	s := &Store{dicts: make(map[string]*Dictionary, len(Languages))}
	for _, code := range Languages {
		name := code + ".yaml"
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		dict, err := decodeDictionary(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		if err := dict.Validate(); err != nil {
			return nil, fmt.Errorf("validating %s: %w", name, err)
		}
		s.dicts[code] = dict
	}
	return s, nil
}

// NewStore builds a store from already-decoded dictionaries. Every code in
// Languages must be present.
func NewStore(dicts map[string]*Dictionary) (*Store, error) {
	s := &Store{dicts: make(map[string]*Dictionary, len(dicts))}
	for _, code := range Languages {
		d, ok := dicts[code]
		if !ok || d == nil {
			return nil, fmt.Errorf("missing %q dictionary", code)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("validating %s: %w", code, err)
		}
		s.dicts[code] = d
	}
	return s, nil
}

func decodeDictionary(data []byte) (*Dictionary, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var d Dictionary
	if err := dec.Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Dictionary returns the dictionary for a language code.
func (s *Store) Dictionary(code string) (*Dictionary, bool) {
	d, ok := s.dicts[code]
	return d, ok
}

// Article looks up an article by id.
func (d *Dictionary) Article(id string) (Article, error) {
	for _, a := range d.Thinking {
		if a.ID == id {
			return a, nil
		}
	}
	return Article{}, fmt.Errorf("article %q: %w", id, ErrNotFound)
}

// IsDataFile reports whether a file name is one of the per-language content files.
func IsDataFile(name string) bool {
	base := path.Base(name)
	for _, code := range Languages {
		if base == code+".yaml" {
			return true
		}
	}
	return false
}
