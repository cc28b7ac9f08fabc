package content

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/skill-orbit/asset"
)

// ErrInvalidCatalog marks a catalog that decoded but failed validation
var ErrInvalidCatalog = errors.New("content: invalid catalog")

// DefaultCatalog decodes the built-in catalog
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog([]byte(asset.DefaultCatalog))
}

// LoadCatalogFile reads and decodes a catalog from path
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	cat, err := LoadCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// LoadCatalog decodes and validates YAML catalog data
// Unknown fields are rejected so typos surface at startup
func LoadCatalog(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cat Catalog
	if err := dec.Decode(&cat); err != nil {
		return nil, fmt.Errorf("yaml decode: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Validate checks skills and projects
func (c *Catalog) Validate() error {
	if len(c.Skills) == 0 {
		return fmt.Errorf("%w: no skills", ErrInvalidCatalog)
	}
	seen := make(map[string]bool, len(c.Skills))
	for _, s := range c.Skills {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: duplicate skill %q", ErrInvalidCatalog, s.ID)
		}
		seen[s.ID] = true
	}

	for _, p := range c.Featured {
		if p.Title == "" {
			return fmt.Errorf("%w: featured project %d has no title", ErrInvalidCatalog, p.ID)
		}
	}
	for _, p := range c.Projects {
		if p.Title == "" {
			return fmt.Errorf("%w: project %d has no title", ErrInvalidCatalog, p.ID)
		}
		if !validCategory(p.Category) || p.Category == CategoryAll {
			return fmt.Errorf("%w: project %d category %q", ErrInvalidCatalog, p.ID, p.Category)
		}
	}
	return nil
}

func validCategory(c Category) bool {
	for _, f := range Filters {
		if f.ID == c {
			return true
		}
	}
	return false
}
