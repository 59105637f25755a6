// Package content holds the static public catalog shown on the marketing
// pages. A YAML document is embedded and can be replaced from disk.
package content

import (
	_ "embed"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/techbucket/techbucket-web/internal/domain"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// AllCategory is the filter choice that matches every product.
const AllCategory = "All"

type Catalog struct {
	Categories []string               `yaml:"categories"`
	Products   []domain.PublicProduct `yaml:"products"`
	Services   []domain.PublicService `yaml:"services"`
	Events     []domain.PublicEvent   `yaml:"events"`
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads the catalog at path, or the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read content file")
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, "parse content")
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) check() error {
	if len(c.Categories) == 0 || c.Categories[0] != AllCategory {
		c.Categories = append([]string{AllCategory}, c.Categories...)
	}
	seen := map[int64]bool{}
	for _, p := range c.Products {
		if seen[p.ID] {
			return errors.Errorf("duplicate product id %d", p.ID)
		}
		seen[p.ID] = true
	}
	seen = map[int64]bool{}
	for _, e := range c.Events {
		if seen[e.ID] {
			return errors.Errorf("duplicate event id %d", e.ID)
		}
		seen[e.ID] = true
	}
	return nil
}

func (c *Catalog) Product(id int64) (domain.PublicProduct, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.PublicProduct{}, false
}

func (c *Catalog) Event(id int64) (domain.PublicEvent, bool) {
	for _, e := range c.Events {
		if e.ID == id {
			return e, true
		}
	}
	return domain.PublicEvent{}, false
}

// Service returns the service with id, or the first one when id is unknown.
func (c *Catalog) Service(id int64) (domain.PublicService, bool) {
	for _, s := range c.Services {
		if s.ID == id {
			return s, true
		}
	}
	if len(c.Services) > 0 {
		return c.Services[0], false
	}
	return domain.PublicService{}, false
}

// FeaturedServices returns the services flagged for the home page.
func (c *Catalog) FeaturedServices() []domain.PublicService {
	var out []domain.PublicService
	for _, s := range c.Services {
		if s.Featured {
			out = append(out, s)
		}
	}
	return out
}

// FeaturedProducts returns up to n products in catalog order.
func (c *Catalog) FeaturedProducts(n int) []domain.PublicProduct {
	if n > len(c.Products) {
		n = len(c.Products)
	}
	return c.Products[:n]
}
