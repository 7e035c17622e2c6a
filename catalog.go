package main

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

type Manufacturer struct {
	Name   string   `yaml:"name"`
	Models []string `yaml:"models"`
}

// Catalog holds the fixed lookup tables records are drawn from.
type Catalog struct {
	Manufacturers []Manufacturer `yaml:"manufacturers"`
	Colours       []string       `yaml:"colours"`
	Owners        []string       `yaml:"owners"`
}

func loadCatalog() (Catalog, error) {
	return parseCatalog(catalogYAML)
}

func parseCatalog(b []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func (c Catalog) validate() error {
	if len(c.Manufacturers) == 0 {
		return errors.New("catalog has no manufacturers")
	}
	if len(c.Colours) == 0 {
		return errors.New("catalog has no colours")
	}
	if len(c.Owners) == 0 {
		return errors.New("catalog has no owners")
	}
	seen := make(map[string]struct{}, len(c.Manufacturers))
	for _, m := range c.Manufacturers {
		if m.Name == "" {
			return errors.New("catalog has a manufacturer without a name")
		}
		if _, dup := seen[m.Name]; dup {
			return fmt.Errorf("duplicate manufacturer %q", m.Name)
		}
		seen[m.Name] = struct{}{}
		if len(m.Models) == 0 {
			return fmt.Errorf("manufacturer %q has no models", m.Name)
		}
	}
	return nil
}

func (c Catalog) models(manufacturer string) ([]string, bool) {
	for _, m := range c.Manufacturers {
		if m.Name == manufacturer {
			return m.Models, true
		}
	}
	return nil, false
}

func (c Catalog) hasColour(colour string) bool {
	return slices.Contains(c.Colours, colour)
}

func (c Catalog) hasOwner(owner string) bool {
	return slices.Contains(c.Owners, owner)
}
