package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/schemakit/typemap/internal/resolver"
	"github.com/schemakit/typemap/internal/typemap"
)

// ModelFile is the YAML shape the check command consumes: a flat list of
// properties, each describing one value to resolve and validate.
type ModelFile struct {
	Properties []PropertySpec `yaml:"properties"`
}

// PropertySpec describes one property of a model file.
type PropertySpec struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	StoreType  string `yaml:"store_type"`
	Size       *int   `yaml:"size"`
	Precision  *int   `yaml:"precision"`
	Scale      *int   `yaml:"scale"`
	Unicode    *bool  `yaml:"unicode"`
	Fixed      *bool  `yaml:"fixed"`
	Key        bool   `yaml:"key"`
	RowVersion bool   `yaml:"rowversion"`
}

// Description converts the YAML property into engine input.
func (p PropertySpec) Description() (resolver.Description, error) {
	var desc resolver.Description

	if p.Type != "" {
		tag, err := typemap.ParseTag(p.Type)
		if err != nil {
			return desc, fmt.Errorf("property %q: %w", p.Name, err)
		}
		desc.Tag = tag
	}
	desc.StoreType = p.StoreType
	desc.Size = p.Size
	desc.Precision = p.Precision
	desc.Scale = p.Scale
	desc.Unicode = p.Unicode
	desc.FixedLength = p.Fixed
	desc.Key = p.Key
	desc.RowVersion = p.RowVersion

	return desc, nil
}

// LoadModelFile reads and parses a YAML model file.
func LoadModelFile(path string) (*ModelFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model file: %w", err)
	}

	var model ModelFile
	if err := yaml.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("parsing model file %s: %w", path, err)
	}

	for i, p := range model.Properties {
		if p.Name == "" {
			return nil, fmt.Errorf("parsing model file %s: property %d has no name", path, i)
		}
	}

	return &model, nil
}
