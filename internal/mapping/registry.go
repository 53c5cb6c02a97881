package mapping

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Registry holds named field mappings loaded from configuration, so
// recurring feed layouts can be referenced by name instead of shipping the
// compact mapping string with every upload.
type Registry struct {
	mappings map[string]*FieldMapping
}

// registryFile is the YAML shape of a mapping registry:
//
//	mappings:
//	  vendor-feed:
//	    - column: product_id
//	      field: id
//	    - column: title
//	      field: name
type registryFile struct {
	Mappings map[string][]struct {
		Column string `yaml:"column"`
		Field  string `yaml:"field"`
	} `yaml:"mappings"`
}

// DefaultName is the registry name of the built-in product feed preset.
const DefaultName = "product-feed"

// NewRegistry returns a registry pre-populated with the built-in
// product-feed preset under the name "product-feed".
func NewRegistry() *Registry {
	return &Registry{mappings: map[string]*FieldMapping{
		DefaultName: ProductFeed(),
	}}
}

// LoadRegistry reads named mappings from a YAML file and merges them over
// the built-in presets. A file entry named "product-feed" replaces the
// preset.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mapping registry: %w", err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing mapping registry: %w", err)
	}

	reg := NewRegistry()
	for name, entries := range file.Mappings {
		if name == "" {
			return nil, fmt.Errorf("mapping registry: empty mapping name")
		}
		m := New()
		for i, e := range entries {
			if e.Column == "" || e.Field == "" {
				return nil, fmt.Errorf("mapping registry: mapping %q entry %d: column and field are required", name, i)
			}
			m.Set(e.Column, e.Field)
		}
		reg.mappings[name] = m
	}
	return reg, nil
}

// Get returns the mapping registered under name.
func (r *Registry) Get(name string) (*FieldMapping, bool) {
	m, ok := r.mappings[name]
	return m, ok
}

// Names returns the registered mapping names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.mappings))
	for name := range r.mappings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
