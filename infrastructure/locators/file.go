package locators

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"web_validator/domain/entities"
)

// Overrides is the shape of a selectors file:
//
//	header:
//	  logo:
//	    - "img.site-logo"
//	footer:
//	  container: ["footer"]
type Overrides map[string]map[string][]string

// LoadFile reads a YAML selectors file and returns the default catalog with
// the listed concepts replaced.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read selectors file: %w", err)
	}

	var overrides Overrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse selectors file %s: %w", path, err)
	}

	catalog := Default()
	if err := catalog.Apply(overrides); err != nil {
		return nil, fmt.Errorf("selectors file %s: %w", path, err)
	}
	return catalog, nil
}

// Apply replaces the selector lists named in overrides. Nothing is changed
// when any entry is invalid.
func (c *Catalog) Apply(overrides Overrides) error {
	registry := c.concepts()
	pending := make(map[*entities.Concept]entities.Concept)

	for _, region := range sortedKeys(overrides) {
		for _, key := range sortedKeys(overrides[region]) {
			name := region + "." + key
			target, ok := registry[name]
			if !ok {
				return fmt.Errorf("unknown concept %q", name)
			}
			concept := entities.NewConcept(target.Name, overrides[region][key]...)
			if concept.IsEmpty() {
				return fmt.Errorf("concept %q has no selectors", name)
			}
			pending[target] = concept
		}
	}

	for target, concept := range pending {
		*target = concept
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
