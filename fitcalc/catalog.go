package fitcalc

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk shape:
//
//	exercises:
//	  - name: Running
//	    category: Cardio
//	    calories_per_minute: 10
type catalogFile struct {
	Exercises []ExerciseCatalogEntry `yaml:"exercises"`
}

// LoadCatalog parses a YAML exercise table. Names must be unique and
// non-empty, and every rate must be a positive number.
func LoadCatalog(r io.Reader) (Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("catalog is empty")
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(f.Exercises) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	c := make(Catalog, len(f.Exercises))
	for i, e := range f.Exercises {
		e.Name = strings.TrimSpace(e.Name)
		if e.Name == "" {
			return nil, fmt.Errorf("exercise #%d: name is required", i+1)
		}
		if _, dup := c[e.Name]; dup {
			return nil, fmt.Errorf("exercise %q: duplicate name", e.Name)
		}
		if !finitePositive(e.CaloriesPerMinute) {
			return nil, fmt.Errorf("exercise %q: calories_per_minute %v: %w",
				e.Name, e.CaloriesPerMinute, ErrInvalidMeasurement)
		}
		c[e.Name] = e
	}
	return c, nil
}
