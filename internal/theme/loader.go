package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition is a theme as described in a YAML file.
type Definition struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Base        bool       `yaml:"base,omitempty"`
	Attributes  Attributes `yaml:"attributes"`
	Source      string     `yaml:"-"` // file path or "builtin"
}

// LoadDefinition reads a single theme definition from disk.
func LoadDefinition(path string) (*Definition, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("theme path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", path, err)
	}

	def, err := parseDefinition(data)
	if err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", path, err)
	}
	def.Source = path
	return def, nil
}

// LoadDefinitionsFromDir loads every .yaml/.yml theme in dir, sorted by name.
// A missing directory yields no definitions.
func LoadDefinitionsFromDir(dir string) ([]*Definition, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Definition{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Definition{}, nil
		}
		return nil, fmt.Errorf("read themes dir %s: %w", dir, err)
	}

	defs := make([]*Definition, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		def, err := LoadDefinition(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	sortDefinitions(defs)
	return defs, nil
}

func parseDefinition(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, err
	}
	if def.Base {
		def.Name = BaseThemeName
	}
	if strings.TrimSpace(def.Name) == "" {
		return nil, fmt.Errorf("theme name is required")
	}
	return &def, nil
}

// sortDefinitions orders base definitions first, then by name.
func sortDefinitions(defs []*Definition) {
	sort.SliceStable(defs, func(i, j int) bool {
		if defs[i].Base != defs[j].Base {
			return defs[i].Base
		}
		return defs[i].Name < defs[j].Name
	})
}

// Install registers defs with r in order. Base definitions become the
// registry base and must come before the themes that should inherit them.
func Install(r *Registry, defs []*Definition) {
	for _, def := range defs {
		if def.Base {
			r.SetBase(def.Attributes)
			continue
		}
		r.AddTheme(def.Name, def.Attributes)
	}
}
