package theme

import (
	"os"
	"path/filepath"
)

// SearchPaths returns theme directories in precedence order.
func SearchPaths(projectDir string) []string {
	paths := make([]string, 0, 3)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".themekit", "themes"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "themekit", "themes"))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "themekit", "themes"))
	return paths
}

// LoadDefinitions loads themes from dirs, then builtins. The first definition
// seen for a name wins. The result is ordered base first, then in discovery
// order.
func LoadDefinitions(dirs []string) ([]*Definition, error) {
	seen := make(map[string]*Definition)
	order := make([]string, 0)

	add := func(defs []*Definition) {
		for _, def := range defs {
			if _, exists := seen[def.Name]; exists {
				continue
			}
			seen[def.Name] = def
			order = append(order, def.Name)
		}
	}

	for _, dir := range dirs {
		defs, err := LoadDefinitionsFromDir(dir)
		if err != nil {
			return nil, err
		}
		add(defs)
	}

	builtins, err := LoadBuiltinDefinitions()
	if err != nil {
		return nil, err
	}
	add(builtins)

	resolved := make([]*Definition, 0, len(order))
	for _, name := range order {
		if seen[name].Base {
			resolved = append(resolved, seen[name])
		}
	}
	for _, name := range order {
		if !seen[name].Base {
			resolved = append(resolved, seen[name])
		}
	}
	return resolved, nil
}
