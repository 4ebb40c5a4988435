package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// manifest is the on-disk YAML form of a Definition.
//
//	kind: Template
//	name: component
//	files:
//	  - name: "{{ .Pascal }}"
//	    extension: .tsx
//	    subpath: components
//	    body: |
//	      ...
type manifest struct {
	Kind  string         `yaml:"kind"`
	Name  string         `yaml:"name"`
	Files []FileTemplate `yaml:"files"`
}

// LoadManifest parses a single YAML manifest and registers it.
func (r *Registry) LoadManifest(data []byte, source string) error {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parsing manifest %s: %w", source, err)
	}
	if m.Kind != "Template" {
		return fmt.Errorf("manifest %s: kind must be \"Template\", got %q", source, m.Kind)
	}
	return r.Register(Definition{Name: m.Name, Files: m.Files})
}

// LoadDir registers every .yml/.yaml manifest found directly in dir.
// A missing directory is not an error; custom templates are optional.
func (r *Registry) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading template dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yml" && ext != ".yaml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading manifest %s: %w", path, err)
		}
		if err := r.LoadManifest(data, path); err != nil {
			return err
		}
	}

	return nil
}
