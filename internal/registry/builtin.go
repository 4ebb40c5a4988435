package registry

import (
	"embed"
	"fmt"
)

//go:embed templates/*.yml
var builtinFS embed.FS

// Builtin returns a registry preloaded with the bundled definitions
// (component, service, model, project).
func Builtin() (*Registry, error) {
	r := New()

	entries, err := builtinFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("reading builtin templates: %w", err)
	}

	for _, entry := range entries {
		data, err := builtinFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading builtin template %s: %w", entry.Name(), err)
		}
		if err := r.LoadManifest(data, "builtin:"+entry.Name()); err != nil {
			return nil, err
		}
	}

	return r, nil
}
