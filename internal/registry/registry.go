// Package registry maps generator type names to template definitions.
//
// A Registry is an explicit instance owned by whoever constructs the engine.
// Registration happens during startup; nothing mutates a registry
// mid-request, so concurrent reads after initialization are safe.
package registry

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownType is returned by Resolve for a type nobody registered.
var ErrUnknownType = errors.New("unknown generator type")

// FileTemplate describes one output file of a definition.
type FileTemplate struct {
	// Name is a template for the output base name, e.g. "{{ .Pascal }}".
	// Empty defaults to "{{ .Pascal }}".
	Name string `yaml:"name,omitempty"`

	// Extension is appended to the rendered name, e.g. ".go".
	Extension string `yaml:"extension"`

	// Subpath is an optional directory under the output directory.
	Subpath string `yaml:"subpath,omitempty"`

	// Body is the template text for the file content.
	Body string `yaml:"body"`
}

// Definition is the set of files one generator type produces.
type Definition struct {
	Name  string         `yaml:"name"`
	Files []FileTemplate `yaml:"files"`
}

// Registry holds registered definitions keyed by type name.
type Registry struct {
	defs map[string]Definition
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

// Register adds or replaces the definition for its type name.
func (r *Registry) Register(def Definition) error {
	if err := validate(def); err != nil {
		return fmt.Errorf("register %q: %w", def.Name, err)
	}
	r.defs[def.Name] = def
	return nil
}

// Resolve returns the definition for name, or an error wrapping
// ErrUnknownType.
func (r *Registry) Resolve(name string) (Definition, error) {
	def, ok := r.defs[name]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %s (known: %v)", ErrUnknownType, name, r.Types())
	}
	return def, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.defs[name]
	return ok
}

// Types returns all registered type names, sorted.
func (r *Registry) Types() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validate(def Definition) error {
	if def.Name == "" {
		return errors.New("definition has no name")
	}
	if len(def.Files) == 0 {
		return errors.New("definition has no files")
	}
	for i, f := range def.Files {
		if f.Body == "" {
			return fmt.Errorf("file %d has an empty body", i)
		}
		if f.Extension == "" {
			return fmt.Errorf("file %d has no extension", i)
		}
	}
	return nil
}
