// Package render expands template bodies against name variants.
//
// Rendering is total: every placeholder must resolve, and a template that
// references anything outside the variant set fails with *Error instead of
// emitting partial or literal-placeholder output. A corrupted generated file
// is worse than no file.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"text/template"

	"github.com/emberworks/kindling/internal/casing"
)

// Error reports a template that failed to parse or execute.
// It indicates a defect in a registered template, not bad user input.
type Error struct {
	Template string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("template %q: %v", e.Template, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Renderer parses and executes template bodies, caching parsed templates
// by name so multi-file definitions don't reparse shared bodies.
type Renderer struct {
	funcMap template.FuncMap
	cache   map[string]*template.Template
	mu      sync.RWMutex // protects cache
}

// New creates a renderer with the built-in helper functions.
func New() *Renderer {
	return &Renderer{
		funcMap: defaultFuncMap(),
		cache:   make(map[string]*template.Template),
	}
}

// Render executes body against the given variants. The name identifies the
// template in cache keys and error messages.
//
// Identical (body, variants) pairs always produce byte-identical output.
func (r *Renderer) Render(name, body string, variants casing.Variants) ([]byte, error) {
	tmpl, err := r.parse(name, body)
	if err != nil {
		return nil, &Error{Template: name, Err: err}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, contextFor(variants)); err != nil {
		return nil, &Error{Template: name, Err: err}
	}
	return buf.Bytes(), nil
}

// ClearCache drops all parsed templates. Useful in tests that re-register
// a definition under the same name.
func (r *Renderer) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]*template.Template)
}

func (r *Renderer) parse(name, body string) (*template.Template, error) {
	key := name + "\x00" + body

	r.mu.RLock()
	if tmpl, ok := r.cache[key]; ok {
		r.mu.RUnlock()
		return tmpl, nil
	}
	r.mu.RUnlock()

	tmpl, err := template.New(name).
		Funcs(r.funcMap).
		Option("missingkey=error").
		Parse(body)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[key] = tmpl
	r.mu.Unlock()

	return tmpl, nil
}

// contextFor exposes the variant fields as a map so missingkey=error
// catches unresolved placeholders at execution time.
func contextFor(v casing.Variants) map[string]string {
	return map[string]string{
		"Original": v.Original,
		"Camel":    v.Camel,
		"Kebab":    v.Kebab,
		"Snake":    v.Snake,
		"Pascal":   v.Pascal,
	}
}

func defaultFuncMap() template.FuncMap {
	return template.FuncMap{
		// Case conversion
		"camelCase":  casing.Camel,
		"kebabCase":  casing.Kebab,
		"snakeCase":  casing.Snake,
		"pascalCase": casing.Pascal,

		// String manipulation
		"upper":     strings.ToUpper,
		"lower":     strings.ToLower,
		"trim":      strings.TrimSpace,
		"quote":     quote,
		"title":     title,
		"hasPrefix": strings.HasPrefix,
		"hasSuffix": strings.HasSuffix,
		"replace":   strings.ReplaceAll,
	}
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}

// title capitalizes the first letter of each space-separated word.
// Replaces the deprecated strings.Title.
func title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
