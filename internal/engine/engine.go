// Package engine orchestrates one scaffold request: validate, prompt for
// gaps, render, check collisions, write, and report.
//
// Per-request flow:
//
//	Received → Validated → (Prompting) → Resolved → CollisionChecked →
//	(Confirmed|Skipped|Aborted) → Written → Reported
//
// Validation failures are fatal for the whole request and happen before any
// filesystem access. Per-file failures are isolated: one bad file never
// stops its siblings, and every outcome lands in the report.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/emberworks/kindling/internal/casing"
	"github.com/emberworks/kindling/internal/conflict"
	"github.com/emberworks/kindling/internal/prompt"
	"github.com/emberworks/kindling/internal/registry"
	"github.com/emberworks/kindling/internal/render"
	"github.com/emberworks/kindling/internal/report"
)

// ErrInvalidName rejects empty or whitespace-only item names.
var ErrInvalidName = errors.New("name must not be empty")

// ErrCollision marks a target that exists when neither --force nor an
// interactive confirmation is available. Overwriting silently is never the
// default.
var ErrCollision = errors.New("target already exists")

// Request describes one scaffold operation.
type Request struct {
	Type      string
	RawName   string
	OutputDir string // empty means current directory
	Force     bool
	DryRun    bool
}

// Engine wires the registry, renderer, prompt collector and conflict
// resolver into one scaffold pipeline.
type Engine struct {
	registry  *registry.Registry
	renderer  *render.Renderer
	collector *prompt.Collector  // nil → non-interactive
	resolver  *conflict.Resolver // decides collisions; nil means fail them
	out       io.Writer
}

// Option configures an Engine.
type Option func(*Engine)

// WithCollector makes the engine interactive: missing inputs are prompted
// and collisions go through the resolver.
func WithCollector(c *prompt.Collector) Option {
	return func(e *Engine) { e.collector = c }
}

// WithResolver overrides the conflict resolver.
func WithResolver(r *conflict.Resolver) Option {
	return func(e *Engine) { e.resolver = r }
}

// WithOutput redirects per-operation progress output.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) { e.out = w }
}

// New creates an engine over the given registry.
func New(reg *registry.Registry, opts ...Option) *Engine {
	e := &Engine{
		registry: reg,
		renderer: render.New(),
		out:      os.Stdout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes one request. A returned error means the whole request was
// rejected or aborted before completion; per-file problems are recorded in
// the report instead.
func (e *Engine) Run(ctx context.Context, req Request) (*report.Report, error) {
	// A supplied type must come from the registered set; no amount of
	// prompting fixes a typo'd type, so this fails before anything else.
	if req.Type != "" && !e.registry.Has(req.Type) {
		_, err := e.registry.Resolve(req.Type)
		return nil, err
	}

	req, err := e.fillGaps(req)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.RawName) == "" {
		return nil, ErrInvalidName
	}

	def, err := e.registry.Resolve(req.Type)
	if err != nil {
		return nil, err
	}

	variants := casing.Derive(strings.TrimSpace(req.RawName))
	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = "."
	}

	rep := report.New()
	cancelled := false

	for i, file := range def.Files {
		target, content, renderErr := e.renderFile(req.Type, i, file, variants, outputDir)
		if renderErr != nil {
			rep.Record(report.Result{
				Status: report.Failed,
				Path:   target,
				Detail: renderErr.Error(),
			})
			continue
		}

		if cancelled {
			rep.Record(report.Result{
				Status: report.Aborted,
				Path:   target,
				Detail: "cancelled by operator",
			})
			continue
		}

		res, cancel := e.place(ctx, req, target, content)
		rep.Record(res)
		if cancel {
			cancelled = true
		}
	}

	return rep, nil
}

// fillGaps prompts for missing inputs in fixed order: name, type,
// destination. Non-interactive engines leave the request unchanged.
func (e *Engine) fillGaps(req Request) (Request, error) {
	if e.collector == nil {
		return req, nil
	}

	var err error
	if req.RawName, err = e.collector.Name(req.RawName); err != nil {
		return req, err
	}
	if req.Type, err = e.collector.Type(req.Type, e.registry.Types()); err != nil {
		return req, err
	}
	if req.OutputDir, err = e.collector.OutputDir(req.OutputDir, "."); err != nil {
		return req, err
	}
	return req, nil
}

// renderFile produces the absolute target path and rendered content for one
// file template. The returned path is best-effort even on render failure so
// the report can name what failed.
func (e *Engine) renderFile(typeName string, idx int, file registry.FileTemplate, variants casing.Variants, outputDir string) (string, []byte, error) {
	nameTmpl := file.Name
	if nameTmpl == "" {
		nameTmpl = "{{ .Pascal }}"
	}

	tmplID := fmt.Sprintf("%s[%d]", typeName, idx)

	baseName, err := e.renderer.Render(tmplID+".name", nameTmpl, variants)
	if err != nil {
		return filepath.Join(outputDir, file.Subpath), nil, err
	}

	target := filepath.Join(outputDir, file.Subpath, string(baseName)+file.Extension)
	if abs, absErr := filepath.Abs(target); absErr == nil {
		target = abs
	}

	content, err := e.renderer.Render(tmplID, file.Body, variants)
	if err != nil {
		return target, nil, err
	}
	return target, content, nil
}

// place runs CollisionChecked → Written for one file. The second return
// value is true when the operator cancelled the rest of the run.
func (e *Engine) place(ctx context.Context, req Request, target string, content []byte) (report.Result, bool) {
	_, statErr := os.Stat(target)
	exists := statErr == nil

	if req.DryRun {
		return e.dryRunResult(req, target, exists, content), false
	}

	if exists && !req.Force {
		if e.resolver == nil {
			return report.Result{
				Status: report.Failed,
				Path:   target,
				Detail: fmt.Sprintf("%v (use --force to overwrite)", ErrCollision),
			}, false
		}

		existing, readErr := os.ReadFile(target)
		if readErr != nil {
			return report.Result{
				Status: report.Failed,
				Path:   target,
				Detail: readErr.Error(),
			}, false
		}

		decision, err := e.resolver.Resolve(target, existing, content)
		if err != nil {
			return report.Result{
				Status: report.Failed,
				Path:   target,
				Detail: err.Error(),
			}, false
		}
		switch decision {
		case conflict.Skip:
			return report.Result{
				Status: report.Skipped,
				Path:   target,
				Detail: "kept existing file",
			}, false
		case conflict.Cancel:
			return report.Result{
				Status: report.Aborted,
				Path:   target,
				Detail: "cancelled by operator",
			}, true
		}
	}

	op := &WriteFileOp{Path: target, Content: content, Mode: 0644}
	if err := op.Execute(ctx); err != nil {
		return report.Result{
			Status: report.Failed,
			Path:   target,
			Detail: err.Error(),
		}, false
	}

	fmt.Fprintf(e.out, "✓ %s\n", op.Description())
	return report.Result{Status: report.Created, Path: target}, false
}

// dryRunResult classifies what a real run would do, without touching disk.
func (e *Engine) dryRunResult(req Request, target string, exists bool, content []byte) report.Result {
	op := &WriteFileOp{Path: target, Content: content}
	if exists && !req.Force {
		fmt.Fprintf(e.out, "− [DRY RUN] Skip %s (exists)\n", target)
		return report.Result{
			Status: report.Skipped,
			Path:   target,
			Detail: "target exists",
		}
	}
	fmt.Fprintf(e.out, "✓ [DRY RUN] %s\n", op.Description())
	return report.Result{Status: report.Created, Path: target}
}
