package engine

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/emberworks/kindling/internal/conflict"
	"github.com/emberworks/kindling/internal/prompt"
	"github.com/emberworks/kindling/internal/registry"
	"github.com/emberworks/kindling/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modelRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New()
	require.NoError(t, r.Register(registry.Definition{
		Name: "model",
		Files: []registry.FileTemplate{{
			Extension: ".go",
			Body:      "package models\n\ntype {{ .Pascal }} interface{}\n",
		}},
	}))
	return r
}

func quietEngine(r *registry.Registry, opts ...Option) *Engine {
	opts = append([]Option{WithOutput(&bytes.Buffer{})}, opts...)
	return New(r, opts...)
}

func TestRunCreatesModelFile(t *testing.T) {
	out := t.TempDir()
	e := quietEngine(modelRegistry(t))

	rep, err := e.Run(context.Background(), Request{
		Type:      "model",
		RawName:   "UserAccount",
		OutputDir: out,
	})
	require.NoError(t, err)

	results := rep.Results()
	require.Len(t, results, 1)
	assert.Equal(t, report.Created, results[0].Status)

	want := filepath.Join(out, "UserAccount.go")
	content, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Contains(t, string(content), "UserAccount")
	assert.True(t, rep.OK())
}

func TestRunUnknownTypeFailsBeforeFilesystemAccess(t *testing.T) {
	out := filepath.Join(t.TempDir(), "untouched")
	e := quietEngine(modelRegistry(t))

	rep, err := e.Run(context.Background(), Request{
		Type:      "gadget",
		RawName:   "X",
		OutputDir: out,
	})
	require.ErrorIs(t, err, registry.ErrUnknownType)
	assert.Nil(t, rep)

	// The output directory must not have been created.
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunEmptyNameIsFatal(t *testing.T) {
	e := quietEngine(modelRegistry(t))

	for _, name := range []string{"", "   "} {
		_, err := e.Run(context.Background(), Request{
			Type:      "model",
			RawName:   name,
			OutputDir: t.TempDir(),
		})
		require.ErrorIs(t, err, ErrInvalidName, "name %q", name)
	}
}

func TestRunCollisionNonInteractiveFailsAndPreservesFile(t *testing.T) {
	out := t.TempDir()
	e := quietEngine(modelRegistry(t))
	req := Request{Type: "model", RawName: "UserAccount", OutputDir: out}

	// First run creates the file.
	rep, err := e.Run(context.Background(), req)
	require.NoError(t, err)
	require.True(t, rep.OK())

	target := filepath.Join(out, "UserAccount.go")
	before, err := os.ReadFile(target)
	require.NoError(t, err)

	// Second run collides: Failed, original bytes untouched.
	rep, err = e.Run(context.Background(), req)
	require.NoError(t, err)
	results := rep.Results()
	require.Len(t, results, 1)
	assert.Equal(t, report.Failed, results[0].Status)
	assert.Contains(t, results[0].Detail, "already exists")
	assert.False(t, rep.OK())

	after, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRunForceOverwrites(t *testing.T) {
	out := t.TempDir()
	target := filepath.Join(out, "UserAccount.go")
	require.NoError(t, os.WriteFile(target, []byte("old content"), 0644))

	e := quietEngine(modelRegistry(t))
	rep, err := e.Run(context.Background(), Request{
		Type:      "model",
		RawName:   "UserAccount",
		OutputDir: out,
		Force:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Count(report.Created))

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(content), "type UserAccount interface{}")
}

func TestRunDryRunWritesNothing(t *testing.T) {
	out := t.TempDir()
	existing := filepath.Join(out, "Existing.go")
	require.NoError(t, os.WriteFile(existing, []byte("keep me"), 0644))

	r := registry.New()
	require.NoError(t, r.Register(registry.Definition{
		Name: "pair",
		Files: []registry.FileTemplate{
			{Name: "{{ .Pascal }}", Extension: ".go", Body: "fresh {{ .Pascal }}"},
			{Name: "Existing", Extension: ".go", Body: "replacement"},
		},
	}))

	var buf bytes.Buffer
	e := New(r, WithOutput(&buf))
	rep, err := e.Run(context.Background(), Request{
		Type:      "pair",
		RawName:   "Widget",
		OutputDir: out,
		DryRun:    true,
	})
	require.NoError(t, err)

	// Statuses match what a real run would report.
	assert.Equal(t, 1, rep.Count(report.Created))
	assert.Equal(t, 1, rep.Count(report.Skipped))

	// Nothing was written and the existing file is untouched.
	_, statErr := os.Stat(filepath.Join(out, "Widget.go"))
	assert.True(t, os.IsNotExist(statErr))
	content, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(content))

	assert.Contains(t, buf.String(), "[DRY RUN]")
}

func TestRunPerFileFailureIsolation(t *testing.T) {
	out := t.TempDir()
	r := registry.New()
	require.NoError(t, r.Register(registry.Definition{
		Name: "mixed",
		Files: []registry.FileTemplate{
			{Name: "bad", Extension: ".txt", Body: "{{ .DoesNotExist }}"},
			{Name: "good", Extension: ".txt", Body: "ok {{ .Pascal }}"},
		},
	}))

	e := quietEngine(r)
	rep, err := e.Run(context.Background(), Request{
		Type:      "mixed",
		RawName:   "Thing",
		OutputDir: out,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, rep.Count(report.Failed))
	assert.Equal(t, 1, rep.Count(report.Created))

	content, err := os.ReadFile(filepath.Join(out, "good.txt"))
	require.NoError(t, err)
	assert.Equal(t, "ok Thing", string(content))
}

func TestRunPromptsForMissingInputs(t *testing.T) {
	out := t.TempDir()
	collector := prompt.NewCollector(prompt.NewScript("UserAccount", "model", out))

	e := quietEngine(modelRegistry(t), WithCollector(collector))
	rep, err := e.Run(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Count(report.Created))

	assert.FileExists(t, filepath.Join(out, "UserAccount.go"))
}

func TestRunAbortAtPromptWritesNothing(t *testing.T) {
	out := t.TempDir()
	collector := prompt.NewCollector(prompt.NewScript()) // aborts immediately

	e := quietEngine(modelRegistry(t), WithCollector(collector))
	rep, err := e.Run(context.Background(), Request{OutputDir: out})
	require.ErrorIs(t, err, prompt.ErrAborted)
	assert.Nil(t, rep)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// cannedStrategy drives the conflict resolver without a terminal.
type cannedStrategy struct {
	decision conflict.Decision
}

func (s cannedStrategy) Decide(string, []byte, []byte) (conflict.Decision, error) {
	return s.decision, nil
}

func interactiveEngine(t *testing.T, r *registry.Registry, decision conflict.Decision) *Engine {
	t.Helper()
	collector := prompt.NewCollector(prompt.NewScript())
	return quietEngine(r,
		WithCollector(collector),
		WithResolver(conflict.NewResolverWith(cannedStrategy{decision})),
	)
}

func TestRunInteractiveCollisionSkip(t *testing.T) {
	out := t.TempDir()
	target := filepath.Join(out, "UserAccount.go")
	require.NoError(t, os.WriteFile(target, []byte("original"), 0644))

	e := interactiveEngine(t, modelRegistry(t), conflict.Skip)
	rep, err := e.Run(context.Background(), Request{
		Type:      "model",
		RawName:   "UserAccount",
		OutputDir: out,
	})
	require.NoError(t, err)

	// Declining an overwrite is a decision, not a failure.
	assert.Equal(t, 1, rep.Count(report.Skipped))
	assert.True(t, rep.OK())

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "original", string(content))
}

func TestRunInteractiveCollisionOverwrite(t *testing.T) {
	out := t.TempDir()
	target := filepath.Join(out, "UserAccount.go")
	require.NoError(t, os.WriteFile(target, []byte("original"), 0644))

	e := interactiveEngine(t, modelRegistry(t), conflict.Overwrite)
	rep, err := e.Run(context.Background(), Request{
		Type:      "model",
		RawName:   "UserAccount",
		OutputDir: out,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Count(report.Created))

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(content), "UserAccount")
}

func TestRunInteractiveCancelAbortsRemainingFiles(t *testing.T) {
	out := t.TempDir()
	r := registry.New()
	require.NoError(t, r.Register(registry.Definition{
		Name: "multi",
		Files: []registry.FileTemplate{
			{Name: "first", Extension: ".txt", Body: "1 {{ .Pascal }}"},
			{Name: "second", Extension: ".txt", Body: "2 {{ .Pascal }}"},
		},
	}))
	// Make the first target collide so the canned Cancel fires on it.
	require.NoError(t, os.WriteFile(filepath.Join(out, "first.txt"), []byte("old"), 0644))

	e := interactiveEngine(t, r, conflict.Cancel)
	rep, err := e.Run(context.Background(), Request{
		Type:      "multi",
		RawName:   "Thing",
		OutputDir: out,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, rep.Count(report.Aborted))
	assert.Equal(t, 0, rep.Count(report.Created))

	_, statErr := os.Stat(filepath.Join(out, "second.txt"))
	assert.True(t, os.IsNotExist(statErr), "cancel must stop later files")
}

func TestRunCreatesSubpathDirectories(t *testing.T) {
	out := t.TempDir()
	r := registry.New()
	require.NoError(t, r.Register(registry.Definition{
		Name: "nested",
		Files: []registry.FileTemplate{{
			Name:      "{{ .Kebab }}",
			Extension: ".ts",
			Subpath:   filepath.Join("src", "components"),
			Body:      "export {}",
		}},
	}))

	e := quietEngine(r)
	rep, err := e.Run(context.Background(), Request{
		Type:      "nested",
		RawName:   "UserProfile",
		OutputDir: out,
	})
	require.NoError(t, err)
	require.True(t, rep.OK())

	assert.FileExists(t, filepath.Join(out, "src", "components", "user-profile.ts"))
}

func TestRunIsRepeatableWithForce(t *testing.T) {
	// Idempotence: same request with --force yields identical bytes.
	out := t.TempDir()
	e := quietEngine(modelRegistry(t))
	req := Request{Type: "model", RawName: "UserAccount", OutputDir: out, Force: true}

	_, err := e.Run(context.Background(), req)
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(out, "UserAccount.go"))
	require.NoError(t, err)

	_, err = e.Run(context.Background(), req)
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(out, "UserAccount.go"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
