//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emberworks/kindling/internal/engine"
	"github.com/emberworks/kindling/internal/registry"
	"github.com/emberworks/kindling/internal/report"
)

// Exercises the full builtin pipeline: registry → renderer → engine →
// report, against a real temp directory.
func TestBuiltinModelEndToEnd(t *testing.T) {
	out := t.TempDir()

	reg, err := registry.Builtin()
	if err != nil {
		t.Fatalf("loading builtins: %v", err)
	}

	var buf bytes.Buffer
	eng := engine.New(reg, engine.WithOutput(&buf))
	req := engine.Request{Type: "model", RawName: "UserAccount", OutputDir: out}

	rep, err := eng.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if !rep.OK() {
		t.Fatalf("first run not OK: %s", rep.Summary())
	}

	target := filepath.Join(out, "models", "UserAccount.go")
	content, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("model file not created: %v", err)
	}
	if !strings.Contains(string(content), "UserAccount") {
		t.Errorf("generated content missing name, got:\n%s", content)
	}

	// Second run collides and must not touch the existing file.
	rep, err = eng.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("second run errored fatally: %v", err)
	}
	if rep.Count(report.Failed) != 1 {
		t.Errorf("expected 1 failed result on collision, got %s", rep.Summary())
	}

	after, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("reading file after collision: %v", err)
	}
	if !bytes.Equal(content, after) {
		t.Error("collision modified the existing file")
	}
}

func TestBuiltinProjectScaffold(t *testing.T) {
	out := filepath.Join(t.TempDir(), "my-app")

	reg, err := registry.Builtin()
	if err != nil {
		t.Fatalf("loading builtins: %v", err)
	}

	var buf bytes.Buffer
	eng := engine.New(reg, engine.WithOutput(&buf))
	rep, err := eng.Run(context.Background(), engine.Request{
		Type:      "project",
		RawName:   "MyApp",
		OutputDir: out,
	})
	if err != nil {
		t.Fatalf("project scaffold failed: %v", err)
	}
	if !rep.OK() {
		t.Fatalf("project scaffold not OK: %s", rep.Summary())
	}

	for _, f := range []string{"README.md", "kindling.yml", filepath.Join("src", "my-app.go")} {
		if _, err := os.Stat(filepath.Join(out, f)); err != nil {
			t.Errorf("expected %s to exist: %v", f, err)
		}
	}
}
