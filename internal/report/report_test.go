package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountsAndOK(t *testing.T) {
	r := New()
	r.Record(Result{Status: Created, Path: "a.go"})
	r.Record(Result{Status: Skipped, Path: "b.go", Detail: "exists"})
	r.Record(Result{Status: Created, Path: "c.go"})

	assert.Equal(t, 2, r.Count(Created))
	assert.Equal(t, 1, r.Count(Skipped))
	assert.Equal(t, 0, r.Count(Failed))
	assert.True(t, r.OK(), "skips alone must not fail the run")

	r.Record(Result{Status: Failed, Path: "d.go", Detail: "disk full"})
	assert.False(t, r.OK())
}

func TestSummaryIncludesDetails(t *testing.T) {
	r := New()
	r.Record(Result{Status: Created, Path: "a.go"})
	r.Record(Result{Status: Failed, Path: "b.go", Detail: "permission denied"})

	summary := r.Summary()
	assert.Contains(t, summary, "1 created")
	assert.Contains(t, summary, "1 failed")
	assert.Contains(t, summary, "b.go")
	assert.Contains(t, summary, "permission denied")
	assert.False(t, strings.Contains(summary, "a.go"),
		"created files don't need detail lines")
}

func TestResultsReturnsCopy(t *testing.T) {
	r := New()
	r.Record(Result{Status: Created, Path: "a.go"})

	got := r.Results()
	got[0].Path = "mutated"

	assert.Equal(t, "a.go", r.Results()[0].Path)
}
