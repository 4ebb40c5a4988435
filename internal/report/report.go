// Package report accumulates per-file scaffold outcomes for the final
// summary. Entries are append-only; nothing revises a result after it is
// recorded.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Status classifies the outcome of one attempted file.
type Status int

const (
	Created Status = iota
	Skipped
	Failed
	Aborted
)

func (s Status) String() string {
	switch s {
	case Created:
		return "created"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Result is the outcome of one attempted file.
type Result struct {
	Status Status
	Path   string
	Detail string // human-readable cause, required for Skipped/Failed
}

// Report collects results for one run.
type Report struct {
	results []Result
}

// New creates an empty report.
func New() *Report {
	return &Report{}
}

// Record appends one result.
func (r *Report) Record(res Result) {
	r.results = append(r.results, res)
}

// Results returns a copy of all recorded results in record order.
func (r *Report) Results() []Result {
	out := make([]Result, len(r.results))
	copy(out, r.results)
	return out
}

// Count returns how many results carry the given status.
func (r *Report) Count(s Status) int {
	n := 0
	for _, res := range r.results {
		if res.Status == s {
			n++
		}
	}
	return n
}

// OK reports whether the run finished without failures. Skips are fine;
// they are a decision, not a defect.
func (r *Report) OK() bool {
	return r.Count(Failed) == 0
}

var (
	createdStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green"))
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("red"))
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Summary renders the human-readable end-of-run summary: counts per status
// plus one detail line for every skipped or failed file.
func (r *Report) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s  %s\n",
		createdStyle.Render(fmt.Sprintf("%d created", r.Count(Created))),
		skippedStyle.Render(fmt.Sprintf("%d skipped", r.Count(Skipped))),
		failedStyle.Render(fmt.Sprintf("%d failed", r.Count(Failed))),
	)

	for _, res := range r.results {
		switch res.Status {
		case Skipped, Failed, Aborted:
			fmt.Fprintf(&b, "  %s %s %s\n",
				res.Status, res.Path, detailStyle.Render("("+res.Detail+")"))
		}
	}

	return b.String()
}
