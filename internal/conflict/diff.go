package conflict

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// pagerThreshold is the diff line count above which we open a pager
// instead of printing inline.
const pagerThreshold = 20

// maxDiffLines guards the quadratic LCS table; generated files are small,
// anything bigger gets a placeholder message.
const maxDiffLines = 5000

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("green"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("red"))
)

// showDiff renders the existing-vs-incoming diff, paging when it is long.
func showDiff(path string, existing, incoming []byte) error {
	diff := Unified(path, existing, incoming)
	if diff == "" {
		fmt.Println(headerStyle.Render("(files are identical)"))
		return nil
	}

	if strings.Count(diff, "\n") <= pagerThreshold {
		fmt.Println(diff)
		return nil
	}

	if _, err := tea.NewProgram(pagerModel{title: path, content: diff}, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("diff pager: %w", err)
	}
	return nil
}

// Unified produces a colored line diff between existing and incoming
// content. Empty result means the contents are identical.
func Unified(path string, existing, incoming []byte) string {
	oldLines := splitLines(string(existing))
	newLines := splitLines(string(incoming))

	if len(oldLines) > maxDiffLines || len(newLines) > maxDiffLines {
		return fmt.Sprintf("Files too large to diff (%d vs %d lines)\n", len(oldLines), len(newLines))
	}

	edits := diffLines(oldLines, newLines)
	changed := false
	for _, e := range edits {
		if e.kind != keep {
			changed = true
			break
		}
	}
	if !changed {
		return ""
	}

	width := terminalWidth()
	var b strings.Builder
	b.WriteString(headerStyle.Render("--- "+path+" (existing)") + "\n")
	b.WriteString(headerStyle.Render("+++ "+path+" (generated)") + "\n")
	for _, e := range edits {
		line := truncate(e.text, width-2)
		switch e.kind {
		case add:
			b.WriteString(addedStyle.Render("+"+line) + "\n")
		case remove:
			b.WriteString(removedStyle.Render("-"+line) + "\n")
		default:
			b.WriteString(" " + line + "\n")
		}
	}
	return b.String()
}

type editKind int

const (
	keep editKind = iota
	add
	remove
)

type edit struct {
	kind editKind
	text string
}

// diffLines computes a line-level edit script via the classic LCS table.
func diffLines(oldLines, newLines []string) []edit {
	n, m := len(oldLines), len(newLines)

	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if oldLines[i] == newLines[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	var edits []edit
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case oldLines[i] == newLines[j]:
			edits = append(edits, edit{keep, oldLines[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			edits = append(edits, edit{remove, oldLines[i]})
			i++
		default:
			edits = append(edits, edit{add, newLines[j]})
			j++
		}
	}
	for ; i < n; i++ {
		edits = append(edits, edit{remove, oldLines[i]})
	}
	for ; j < m; j++ {
		edits = append(edits, edit{add, newLines[j]})
	}
	return edits
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func truncate(s string, width int) string {
	if width < 10 {
		width = 80
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// pagerModel scrolls a long diff in an alt-screen viewport.
type pagerModel struct {
	title   string
	content string
	vp      viewport.Model
	ready   bool
}

func (m pagerModel) Init() tea.Cmd { return nil }

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			m.vp.ScrollUp(1)
		case "down", "j":
			m.vp.ScrollDown(1)
		case "pgup", "b":
			m.vp.PageUp()
		case "pgdown", "f", "space":
			m.vp.PageDown()
		}
	case tea.WindowSizeMsg:
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-2)
			m.vp.SetContent(m.content)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - 2
		}
	}

	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	if !m.ready {
		return "Loading diff..."
	}
	header := headerStyle.Render("Diff: " + m.title)
	footer := headerStyle.Render("[↑/↓] Scroll    [q] Back")
	return header + "\n" + m.vp.View() + "\n" + footer
}
