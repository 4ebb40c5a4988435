package conflict

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuChoice int

const (
	choiceShowDiff menuChoice = iota
	choiceSkip
	choiceOverwrite
	choiceCancel
)

func (c menuChoice) decision() Decision {
	switch c {
	case choiceSkip:
		return Skip
	case choiceOverwrite:
		return Overwrite
	default:
		return Cancel
	}
}

var (
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("white")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var menuLabels = []string{
	"Show diff and decide",
	"Skip (keep existing file)",
	"Overwrite (replace with generated file)",
	"Cancel remaining files",
}

// runMenu shows the collision menu and blocks until the operator picks.
func runMenu(path string, info os.FileInfo) (menuChoice, error) {
	m := menuModel{path: path, info: info}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return choiceCancel, fmt.Errorf("conflict menu: %w", err)
	}

	result := final.(menuModel)
	if result.selected == nil {
		return choiceCancel, nil
	}
	return *result.selected, nil
}

type menuModel struct {
	path     string
	info     os.FileInfo
	cursor   int
	selected *menuChoice
}

func (m menuModel) Init() tea.Cmd { return nil }

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(menuLabels)-1 {
				m.cursor++
			}
		case "enter":
			choice := menuChoice(m.cursor)
			m.selected = &choice
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m menuModel) View() string {
	var b strings.Builder

	b.WriteString(warningStyle.Render("⚠ File exists: ") + titleStyle.Render(m.path) + "\n")
	if m.info != nil {
		b.WriteString(mutedStyle.Render("    Last modified: ") + relativeTime(m.info.ModTime()) + "\n")
		b.WriteString(mutedStyle.Render("    Size: ") + fmt.Sprintf("%d bytes", m.info.Size()) + "\n")
	}
	b.WriteString("\n" + mutedStyle.Render("    [↑/↓] Navigate    [Enter] Select    [q] Cancel") + "\n\n")

	for i, label := range menuLabels {
		if m.cursor == i {
			b.WriteString("    " + selectedStyle.Render("> "+label) + "\n")
		} else {
			b.WriteString("      " + label + "\n")
		}
	}

	return b.String()
}

// relativeTime renders a timestamp the way humans think about recency.
func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	case d < 30*24*time.Hour:
		return plural(int(d.Hours()/24), "day")
	default:
		return plural(int(d.Hours()/24/30), "month")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
