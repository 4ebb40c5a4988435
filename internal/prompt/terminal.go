package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Terminal is a Provider reading answers from stdin.
type Terminal struct {
	reader *bufio.Reader
}

// NewTerminal creates a stdin-backed provider.
func NewTerminal() *Terminal {
	return &Terminal{reader: bufio.NewReader(os.Stdin)}
}

// Interactive reports whether stdin is attached to a terminal. When it
// isn't, prompting would hang a scripted invocation, so callers should fall
// back to non-interactive behavior.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Ask prints the question and reads one line. Pressing Enter on an empty
// line returns the default. A read failure (EOF, closed stdin) aborts.
func (t *Terminal) Ask(q Question) (string, error) {
	if q.Default != "" {
		fmt.Print(promptStyle.Render(q.Message) + " " +
			hintStyle.Render(fmt.Sprintf("(%s)", q.Default)) + ": ")
	} else {
		fmt.Print(promptStyle.Render(q.Message) + ": ")
	}

	line, err := t.reader.ReadString('\n')
	if err != nil {
		return "", ErrAborted
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return q.Default, nil
	}
	return line, nil
}

// Confirm asks a yes/no question. Empty input returns the default.
func (t *Terminal) Confirm(message string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	fmt.Print(promptStyle.Render(message) + " " + hintStyle.Render(hint) + ": ")

	line, err := t.reader.ReadString('\n')
	if err != nil {
		return false, ErrAborted
	}

	line = strings.TrimSpace(strings.ToLower(line))
	if line == "" {
		return defaultYes, nil
	}
	return line == "y" || line == "yes", nil
}
