// Package tui is the interactive routine picker.
// It uses bubbletea, which follows The Elm Architecture: key presses arrive
// as messages, Update changes the model, View renders it.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type routine struct {
	title string
	run   func() string
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF")).
			MarginBottom(1)
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))
	outputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1)
)

// Menu is the main menu model.
type Menu struct {
	routines []routine
	cursor   int
	typed    string // free text, so "exit" can be typed as in a prompt
	output   string
	status   string
	quitting bool
}

// NewMenu returns a menu listing the min/max finder and the print planner.
func NewMenu() *Menu {
	return &Menu{
		routines: []routine{
			{title: "Find min/max", run: runMinMaxDemo},
			{title: "Optimize 3D printer queue", run: runPrintingDemo},
		},
	}
}

func (m *Menu) Init() tea.Cmd {
	return nil
}

func (m *Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m.quit()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.routines)-1 {
			m.cursor++
		}
	case "backspace":
		if m.typed != "" {
			m.typed = m.typed[:len(m.typed)-1]
		}
	case "enter":
		typed := strings.ToLower(strings.TrimSpace(m.typed))
		m.typed = ""
		switch {
		case typed == "":
			m.runSelected(m.cursor)
		case typed == "exit":
			return m.quit()
		default:
			m.status = fmt.Sprintf("Invalid choice %q. Try again.", typed)
		}
	default:
		s := key.String()
		if n, isDigit := digit(s); isDigit && m.typed == "" {
			if n >= 1 && n <= len(m.routines) {
				m.cursor = n - 1
				m.runSelected(m.cursor)
			} else {
				m.status = fmt.Sprintf("Invalid choice %q. Try again.", s)
			}
			return m, nil
		}
		if key.Type == tea.KeyRunes {
			m.typed += string(key.Runes)
		}
	}
	return m, nil
}

func (m *Menu) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m *Menu) runSelected(i int) {
	r := m.routines[i]
	m.output = r.run()
	m.status = fmt.Sprintf("%s finished.", r.title)
}

func digit(s string) (int, bool) {
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '0'), true
}

func (m *Menu) View() string {
	if m.quitting {
		return "Goodbye.\n"
	}
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Main menu"))
	sb.WriteString("\n")
	for i, r := range m.routines {
		line := fmt.Sprintf("%d. %s", i+1, r.title)
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		sb.WriteString(line + "\n")
	}
	if m.typed != "" {
		sb.WriteString("\nYour choice: " + m.typed + "\n")
	}
	if m.output != "" {
		sb.WriteString(outputStyle.Render(strings.TrimRight(m.output, "\n")))
		sb.WriteString("\n")
	}
	footer := "↑/↓ select · enter run · 1-2 run directly · q or exit to quit"
	if m.status != "" {
		footer = m.status + "\n" + footer
	}
	sb.WriteString(footerStyle.Render(footer))
	return sb.String()
}

// Run starts the menu and blocks until the user quits.
func Run() error {
	if _, err := tea.NewProgram(NewMenu()).Run(); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
