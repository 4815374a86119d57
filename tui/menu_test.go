package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m *Menu, msgs ...tea.Msg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var model tea.Model
		model, cmd = m.Update(msg)
		require.Same(t, m, model)
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestMenu_EnterRunsSelectedRoutine(t *testing.T) {
	m := NewMenu()

	// WHEN moving to the second routine and pressing enter
	send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	// THEN the printing demo output is shown
	assert.Equal(t, 1, m.cursor)
	assert.Contains(t, m.output, "Print order: [M1 M2 M3]")
	assert.Contains(t, m.output, "Print order: [M2 M1 M3]")
	assert.Contains(t, m.output, "Total time: 270 minutes")
	assert.Contains(t, m.output, "Total time: 450 minutes")
	assert.Contains(t, m.View(), "Optimize 3D printer queue")
}

func TestMenu_DigitRunsRoutineDirectly(t *testing.T) {
	m := NewMenu()
	send(t, m, runes("1"))

	assert.Contains(t, m.output, "Minimum element: -2")
	assert.Contains(t, m.output, "Maximum element: 1000")
	assert.Contains(t, m.output, "Minimum element: 42")
}

func TestMenu_InvalidDigit(t *testing.T) {
	m := NewMenu()
	send(t, m, runes("7"))
	assert.Empty(t, m.output)
	assert.Contains(t, m.status, "Invalid choice")
}

func TestMenu_QuitKeys(t *testing.T) {
	for _, msg := range []tea.Msg{runes("q"), tea.KeyMsg{Type: tea.KeyCtrlC}} {
		m := NewMenu()
		cmd := send(t, m, msg)
		assert.True(t, isQuit(cmd))
		assert.Equal(t, "Goodbye.\n", m.View())
	}
}

func TestMenu_TypedExitQuits(t *testing.T) {
	m := NewMenu()
	cmd := send(t, m, runes("e"), runes("x"), runes("i"), runes("t"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, isQuit(cmd))
}

func TestMenu_TypedGarbageIsRejected(t *testing.T) {
	m := NewMenu()
	cmd := send(t, m, runes("x"), runes("y"), tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, isQuit(cmd))
	assert.Contains(t, m.status, `"x"`)
	assert.Empty(t, m.output)
}

func TestMenu_CursorStaysInBounds(t *testing.T) {
	m := NewMenu()
	send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)
	send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)
}
