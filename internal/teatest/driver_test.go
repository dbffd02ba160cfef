package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type pingMsg struct{}

type countModel struct {
	keys  string
	pings int
	width int
}

func (m *countModel) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return pingMsg{} },
		tea.Tick(time.Hour, func(time.Time) tea.Msg { return pingMsg{} }),
	)
}

func (m *countModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case pingMsg:
		m.pings++
	case tea.KeyMsg:
		if msg.String() == "q" {
			return m, tea.Quit
		}
		m.keys += msg.String()
	}
	return m, nil
}

func (m *countModel) View() string {
	return "\x1b[1mkeys:\x1b[0m " + m.keys
}

func TestDriver_DrainInitDropsTimerCmds(t *testing.T) {
	m := &countModel{}
	d := New(t, m, WithSize(80, 24))
	d.DrainInit()

	assert.Equal(t, 80, m.width)
	assert.Equal(t, 1, m.pings)
	assert.Equal(t, 1, d.Dropped)
}

func TestDriver_PlainViewAndQuit(t *testing.T) {
	m := &countModel{}
	d := New(t, m)

	d.PressKeys("ab")
	assert.Equal(t, "keys: ab", d.PlainView())
	d.AssertContains("keys:", "ab")

	d.PressKey('q')
	assert.True(t, d.Quitting)

	d.PressKey('z')
	assert.Equal(t, "ab", m.keys, "input after quit is ignored")
}

func TestDriver_WithCmdTimeout(t *testing.T) {
	m := &countModel{}
	d := New(t, m, WithCmdTimeout(time.Second))

	slow := func() tea.Msg {
		time.Sleep(20 * time.Millisecond)
		return pingMsg{}
	}
	d.drainCmd(slow, 0)
	assert.Equal(t, 1, m.pings)
	assert.Zero(t, d.Dropped)
}
