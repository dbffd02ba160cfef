package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/pogodoro/internal/cli/formatter"
	"github.com/alexanderramin/pogodoro/internal/domain"
	"github.com/alexanderramin/pogodoro/internal/pomodoro"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// tickMsg carries the wall time of one timer refresh.
type tickMsg time.Time

type timerKeyMap struct {
	Pause    key.Binding
	Skip     key.Binding
	Complete key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultTimerKeys() timerKeyMap {
	return timerKeyMap{
		Pause:    key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p", "pause/resume")),
		Skip:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next phase")),
		Complete: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete task")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k timerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Help, k.Quit}
}

func (k timerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Skip, k.Complete},
		{k.Help, k.Quit},
	}
}

// timerModel is the full-screen session view. It owns the controller and
// feeds it the wall time elapsed between ticks.
type timerModel struct {
	ctx      context.Context
	ctrl     *pomodoro.Controller
	keys     timerKeyMap
	help     help.Model
	interval time.Duration
	last     time.Time
	status   string
	width    int
	quitting bool
}

// newTimerModel measures the first tick from start, which should be the
// moment the controller's clock began running.
func newTimerModel(ctx context.Context, ctrl *pomodoro.Controller, interval time.Duration, start time.Time) *timerModel {
	if interval <= 0 {
		interval = time.Second
	}
	h := help.New()
	h.Styles.ShortKey = formatter.StyleHeader
	h.Styles.FullKey = formatter.StyleHeader
	h.Styles.ShortDesc = formatter.StyleDim
	h.Styles.FullDesc = formatter.StyleDim
	return &timerModel{
		ctx:      ctx,
		ctrl:     ctrl,
		keys:     defaultTimerKeys(),
		help:     h,
		interval: interval,
		last:     start,
	}
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *timerModel) Init() tea.Cmd {
	return tick(m.interval)
}

func (m *timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		if m.ctx.Err() != nil {
			return m, nil
		}
		m.advance(now.Sub(m.last))
		m.last = now
		return m, tick(m.interval)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *timerModel) advance(elapsed time.Duration) {
	ev, err := m.ctrl.Advance(m.ctx, elapsed)
	switch {
	case err != nil:
		m.status = formatter.StyleYellow.Render("not saved: " + err.Error())
	case ev != nil:
		m.status = m.describe(*ev)
	}
}

func (m *timerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.ctrl.TogglePause()
		m.status = ""

	case key.Matches(msg, m.keys.Skip):
		ev, err := m.ctrl.Skip(m.ctx)
		if err != nil {
			m.status = formatter.StyleYellow.Render("not saved: " + err.Error())
		} else if ev != nil {
			m.status = m.describe(*ev)
		}

	case key.Matches(msg, m.keys.Complete):
		err := m.ctrl.CompleteTask(m.ctx)
		switch {
		case errors.Is(err, domain.ErrNoBoundTask):
			m.status = formatter.Dim("no task bound to this session")
		case err != nil:
			m.status = formatter.StyleRed.Render(err.Error())
		default:
			m.status = formatter.StyleGreen.Render("✔ task completed")
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *timerModel) describe(ev pomodoro.PhaseChanged) string {
	if ev.Credited {
		return formatter.StyleRed.Render(fmt.Sprintf("🍅 pomodoro %d done", ev.PomodorosThisSession))
	}
	return formatter.Dim(ev.From.Label() + " over")
}

func (m *timerModel) View() string {
	if m.quitting {
		return ""
	}
	snap := m.ctrl.Snapshot()
	body := formatter.FormatTimer(snap)
	if m.status != "" {
		body += "\n\n" + m.status
	}
	box := formatter.RenderBoxColored("pogodoro", body, phaseBorder(snap.Phase))
	return lipgloss.JoinVertical(lipgloss.Left, box, m.help.View(m.keys))
}

func phaseBorder(p domain.Phase) lipgloss.Color {
	switch p {
	case domain.PhaseShortBreak:
		return formatter.ColorGreen
	case domain.PhaseLongBreak:
		return formatter.ColorBlue
	default:
		return formatter.ColorRed
	}
}
