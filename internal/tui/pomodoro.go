// Package tui provides the Bubbletea terminal views of core2.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/example/core2/internal/core/pomodoro"
)

// TimersMsg carries a snapshot published by the tick driver.
type TimersMsg []pomodoro.Timer

type keyMap struct {
	Toggle key.Binding
	Reset  key.Binding
	Next   key.Binding
	Prev   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Next, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Toggle, k.Reset}, {k.Next, k.Prev, k.Quit}}
}

func defaultKeys() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "start/pause")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next timer")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev timer")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Styles contains the visual styling of the timer view.
type Styles struct {
	Title    lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Running  lipgloss.Style
	Done     lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyles returns the default timer styling.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginBottom(1),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true),
		Normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Running:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		Done:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

var labels = map[pomodoro.Name]string{
	pomodoro.Work:       "Pomodoro",
	pomodoro.ShortBreak: "Short break",
	pomodoro.LongBreak:  "Long break",
}

// PomodoroModel renders the three timers and forwards key presses to the
// driver. Ticks arrive as TimersMsg through a one-slot channel that keeps
// only the latest snapshot.
type PomodoroModel struct {
	driver   *pomodoro.Driver
	updates  chan []pomodoro.Timer
	timers   []pomodoro.Timer
	selected int
	err      error

	bar    progress.Model
	help   help.Model
	keys   keyMap
	styles Styles
}

// NewPomodoroModel builds the view over a fresh timer set. opts are passed
// to the driver after the view's own change hook.
func NewPomodoroModel(durations map[pomodoro.Name]time.Duration, opts ...pomodoro.DriverOption) *PomodoroModel {
	set := pomodoro.NewSet(durations)
	m := &PomodoroModel{
		updates: make(chan []pomodoro.Timer, 1),
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(30), progress.WithoutPercentage()),
		help:    help.New(),
		keys:    defaultKeys(),
		styles:  DefaultStyles(),
	}
	all := append([]pomodoro.DriverOption{pomodoro.WithOnChange(m.publish)}, opts...)
	m.driver = pomodoro.NewDriver(set, all...)
	m.timers = m.driver.Snapshot()
	return m
}

// publish replaces any unread snapshot with the newest one.
func (m *PomodoroModel) publish(snap []pomodoro.Timer) {
	for {
		select {
		case m.updates <- snap:
			return
		default:
		}
		select {
		case <-m.updates:
		default:
		}
	}
}

func (m *PomodoroModel) waitForTimers() tea.Cmd {
	return func() tea.Msg {
		return TimersMsg(<-m.updates)
	}
}

// Driver exposes the tick driver, mainly for tests.
func (m *PomodoroModel) Driver() *pomodoro.Driver {
	return m.driver
}

// Timers returns the last rendered snapshot.
func (m *PomodoroModel) Timers() []pomodoro.Timer {
	return m.timers
}

// Init implements tea.Model.
func (m *PomodoroModel) Init() tea.Cmd {
	return m.waitForTimers()
}

// Update implements tea.Model.
func (m *PomodoroModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TimersMsg:
		m.timers = msg
		return m, m.waitForTimers()

	case tea.KeyMsg:
		name := pomodoro.Names[m.selected]
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.driver.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.err = m.driver.Toggle(name)
		case key.Matches(msg, m.keys.Reset):
			m.err = m.driver.Reset(name)
		case key.Matches(msg, m.keys.Next):
			m.selected = (m.selected + 1) % len(pomodoro.Names)
		case key.Matches(msg, m.keys.Prev):
			m.selected = (m.selected + len(pomodoro.Names) - 1) % len(pomodoro.Names)
		}
		m.timers = m.driver.Snapshot()

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

// View implements tea.Model.
func (m *PomodoroModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("core2 pomodoro") + "\n")

	for i, t := range m.timers {
		line := fmt.Sprintf("%-12s %s  %s", labels[t.Name], t.Clock(), m.bar.ViewAs(elapsed(t)))
		switch {
		case t.Running:
			line += " " + m.styles.Running.Render("running")
		case t.Finished():
			line += " " + m.styles.Done.Render("done")
		}
		if i == m.selected {
			b.WriteString(m.styles.Selected.Render("> "+line) + "\n")
		} else {
			b.WriteString(m.styles.Normal.Render("  "+line) + "\n")
		}
	}

	if m.err != nil {
		b.WriteString("\n" + m.styles.Error.Render("Error: "+m.err.Error()) + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys) + "\n")
	return b.String()
}

// RunPomodoro runs the timer view until the user quits.
func RunPomodoro(durations map[pomodoro.Name]time.Duration) error {
	m := NewPomodoroModel(durations)
	defer m.driver.Close()
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("pomodoro view error: %w", err)
	}
	return nil
}

func elapsed(t pomodoro.Timer) float64 {
	if t.Total <= 0 {
		return 0
	}
	return 1 - float64(t.Remaining)/float64(t.Total)
}
