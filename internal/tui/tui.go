// internal/tui/tui.go
//
// Live view for an in-flight grilling session, built on bubbletea's
// Elm-style loop: the session runs in its own goroutine, pipeline events
// arrive over a channel, and the model just reflects them. Ctrl+C cancels
// the session context and the view waits for the pipeline to wind down
// before quitting.

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/boardroom/internal/llm"
	"github.com/kingrea/boardroom/internal/panel"
	"github.com/kingrea/boardroom/internal/persona"
)

type eventMsg panel.Event

type resultMsg struct {
	outcome *panel.Outcome
	err     error
}

// Model tracks one session's visible progress.
type Model struct {
	spin    spinner.Model
	events  <-chan panel.Event
	cancel  context.CancelFunc
	modelID string

	roles     []string
	completed map[string]bool
	state     panel.State
	aborting  bool

	outcome *panel.Outcome
	err     error
}

func newModel(events <-chan panel.Event, cancel context.CancelFunc, modelID string) Model {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF"))
	return Model{
		spin:      spin,
		events:    events,
		cancel:    cancel,
		modelID:   modelID,
		roles:     persona.Roles(),
		completed: make(map[string]bool),
		state:     panel.StateIdle,
	}
}

func waitForEvent(events <-chan panel.Event) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return nil
		}
		return eventMsg(e)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, waitForEvent(m.events))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		if msg.Role != "" {
			m.completed[msg.Role] = true
		} else {
			m.state = msg.State
		}
		return m, waitForEvent(m.events)
	case resultMsg:
		m.outcome = msg.outcome
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			// Cancel and keep the loop alive until the session reports back.
			m.aborting = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

var (
	tuiTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	tuiDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	tuiDoneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3DDC97"))
)

func (m Model) View() string {
	var lines []string
	lines = append(lines, tuiTitleStyle.Render("boardroom")+tuiDimStyle.Render(" · model "+m.modelID))
	lines = append(lines, "")

	for _, role := range m.roles {
		switch {
		case m.completed[role]:
			lines = append(lines, tuiDoneStyle.Render("✓ ")+role)
		case m.state == panel.StateGeneratingQuestions:
			lines = append(lines, m.spin.View()+" "+role)
		default:
			lines = append(lines, tuiDimStyle.Render("· "+role))
		}
	}

	lines = append(lines, "")
	switch {
	case m.aborting:
		lines = append(lines, tuiDimStyle.Render("aborting..."))
	case m.state == panel.StateAggregating:
		lines = append(lines, m.spin.View()+" composing transcript")
	case m.state == panel.StateEvaluating:
		lines = append(lines, m.spin.View()+" calculating readiness score")
	case m.state == panel.StateDone:
		lines = append(lines, tuiDoneStyle.Render("grilling complete"))
	case m.state == panel.StateFailed:
		lines = append(lines, tuiDimStyle.Render("session failed"))
	default:
		lines = append(lines, tuiDimStyle.Render("assembling the panel..."))
	}
	lines = append(lines, tuiDimStyle.Render("press ctrl+c to abort"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Run executes a full grilling session behind a live terminal view and
// returns the session's outcome once the view exits.
func Run(ctx context.Context, gen llm.Generator, pitch, modelID string, opts ...panel.Option) (*panel.Outcome, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Buffered beyond the pipeline's worst-case event count so the
	// session never blocks on a slow repaint.
	events := make(chan panel.Event, 16)
	session := panel.NewSession(gen, append(opts, panel.WithObserver(func(e panel.Event) {
		events <- e
	}))...)

	program := tea.NewProgram(newModel(events, cancel, modelID))
	go func() {
		outcome, err := session.Run(ctx, pitch)
		program.Send(resultMsg{outcome: outcome, err: err})
	}()

	final, err := program.Run()
	if err != nil {
		cancel()
		return nil, err
	}
	m := final.(Model)
	return m.outcome, m.err
}
