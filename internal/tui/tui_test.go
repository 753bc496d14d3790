package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/boardroom/internal/panel"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	events := make(chan panel.Event, 16)
	return newModel(events, func() {}, "test-model")
}

func applyEvent(t *testing.T, m Model, e panel.Event) Model {
	t.Helper()
	next, _ := m.Update(eventMsg(e))
	return next.(Model)
}

func TestViewListsAllRoles(t *testing.T) {
	view := newTestModel(t).View()
	for _, role := range []string{"CEO", "CTO", "Head of Design"} {
		if !strings.Contains(view, role) {
			t.Fatalf("view missing role %s:\n%s", role, view)
		}
	}
	if !strings.Contains(view, "test-model") {
		t.Fatalf("view missing model id:\n%s", view)
	}
}

func TestEventsMarkPersonaCompletion(t *testing.T) {
	m := newTestModel(t)
	m = applyEvent(t, m, panel.Event{State: panel.StateGeneratingQuestions})
	m = applyEvent(t, m, panel.Event{State: panel.StateGeneratingQuestions, Role: "CTO"})

	if !m.completed["CTO"] {
		t.Fatalf("CTO completion event not recorded")
	}
	if m.completed["CEO"] {
		t.Fatalf("CEO marked complete without an event")
	}
	if m.state != panel.StateGeneratingQuestions {
		t.Fatalf("state: got %s", m.state)
	}
	if !strings.Contains(m.View(), "✓ CTO") {
		t.Fatalf("view does not show CTO as done:\n%s", m.View())
	}
}

func TestStageEventsDriveStatusLine(t *testing.T) {
	m := newTestModel(t)
	m = applyEvent(t, m, panel.Event{State: panel.StateEvaluating})
	if !strings.Contains(m.View(), "calculating readiness score") {
		t.Fatalf("evaluating status missing:\n%s", m.View())
	}
	m = applyEvent(t, m, panel.Event{State: panel.StateDone})
	if !strings.Contains(m.View(), "grilling complete") {
		t.Fatalf("done status missing:\n%s", m.View())
	}
}

func TestResultQuitsWithOutcome(t *testing.T) {
	m := newTestModel(t)
	outcome := &panel.Outcome{RunID: "run-1"}
	next, cmd := m.Update(resultMsg{outcome: outcome})
	m = next.(Model)

	if m.outcome != outcome {
		t.Fatalf("outcome not captured")
	}
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.Quit, got %T", cmd())
	}
}

func TestResultCapturesError(t *testing.T) {
	m := newTestModel(t)
	wantErr := errors.New("backend down")
	next, _ := m.Update(resultMsg{err: wantErr})
	m = next.(Model)
	if !errors.Is(m.err, wantErr) {
		t.Fatalf("error not captured: %v", m.err)
	}
}

func TestCtrlCCancelsAndWaits(t *testing.T) {
	cancelled := false
	events := make(chan panel.Event, 16)
	m := newModel(events, func() { cancelled = true }, "test-model")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(Model)

	if !cancelled {
		t.Fatalf("ctrl+c did not cancel the session context")
	}
	if cmd != nil {
		t.Fatalf("ctrl+c must not quit before the session reports back")
	}
	if !strings.Contains(m.View(), "aborting") {
		t.Fatalf("view does not show abort state:\n%s", m.View())
	}
}
