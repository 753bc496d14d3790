// internal/panel/session.go
//
// One Session drives one run of the review pipeline through its states:
//
//	idle -> generating-questions -> aggregating -> evaluating -> done
//
// with failed reachable from any active state. The persona calls fan out
// in parallel and join before aggregation; results always land in
// registry order so the transcript labels never depend on which model
// call finished first.

package panel

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kingrea/boardroom/internal/llm"
	"github.com/kingrea/boardroom/internal/logbook"
	"github.com/kingrea/boardroom/internal/persona"
)

// State names one phase of a run.
type State string

const (
	StateIdle                State = "idle"
	StateGeneratingQuestions State = "generating-questions"
	StateAggregating         State = "aggregating"
	StateEvaluating          State = "evaluating"
	StateDone                State = "done"
	StateFailed              State = "failed"
)

// Event is emitted to the observer on every state change. Role is set
// only for per-persona completion events during question generation.
type Event struct {
	State State
	Role  string
}

// Session executes the pipeline once. It is not reusable; a second Run
// returns ErrSessionReused.
type Session struct {
	gen      llm.Generator
	personas []persona.Persona
	runID    string
	log      *logbook.Logbook
	observer func(Event)

	mu    sync.Mutex
	state State
	ran   bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogbook attaches a logbook; nil is accepted and disables logging.
func WithLogbook(lb *logbook.Logbook) Option {
	return func(s *Session) { s.log = lb }
}

// WithObserver registers a callback invoked on every state change and
// per-persona completion. Calls are serialized; the callback must not
// call back into the session.
func WithObserver(fn func(Event)) Option {
	return func(s *Session) { s.observer = fn }
}

// WithRunID overrides the generated run identifier.
func WithRunID(id string) Option {
	return func(s *Session) { s.runID = id }
}

// NewSession builds a session over the fixed persona registry.
func NewSession(gen llm.Generator, opts ...Option) *Session {
	s := &Session{
		gen:      gen,
		personas: persona.Registry(),
		runID:    uuid.NewString(),
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunID returns the identifier attached to this session's log lines.
func (s *Session) RunID() string { return s.runID }

// State reports the current pipeline state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Run executes the full pipeline against pitch. It fails fast: the first
// persona error aborts the run and evaluation never starts. Cancelling
// ctx aborts in-flight generation calls and the session ends failed.
func (s *Session) Run(ctx context.Context, pitch string) (*Outcome, error) {
	s.mu.Lock()
	if s.ran {
		s.mu.Unlock()
		return nil, ErrSessionReused
	}
	s.ran = true
	s.mu.Unlock()

	pitch = strings.TrimSpace(pitch)
	if pitch == "" {
		return nil, ErrEmptyPitch
	}

	s.log.Info("run %s: grilling started (%d personas)", s.runID, len(s.personas))
	s.transition(StateGeneratingQuestions, "")

	sets := make([]QuestionSet, len(s.personas))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range s.personas {
		i, p := i, p
		g.Go(func() error {
			qs, err := GenerateQuestions(gctx, s.gen, pitch, p)
			if err != nil {
				return err
			}
			sets[i] = qs
			s.transition(StateGeneratingQuestions, p.Role)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, s.fail(err)
	}

	s.transition(StateAggregating, "")
	transcript := Transcript(sets)
	composite := transcript.Compose()

	s.transition(StateEvaluating, "")
	assessment, err := Evaluate(ctx, s.gen, pitch, composite)
	if err != nil {
		return nil, s.fail(err)
	}

	s.transition(StateDone, "")
	s.log.Info("run %s: grilling complete", s.runID)
	return &Outcome{
		RunID:      s.runID,
		Pitch:      pitch,
		Transcript: transcript,
		Assessment: assessment,
	}, nil
}

func (s *Session) fail(err error) error {
	s.log.Error("run %s: %v", s.runID, err)
	s.transition(StateFailed, "")
	return err
}

// transition records the new state and notifies the observer. A repeated
// state with a role set is a per-persona progress event, not a re-entry.
func (s *Session) transition(state State, role string) {
	s.mu.Lock()
	s.state = state
	observer := s.observer
	if observer != nil {
		// Notify under the lock so events arrive in commit order.
		observer(Event{State: state, Role: role})
	}
	s.mu.Unlock()
}
