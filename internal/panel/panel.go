// Package panel runs a pitch through the stakeholder review pipeline:
// every persona generates its questions, the questions are composed into
// a single transcript, and a final evaluation pass turns the transcript
// into a readiness assessment. The pipeline is a single linear traversal
// of an explicit state machine; a Session is consumed by one run and
// cannot be restarted.
package panel

import "strings"

// QuestionSet is the generated critique text attributed to one persona.
// The text is opaque; the "2-3 questions" shape is an instruction to the
// model, not a contract the pipeline enforces.
type QuestionSet struct {
	Role string
	Text string
}

// Transcript is the ordered collection of every persona's questions for
// one run. Order matches the persona registry, not completion order.
type Transcript []QuestionSet

// Compose renders the transcript as labeled blocks separated by blank
// lines. It is a pure function of the receiver; an empty transcript
// composes to the empty string.
func (t Transcript) Compose() string {
	blocks := make([]string, 0, len(t))
	for _, qs := range t {
		blocks = append(blocks, qs.Role+": "+qs.Text)
	}
	return strings.Join(blocks, "\n\n")
}

// Assessment is the final readiness evaluation. The score lives inside
// the free text; it is surfaced to the caller unparsed.
type Assessment struct {
	Text string
}

// Outcome bundles everything a run produces.
type Outcome struct {
	RunID      string
	Pitch      string
	Transcript Transcript
	Assessment Assessment
}
