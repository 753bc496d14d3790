package panel

import (
	"errors"
	"fmt"
)

// Stage identifies where in the pipeline a generation call failed.
type Stage string

const (
	StageQuestions  Stage = "questions"
	StageEvaluation Stage = "evaluation"
)

var (
	// ErrEmptyPitch rejects empty or whitespace-only pitch text before
	// any generation call is made.
	ErrEmptyPitch = errors.New("panel: pitch is empty")

	// ErrSessionReused marks a second Run on an already-consumed session.
	ErrSessionReused = errors.New("panel: session already ran")
)

// GenerationError wraps a text-generation failure with the stage and,
// for the question stage, the persona whose call failed.
type GenerationError struct {
	Stage Stage
	Role  string
	Err   error
}

func (e *GenerationError) Error() string {
	if e.Role != "" {
		return fmt.Sprintf("panel: %s generation for %s failed: %v", e.Stage, e.Role, e.Err)
	}
	return fmt.Sprintf("panel: %s generation failed: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
