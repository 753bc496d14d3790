package panel

import (
	"context"

	"github.com/kingrea/boardroom/internal/llm"
	"github.com/kingrea/boardroom/internal/persona"
)

// GenerateQuestions runs the question stage for a single persona. It is
// stateless; the session fans it out once per registry entry.
func GenerateQuestions(ctx context.Context, gen llm.Generator, pitch string, p persona.Persona) (QuestionSet, error) {
	text, err := gen.Generate(ctx, questionPrompt(pitch, p))
	if err != nil {
		return QuestionSet{}, &GenerationError{Stage: StageQuestions, Role: p.Role, Err: err}
	}
	return QuestionSet{Role: p.Role, Text: text}, nil
}

// Evaluate runs the evaluation stage over the composed transcript. It is
// invoked exactly once per run, strictly after every question set exists.
func Evaluate(ctx context.Context, gen llm.Generator, pitch, composite string) (Assessment, error) {
	text, err := gen.Generate(ctx, evaluationPrompt(pitch, composite))
	if err != nil {
		return Assessment{}, &GenerationError{Stage: StageEvaluation, Err: err}
	}
	return Assessment{Text: text}, nil
}
