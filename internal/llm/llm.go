// Package llm wraps the external text-generation capability behind a
// one-method interface so the pipeline can be driven by a deterministic
// stub in tests. The capability is a black box: prompt in, text out,
// no streaming and no retries.
package llm

import "context"

// Generator turns a prompt into response text. Implementations must honor
// context cancellation; the pipeline propagates its deadline into every call.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls the wrapped function.
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
