// internal/panel/prompts.go
//
// Prompt assembly for both pipeline stages. Prompts are plain strings
// handed to the text-generation backend; nothing here parses responses.

package panel

import (
	"fmt"
	"strings"

	"github.com/kingrea/boardroom/internal/persona"
)

// questionPrompt asks one persona for 2-3 tough questions about the pitch.
// The persona's backstory sets the voice, the angles steer the content.
func questionPrompt(pitch string, p persona.Persona) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are the %s on a product review panel. %s\n", p.Role, p.Backstory)
	fmt.Fprintf(&b, "Your goal: %s.\n\n", strings.TrimSuffix(p.Goal, "."))
	b.WriteString("Review this roadmap pitch and ask 2-3 tough questions:\n\n")
	b.WriteString("PITCH:\n")
	b.WriteString(pitch)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Ask questions a %s would ask:\n", p.Role)
	for _, angle := range p.Angles {
		b.WriteString("- ")
		b.WriteString(angle)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(p.Charge)
	return b.String()
}

// evaluationPrompt asks for the readiness assessment over the original
// pitch and the composed question transcript.
func evaluationPrompt(pitch, composite string) string {
	var b strings.Builder
	b.WriteString("You are a seasoned CEO chairing a product review panel.\n")
	b.WriteString("Based on the stakeholder questions raised about this pitch, provide a readiness assessment:\n\n")
	b.WriteString("ORIGINAL PITCH:\n")
	b.WriteString(pitch)
	b.WriteString("\n\nSTAKEHOLDER QUESTIONS:\n")
	b.WriteString(composite)
	b.WriteString("\n\nProvide:\n")
	b.WriteString("1. **Readiness Score**: 1-10 (10 = ready to present to real stakeholders)\n")
	b.WriteString("2. **Strengths**: What's strong about this pitch?\n")
	b.WriteString("3. **Gaps**: What needs more work before the real meeting?\n")
	b.WriteString("4. **Suggested Improvements**: 3 specific things to add or clarify\n\n")
	b.WriteString("Be honest and helpful. The goal is to make them better prepared.")
	return b.String()
}
