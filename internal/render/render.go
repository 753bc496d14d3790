// internal/render/render.go
//
// Terminal rendering for finished sessions. Everything here is pure
// string composition over lipgloss styles; the CLI decides when to print.

package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/boardroom/internal/panel"
)

const (
	colorCEO      = "#FF6B6B"
	colorCTO      = "#5B8DEF"
	colorDesign   = "#3DDC97"
	colorVerdict  = "#F4D35E"
	colorNeutral  = "#444444"
	colorDim      = "#888888"
	defaultMargin = 1
)

var roleColors = map[string]lipgloss.Color{
	"CEO":            lipgloss.Color(colorCEO),
	"CTO":            lipgloss.Color(colorCTO),
	"Head of Design": lipgloss.Color(colorDesign),
}

func roleColor(role string) lipgloss.Color {
	if c, ok := roleColors[role]; ok {
		return c
	}
	return lipgloss.Color(colorNeutral)
}

func panelStyle(border lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Margin(0, 0, defaultMargin, 0)
}

func titleStyle(fg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(fg)
}

// Banner renders the application header shown before a session starts.
func Banner(model string) string {
	title := titleStyle(lipgloss.Color(colorCTO)).Render("boardroom")
	sub := lipgloss.NewStyle().Foreground(lipgloss.Color(colorDim)).
		Render("Flight simulator for product managers · model " + model)
	return panelStyle(lipgloss.Color(colorNeutral)).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, sub))
}

// Questions renders one persona's question block.
func Questions(qs panel.QuestionSet) string {
	color := roleColor(qs.Role)
	head := titleStyle(color).Render(qs.Role + " Questions")
	return panelStyle(color).
		Render(lipgloss.JoinVertical(lipgloss.Left, head, "", qs.Text))
}

// Assessment renders the final readiness verdict.
func Assessment(a panel.Assessment) string {
	color := lipgloss.Color(colorVerdict)
	head := titleStyle(color).Render("Readiness Assessment")
	return panelStyle(color).
		Render(lipgloss.JoinVertical(lipgloss.Left, head, "", a.Text))
}

// Outcome renders a full finished session: every question block in
// transcript order followed by the assessment.
func Outcome(o *panel.Outcome) string {
	if o == nil {
		return ""
	}
	parts := make([]string, 0, len(o.Transcript)+1)
	for _, qs := range o.Transcript {
		parts = append(parts, Questions(qs))
	}
	parts = append(parts, Assessment(o.Assessment))
	return strings.Join(parts, "\n")
}

// Panel renders an arbitrary titled block, used for the example pitch.
func Panel(title, body string) string {
	head := titleStyle(lipgloss.Color(colorCTO)).Render(title)
	return panelStyle(lipgloss.Color(colorNeutral)).
		Render(lipgloss.JoinVertical(lipgloss.Left, head, "", body))
}

// Note renders a dim one-line status message.
func Note(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(colorDim)).Render(text)
}
