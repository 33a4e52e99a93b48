package playground

import (
	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render("termtint playground"),
		helpStyle.Render("type utility classes • esc or ctrl+c quits"),
		m.input.View(),
	}

	if m.applyErr != nil {
		sections = append(sections, errorStyle.Render(m.applyErr.Error()))
	}

	sections = append(sections,
		sectionStyle.Render("Markup"),
		m.markup,
		sectionStyle.Render("Preview"),
		m.preview,
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}
