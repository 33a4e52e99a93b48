package playground

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/termtint/internal/logger"
	"github.com/alexisbeaulieu97/termtint/pkg/classes"
	"github.com/alexisbeaulieu97/termtint/pkg/element"
	"github.com/alexisbeaulieu97/termtint/pkg/render"
)

// Model contains the Bubbletea state for the interactive styling playground.
// The user edits a utility-class string and sees the serialized markup and
// its ANSI expansion update live.
type Model struct {
	input    textinput.Model
	text     string
	writer   *render.Writer
	log      *logger.Logger
	markup   string
	preview  string
	applyErr error
	quitting bool
}

// NewModel constructs a playground model styling text. The writer supplies
// the ANSI expansion shown in the preview pane.
func NewModel(text string, writer *render.Writer, log *logger.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "bg-red-500 px-2 font-bold"
	ti.CharLimit = 156
	ti.Width = 50
	ti.Focus()

	m := Model{
		input:  ti,
		text:   text,
		writer: writer,
		log:    log.WithComponent("playground"),
	}
	m.refresh()

	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// refresh recomputes markup and preview from the current class string. A
// failing class string keeps the last good preview on screen and surfaces
// the error instead of blanking the panes.
func (m *Model) refresh() {
	e, err := classes.Apply(element.New(m.text, nil), m.input.Value())
	if err != nil {
		m.applyErr = err
		m.log.Debug("class string rejected")
		return
	}

	m.applyErr = nil
	m.markup = e.String()
	m.preview = m.writer.Expand(m.markup)
}
