package playground

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/termtint/internal/logger"
	"github.com/alexisbeaulieu97/termtint/pkg/render"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	w := render.NewWriter(io.Discard)
	w.SetColorProfile(termenv.Ascii)

	log, err := logger.New(logger.Options{Writer: io.Discard})
	require.NoError(t, err)

	return NewModel("Hello", w, log)
}

func typeString(t *testing.T, m Model, s string) Model {
	t.Helper()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return updated.(Model)
}

func TestNewModelComputesInitialPreview(t *testing.T) {
	m := newTestModel(t)

	require.True(t, m.input.Focused())
	require.NoError(t, m.applyErr)
	require.Equal(t, "<options=>Hello</>", m.markup)
	require.Equal(t, "Hello", m.preview)
}

func TestModelInitReturnsBlinkCommand(t *testing.T) {
	m := newTestModel(t)
	require.NotNil(t, m.Init())
}
