package playground

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestUpdateRecomputesOnTyping(t *testing.T) {
	m := typeString(t, newTestModel(t), "font-bold")

	require.Equal(t, "font-bold", m.input.Value())
	require.NoError(t, m.applyErr)
	require.Equal(t, "<options=bold>Hello</>", m.markup)
}

func TestUpdateKeepsLastGoodPreviewOnError(t *testing.T) {
	m := typeString(t, newTestModel(t), "font-bold")
	m = typeString(t, m, " sparkle")

	require.Error(t, m.applyErr)
	require.Contains(t, m.applyErr.Error(), "sparkle")
	require.Equal(t, "<options=bold>Hello</>", m.markup, "last good markup stays")
}

func TestUpdateQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		updated, cmd := newTestModel(t).Update(tea.KeyMsg{Type: key})
		m := updated.(Model)

		require.True(t, m.quitting)
		require.NotNil(t, cmd)
		require.IsType(t, tea.QuitMsg{}, cmd())
	}
}
