package configmenu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandalone_QuitsAfterCommit(t *testing.T) {
	rec := &recorder{}
	s := NewStandalone(New(baseConfig("big"), rec.setConfig, rec.setOpen, testDeps(t)))

	_, cmd := s.Update(keyType(tea.KeyEsc))
	require.NotNil(t, cmd)
	closed := cmd()
	require.IsType(t, ClosedMsg{}, closed)
	require.Len(t, rec.configs, 1)

	_, cmd = s.Update(closed)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, s.View())
}

func TestStandalone_CtrlCDoesNotCommit(t *testing.T) {
	rec := &recorder{}
	s := NewStandalone(New(baseConfig("big"), rec.setConfig, rec.setOpen, testDeps(t)))

	_, cmd := s.Update(keyType(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, rec.configs)
	assert.NotEmpty(t, s.View())
}
