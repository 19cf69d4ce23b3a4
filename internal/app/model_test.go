package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriChat/internal/catalog"
	"github.com/Rorical/RoriChat/internal/config"
	"github.com/Rorical/RoriChat/internal/dispatcher"
	"github.com/Rorical/RoriChat/internal/eventbus"
	"github.com/Rorical/RoriChat/internal/models"
	"github.com/Rorical/RoriChat/internal/update"
	"github.com/Rorical/RoriChat/ui/configmenu"
)

func newTestModel(t *testing.T) (*AppModel, config.Env, *eventbus.EventBus) {
	t.Helper()
	env := config.Env{Home: t.TempDir()}
	cfg, err := config.LoadConfig(env, catalog.Default())
	require.NoError(t, err)

	eb := eventbus.NewEventBus()
	m := newAppModel(Deps{
		Config:     cfg,
		Catalog:    catalog.Default(),
		Visibility: catalog.DefaultVisibility(false),
		Log:        zerolog.Nop(),
	}, dispatcher.NewEventDispatcher(eb), true)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, env, eb
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func open(t *testing.T, m *AppModel) {
	t.Helper()
	_, cmd := m.Update(key(tea.KeyCtrlO))
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, update.OpenConfigMsg{}, msg)
	m.Update(msg)
	require.NotNil(t, m.menu)
	require.True(t, m.appModel.ConfigOpen)
}

func TestAppModel_MenuCommitPersistsAndNotifiesCore(t *testing.T) {
	m, env, eb := newTestModel(t)
	open(t, m)

	m.Update(key(tea.KeyTab))
	m.Update(key(tea.KeyRight))
	m.Update(key(tea.KeyEsc))

	assert.Nil(t, m.menu)
	assert.False(t, m.appModel.ConfigOpen)

	event := <-eb.UIToCore()
	ev, ok := event.(eventbus.UpdateConfigEvent)
	require.True(t, ok)
	assert.Equal(t, 4001, ev.Config.MaxPromptTokens)

	reloaded, err := config.LoadConfig(env, catalog.Default())
	require.NoError(t, err)
	assert.Equal(t, ev.Config, reloaded.ChatConfig())
}

func TestAppModel_TypingGoesToMenuWhileOpen(t *testing.T) {
	m, _, _ := newTestModel(t)
	open(t, m)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})
	assert.Empty(t, m.appModel.Input)
	assert.NotEmpty(t, m.View())
}

func TestAppModel_CtrlCQuitsWithoutCommit(t *testing.T) {
	m, env, eb := newTestModel(t)
	open(t, m)

	_, cmd := m.Update(key(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, eb.UIToCore())

	reloaded, err := config.LoadConfig(env, catalog.Default())
	require.NoError(t, err)
	assert.Equal(t, m.config.ChatConfig(), reloaded.ChatConfig())
}

func TestAppModel_ClosedMsgIgnoredAfterClose(t *testing.T) {
	m, _, _ := newTestModel(t)
	_, cmd := m.Update(configmenu.ClosedMsg{})
	assert.Nil(t, cmd)
	assert.Nil(t, m.menu)
}

func TestAppModel_CoreEventsKeepListening(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := m.Update(dispatcher.CoreEventMsg{Event: eventbus.StateUpdateEvent{
		Messages: []models.Message{{Content: "hi", Type: models.Program}},
		Model:    "gpt-4o",
	}})
	assert.NotNil(t, cmd)
	assert.Equal(t, "gpt-4o", m.appModel.Model)
	assert.Contains(t, m.View(), "hi")
}

func TestAppModel_MenuFillsScreenAndBackdropCommits(t *testing.T) {
	m, _, eb := newTestModel(t)
	open(t, m)

	view := m.View()
	assert.Equal(t, 40, lipgloss.Height(view))
	assert.Equal(t, 100, lipgloss.Width(view))

	m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Nil(t, m.menu)
	assert.IsType(t, eventbus.UpdateConfigEvent{}, <-eb.UIToCore())
}
