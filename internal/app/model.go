package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/Rorical/RoriChat/internal/chatconfig"
	"github.com/Rorical/RoriChat/internal/config"
	"github.com/Rorical/RoriChat/internal/dispatcher"
	"github.com/Rorical/RoriChat/internal/eventbus"
	"github.com/Rorical/RoriChat/internal/models"
	"github.com/Rorical/RoriChat/internal/update"
	"github.com/Rorical/RoriChat/ui/components"
	"github.com/Rorical/RoriChat/ui/configmenu"
)

type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
	config     *config.Config
	menu       *configmenu.Menu
	menuDeps   configmenu.Deps
	menuOpts   []configmenu.Option
	log        zerolog.Logger
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		update.TickCmd(),
		m.dispatcher.ListenForCoreEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(dispatcher.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForCoreEvents())
	}

	switch msg.(type) {
	case update.OpenConfigMsg:
		return m, m.openMenu()
	case configmenu.ClosedMsg:
		return m, nil
	}

	if m.menu != nil {
		return m, m.updateMenu(msg)
	}

	// Handle other events through the event bus
	eventBus := m.dispatcher.GetEventBus()
	chatReady := m.appModel.ChatServiceReady
	cmd := update.HandleUpdateWithEventBus(&m.appModel, msg, eventBus, chatReady)

	return m, cmd
}

func (m *AppModel) openMenu() tea.Cmd {
	if m.menu != nil {
		return nil
	}

	opts := append([]configmenu.Option{configmenu.WithSize(m.appModel.Width, m.appModel.Height)}, m.menuOpts...)
	m.menu = configmenu.New(m.config.ChatConfig(), m.applyConfig, m.setConfigOpen, m.menuDeps, opts...)
	m.appModel.ConfigOpen = true

	return tea.Batch(m.menu.Init(), tea.EnableMouseCellMotion)
}

// updateMenu routes input to the open menu. Window size and ticks still
// reach the chat view underneath.
func (m *AppModel) updateMenu(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return tea.Quit
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSizeMsg(&m.appModel, msg)
	case update.TickMsg:
		return update.HandleTickMsg(&m.appModel)
	}

	_, cmd := m.menu.Update(msg)
	cmds = append(cmds, cmd)

	if !m.appModel.ConfigOpen {
		m.menu = nil
		cmds = append(cmds, tea.DisableMouse)
	}
	return tea.Batch(cmds...)
}

func (m *AppModel) setConfigOpen(open bool) {
	m.appModel.ConfigOpen = open
}

// applyConfig stores a committed configuration in the active profile,
// writes the profiles file and hands the configuration to the core.
func (m *AppModel) applyConfig(cfg chatconfig.Configuration) {
	if err := m.config.SetChatConfig(cfg); err != nil {
		m.log.Error().Err(err).Msg("rejected chat config")
		m.appModel.Status = "Error: " + err.Error()
		return
	}
	if err := m.config.Save(); err != nil {
		m.log.Error().Err(err).Str("path", m.config.Path()).Msg("failed to save config")
		m.appModel.Status = "Error saving config: " + err.Error()
	}

	m.appModel.Model = cfg.Model
	if err := m.dispatcher.GetEventBus().SendToCore(eventbus.UpdateConfigEvent{Config: cfg}); err != nil {
		m.appModel.Status = "Error sending config: " + err.Error()
	}
}

func (m *AppModel) View() string {
	if m.menu != nil {
		return m.menu.View()
	}

	var b strings.Builder

	b.WriteString(components.RenderMessages(m.appModel.Messages, m.appModel.Width))
	b.WriteString(components.RenderInput(m.appModel.Input, m.appModel.Width))
	b.WriteString("\n")
	b.WriteString(components.RenderStatus(m.appModel.Status, m.appModel.Model, m.appModel.Loading, m.appModel.LoadingDots, m.appModel.Width))

	return b.String()
}
