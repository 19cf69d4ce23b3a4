package update

import (
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriChat/internal/dispatcher"
	"github.com/Rorical/RoriChat/internal/eventbus"
	"github.com/Rorical/RoriChat/internal/models"
)

// OpenConfigMsg asks the app to show the chat config menu.
type OpenConfigMsg struct{}

// HandleKeyMsgWithEventBus handles keyboard input using event bus
func HandleKeyMsgWithEventBus(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus, chatReady bool) tea.Cmd {
	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		return tea.Quit
	case tea.KeyCtrlO:
		return func() tea.Msg { return OpenConfigMsg{} }
	case tea.KeyEnter:
		if strings.TrimSpace(appModel.Input) == "" {
			return nil
		}
		if !chatReady {
			appModel.Input = ""
			appModel.Status = "Chat service not available"
			return nil
		}
		if err := eb.SendToCore(eventbus.SendMessageEvent{Message: appModel.Input}); err != nil {
			appModel.Status = "Error sending message: " + err.Error()
			return nil
		}
		// Only manage local UI state - clear input
		appModel.Input = ""
	case tea.KeyBackspace:
		if len(appModel.Input) > 0 {
			_, size := utf8.DecodeLastRuneInString(appModel.Input)
			appModel.Input = appModel.Input[:len(appModel.Input)-size]
		}
	case tea.KeySpace:
		appModel.Input += " "
	case tea.KeyRunes:
		appModel.Input += string(keyMsg.Runes)
	}
	return nil
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg dispatcher.CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.StateUpdateEvent:
		// core only sends messages the UI has not seen yet
		appModel.Messages = append(appModel.Messages, event.Messages...)
		appModel.Loading = event.IsProcessing
		if event.Model != "" {
			appModel.Model = event.Model
		}

		switch {
		case event.Error != nil:
			appModel.Status = "Error: " + event.Error.Error()
		case event.IsProcessing:
			appModel.Status = "Processing"
		default:
			appModel.Status = "Ready"
		}
	}

	return nil
}

type TickMsg time.Time

func TickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
}

func HandleTickMsg(appModel *models.AppModel) tea.Cmd {
	// Only handle UI animations - loading dots
	if appModel.Loading {
		appModel.LoadingDots = (appModel.LoadingDots + 1) % 4
	}
	return TickCmd()
}
