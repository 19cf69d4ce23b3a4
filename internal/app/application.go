package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/Rorical/RoriChat/internal/catalog"
	"github.com/Rorical/RoriChat/internal/config"
	"github.com/Rorical/RoriChat/internal/core"
	"github.com/Rorical/RoriChat/internal/dispatcher"
	"github.com/Rorical/RoriChat/internal/eventbus"
	"github.com/Rorical/RoriChat/internal/i18n"
	"github.com/Rorical/RoriChat/internal/models"
	"github.com/Rorical/RoriChat/ui/configmenu"
)

// Deps is everything the application reads at startup.
type Deps struct {
	Config     *config.Config
	Catalog    *catalog.Catalog
	Visibility catalog.Visibility
	Translator *i18n.Translator
	Log        zerolog.Logger

	// Advanced mounts the sampling controls in the config menu.
	Advanced bool
}

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.ChatService
	model      *AppModel
	log        zerolog.Logger
}

func NewApplication(d Deps) (*Application, error) {
	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(err eventbus.EventBusError) {
		d.Log.Warn().Err(err.Err).Str("operation", err.Operation).Msg("event bus error")
	})

	disp := dispatcher.NewEventDispatcher(eb)

	// Initialize chat service (always create, handles invalid config internally)
	chatService, err := core.NewChatService(d.Config, eb, core.WithLogger(d.Log))
	if err != nil {
		d.Log.Error().Err(err).Msg("failed to initialize chat service")
		return nil, err
	}

	model := newAppModel(d, disp, chatService.IsReady())

	return &Application{
		config:     d.Config,
		eventBus:   eb,
		dispatcher: disp,
		service:    chatService,
		model:      model,
		log:        d.Log,
	}, nil
}

func newAppModel(d Deps, disp *dispatcher.EventDispatcher, ready bool) *AppModel {
	menuOpts := []configmenu.Option{configmenu.WithLogger(d.Log)}
	if d.Advanced {
		menuOpts = append(menuOpts, configmenu.WithSamplingControls())
	}

	return &AppModel{
		// No initial messages in UI - they come from core as single source of truth
		appModel: models.AppModel{
			Status:           "Ready",
			Model:            d.Config.GetModel(),
			ChatServiceReady: ready,
		},
		dispatcher: disp,
		config:     d.Config,
		menuDeps: configmenu.Deps{
			Catalog:    d.Catalog,
			Visibility: d.Visibility,
			Translator: d.Translator,
		},
		menuOpts: menuOpts,
		log:      d.Log,
	}
}

func (app *Application) Start() error {
	app.log.Info().Str("profile", app.config.ActiveProfile).Msg("starting chat app")
	app.service.Start()

	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()
}
