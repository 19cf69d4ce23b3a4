package cmd

import (
	"io"
	"log"

	"github.com/rs/zerolog"

	"github.com/Rorical/RoriChat/internal/app"
	"github.com/Rorical/RoriChat/internal/catalog"
	"github.com/Rorical/RoriChat/internal/config"
	"github.com/Rorical/RoriChat/internal/i18n"
	"github.com/Rorical/RoriChat/internal/logger"
)

// session bundles what every command reads at startup.
type session struct {
	env        config.Env
	config     *config.Config
	catalog    *catalog.Catalog
	translator *i18n.Translator
	log        zerolog.Logger
	logCloser  io.Closer
}

func mustLoad() *session {
	env, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}

	lg, closer, err := logger.New(env.LogPath(), env.LogLevel)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}

	cat, err := catalog.LoadOrDefault(env.CatalogPath())
	if err != nil {
		lg.Warn().Err(err).Str("path", env.CatalogPath()).Msg("falling back to built-in model catalog")
		cat = catalog.Default()
	}

	cfg, err := config.LoadConfig(env, cat)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	bundle, err := i18n.Load()
	if err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

	return &session{
		env:        env,
		config:     cfg,
		catalog:    cat,
		translator: bundle.Translator(env.PreferredLocale()),
		log:        lg,
		logCloser:  closer,
	}
}

func (s *session) close() {
	_ = s.logCloser.Close()
}

func (s *session) visibility() catalog.Visibility {
	return catalog.DefaultVisibility(s.env.AnthropicEnabled())
}

func (s *session) appDeps() app.Deps {
	return app.Deps{
		Config:     s.config,
		Catalog:    s.catalog,
		Visibility: s.visibility(),
		Translator: s.translator,
		Log:        s.log,
		Advanced:   advanced,
	}
}

// runChat starts the chat application and blocks until it exits.
func (s *session) runChat() {
	application, err := app.NewApplication(s.appDeps())
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer application.Stop()

	if err := application.Start(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}
