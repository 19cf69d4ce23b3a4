package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	"github.com/Rorical/RoriChat/internal/chatconfig"
	"github.com/Rorical/RoriChat/internal/config"
	"github.com/Rorical/RoriChat/internal/eventbus"
	"github.com/Rorical/RoriChat/internal/models"
)

const systemPrompt = "You are RoriChat, a helpful assistant in a terminal. Answer concisely and use Markdown when it helps."

var ErrNoClient = errors.New("OpenAI integration not available")

// ChatClient is the part of the OpenAI client the service uses.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Option func(*ChatService)

// WithClient replaces the client built from the profile.
func WithClient(c ChatClient) Option {
	return func(cs *ChatService) { cs.client = c }
}

func WithTokenCounter(c TokenCounter) Option {
	return func(cs *ChatService) { cs.counter = c }
}

func WithLogger(log zerolog.Logger) Option {
	return func(cs *ChatService) { cs.log = log }
}

type ChatService struct {
	client        ChatClient
	counter       TokenCounter
	config        *config.Config
	state         *ChatState
	eventBus      *eventbus.EventBus
	log           zerolog.Logger
	ctx           context.Context
	cancel        context.CancelFunc
	lastSentCount int // Track how many messages we've sent to UI
}

// NewChatService creates a ChatService regardless of config validity
// This ensures we always have a service to manage state
func NewChatService(cfg *config.Config, eb *eventbus.EventBus, opts ...Option) (*ChatService, error) {
	ctx, cancel := context.WithCancel(context.Background())

	service := &ChatService{
		config:   cfg,
		state:    NewChatState(cfg.ChatConfig(), systemPrompt),
		eventBus: eb,
		log:      zerolog.Nop(),
		ctx:      ctx,
		cancel:   cancel,
	}

	// Only create OpenAI client if config is valid
	if cfg.IsValid() {
		clientConfig := openai.DefaultConfig(cfg.GetAPIKey())
		if cfg.GetBaseURL() != "" {
			clientConfig.BaseURL = cfg.GetBaseURL()
		}
		service.client = openai.NewClientWithConfig(clientConfig)
	}

	for _, opt := range opts {
		opt(service)
	}
	if service.counter == nil {
		service.counter = NewTokenCounter()
	}

	service.addWelcomeMessages(cfg)

	return service, nil
}

// Start runs the core logic in a goroutine
func (cs *ChatService) Start() {
	// Send initial state to UI immediately
	cs.pushStateToUI()
	go cs.eventLoop()
}

func (cs *ChatService) Stop() {
	cs.cancel()
}

func (cs *ChatService) eventLoop() {
	for {
		select {
		case <-cs.ctx.Done():
			return
		case event, ok := <-cs.eventBus.UIToCore():
			if !ok {
				return
			}
			cs.handleUIEvent(event)
		}
	}
}

func (cs *ChatService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.SendMessageEvent:
		cs.processMessage(e.Message)
	case eventbus.UpdateConfigEvent:
		cs.updateConfig(e.Config)
	}
}

func (cs *ChatService) processMessage(userMessage string) {
	// Atomic update: Set processing and add user message
	cs.state.StartProcessingWithUserMessage(userMessage)
	cs.pushStateToUI()

	if cs.client == nil {
		cs.state.FinishProcessingWithError(ErrNoClient)
		cs.pushStateToUI()
		return
	}

	chat := cs.state.Config()
	history := cs.state.GetChatHistoryWithSystemPrompt()
	messages := TrimToBudget(history, chat.MaxPromptTokens, cs.counter)
	if dropped := len(history) - len(messages); dropped > 0 {
		cs.log.Debug().
			Int("dropped", dropped).
			Int("budget", chat.MaxPromptTokens).
			Msg("trimmed conversation history")
	}

	resp, err := cs.client.CreateChatCompletion(cs.ctx, BuildRequest(chat, messages))
	if err != nil {
		cs.log.Error().Err(err).Str("model", chat.Model).Msg("chat completion failed")
		cs.state.FinishProcessingWithError(fmt.Errorf("OpenAI API error: %w", err))
		cs.pushStateToUI()
		return
	}

	if len(resp.Choices) > 0 && resp.Choices[0].Message.Content != "" {
		cs.state.FinishProcessingWithAssistantMessage(resp.Choices[0].Message.Content)
	} else {
		cs.state.FinishProcessing()
	}

	cs.log.Debug().
		Str("model", chat.Model).
		Int("prompt_tokens", resp.Usage.PromptTokens).
		Int("completion_tokens", resp.Usage.CompletionTokens).
		Msg("chat completion")
	cs.pushStateToUI()
}

func (cs *ChatService) updateConfig(cfg chatconfig.Configuration) {
	cs.state.SetConfig(cfg)
	cs.state.AddSystemNotice(describeConfig(cfg))
	cs.log.Info().Str("model", cfg.Model).Msg("chat config updated")
	cs.pushStateToUI()
}

func describeConfig(cfg chatconfig.Configuration) string {
	return fmt.Sprintf("Model: %s | max prompt tokens: %d | max generation tokens: %d | temperature: %s",
		cfg.Model, cfg.MaxPromptTokens, cfg.MaxGenerationTokens,
		chatconfig.TemperatureRange.Format(cfg.Temperature))
}

func (cs *ChatService) pushStateToUI() {
	allMessages := cs.state.GetMessages()

	// Only send new messages to reduce resource usage
	newMessages := allMessages[cs.lastSentCount:]
	cs.lastSentCount = len(allMessages)

	if err := cs.eventBus.SendToUI(eventbus.StateUpdateEvent{
		Messages:     newMessages,
		IsProcessing: cs.state.IsProcessing(),
		Error:        cs.state.GetLastError(),
		Model:        cs.state.Config().Model,
	}); err != nil {
		cs.log.Warn().Err(err).Msg("failed to send state to UI")
	}
}

func (cs *ChatService) IsReady() bool {
	return cs.config.IsValid()
}

// GetInitialMessages returns the initial messages for printing to terminal
func (cs *ChatService) GetInitialMessages() []models.Message {
	return cs.state.GetMessages()
}

func (cs *ChatService) addWelcomeMessages(cfg *config.Config) {
	cs.state.AddProgramMessage("-- RORICHAT --")

	if cfg.IsValid() {
		cs.state.AddProgramMessage(fmt.Sprintf("Active Profile: %s [OK]", cfg.ActiveProfile))
		cs.state.AddProgramMessage("Ready to chat! Type your message and press Enter")
	} else {
		cs.state.AddProgramMessage(fmt.Sprintf("Active Profile: %s [NOT CONFIGURED]", cfg.ActiveProfile))
		cs.state.AddProgramMessage("Configure your profile to start chatting:")
		cs.state.AddProgramMessage("• Run: roricode profile add <name>")
		cs.state.AddProgramMessage("• Or edit: " + cfg.Path())
	}

	cs.state.AddProgramMessage("Controls: Ctrl+O model settings, Ctrl+C to exit")
}
