package core

import (
	"sync"

	"github.com/sashabaranov/go-openai"

	"github.com/Rorical/RoriChat/internal/chatconfig"
	"github.com/Rorical/RoriChat/internal/models"
)

// ChatState manages the conversation state for event-driven architecture
type ChatState struct {
	mu           sync.RWMutex
	systemPrompt string
	chatHistory  []openai.ChatCompletionMessage // what is sent to the API
	timeline     []models.Message               // what the UI shows, in order
	config       chatconfig.Configuration
	isProcessing bool
	lastError    error
}

func NewChatState(cfg chatconfig.Configuration, systemPrompt string) *ChatState {
	return &ChatState{
		systemPrompt: systemPrompt,
		config:       cfg,
	}
}

func (cs *ChatState) Config() chatconfig.Configuration {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.config
}

func (cs *ChatState) SetConfig(cfg chatconfig.Configuration) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.config = cfg
}

func (cs *ChatState) GetChatHistory() []openai.ChatCompletionMessage {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	result := make([]openai.ChatCompletionMessage, len(cs.chatHistory))
	copy(result, cs.chatHistory)
	return result
}

// GetChatHistoryWithSystemPrompt prepends the system prompt, if any, to the
// conversation history.
func (cs *ChatState) GetChatHistoryWithSystemPrompt() []openai.ChatCompletionMessage {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	result := make([]openai.ChatCompletionMessage, 0, len(cs.chatHistory)+1)
	if cs.systemPrompt != "" {
		result = append(result, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: cs.systemPrompt,
		})
	}
	return append(result, cs.chatHistory...)
}

func (cs *ChatState) GetMessages() []models.Message {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	result := make([]models.Message, len(cs.timeline))
	copy(result, cs.timeline)
	return result
}

func (cs *ChatState) IsProcessing() bool {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.isProcessing
}

func (cs *ChatState) GetLastError() error {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.lastError
}

// AddProgramMessage adds a program message (welcome, status, etc.)
func (cs *ChatState) AddProgramMessage(content string) {
	cs.addTimeline(models.Program, content)
}

// AddSystemNotice adds a notice the user sees but the model does not.
func (cs *ChatState) AddSystemNotice(content string) {
	cs.addTimeline(models.System, content)
}

func (cs *ChatState) addTimeline(t models.MessageType, content string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.timeline = append(cs.timeline, models.Message{Content: content, Type: t})
}

// Atomic operations for event ordering
func (cs *ChatState) StartProcessingWithUserMessage(content string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.isProcessing = true
	cs.lastError = nil
	cs.chatHistory = append(cs.chatHistory, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: content,
	})
	cs.timeline = append(cs.timeline, models.Message{Content: content, Type: models.User})
}

func (cs *ChatState) FinishProcessingWithAssistantMessage(content string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.isProcessing = false
	cs.lastError = nil
	cs.chatHistory = append(cs.chatHistory, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleAssistant,
		Content: content,
	})
	cs.timeline = append(cs.timeline, models.Message{Content: content, Type: models.Assistant})
}

func (cs *ChatState) FinishProcessingWithError(err error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.isProcessing = false
	cs.lastError = err
}

func (cs *ChatState) FinishProcessing() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.isProcessing = false
	cs.lastError = nil
}
