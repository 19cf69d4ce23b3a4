// Package chatconfig holds the generation settings of a chat and the edit
// session used to change them.
package chatconfig

import "github.com/sashabaranov/go-openai"

// Configuration is the committed generation setup of a chat.
type Configuration struct {
	Model               string  `json:"model" validate:"required"`
	MaxPromptTokens     int     `json:"maxPromptTokens" validate:"gte=0"`
	MaxGenerationTokens int     `json:"maxGenerationTokens" validate:"gte=0"`
	Temperature         float64 `json:"temperature" validate:"gte=0,lte=2"`
	TopP                float64 `json:"top_p" validate:"gte=0,lte=1"`
	PresencePenalty     float64 `json:"presence_penalty" validate:"gte=-2,lte=2"`
	FrequencyPenalty    float64 `json:"frequency_penalty" validate:"gte=-2,lte=2"`
}

// Default returns the configuration new profiles start with.
func Default() Configuration {
	return Configuration{
		Model:               openai.GPT4oMini,
		MaxPromptTokens:     4000,
		MaxGenerationTokens: 1000,
		Temperature:         1,
		TopP:                1,
		PresencePenalty:     0,
		FrequencyPenalty:    0,
	}
}
