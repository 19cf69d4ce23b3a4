package core

import (
	"math"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/Rorical/RoriChat/internal/chatconfig"
)

// reasoning models reject max_tokens and the sampling parameters
var reasoningPrefixes = []string{"o1", "o3", "o4"}

func isReasoningModel(model string) bool {
	for _, p := range reasoningPrefixes {
		if model == p || strings.HasPrefix(model, p+"-") {
			return true
		}
	}
	return false
}

// BuildRequest maps a chat configuration onto a completion request.
func BuildRequest(cfg chatconfig.Configuration, messages []openai.ChatCompletionMessage) openai.ChatCompletionRequest {
	req := openai.ChatCompletionRequest{
		Model:    cfg.Model,
		Messages: messages,
	}

	if isReasoningModel(cfg.Model) {
		req.MaxCompletionTokens = cfg.MaxGenerationTokens
		return req
	}

	req.MaxTokens = cfg.MaxGenerationTokens
	req.Temperature = explicitZero(cfg.Temperature)
	req.TopP = explicitZero(cfg.TopP)
	req.PresencePenalty = float32(cfg.PresencePenalty)
	req.FrequencyPenalty = float32(cfg.FrequencyPenalty)
	return req
}

// explicitZero keeps a zero value on the wire. The request fields are
// omitempty and the API treats a missing temperature or top_p as 1.
func explicitZero(v float64) float32 {
	if v == 0 {
		return math.SmallestNonzeroFloat32
	}
	return float32(v)
}
