package core

import (
	"github.com/pkoukk/tiktoken-go"
	"github.com/sashabaranov/go-openai"
)

const (
	tokensPerMessage = 3 // <im_start>{role}\n{content}<im_end>\n
	tokensPerReply   = 3 // every reply is primed with <im_start>assistant
	charsPerToken    = 4
)

// TokenCounter estimates the prompt size of a conversation.
type TokenCounter interface {
	CountMessages(messages []openai.ChatCompletionMessage) int
}

type tiktokenCounter struct {
	encoding *tiktoken.Tiktoken
}

// NewTokenCounter counts with the cl100k_base encoding. When the encoding
// cannot be loaded it falls back to a character based estimate.
func NewTokenCounter() TokenCounter {
	encoding, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return estimateCounter{}
	}
	return &tiktokenCounter{encoding: encoding}
}

func (c *tiktokenCounter) CountMessages(messages []openai.ChatCompletionMessage) int {
	total := tokensPerReply
	for _, m := range messages {
		total += tokensPerMessage
		total += len(c.encoding.Encode(m.Role, nil, nil))
		total += len(c.encoding.Encode(m.Content, nil, nil))
	}
	return total
}

type estimateCounter struct{}

func (estimateCounter) CountMessages(messages []openai.ChatCompletionMessage) int {
	total := tokensPerReply
	for _, m := range messages {
		total += tokensPerMessage + (len(m.Role)+len(m.Content)+charsPerToken-1)/charsPerToken
	}
	return total
}

// TrimToBudget drops the oldest messages until the conversation fits in
// budget tokens. A leading system message and the newest message are always
// kept, so the result may still exceed a very small budget. A budget of 0
// or less means no limit.
func TrimToBudget(messages []openai.ChatCompletionMessage, budget int, counter TokenCounter) []openai.ChatCompletionMessage {
	if budget <= 0 || len(messages) == 0 || counter.CountMessages(messages) <= budget {
		return messages
	}

	var head []openai.ChatCompletionMessage
	rest := messages
	if rest[0].Role == openai.ChatMessageRoleSystem {
		head, rest = rest[:1], rest[1:]
	}

	for len(rest) > 1 {
		rest = rest[1:]
		candidate := append(append([]openai.ChatCompletionMessage{}, head...), rest...)
		if counter.CountMessages(candidate) <= budget {
			return candidate
		}
	}

	return append(append([]openai.ChatCompletionMessage{}, head...), rest...)
}
