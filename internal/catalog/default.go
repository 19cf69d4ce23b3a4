package catalog

import "github.com/sashabaranov/go-openai"

var defaultModels = []Model{
	{ID: openai.GPT3Dot5Turbo, DisplayName: "GPT-3.5 Turbo", Enabled: true, Provider: ProviderOpenAI, MaxModelInputTokens: 16385, MaxModelCompletionTokens: 4096},
	{ID: openai.GPT4, DisplayName: "GPT-4", Enabled: true, Provider: ProviderOpenAI, MaxModelInputTokens: 8192, MaxModelCompletionTokens: 4096},
	{ID: openai.GPT432K, DisplayName: "GPT-4 32K", Enabled: false, Provider: ProviderOpenAI, MaxModelInputTokens: 32768, MaxModelCompletionTokens: 4096},
	{ID: openai.GPT4Turbo, DisplayName: "GPT-4 Turbo", Enabled: true, Provider: ProviderOpenAI, MaxModelInputTokens: 128000, MaxModelCompletionTokens: 4096},
	{ID: openai.GPT4o, DisplayName: "GPT-4o", Enabled: true, Provider: ProviderOpenAI, MaxModelInputTokens: 128000, MaxModelCompletionTokens: 16384},
	{ID: openai.GPT4oMini, DisplayName: "GPT-4o mini", Enabled: true, Provider: ProviderOpenAI, MaxModelInputTokens: 128000, MaxModelCompletionTokens: 16384},
	{ID: openai.O1Mini, DisplayName: "o1-mini", Enabled: true, Provider: ProviderOpenAI, MaxModelInputTokens: 128000, MaxModelCompletionTokens: 65536},
	{ID: "claude-3-5-sonnet-20241022", DisplayName: "Claude 3.5 Sonnet", Enabled: true, Provider: ProviderAnthropic, MaxModelInputTokens: 200000, MaxModelCompletionTokens: 8192},
	{ID: "claude-3-opus-20240229", DisplayName: "Claude 3 Opus", Enabled: true, Provider: ProviderAnthropic, MaxModelInputTokens: 200000, MaxModelCompletionTokens: 4096},
	{ID: "claude-3-haiku-20240307", DisplayName: "Claude 3 Haiku", Enabled: false, Provider: ProviderAnthropic, MaxModelInputTokens: 200000, MaxModelCompletionTokens: 4096},
	{ID: "gemini-1.5-pro", DisplayName: "Gemini 1.5 Pro", Enabled: true, Provider: ProviderGoogle, MaxModelInputTokens: 1048576, MaxModelCompletionTokens: 8192},
	{ID: "gemini-1.0-pro", DisplayName: "Gemini 1.0 Pro", Enabled: false, Provider: ProviderGoogle, MaxModelInputTokens: 30720, MaxModelCompletionTokens: 2048},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultModels...)
	if err != nil {
		// the table above is static; a failure here is a programming error
		panic(err)
	}
	return c
}
