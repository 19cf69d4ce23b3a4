package chatconfig

import "github.com/Rorical/RoriChat/internal/catalog"

// ModelLookup resolves a model id to its catalog entry.
type ModelLookup interface {
	Lookup(id string) (catalog.Model, bool)
}

// Session is an editable copy of a Configuration. Token fields always stay
// within the ceilings of the session's current model.
type Session struct {
	draft  Configuration
	models ModelLookup
}

// NewSession copies cfg and clamps its token fields to the model's ceilings.
func NewSession(cfg Configuration, models ModelLookup) *Session {
	s := &Session{draft: cfg, models: models}
	s.reclamp()
	return s
}

// Draft returns the current value of the session.
func (s *Session) Draft() Configuration {
	return s.draft
}

func (s *Session) Model() string {
	return s.draft.Model
}

// ModelInfo returns the catalog entry of the current model.
func (s *Session) ModelInfo() (catalog.Model, bool) {
	if s.draft.Model == "" || s.models == nil {
		return catalog.Model{}, false
	}
	return s.models.Lookup(s.draft.Model)
}

// PromptCeiling is the input token limit of the current model. Models the
// catalog does not know fall back to the slider scale.
func (s *Session) PromptCeiling() int {
	if m, ok := s.ModelInfo(); ok {
		return m.MaxModelInputTokens
	}
	return AbsoluteMaxPromptTokens
}

// GenerationCeiling is the completion token limit of the current model.
func (s *Session) GenerationCeiling() int {
	if m, ok := s.ModelInfo(); ok {
		return m.MaxModelCompletionTokens
	}
	return AbsoluteMaxGenerationTokens
}

// SetModel switches the model and re-clamps both token fields against the
// new model's ceilings, starting from the draft values.
func (s *Session) SetModel(id string) {
	s.draft.Model = id
	s.reclamp()
}

func (s *Session) SetMaxPromptTokens(v int) int {
	s.draft.MaxPromptTokens = Clamp(v, s.PromptCeiling())
	return s.draft.MaxPromptTokens
}

func (s *Session) SetMaxGenerationTokens(v int) int {
	s.draft.MaxGenerationTokens = Clamp(v, s.GenerationCeiling())
	return s.draft.MaxGenerationTokens
}

func (s *Session) SetTemperature(v float64) {
	s.draft.Temperature = TemperatureRange.Clamp(v)
}

func (s *Session) SetTopP(v float64) {
	s.draft.TopP = TopPRange.Clamp(v)
}

func (s *Session) SetPresencePenalty(v float64) {
	s.draft.PresencePenalty = PresencePenaltyRange.Clamp(v)
}

func (s *Session) SetFrequencyPenalty(v float64) {
	s.draft.FrequencyPenalty = FrequencyPenaltyRange.Clamp(v)
}

func (s *Session) reclamp() {
	s.draft.MaxPromptTokens = Clamp(s.draft.MaxPromptTokens, s.PromptCeiling())
	s.draft.MaxGenerationTokens = Clamp(s.draft.MaxGenerationTokens, s.GenerationCeiling())
}
