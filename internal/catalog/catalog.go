package catalog

import (
	"errors"
	"fmt"
)

// Provider identifiers used by the built-in catalog.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGoogle    = "google"
)

var (
	ErrEmptyID     = errors.New("model id is empty")
	ErrDuplicateID = errors.New("duplicate model id")
)

// Model describes one supported model and its token ceilings.
type Model struct {
	ID                       string `yaml:"id"`
	DisplayName              string `yaml:"display_name"`
	Enabled                  bool   `yaml:"enabled"`
	Provider                 string `yaml:"provider"`
	MaxModelInputTokens      int    `yaml:"max_model_input_tokens"`
	MaxModelCompletionTokens int    `yaml:"max_model_completion_tokens"`
}

// Catalog is an ordered, read-only registry of models.
type Catalog struct {
	models []Model
	index  map[string]int
}

// New builds a catalog, keeping the given order.
func New(models ...Model) (*Catalog, error) {
	c := &Catalog{
		models: make([]Model, 0, len(models)),
		index:  make(map[string]int, len(models)),
	}

	for _, m := range models {
		if m.ID == "" {
			return nil, ErrEmptyID
		}
		if _, exists := c.index[m.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, m.ID)
		}
		if m.DisplayName == "" {
			m.DisplayName = m.ID
		}
		c.index[m.ID] = len(c.models)
		c.models = append(c.models, m)
	}

	return c, nil
}

// Lookup returns the model registered under id.
func (c *Catalog) Lookup(id string) (Model, bool) {
	i, ok := c.index[id]
	if !ok {
		return Model{}, false
	}
	return c.models[i], true
}

// Models returns a copy of every entry, enabled or not.
func (c *Catalog) Models() []Model {
	out := make([]Model, len(c.models))
	copy(out, c.models)
	return out
}

func (c *Catalog) Len() int {
	return len(c.models)
}

// Visibility gates which entries are offered to the user. Entries of
// GatedProvider are hidden unless GatedEnabled is set.
type Visibility struct {
	GatedProvider string
	GatedEnabled  bool
}

// DefaultVisibility gates the Anthropic models behind a single flag.
func DefaultVisibility(anthropicEnabled bool) Visibility {
	return Visibility{GatedProvider: ProviderAnthropic, GatedEnabled: anthropicEnabled}
}

// Allows reports whether m is offered under v. Disabled models are never offered.
func (v Visibility) Allows(m Model) bool {
	return m.Enabled && (v.GatedEnabled || m.Provider != v.GatedProvider)
}

// Visible filters the catalog without mutating it.
func (c *Catalog) Visible(v Visibility) []Model {
	var out []Model
	for _, m := range c.models {
		if v.Allows(m) {
			out = append(out, m)
		}
	}
	return out
}
