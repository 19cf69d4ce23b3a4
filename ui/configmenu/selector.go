package configmenu

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriChat/internal/catalog"
	"github.com/Rorical/RoriChat/internal/chatconfig"
	"github.com/Rorical/RoriChat/ui/styles"
)

// ModelSelector is a toggle button with a dropdown of the models the user
// may pick from.
type ModelSelector struct {
	label       string
	placeholder string
	options     []catalog.Model
	models      chatconfig.ModelLookup
	current     string
	open        bool
	cursor      int
	focused     bool
	keys        keyMap
	onSelect    func(catalog.Model)
}

// NewModelSelector shows current as the selection. An empty current shows
// the placeholder. models names the current model when it is not one of
// the options; it may be nil.
func NewModelSelector(label, placeholder string, options []catalog.Model, models chatconfig.ModelLookup, current string, keys keyMap, onSelect func(catalog.Model)) *ModelSelector {
	return &ModelSelector{
		label:       label,
		placeholder: placeholder,
		options:     options,
		models:      models,
		current:     current,
		keys:        keys,
		onSelect:    onSelect,
	}
}

func (s *ModelSelector) Focus() tea.Cmd { s.focused = true; return nil }

func (s *ModelSelector) Blur() {
	s.focused = false
	s.open = false
}

// Open reports whether the dropdown is showing.
func (s *ModelSelector) Open() bool { return s.open }

func (s *ModelSelector) Options() []catalog.Model { return s.options }

// Display is the text on the toggle button.
func (s *ModelSelector) Display() string {
	if s.current == "" {
		return s.placeholder
	}
	for _, m := range s.options {
		if m.ID == s.current {
			return m.DisplayName
		}
	}
	if s.models != nil {
		if m, ok := s.models.Lookup(s.current); ok {
			return m.DisplayName
		}
	}
	return s.current
}

func (s *ModelSelector) Update(msg tea.KeyMsg) tea.Cmd {
	if !s.open {
		if key.Matches(msg, s.keys.Toggle) {
			s.toggle()
		}
		return nil
	}

	switch {
	case key.Matches(msg, s.keys.Close):
		s.open = false
	case key.Matches(msg, s.keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(msg, s.keys.Down):
		if s.cursor < len(s.options)-1 {
			s.cursor++
		}
	case key.Matches(msg, s.keys.Select):
		s.choose()
	case key.Matches(msg, s.keys.Toggle):
		s.open = false
	}
	return nil
}

func (s *ModelSelector) toggle() {
	s.open = !s.open
	if !s.open {
		return
	}
	s.cursor = 0
	for i, m := range s.options {
		if m.ID == s.current {
			s.cursor = i
			break
		}
	}
}

func (s *ModelSelector) choose() {
	s.open = false
	if s.cursor < 0 || s.cursor >= len(s.options) {
		return
	}
	m := s.options[s.cursor]
	s.current = m.ID
	if s.onSelect != nil {
		s.onSelect(m)
	}
}

func (s *ModelSelector) View(width int) string {
	button := styles.ButtonStyle(s.focused).Render(s.Display() + " ▾")
	rows := []string{styles.LabelStyle(s.focused).Render(s.label), button}

	if s.open {
		items := make([]string, 0, len(s.options))
		for i, m := range s.options {
			items = append(items, styles.DropdownItemStyle(i == s.cursor).Render(m.DisplayName))
		}
		rows = append(rows, styles.DropdownStyle().Render(strings.Join(items, "\n")))
	}

	return lipgloss.NewStyle().MaxWidth(width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
