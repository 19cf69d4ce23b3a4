package configmenu

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriChat/internal/chatconfig"
	"github.com/Rorical/RoriChat/ui/styles"
)

const tokenInputWidth = 8

var errNotDigits = errors.New("only digits are allowed")

// TokenSlider is a number field and a range bar bound to one token limit.
// The bar is scaled to absolute; stored values never exceed ceiling.
type TokenSlider struct {
	label       string
	description string
	input       textinput.Model
	absolute    int
	ceiling     int
	value       int
	focused     bool
	keys        keyMap

	// set stores a value in the session and returns what was stored.
	set func(int) int
}

func NewTokenSlider(label, description string, value, ceiling, absolute int, keys keyMap, set func(int) int) *TokenSlider {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = len(strconv.Itoa(absolute)) + 1
	ti.Width = tokenInputWidth
	ti.Validate = digitsOnly

	s := &TokenSlider{
		label:       label,
		description: description,
		input:       ti,
		absolute:    absolute,
		keys:        keys,
		set:         set,
	}
	s.Sync(value, ceiling)
	return s
}

func digitsOnly(v string) error {
	for _, r := range v {
		if r < '0' || r > '9' {
			return errNotDigits
		}
	}
	return nil
}

func (s *TokenSlider) Value() int   { return s.value }
func (s *TokenSlider) Ceiling() int { return s.ceiling }

// Text is what the number field currently shows.
func (s *TokenSlider) Text() string { return s.input.Value() }

// Sync replaces the displayed value and ceiling, typically after the model
// changed and the session re-clamped its token fields.
func (s *TokenSlider) Sync(value, ceiling int) {
	s.ceiling = ceiling
	s.value = value
	s.input.SetValue(strconv.Itoa(value))
	s.input.CursorEnd()
}

func (s *TokenSlider) Focus() tea.Cmd {
	s.focused = true
	return s.input.Focus()
}

func (s *TokenSlider) Blur() {
	s.focused = false
	s.input.Blur()
	if s.input.Value() != strconv.Itoa(s.value) {
		s.input.SetValue(strconv.Itoa(s.value))
	}
}

func (s *TokenSlider) Update(msg tea.KeyMsg) tea.Cmd {
	step := s.absolute / 100
	if step < 1 {
		step = 1
	}

	switch {
	case key.Matches(msg, s.keys.Left):
		s.store(s.value - 1)
	case key.Matches(msg, s.keys.Right):
		s.store(s.value + 1)
	case key.Matches(msg, s.keys.PageDown):
		s.store(s.value - step)
	case key.Matches(msg, s.keys.PageUp):
		s.store(s.value + step)
	case key.Matches(msg, s.keys.Home):
		s.store(0)
	case key.Matches(msg, s.keys.End):
		s.store(s.ceiling)
	case isEditKey(msg):
		return s.edit(msg)
	}
	return nil
}

func isEditKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyCtrlU:
		return true
	case tea.KeyRunes:
		return digitsOnly(string(msg.Runes)) == nil
	}
	return false
}

// edit forwards a keystroke to the number field and writes the clamped
// result back into it.
func (s *TokenSlider) edit(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	text := s.input.Value()
	if text == "" {
		s.value = s.set(0)
		return cmd
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		n = s.value
	}
	s.value = s.set(n)
	if text != strconv.Itoa(s.value) {
		s.input.SetValue(strconv.Itoa(s.value))
		s.input.CursorEnd()
	}
	return cmd
}

func (s *TokenSlider) store(v int) {
	s.value = s.set(chatconfig.Clamp(v, s.ceiling))
	s.input.SetValue(strconv.Itoa(s.value))
	s.input.CursorEnd()
}

func (s *TokenSlider) View(width int) string {
	field := styles.InputStyle(tokenInputWidth + 6).Render(s.input.View())

	barWidth := width - lipgloss.Width(field) - 1
	bar := renderBar(barWidth, float64(s.value)/float64(s.absolute), s.focused)

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.LabelStyle(s.focused).Render(s.label),
		lipgloss.JoinHorizontal(lipgloss.Center, field, " ", bar),
		styles.DescriptionStyle().Render(fmt.Sprintf("0-%d", s.ceiling)),
		styles.DescriptionStyle().Width(width).Render(s.description),
	)
}
