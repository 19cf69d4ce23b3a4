package configmenu

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriChat/internal/chatconfig"
	"github.com/Rorical/RoriChat/ui/styles"
)

// control is one focusable row of the menu.
type control interface {
	Focus() tea.Cmd
	Blur()
	Update(msg tea.KeyMsg) tea.Cmd
	View(width int) string
}

// ParamSlider edits one float setting on a static range.
type ParamSlider struct {
	label       string
	description string
	rng         chatconfig.Range
	value       float64
	focused     bool
	keys        keyMap
	onChange    func(float64)
}

func NewParamSlider(label, description string, rng chatconfig.Range, value float64, keys keyMap, onChange func(float64)) *ParamSlider {
	return &ParamSlider{
		label:       label,
		description: description,
		rng:         rng,
		value:       rng.Snap(value),
		keys:        keys,
		onChange:    onChange,
	}
}

func (s *ParamSlider) Value() float64 { return s.value }
func (s *ParamSlider) Focus() tea.Cmd { s.focused = true; return nil }
func (s *ParamSlider) Blur()          { s.focused = false }

func (s *ParamSlider) Update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Left):
		s.set(s.value - s.rng.Step)
	case key.Matches(msg, s.keys.Right):
		s.set(s.value + s.rng.Step)
	case key.Matches(msg, s.keys.Home):
		s.set(s.rng.Min)
	case key.Matches(msg, s.keys.End):
		s.set(s.rng.Max)
	}
	return nil
}

func (s *ParamSlider) set(v float64) {
	s.value = s.rng.Snap(v)
	if s.onChange != nil {
		s.onChange(s.value)
	}
}

func (s *ParamSlider) View(width int) string {
	label := styles.LabelStyle(s.focused).Render(fmt.Sprintf("%s: %s", s.label, s.rng.Format(s.value)))
	frac := (s.value - s.rng.Min) / (s.rng.Max - s.rng.Min)
	return lipgloss.JoinVertical(lipgloss.Left,
		label,
		renderBar(width, frac, s.focused),
		styles.DescriptionStyle().Width(width).Render(s.description),
	)
}

// renderBar draws a horizontal range bar with the thumb at frac.
func renderBar(width int, frac float64, focused bool) string {
	if width < 2 {
		width = 2
	}
	if math.IsNaN(frac) || frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	filled := int(math.Round(frac * float64(width-1)))
	empty := width - 1 - filled

	return styles.BarFilledStyle(focused).Render(strings.Repeat("━", filled)+"●") +
		styles.BarEmptyStyle().Render(strings.Repeat("─", empty))
}
