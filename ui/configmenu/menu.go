// Package configmenu is the modal dialog for picking a model and its
// generation settings. The dialog edits a copy of the configuration and
// hands the result back on every way out of it.
package configmenu

import (
	"math"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/Rorical/RoriChat/internal/catalog"
	"github.com/Rorical/RoriChat/internal/chatconfig"
	"github.com/Rorical/RoriChat/internal/i18n"
	"github.com/Rorical/RoriChat/ui/styles"
)

const dialogWidth = 64

// ClosedMsg is emitted once, after the menu committed its configuration.
type ClosedMsg struct {
	Config chatconfig.Configuration
}

// Deps are the collaborators the menu reads from.
type Deps struct {
	Catalog    *catalog.Catalog
	Visibility catalog.Visibility
	Translator *i18n.Translator
}

type Option func(*Menu)

// WithSamplingControls mounts the top-p, presence penalty and frequency
// penalty sliders.
func WithSamplingControls() Option {
	return func(m *Menu) { m.sampling = true }
}

func WithLogger(log zerolog.Logger) Option {
	return func(m *Menu) { m.log = log }
}

// WithSize sets the screen size before the first tea.WindowSizeMsg arrives.
func WithSize(width, height int) Option {
	return func(m *Menu) {
		m.width = width
		m.height = height
	}
}

type Menu struct {
	session   *chatconfig.Session
	setConfig func(chatconfig.Configuration)
	setOpen   func(bool)

	selector         *ModelSelector
	promptTokens     *TokenSlider
	generationTokens *TokenSlider
	temperature      *ParamSlider
	topP             *ParamSlider
	presencePenalty  *ParamSlider
	frequencyPenalty *ParamSlider

	controls  []control
	focus     int // len(controls) is the confirm button
	committed bool
	sampling  bool

	keys   keyMap
	help   help.Model
	text   i18n.Namespace
	main   i18n.Namespace
	log    zerolog.Logger
	width  int
	height int
}

// New builds a menu editing a copy of cfg. setConfig receives the edited
// configuration and setOpen(false) is called when the menu closes. Either
// may be nil.
func New(cfg chatconfig.Configuration, setConfig func(chatconfig.Configuration), setOpen func(bool), deps Deps, opts ...Option) *Menu {
	cat := deps.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	m := &Menu{
		setConfig: setConfig,
		setOpen:   setOpen,
		help:      help.New(),
		log:       zerolog.Nop(),
	}
	if deps.Translator != nil {
		m.text = deps.Translator.Namespace("model")
		m.main = deps.Translator.Namespace("main")
	}
	for _, opt := range opts {
		opt(m)
	}

	m.keys = newKeyMap(m.main)
	m.session = chatconfig.NewSession(cfg, cat)
	draft := m.session.Draft()

	m.selector = NewModelSelector(m.text.T("model"), m.text.T("selectModel"),
		cat.Visible(deps.Visibility), cat, draft.Model, m.keys, m.selectModel)

	m.promptTokens = NewTokenSlider(
		m.text.T("maxPromptTokens.label"), m.text.T("maxPromptTokens.description"),
		draft.MaxPromptTokens, m.session.PromptCeiling(), chatconfig.AbsoluteMaxPromptTokens,
		m.keys, m.session.SetMaxPromptTokens)

	m.generationTokens = NewTokenSlider(
		m.text.T("maxGenerationTokens.label"), m.text.T("maxGenerationTokens.description"),
		draft.MaxGenerationTokens, m.session.GenerationCeiling(), chatconfig.AbsoluteMaxGenerationTokens,
		m.keys, m.session.SetMaxGenerationTokens)

	m.temperature = m.paramSlider("temperature", chatconfig.TemperatureRange, draft.Temperature, m.session.SetTemperature)

	m.controls = []control{m.selector, m.promptTokens, m.generationTokens, m.temperature}

	if m.sampling {
		m.topP = m.paramSlider("topP", chatconfig.TopPRange, draft.TopP, m.session.SetTopP)
		m.presencePenalty = m.paramSlider("presencePenalty", chatconfig.PresencePenaltyRange, draft.PresencePenalty, m.session.SetPresencePenalty)
		m.frequencyPenalty = m.paramSlider("frequencyPenalty", chatconfig.FrequencyPenaltyRange, draft.FrequencyPenalty, m.session.SetFrequencyPenalty)
		m.controls = append(m.controls, m.topP, m.presencePenalty, m.frequencyPenalty)
	}

	m.controls[0].Focus()
	return m
}

// paramSlider builds a slider labelled from the "<name>.label" and
// "<name>.description" keys. The slider only writes to the session when
// the user moves it, so an untouched value is committed as it came in.
func (m *Menu) paramSlider(name string, rng chatconfig.Range, value float64, set func(float64)) *ParamSlider {
	return NewParamSlider(m.text.T(name+".label"), m.text.T(name+".description"), rng, value, m.keys, set)
}

func (m *Menu) selectModel(model catalog.Model) {
	m.session.SetModel(model.ID)
	draft := m.session.Draft()
	m.promptTokens.Sync(draft.MaxPromptTokens, m.session.PromptCeiling())
	m.generationTokens.Sync(draft.MaxGenerationTokens, m.session.GenerationCeiling())

	m.log.Debug().
		Str("model", model.ID).
		Int("max_prompt_tokens", draft.MaxPromptTokens).
		Int("max_generation_tokens", draft.MaxGenerationTokens).
		Msg("model selected")
}

// Config is the current value of the edit session.
func (m *Menu) Config() chatconfig.Configuration {
	return m.session.Draft()
}

// Committed reports whether the menu has already handed its configuration
// back. A committed menu ignores all further input.
func (m *Menu) Committed() bool {
	return m.committed
}

func (m *Menu) Init() tea.Cmd {
	return nil
}

func (m *Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.committed {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && !m.inside(msg.X, msg.Y) {
			return m, m.commit("backdrop")
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *Menu) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Confirm) {
		return m.commit("confirm")
	}

	// an open dropdown owns navigation and esc
	if m.selector.Open() {
		return m.selector.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Close):
		return m.commit("close")
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)
	}

	if m.focus == len(m.controls) {
		if key.Matches(msg, m.keys.Toggle) {
			return m.commit("confirm")
		}
		return nil
	}
	return m.controls[m.focus].Update(msg)
}

func (m *Menu) moveFocus(delta int) tea.Cmd {
	n := len(m.controls) + 1
	if m.focus < len(m.controls) {
		m.controls[m.focus].Blur()
	}
	m.focus = ((m.focus+delta)%n + n) % n
	if m.focus < len(m.controls) {
		return m.controls[m.focus].Focus()
	}
	return nil
}

// commit hands the session back to the owner. It runs at most once.
func (m *Menu) commit(gesture string) tea.Cmd {
	if m.committed {
		return nil
	}
	m.committed = true

	cfg := m.session.Draft()
	m.log.Info().
		Str("gesture", gesture).
		Str("model", cfg.Model).
		Int("max_prompt_tokens", cfg.MaxPromptTokens).
		Int("max_generation_tokens", cfg.MaxGenerationTokens).
		Float64("temperature", cfg.Temperature).
		Msg("chat config committed")

	if m.setConfig != nil {
		m.setConfig(cfg)
	}
	if m.setOpen != nil {
		m.setOpen(false)
	}
	return func() tea.Msg { return ClosedMsg{Config: cfg} }
}

// inside reports whether screen cell (x, y) falls on the dialog box as
// placed by View.
func (m *Menu) inside(x, y int) bool {
	box := m.box()
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	left := centerOffset(m.width, w)
	top := centerOffset(m.height, h)
	return x >= left && x < left+w && y >= top && y < top+h
}

// centerOffset matches how lipgloss.Place centers content of size inner in
// outer cells.
func centerOffset(outer, inner int) int {
	gap := outer - inner
	if gap <= 0 {
		return 0
	}
	return gap - int(math.Round(float64(gap)*0.5))
}

func (m *Menu) box() string {
	inner := dialogWidth - 6

	rows := []string{styles.DialogTitleStyle().Render(m.text.T("configuration"))}
	for i, c := range m.controls {
		view := c.View(inner)
		if i > 0 {
			view = styles.SectionStyle(inner).Render(view)
		}
		rows = append(rows, view)
	}

	confirm := styles.ButtonStyle(m.focus == len(m.controls)).Render(m.main.T("confirm"))
	rows = append(rows,
		lipgloss.PlaceHorizontal(inner, lipgloss.Right, confirm),
		styles.HelpStyle().Render(m.help.View(m.keys)),
	)

	return styles.DialogStyle(dialogWidth - 2).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m *Menu) View() string {
	box := m.box()
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
