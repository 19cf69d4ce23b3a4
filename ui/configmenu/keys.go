package configmenu

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/Rorical/RoriChat/internal/i18n"
)

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Toggle   key.Binding
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Confirm  key.Binding
	Close    key.Binding
}

func newKeyMap(main i18n.Namespace) keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", main.T("help.navigate")),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/→", main.T("help.adjust")),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", main.T("help.confirm")),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", main.T("help.close")),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Left, k.Confirm, k.Close}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
