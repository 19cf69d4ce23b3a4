package configmenu

import tea "github.com/charmbracelet/bubbletea"

// Standalone runs a Menu as a whole program. It quits once the menu
// commits. Ctrl+C quits without committing.
type Standalone struct {
	menu *Menu
}

func NewStandalone(menu *Menu) *Standalone {
	return &Standalone{menu: menu}
}

func (s *Standalone) Init() tea.Cmd {
	return s.menu.Init()
}

func (s *Standalone) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ClosedMsg:
		return s, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return s, tea.Quit
		}
	}

	_, cmd := s.menu.Update(msg)
	return s, cmd
}

func (s *Standalone) View() string {
	if s.menu.Committed() {
		return ""
	}
	return s.menu.View()
}
