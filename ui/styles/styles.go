package styles

import "github.com/charmbracelet/lipgloss"

func InputStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Width(width - 4)
}

func StatusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}

func SystemStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Padding(0, 2)
}

func UserStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color("39")).
		Padding(0, 1).
		MarginLeft(2)
}

func AssistantStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color("214")).
		Padding(0, 1).
		MarginLeft(2)
}

func ProgramStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("141")).
		Bold(true).
		Padding(0, 2).
		Align(lipgloss.Center)
}
func DialogStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Width(width)
}

func DialogTitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("141")).
		Bold(true).
		MarginBottom(1)
}

func LabelStyle(focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	if focused {
		return s.Foreground(lipgloss.Color("39"))
	}
	return s.Foreground(lipgloss.Color("252"))
}

func DescriptionStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
}

// SectionStyle separates the controls of a dialog with a top rule.
func SectionStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(lipgloss.Color("238")).
		Width(width)
}

func ButtonStyle(focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 2)
	if focused {
		return s.Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Bold(true)
	}
	return s.Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238"))
}

func DropdownStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
}

func DropdownItemStyle(highlighted bool) lipgloss.Style {
	if highlighted {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
}

func BarFilledStyle(focused bool) lipgloss.Style {
	if focused {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
}

func BarEmptyStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
}

func HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().MarginTop(1)
}

func TableHeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("141")).
		Bold(true).
		Padding(0, 1)
}

func TableCellStyle() lipgloss.Style {
	return lipgloss.NewStyle().Padding(0, 1)
}
