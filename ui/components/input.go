package components

import (
	"github.com/Rorical/RoriChat/ui/styles"
)

func RenderInput(input string, width int) string {
	inputStyle := styles.InputStyle(width)
	return inputStyle.Render("> " + input)
}
