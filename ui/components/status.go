package components

import (
	"strings"

	"github.com/Rorical/RoriChat/ui/styles"
)

func RenderStatus(status, model string, loading bool, loadingDots int, width int) string {
	statusStyle := styles.StatusStyle(width)

	statusContent := status
	if loading {
		statusContent += strings.Repeat(".", loadingDots)
	}
	if model != "" {
		statusContent = model + " | " + statusContent
	}
	statusContent += " | ctrl+o settings"

	return statusStyle.Render(statusContent)
}
