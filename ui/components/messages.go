package components

import (
	"strings"

	"github.com/Rorical/RoriChat/internal/models"
	"github.com/Rorical/RoriChat/ui/styles"
)

func RenderMessages(messages []models.Message, width int) string {
	var b strings.Builder

	systemStyle := styles.SystemStyle()
	userStyle := styles.UserStyle()
	assistantStyle := styles.AssistantStyle()
	programStyle := styles.ProgramStyle()

	for _, msg := range messages {
		switch msg.Type {
		case models.System:
			b.WriteString(systemStyle.Render(msg.Content) + "\n\n")
		case models.User:
			b.WriteString(userStyle.Render("You: "+msg.Content) + "\n\n")
		case models.Assistant:
			// left border, padding and margin take 4 columns
			b.WriteString(assistantStyle.Render(RenderMarkdown(msg.Content, width-6)) + "\n\n")
		case models.Program:
			b.WriteString(programStyle.Render(msg.Content) + "\n\n")
		}
	}

	return b.String()
}
