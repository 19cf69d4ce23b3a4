package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriChat/internal/catalog"
	"github.com/Rorical/RoriChat/ui/styles"
)

var showAllModels bool

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the models offered in the model picker",
	Run: func(cmd *cobra.Command, args []string) {
		s := mustLoad()
		defer s.close()

		list := s.catalog.Visible(s.visibility())
		if showAllModels {
			list = s.catalog.Models()
		}
		fmt.Println(renderModels(list, s.config.GetModel()))
	},
}

func renderModels(list []catalog.Model, current string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("", "ID", "NAME", "PROVIDER", "INPUT", "COMPLETION", "ENABLED").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TableHeaderStyle()
			}
			return styles.TableCellStyle()
		})

	for _, m := range list {
		marker := ""
		if m.ID == current {
			marker = "*"
		}
		t.Row(marker, m.ID, m.DisplayName, m.Provider,
			strconv.Itoa(m.MaxModelInputTokens),
			strconv.Itoa(m.MaxModelCompletionTokens),
			strconv.FormatBool(m.Enabled))
	}
	return t.String()
}

func init() {
	modelsCmd.Flags().BoolVar(&showAllModels, "all", false, "include disabled and hidden models")
	rootCmd.AddCommand(modelsCmd)
}
