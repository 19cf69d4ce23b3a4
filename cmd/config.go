package cmd

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriChat/internal/chatconfig"
	"github.com/Rorical/RoriChat/ui/configmenu"
)

var configProfile string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit the model settings of a profile",
	Long:  `Open the model settings menu without starting a chat. Changes are saved when the menu is confirmed or closed.`,
	Run: func(cmd *cobra.Command, args []string) {
		s := mustLoad()
		defer s.close()

		active := s.config.ActiveProfile
		if configProfile != "" {
			if err := s.config.UseProfile(configProfile); err != nil {
				log.Fatalf("Failed to select profile: %v", err)
			}
		}

		var committed *chatconfig.Configuration
		setConfig := func(cfg chatconfig.Configuration) { committed = &cfg }

		opts := []configmenu.Option{configmenu.WithLogger(s.log)}
		if advanced {
			opts = append(opts, configmenu.WithSamplingControls())
		}
		menu := configmenu.New(s.config.ChatConfig(), setConfig, func(bool) {}, configmenu.Deps{
			Catalog:    s.catalog,
			Visibility: s.visibility(),
			Translator: s.translator,
		}, opts...)

		p := tea.NewProgram(configmenu.NewStandalone(menu), tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			log.Fatalf("Menu error: %v", err)
		}

		if committed == nil {
			fmt.Println("No changes saved")
			return
		}

		profile := s.config.ActiveProfile
		if err := s.config.SetChatConfig(*committed); err != nil {
			log.Fatalf("Invalid chat settings: %v", err)
		}
		s.config.ActiveProfile = active
		if err := s.config.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Saved model settings for profile '%s'\n", profile)
		printChatConfig(*committed, s.catalog)
	},
}

func init() {
	configCmd.Flags().StringVarP(&configProfile, "profile", "p", "", "profile to edit (defaults to the active profile)")
	rootCmd.AddCommand(configCmd)
}
