package cmd

import (
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriChat/internal/catalog"
	"github.com/Rorical/RoriChat/internal/chatconfig"
	"github.com/Rorical/RoriChat/internal/config"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage API profiles",
	Long:  `Manage API profiles for different providers and configurations.`,
}

var listProfilesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	Run: func(cmd *cobra.Command, args []string) {
		s := mustLoad()
		defer s.close()
		cfg := s.config

		fmt.Printf("Active Profile: %s\n\n", cfg.ActiveProfile)
		fmt.Println("Available Profiles:")
		for _, name := range cfg.ProfileNames() {
			profile := cfg.Profiles[name]
			marker := ""
			if name == cfg.ActiveProfile {
				marker = " (active)"
			}
			fmt.Printf("  %s%s\n", name, marker)
			fmt.Printf("    Model: %s\n", profile.Chat.Model)
			if profile.BaseURL != "" {
				fmt.Printf("    Base URL: %s\n", profile.BaseURL)
			}
			hasKey := "No"
			if profile.APIKey != "" {
				hasKey = "Yes"
			}
			fmt.Printf("    API Key: %s\n", hasKey)
			fmt.Println()
		}
	},
}

var showProfileCmd = &cobra.Command{
	Use:   "show [profile-name]",
	Short: "Show profile details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := mustLoad()
		defer s.close()

		profileName := args[0]
		profile, exists := s.config.Profiles[profileName]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		fmt.Printf("Profile: %s\n", profileName)
		fmt.Printf("Base URL: %s\n", profile.BaseURL)
		hasKey := "Not set"
		if profile.APIKey != "" {
			hasKey = "Set (hidden for security)"
		}
		fmt.Printf("API Key: %s\n", hasKey)
		printChatConfig(profile.Chat, s.catalog)
	},
}

var addProfileCmd = &cobra.Command{
	Use:   "add [profile-name]",
	Short: "Add a new profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := mustLoad()
		defer s.close()

		var profileName string
		var err error
		if len(args) > 0 {
			profileName = args[0]
		} else {
			prompt := promptui.Prompt{
				Label: "Profile name",
			}
			profileName, err = prompt.Run()
			if err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
		}

		if _, exists := s.config.Profiles[profileName]; exists {
			log.Fatalf("Profile '%s' already exists", profileName)
		}

		profile := config.NewDefaultProfile()

		// Prompt for API Key
		apiKeyPrompt := promptui.Prompt{
			Label: "API Key",
			Mask:  '*',
		}
		profile.APIKey, err = apiKeyPrompt.Run()
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		profile.Chat = selectModel(s, profile.Chat)

		// Prompt for Base URL (optional)
		baseURLPrompt := promptui.Prompt{
			Label: "Base URL (optional)",
		}
		profile.BaseURL, err = baseURLPrompt.Run()
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		if err := s.config.AddProfile(profileName, profile); err != nil {
			log.Fatalf("Failed to add profile: %v", err)
		}

		// Save config
		if err := s.config.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' added successfully!\n", profileName)
	},
}

var editProfileCmd = &cobra.Command{
	Use:   "edit [profile-name]",
	Short: "Edit an existing profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := mustLoad()
		defer s.close()

		profileName := profileArg(s.config, args, "Select profile to edit", "")
		profile, exists := s.config.Profiles[profileName]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		// Edit API Key
		apiKeyPrompt := promptui.Prompt{
			Label:   "API Key",
			Default: profile.APIKey,
			Mask:    '*',
		}
		newAPIKey, err := apiKeyPrompt.Run()
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
		profile.APIKey = newAPIKey

		profile.Chat = selectModel(s, profile.Chat)

		// Edit Base URL
		baseURLPrompt := promptui.Prompt{
			Label:   "Base URL",
			Default: profile.BaseURL,
		}
		newBaseURL, err := baseURLPrompt.Run()
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
		profile.BaseURL = newBaseURL

		if err := chatconfig.Validate(profile.Chat); err != nil {
			log.Fatalf("Invalid chat settings: %v", err)
		}
		s.config.Profiles[profileName] = profile

		// Save config
		if err := s.config.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' updated successfully!\n", profileName)
	},
}

var deleteProfileCmd = &cobra.Command{
	Use:   "delete [profile-name]",
	Short: "Delete a profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := mustLoad()
		defer s.close()

		profileName := profileArg(s.config, args, "Select profile to delete", "")

		// Confirm deletion
		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete profile '%s'? (y/N)", profileName),
			IsConfirm: true,
		}
		if _, err := confirmPrompt.Run(); err != nil {
			fmt.Println("Deletion cancelled")
			return
		}

		if err := s.config.DeleteProfile(profileName); err != nil {
			log.Fatalf("Failed to delete profile: %v", err)
		}

		// Save config
		if err := s.config.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' deleted successfully!\n", profileName)
	},
}

var switchProfileCmd = &cobra.Command{
	Use:   "switch [profile-name]",
	Short: "Switch to a different profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := mustLoad()
		defer s.close()

		profileName := profileArg(s.config, args, "Select profile to switch to", s.config.ActiveProfile)
		if profileName == "" {
			fmt.Println("No other profiles available to switch to")
			return
		}

		if err := s.config.UseProfile(profileName); err != nil {
			log.Fatalf("Failed to switch profile: %v", err)
		}

		// Save config
		if err := s.config.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Switched to profile '%s'\n", profileName)
	},
}

// profileArg returns the profile named on the command line or asks the user
// to pick one. exclude is left out of the choices. It returns "" when there
// is nothing to pick.
func profileArg(cfg *config.Config, args []string, label, exclude string) string {
	if len(args) > 0 {
		return args[0]
	}

	var names []string
	for _, name := range cfg.ProfileNames() {
		if name != exclude {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return ""
	}

	prompt := promptui.Select{
		Label: label,
		Items: names,
	}
	_, name, err := prompt.Run()
	if err != nil {
		log.Fatalf("Selection failed: %v", err)
	}
	return name
}

// selectModel asks for a model from the visible catalog and re-clamps the
// token limits of chat to the chosen model.
func selectModel(s *session, chat chatconfig.Configuration) chatconfig.Configuration {
	options := s.catalog.Visible(s.visibility())
	if len(options) == 0 {
		return chat
	}

	cursor := 0
	for i, m := range options {
		if m.ID == chat.Model {
			cursor = i
		}
	}

	prompt := promptui.Select{
		Label:     "Model",
		Items:     options,
		CursorPos: cursor,
		Size:      10,
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . }}",
			Active:   "▸ {{ .DisplayName | cyan }} ({{ .ID }})",
			Inactive: "  {{ .DisplayName }} ({{ .ID }})",
			Selected: "Model: {{ .DisplayName }}",
			Details: `
Input tokens:      {{ .MaxModelInputTokens }}
Completion tokens: {{ .MaxModelCompletionTokens }}`,
		},
	}
	i, _, err := prompt.Run()
	if err != nil {
		log.Fatalf("Selection failed: %v", err)
	}

	session := chatconfig.NewSession(chat, s.catalog)
	session.SetModel(options[i].ID)
	return session.Draft()
}

func printChatConfig(chat chatconfig.Configuration, cat *catalog.Catalog) {
	name := chat.Model
	if m, ok := cat.Lookup(chat.Model); ok {
		name = fmt.Sprintf("%s (%s)", m.DisplayName, m.ID)
	}
	fmt.Printf("Model: %s\n", name)
	fmt.Printf("Max prompt tokens: %d\n", chat.MaxPromptTokens)
	fmt.Printf("Max generation tokens: %d\n", chat.MaxGenerationTokens)
	fmt.Printf("Temperature: %s\n", chatconfig.TemperatureRange.Format(chat.Temperature))
	fmt.Printf("Top P: %s\n", chatconfig.TopPRange.Format(chat.TopP))
	fmt.Printf("Presence penalty: %s\n", chatconfig.PresencePenaltyRange.Format(chat.PresencePenalty))
	fmt.Printf("Frequency penalty: %s\n", chatconfig.FrequencyPenaltyRange.Format(chat.FrequencyPenalty))
}

func init() {
	// Add subcommands to profile
	profileCmd.AddCommand(listProfilesCmd)
	profileCmd.AddCommand(showProfileCmd)
	profileCmd.AddCommand(addProfileCmd)
	profileCmd.AddCommand(editProfileCmd)
	profileCmd.AddCommand(deleteProfileCmd)
	profileCmd.AddCommand(switchProfileCmd)
}
