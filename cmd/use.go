package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var useCmd = &cobra.Command{
	Use:   "use [profile-name]",
	Short: "Switch to a profile and start the chat app",
	Long:  `Switch to the specified profile and immediately start the chat application.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := mustLoad()
		defer s.close()

		if err := s.config.UseProfile(args[0]); err != nil {
			log.Fatalf("Failed to switch profile: %v", err)
		}
		if err := s.config.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		s.runChat()
	},
}

func init() {
	rootCmd.AddCommand(useCmd)
}
