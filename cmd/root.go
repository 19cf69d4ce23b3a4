package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var advanced bool

var rootCmd = &cobra.Command{
	Use:   "roricode",
	Short: "Terminal chat with adjustable model settings",
	Long:  `RoriChat is a terminal chat client. Press Ctrl+O inside the chat to pick a model and tune its token limits.`,
	Run: func(cmd *cobra.Command, args []string) {
		s := mustLoad()
		defer s.close()
		s.runChat()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&advanced, "advanced", false, "show sampling controls in the model settings menu")

	// Add subcommands
	rootCmd.AddCommand(profileCmd)
}
