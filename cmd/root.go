package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tolgahan/oka/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "oka",
	Short: "AI reading buddy for kids",
	Long:  "Oka — AI reading companion that writes short stories for children,\nlistens to them read aloud, and rewards finished readings with a\ncoloring page.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides OKA_DB env var)")
	rootCmd.PersistentFlags().Bool("debug", false, "Verbose development logging")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(storyCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(rewardCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(proxyCmd)
	rootCmd.AddCommand(versionCmd)
}

// newApp assembles the application for one command invocation. The caller
// owns Close.
func newApp(cmd *cobra.Command) (*app.App, error) {
	dbPath, _ := cmd.Flags().GetString("db")
	debug, _ := cmd.Flags().GetBool("debug")
	return app.New(cmd.Context(), app.Options{DBPath: dbPath, Debug: debug})
}
