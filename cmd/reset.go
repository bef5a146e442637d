package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tolgahan/oka/internal/profile"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all reader profiles and progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("this deletes every profile and reading history; re-run with --yes to confirm")
		}

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		records := a.Store.RecordRepo()
		if err := records.Delete(profile.StorageKey); err != nil {
			return err
		}
		if err := records.Delete(lastStoryKey); err != nil {
			return err
		}

		fmt.Println("All reader data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation")
}
