package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <name>",
	Short: "Activate a reader profile, creating it if needed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fresh, _ := cmd.Flags().GetBool("fresh")

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		name := args[0]
		existed := a.Profile.HasSavedUser(name)

		user, err := a.Profile.Login(name, !fresh)
		if err != nil {
			return err
		}

		switch {
		case existed && !fresh:
			fmt.Printf("Welcome back, %s! %d readings so far, average %d wpm.\n",
				user.Name, user.TotalReadings, user.AverageWPM)
		case existed && fresh:
			fmt.Printf("Started fresh for %s. Previous progress was cleared.\n", user.Name)
		default:
			fmt.Printf("Created a new profile for %s. Happy reading!\n", user.Name)
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().Bool("fresh", false, "Start over, discarding any saved progress under this name")
}
