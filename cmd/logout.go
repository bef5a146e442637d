package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Deactivate the current reader profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if a.Profile.User() == nil {
			fmt.Println("Nobody is logged in.")
			return nil
		}

		name := a.Profile.User().Name
		if err := a.Profile.Logout(); err != nil {
			return err
		}
		fmt.Printf("Logged out %s. Progress is saved.\n", name)
		return nil
	},
}
