package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the active reader's progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		user := a.Profile.User()
		if user == nil {
			fmt.Println("Nobody is logged in. Run 'oka login <name>'.")
			return nil
		}

		fmt.Printf("Reader:        %s\n", user.Name)
		fmt.Printf("Readings:      %d\n", user.TotalReadings)
		fmt.Printf("Average speed: %d wpm\n", user.AverageWPM)
		fmt.Printf("Rewards:       %d\n", len(user.Rewards))

		if len(user.History) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Printf("%-19s  %6s  %8s  %9s\n", "When", "WPM", "Accuracy", "Duration")
		fmt.Println(strings.Repeat("─", 50))
		for i, s := range user.History {
			if i >= 10 {
				fmt.Printf("… and %d more\n", len(user.History)-i)
				break
			}
			fmt.Printf("%-19s  %6d  %7d%%  %8ds\n",
				s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				s.WPM, s.AccuracyScore, s.DurationSeconds)
		}
		return nil
	},
}
