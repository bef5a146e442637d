package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tolgahan/oka/internal/ident"
	"github.com/tolgahan/oka/internal/profile"
	"github.com/tolgahan/oka/internal/reward"
)

var rewardCmd = &cobra.Command{
	Use:   "reward",
	Short: "Generate the coloring-page reward for the current story",
	RunE: func(cmd *cobra.Command, args []string) error {
		check, _ := cmd.Flags().GetBool("check")

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		st, err := loadLastStory(a)
		if err != nil {
			return err
		}

		url := a.Rewards.GenerateImageURL(cmd.Context(), st)
		fmt.Println(url)

		if check {
			if err := a.Images.Check(cmd.Context(), url); err != nil {
				var unavail *reward.ErrImageUnavailable
				if errors.As(err, &unavail) {
					return fmt.Errorf("the image is not rendering yet; run 'oka reward --check' again in a moment: %w", err)
				}
				return err
			}
			fmt.Println("Image renders OK.")
		}

		if a.Profile.User() == nil {
			return nil
		}
		return a.Profile.AddReward(profile.Reward{
			ID:         ident.New(),
			ImageURL:   url,
			UnlockedAt: time.Now(),
			StoryTitle: st.Title,
		})
	},
}

func init() {
	rewardCmd.Flags().Bool("check", false, "Verify the image actually renders before unlocking")
}
