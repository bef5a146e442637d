package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tolgahan/oka/internal/ident"
	"github.com/tolgahan/oka/internal/profile"
)

var readCmd = &cobra.Command{
	Use:   "read <audio-file>",
	Short: "Analyze a recorded read-aloud of the current story",
	Long:  "Sends the recording and the current story to the model for\nevaluation, prints the result, and records it in the reader's history.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		duration, _ := cmd.Flags().GetInt("duration")
		if duration <= 0 {
			return fmt.Errorf("--duration must be a positive number of seconds")
		}

		audio, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read audio file: %w", err)
		}

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		st, err := loadLastStory(a)
		if err != nil {
			return err
		}

		analysis := a.Readings.Analyze(cmd.Context(), audio, st.Content, duration)

		fmt.Printf("Story:    %s\n", st.Title)
		fmt.Printf("Speed:    %d wpm\n", analysis.WPM)
		fmt.Printf("Accuracy: %d/100\n", analysis.AccuracyScore)
		fmt.Printf("Feedback: %s\n", analysis.Feedback)

		if a.Profile.User() == nil {
			fmt.Println("\nNot recorded: no active profile. Run 'oka login <name>' to track progress.")
			return nil
		}

		session := profile.ReadingSession{
			ID:              ident.New(),
			StoryID:         st.ID,
			AudioRef:        args[0],
			DurationSeconds: analysis.DurationSeconds,
			WordCount:       analysis.WordCount,
			WPM:             analysis.WPM,
			AccuracyScore:   analysis.AccuracyScore,
			Feedback:        analysis.Feedback,
			CreatedAt:       time.Now(),
		}
		if err := a.Profile.AddReadingSession(session); err != nil {
			return err
		}

		user := a.Profile.User()
		fmt.Printf("\nRecorded. %s now has %d readings, average %d wpm.\n",
			user.Name, user.TotalReadings, user.AverageWPM)
		return nil
	},
}

func init() {
	readCmd.Flags().IntP("duration", "d", 0, "Recording length in seconds (required)")
	readCmd.MarkFlagRequired("duration")
}
