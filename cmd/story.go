package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tolgahan/oka/internal/app"
	"github.com/tolgahan/oka/internal/catalog"
	"github.com/tolgahan/oka/internal/story"
)

// lastStoryKey is the record under which the most recently generated
// story is kept, so that read and reward can pick it up in a later
// invocation.
const lastStoryKey = "oka-last-story"

var storyCmd = &cobra.Command{
	Use:   "story",
	Short: "Generate a new story for the active reader",
	Long:  "Generates a short story featuring the chosen characters.\nUse --characters with 1 to 3 comma-separated character IDs or names;\nrun 'oka story characters' to see the catalog.",
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, _ := cmd.Flags().GetString("characters")

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		user := a.Profile.User()
		if user == nil {
			return fmt.Errorf("no active profile; run 'oka login <name>' first")
		}

		chars, err := parseCharacters(spec)
		if err != nil {
			return err
		}
		a.Profile.SelectCharacters(chars)

		st, err := a.Stories.Generate(cmd.Context(), user.Name, chars)
		if err != nil {
			return err
		}
		a.Profile.SetCurrentStory(st)
		if err := saveLastStory(a, st); err != nil {
			return err
		}

		fmt.Printf("%s\n\n%s\n\nTema: %s\n", st.Title, st.Content, st.Theme)
		return nil
	},
}

var storyCharactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "List the story characters",
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range catalog.All() {
			fmt.Printf("%3s  %s\n", c.ID, c.Name)
		}
	},
}

// parseCharacters resolves a comma-separated list of IDs or names into
// the selection, within the single-story limit.
func parseCharacters(spec string) ([]catalog.Character, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, fmt.Errorf("--characters is required (1 to %d IDs or names)", catalog.MaxSelected)
	}

	var selected []catalog.Character
	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		c, ok := catalog.ByID(token)
		if !ok {
			c, ok = catalog.ByName(token)
		}
		if !ok {
			return nil, fmt.Errorf("unknown character %q; run 'oka story characters'", token)
		}
		before := len(selected)
		selected = catalog.Toggle(selected, c)
		if len(selected) < before {
			return nil, fmt.Errorf("character %q listed twice", token)
		}
		if len(selected) == before {
			return nil, fmt.Errorf("at most %d characters per story", catalog.MaxSelected)
		}
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("--characters is required (1 to %d IDs or names)", catalog.MaxSelected)
	}
	return selected, nil
}

func saveLastStory(a *app.App, st *story.Story) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode story: %w", err)
	}
	return a.Store.RecordRepo().Save(lastStoryKey, data)
}

func loadLastStory(a *app.App) (*story.Story, error) {
	data, ok, err := a.Store.RecordRepo().Load(lastStoryKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no story yet; run 'oka story' first")
	}
	var st story.Story
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("decode stored story: %w", err)
	}
	return &st, nil
}

func init() {
	storyCmd.Flags().StringP("characters", "c", "", "Comma-separated character IDs or names (1 to 3)")
	storyCmd.AddCommand(storyCharactersCmd)
}
