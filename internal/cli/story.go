package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/core2/internal/ports/primary"
	"github.com/example/core2/internal/wire"
)

var storyCmd = &cobra.Command{
	Use:   "story",
	Short: "Manage stories",
	Long: `Create, list, update, and delete user stories.

The user story and acceptance criteria follow bracket templates: only the
text inside [brackets] may change. Run "core2 story template" to see them.`,
}

var storyCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a new story",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		projectID, _ := cmd.Flags().GetString("project")
		epicID, _ := cmd.Flags().GetString("epic")
		userStory, _ := cmd.Flags().GetString("user-story")
		criteria, _ := cmd.Flags().GetString("criteria")
		status, _ := cmd.Flags().GetString("status")
		priority, _ := cmd.Flags().GetInt("priority")

		adapter, err := wire.StoryAdapter()
		if err != nil {
			return err
		}
		return adapter.Create(ctx, primary.CreateStoryRequest{
			ProjectID:          projectID,
			EpicID:             epicID,
			Title:              args[0],
			UserStory:          userStory,
			AcceptanceCriteria: criteria,
			Status:             status,
			Priority:           priority,
		})
	},
}

var storyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stories of a project or epic",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		projectID, _ := cmd.Flags().GetString("project")
		epicID, _ := cmd.Flags().GetString("epic")
		query, _ := cmd.Flags().GetString("search")

		adapter, err := wire.StoryAdapter()
		if err != nil {
			return err
		}
		return adapter.List(ctx, primary.StoryFilters{ProjectID: projectID, EpicID: epicID, Query: query})
	},
}

var storyShowCmd = &cobra.Command{
	Use:   "show [story-id]",
	Short: "Show story details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		adapter, err := wire.StoryAdapter()
		if err != nil {
			return err
		}
		return adapter.Show(ctx, args[0])
	},
}

var storyUpdateCmd = &cobra.Command{
	Use:   "update [story-id]",
	Short: "Update story fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		adapter, err := wire.StoryAdapter()
		if err != nil {
			return err
		}
		return adapter.Update(ctx, primary.UpdateStoryRequest{
			StoryID:            args[0],
			EpicID:             optionalString(cmd, "epic"),
			Title:              optionalString(cmd, "title"),
			UserStory:          optionalString(cmd, "user-story"),
			AcceptanceCriteria: optionalString(cmd, "criteria"),
			Status:             optionalString(cmd, "status"),
			Priority:           optionalInt(cmd, "priority"),
		})
	},
}

var storyDeleteCmd = &cobra.Command{
	Use:   "delete [story-id]",
	Short: "Delete a story",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		adapter, err := wire.StoryAdapter()
		if err != nil {
			return err
		}
		return adapter.Delete(ctx, args[0])
	},
}

var storyTemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print the user story and acceptance criteria templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		adapter, err := wire.StoryAdapter()
		if err != nil {
			return err
		}
		adapter.Template()
		return nil
	},
}

func init() {
	storyCreateCmd.Flags().StringP("project", "p", "", "Project ID (required)")
	storyCreateCmd.Flags().StringP("epic", "e", "", "Epic ID")
	storyCreateCmd.Flags().StringP("user-story", "u", "", "User story following the template (required)")
	storyCreateCmd.Flags().String("criteria", "", "Acceptance criteria following the template")
	storyCreateCmd.Flags().String("status", "", "Initial status (default START)")
	storyCreateCmd.Flags().Int("priority", 0, "Priority 1..5 (required)")
	storyCreateCmd.MarkFlagRequired("project")
	storyCreateCmd.MarkFlagRequired("user-story")
	storyCreateCmd.MarkFlagRequired("priority")

	storyListCmd.Flags().StringP("project", "p", "", "Project ID")
	storyListCmd.Flags().StringP("epic", "e", "", "Epic ID")
	storyListCmd.Flags().StringP("search", "s", "", "Filter by title and user story")

	storyUpdateCmd.Flags().StringP("epic", "e", "", `Epic ID ("" to detach)`)
	storyUpdateCmd.Flags().String("title", "", "New title")
	storyUpdateCmd.Flags().StringP("user-story", "u", "", "New user story")
	storyUpdateCmd.Flags().String("criteria", "", "New acceptance criteria")
	storyUpdateCmd.Flags().String("status", "", "New status")
	storyUpdateCmd.Flags().Int("priority", 0, "New priority 1..5")

	storyCmd.AddCommand(storyCreateCmd)
	storyCmd.AddCommand(storyListCmd)
	storyCmd.AddCommand(storyShowCmd)
	storyCmd.AddCommand(storyUpdateCmd)
	storyCmd.AddCommand(storyDeleteCmd)
	storyCmd.AddCommand(storyTemplateCmd)
}

// StoryCmd returns the story command
func StoryCmd() *cobra.Command {
	return storyCmd
}
