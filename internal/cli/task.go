package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/core2/internal/ports/primary"
	"github.com/example/core2/internal/wire"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
	Long: `Create, move, update, and delete the tasks of a story.

Times accept RFC 3339 or "YYYY-MM-DD HH:MM" in local time.`,
}

var taskCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a new task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		storyID, _ := cmd.Flags().GetString("story")
		note, _ := cmd.Flags().GetString("note")
		status, _ := cmd.Flags().GetString("status")
		start, _ := cmd.Flags().GetString("start")
		due, _ := cmd.Flags().GetString("due")

		adapter, err := wire.TaskAdapter()
		if err != nil {
			return err
		}
		return adapter.Create(ctx, primary.CreateTaskRequest{
			StoryID: storyID,
			Title:   args[0],
			Note:    note,
			Status:  strings.ToUpper(status),
			StartAt: start,
			EndAt:   due,
		})
	},
}

var taskBoardCmd = &cobra.Command{
	Use:   "board [story-id]",
	Short: "Show the story's tasks as a kanban board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		adapter, err := wire.TaskAdapter()
		if err != nil {
			return err
		}
		return adapter.Board(ctx, args[0])
	},
}

var taskShowCmd = &cobra.Command{
	Use:   "show [task-id]",
	Short: "Show task details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		adapter, err := wire.TaskAdapter()
		if err != nil {
			return err
		}
		return adapter.Show(ctx, args[0])
	},
}

var taskUpdateCmd = &cobra.Command{
	Use:   "update [task-id]",
	Short: "Update task fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		adapter, err := wire.TaskAdapter()
		if err != nil {
			return err
		}
		return adapter.Update(ctx, primary.UpdateTaskRequest{
			TaskID:  args[0],
			Title:   optionalString(cmd, "title"),
			Note:    optionalString(cmd, "note"),
			Status:  optionalString(cmd, "status"),
			StartAt: optionalString(cmd, "start"),
			EndAt:   optionalString(cmd, "due"),
			OrderNo: optionalInt(cmd, "order"),
		})
	},
}

var taskMoveCmd = &cobra.Command{
	Use:   "move [task-id] [status]",
	Short: "Move a task to another board column",
	Long:  "Move a task to ICEBOX, IN_PROGRESS, DISCUSSION or DONE.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		adapter, err := wire.TaskAdapter()
		if err != nil {
			return err
		}
		return adapter.Move(ctx, args[0], strings.ToUpper(args[1]))
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete [task-id]",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		adapter, err := wire.TaskAdapter()
		if err != nil {
			return err
		}
		return adapter.Delete(ctx, args[0])
	},
}

func init() {
	taskCreateCmd.Flags().String("story", "", "Story ID (required)")
	taskCreateCmd.Flags().StringP("note", "n", "", "Task note")
	taskCreateCmd.Flags().String("status", "", "Initial status (default ICEBOX)")
	taskCreateCmd.Flags().String("start", "", "Start time")
	taskCreateCmd.Flags().String("due", "", "Due time (required)")
	taskCreateCmd.MarkFlagRequired("story")
	taskCreateCmd.MarkFlagRequired("due")

	taskUpdateCmd.Flags().String("title", "", "New title")
	taskUpdateCmd.Flags().StringP("note", "n", "", "New note")
	taskUpdateCmd.Flags().String("status", "", "New status")
	taskUpdateCmd.Flags().String("start", "", `Start time ("" to clear)`)
	taskUpdateCmd.Flags().String("due", "", "Due time")
	taskUpdateCmd.Flags().Int("order", 0, "New order number")

	taskCmd.AddCommand(taskCreateCmd)
	taskCmd.AddCommand(taskBoardCmd)
	taskCmd.AddCommand(taskShowCmd)
	taskCmd.AddCommand(taskUpdateCmd)
	taskCmd.AddCommand(taskMoveCmd)
	taskCmd.AddCommand(taskDeleteCmd)
}

// TaskCmd returns the task command
func TaskCmd() *cobra.Command {
	return taskCmd
}
