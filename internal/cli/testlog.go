package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/core2/internal/ports/primary"
	"github.com/example/core2/internal/wire"
)

// TestLogCmd returns the testlog command
func TestLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "testlog",
		Short: "Manage test logs of a story",
	}

	createCmd := &cobra.Command{
		Use:   "create [story-id]",
		Short: "Record a test log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := NewContext(cmd)
			if err != nil {
				return err
			}
			taskID, _ := cmd.Flags().GetString("task")
			notes, _ := cmd.Flags().GetString("notes")

			adapter, err := wire.TestLogAdapter()
			if err != nil {
				return err
			}
			return adapter.Create(ctx, primary.CreateTestLogRequest{StoryID: args[0], TaskID: taskID, Notes: notes})
		},
	}
	createCmd.Flags().String("task", "", "Task the log refers to")
	createCmd.Flags().StringP("notes", "n", "", "What was tested and the outcome (required)")
	createCmd.MarkFlagRequired("notes")

	listCmd := &cobra.Command{
		Use:   "list [story-id]",
		Short: "List a story's test logs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := NewContext(cmd)
			if err != nil {
				return err
			}
			adapter, err := wire.TestLogAdapter()
			if err != nil {
				return err
			}
			return adapter.List(ctx, args[0])
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update [log-id]",
		Short: "Update a test log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := NewContext(cmd)
			if err != nil {
				return err
			}
			adapter, err := wire.TestLogAdapter()
			if err != nil {
				return err
			}
			return adapter.Update(ctx, primary.UpdateTestLogRequest{
				TestLogID: args[0],
				TaskID:    optionalString(cmd, "task"),
				Notes:     optionalString(cmd, "notes"),
			})
		},
	}
	updateCmd.Flags().String("task", "", `Task ID ("" to clear)`)
	updateCmd.Flags().StringP("notes", "n", "", "New notes")

	deleteCmd := &cobra.Command{
		Use:   "delete [log-id]",
		Short: "Delete a test log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := NewContext(cmd)
			if err != nil {
				return err
			}
			adapter, err := wire.TestLogAdapter()
			if err != nil {
				return err
			}
			return adapter.Delete(ctx, args[0])
		},
	}

	cmd.AddCommand(createCmd, listCmd, updateCmd, deleteCmd)
	return cmd
}
