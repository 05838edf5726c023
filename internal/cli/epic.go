package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/core2/internal/ports/primary"
	"github.com/example/core2/internal/wire"
)

var epicCmd = &cobra.Command{
	Use:   "epic",
	Short: "Manage epics",
	Long:  "Create, list, update, and delete the epics of a project",
}

var epicCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a new epic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		projectID, _ := cmd.Flags().GetString("project")
		description, _ := cmd.Flags().GetString("description")

		adapter, err := wire.EpicAdapter()
		if err != nil {
			return err
		}
		return adapter.Create(ctx, projectID, args[0], description)
	},
}

var epicListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a project's epics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		projectID, _ := cmd.Flags().GetString("project")

		adapter, err := wire.EpicAdapter()
		if err != nil {
			return err
		}
		return adapter.List(ctx, projectID)
	},
}

var epicUpdateCmd = &cobra.Command{
	Use:   "update [epic-id]",
	Short: "Update epic title, description or order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		adapter, err := wire.EpicAdapter()
		if err != nil {
			return err
		}
		return adapter.Update(ctx, primary.UpdateEpicRequest{
			EpicID:      args[0],
			Title:       optionalString(cmd, "title"),
			Description: optionalString(cmd, "description"),
			OrderNo:     optionalInt(cmd, "order"),
		})
	},
}

var epicDeleteCmd = &cobra.Command{
	Use:   "delete [epic-id]",
	Short: "Delete an epic with its stories and their tasks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		confirm, _ := cmd.Flags().GetBool("yes")

		adapter, err := wire.EpicAdapter()
		if err != nil {
			return err
		}
		return adapter.Delete(ctx, args[0], confirm)
	},
}

func init() {
	epicCreateCmd.Flags().StringP("project", "p", "", "Project ID (required)")
	epicCreateCmd.Flags().StringP("description", "d", "", "Epic description")
	epicCreateCmd.MarkFlagRequired("project")

	epicListCmd.Flags().StringP("project", "p", "", "Project ID (required)")
	epicListCmd.MarkFlagRequired("project")

	epicUpdateCmd.Flags().String("title", "", "New title")
	epicUpdateCmd.Flags().StringP("description", "d", "", "New description")
	epicUpdateCmd.Flags().Int("order", 0, "New order number")

	epicDeleteCmd.Flags().BoolP("yes", "y", false, "Confirm the cascading delete")

	epicCmd.AddCommand(epicCreateCmd)
	epicCmd.AddCommand(epicListCmd)
	epicCmd.AddCommand(epicUpdateCmd)
	epicCmd.AddCommand(epicDeleteCmd)
}

// EpicCmd returns the epic command
func EpicCmd() *cobra.Command {
	return epicCmd
}
