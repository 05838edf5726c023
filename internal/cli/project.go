package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/core2/internal/ports/primary"
	"github.com/example/core2/internal/wire"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
	Long:  "Create, list, open, update, and delete projects",
}

var projectCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new project with its analysis document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		projectType, _ := cmd.Flags().GetString("type")
		status, _ := cmd.Flags().GetString("status")
		domainID, _ := cmd.Flags().GetString("domain")
		drive, _ := cmd.Flags().GetString("drive")
		doc, _ := cmd.Flags().GetString("doc")
		pause, _ := cmd.Flags().GetString("pause-condition")

		adapter, err := wire.ProjectAdapter()
		if err != nil {
			return err
		}
		return adapter.Create(ctx, primary.CreateProjectRequest{
			Name:           args[0],
			Type:           projectType,
			Status:         status,
			DomainID:       domainID,
			DriveFolderURL: drive,
			PrimaryDocURL:  doc,
			PauseCondition: pause,
		})
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Long:  `List projects, optionally filtered by domain ("none" for projects without one) and name.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		domainID, _ := cmd.Flags().GetString("domain")
		query, _ := cmd.Flags().GetString("search")

		adapter, err := wire.ProjectAdapter()
		if err != nil {
			return err
		}
		return adapter.List(ctx, primary.ProjectFilters{DomainID: domainID, Query: query})
	},
}

var projectShowCmd = &cobra.Command{
	Use:   "show [project-id]",
	Short: "Show project details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		adapter, err := wire.ProjectAdapter()
		if err != nil {
			return err
		}
		return adapter.Show(ctx, args[0])
	},
}

var projectOpenCmd = &cobra.Command{
	Use:   "open [project-id]",
	Short: "Open a project: analysis, epics and stories",
	Long:  "Open a project workspace and remember it as the last opened project.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		adapter, err := wire.ProjectAdapter()
		if err != nil {
			return err
		}
		return adapter.Open(ctx, args[0])
	},
}

var projectUpdateCmd = &cobra.Command{
	Use:   "update [project-id]",
	Short: "Update project fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		adapter, err := wire.ProjectAdapter()
		if err != nil {
			return err
		}
		return adapter.Update(ctx, primary.UpdateProjectRequest{
			ProjectID:      args[0],
			DomainID:       optionalString(cmd, "domain"),
			Name:           optionalString(cmd, "name"),
			Status:         optionalString(cmd, "status"),
			Active:         optionalBool(cmd, "active"),
			DriveFolderURL: optionalString(cmd, "drive"),
			PrimaryDocURL:  optionalString(cmd, "doc"),
			PauseCondition: optionalString(cmd, "pause-condition"),
		})
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete [project-id]",
	Short: "Delete a project",
	Long:  "Delete a project. The store rejects the delete while epics or stories still reference it.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		adapter, err := wire.ProjectAdapter()
		if err != nil {
			return err
		}
		return adapter.Delete(ctx, args[0])
	},
}

func init() {
	projectCreateCmd.Flags().String("type", "", "Project type: NEW or EXISTING (required)")
	projectCreateCmd.Flags().String("status", "", "Initial status (default INTEL)")
	projectCreateCmd.Flags().String("domain", "", "Domain ID")
	projectCreateCmd.Flags().String("drive", "", "Drive folder URL")
	projectCreateCmd.Flags().String("doc", "", "Primary document URL")
	projectCreateCmd.Flags().String("pause-condition", "", "Condition to resume a paused project")
	projectCreateCmd.MarkFlagRequired("type")

	projectListCmd.Flags().String("domain", "", `Filter by domain ID, or "none"`)
	projectListCmd.Flags().StringP("search", "s", "", "Filter by name")

	projectUpdateCmd.Flags().String("domain", "", `Domain ID ("" to clear)`)
	projectUpdateCmd.Flags().String("name", "", "New name")
	projectUpdateCmd.Flags().String("status", "", "New status")
	projectUpdateCmd.Flags().Bool("active", true, "Mark the project active or inactive")
	projectUpdateCmd.Flags().String("drive", "", "Drive folder URL")
	projectUpdateCmd.Flags().String("doc", "", "Primary document URL")
	projectUpdateCmd.Flags().String("pause-condition", "", "Condition to resume a paused project")

	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectOpenCmd)
	projectCmd.AddCommand(projectUpdateCmd)
	projectCmd.AddCommand(projectDeleteCmd)
}

// ProjectCmd returns the project command
func ProjectCmd() *cobra.Command {
	return projectCmd
}
