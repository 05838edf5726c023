package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/core2/internal/ports/primary"
	"github.com/example/core2/internal/wire"
)

// AnalysisCmd returns the analysis command
func AnalysisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analysis",
		Short: "View and edit a project's analysis document",
	}
	cmd.AddCommand(analysisShowCmd())
	cmd.AddCommand(analysisUpdateCmd())
	return cmd
}

func analysisShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [project-id]",
		Short: "Show the analysis document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := NewContext(cmd)
			if err != nil {
				return err
			}
			adapter, err := wire.AnalysisAdapter()
			if err != nil {
				return err
			}
			return adapter.Show(ctx, args[0])
		},
	}
}

func analysisUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [project-id]",
		Short: "Update analysis sections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := NewContext(cmd)
			if err != nil {
				return err
			}
			adapter, err := wire.AnalysisAdapter()
			if err != nil {
				return err
			}
			return adapter.Update(ctx, primary.UpdateAnalysisRequest{
				ProjectID:   args[0],
				Pain:        optionalString(cmd, "pain"),
				Knowledge:   optionalString(cmd, "knowledge"),
				Context:     optionalString(cmd, "context"),
				LegacyNotes: optionalString(cmd, "legacy-notes"),
				ScopeIn:     optionalString(cmd, "scope-in"),
				ScopeOut:    optionalString(cmd, "scope-out"),
				IsDone:      optionalBool(cmd, "done"),
			})
		},
	}
	cmd.Flags().String("pain", "", "Pain being solved")
	cmd.Flags().String("knowledge", "", "What is known")
	cmd.Flags().String("context", "", "Context")
	cmd.Flags().String("legacy-notes", "", "Notes on the legacy system")
	cmd.Flags().String("scope-in", "", "In scope")
	cmd.Flags().String("scope-out", "", "Out of scope")
	cmd.Flags().Bool("done", true, "Mark the analysis done or not done")
	return cmd
}
