package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/core2/internal/ports/primary"
	"github.com/example/core2/internal/wire"
)

var domainCmd = &cobra.Command{
	Use:   "domain",
	Short: "Manage domains",
	Long:  "Create, list, update, and delete the domains that group projects",
}

var domainCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new domain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		code, _ := cmd.Flags().GetString("code")
		colorName, _ := cmd.Flags().GetString("color")

		adapter, err := wire.DomainAdapter()
		if err != nil {
			return err
		}
		return adapter.Create(ctx, args[0], code, colorName)
	},
}

var domainListCmd = &cobra.Command{
	Use:   "list",
	Short: "List domains",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		adapter, err := wire.DomainAdapter()
		if err != nil {
			return err
		}
		return adapter.List(ctx)
	},
}

var domainShowCmd = &cobra.Command{
	Use:   "show [domain-id]",
	Short: "Show domain details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		adapter, err := wire.DomainAdapter()
		if err != nil {
			return err
		}
		return adapter.Show(ctx, args[0])
	},
}

var domainUpdateCmd = &cobra.Command{
	Use:   "update [domain-id]",
	Short: "Update domain name, code or color",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		adapter, err := wire.DomainAdapter()
		if err != nil {
			return err
		}
		return adapter.Update(ctx, primary.UpdateDomainRequest{
			DomainID: args[0],
			Name:     optionalString(cmd, "name"),
			Code:     optionalString(cmd, "code"),
			Color:    optionalString(cmd, "color"),
		})
	},
}

var domainDeleteCmd = &cobra.Command{
	Use:   "delete [domain-id]",
	Short: "Delete a domain",
	Long:  "Delete a domain. Its projects keep existing without a domain.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		adapter, err := wire.DomainAdapter()
		if err != nil {
			return err
		}
		return adapter.Delete(ctx, args[0])
	},
}

func init() {
	domainCreateCmd.Flags().String("code", "", "Short code, e.g. OPS")
	domainCreateCmd.Flags().String("color", "", "Display color")

	domainUpdateCmd.Flags().String("name", "", "New name")
	domainUpdateCmd.Flags().String("code", "", "New short code")
	domainUpdateCmd.Flags().String("color", "", "New display color")

	domainCmd.AddCommand(domainCreateCmd)
	domainCmd.AddCommand(domainListCmd)
	domainCmd.AddCommand(domainShowCmd)
	domainCmd.AddCommand(domainUpdateCmd)
	domainCmd.AddCommand(domainDeleteCmd)
}

// DomainCmd returns the domain command
func DomainCmd() *cobra.Command {
	return domainCmd
}
