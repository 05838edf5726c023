package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/core2/internal/config"
	"github.com/example/core2/internal/db"
	"github.com/example/core2/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration and create the database",
		Long: `Write ~/.core2/config.yaml with default settings and create the
SQLite database with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			dir, err := config.HomeDir()
			if err != nil {
				return err
			}
			path := filepath.Join(dir, "config.yaml")
			if _, err := os.Stat(path); err == nil && !force {
				fmt.Printf("Config already exists at %s\n", path)
			} else {
				if err := config.WriteDefault(path, true); err != nil {
					return err
				}
				fmt.Printf("✓ Config written to %s\n", path)
			}

			cfg, err := wire.Config()
			if err != nil {
				return err
			}
			storeCfg := cfg.Store
			storeCfg.Migrate = true
			drv, err := db.Open(cmd.Context(), storeCfg, wire.Logger())
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer drv.Close()
			version, err := db.CurrentVersion(cmd.Context(), drv)
			if err != nil {
				return err
			}
			fmt.Printf("✓ Database ready (%s, schema v%d)\n", cfg.Store.Dialect, version)

			fmt.Println()
			fmt.Println("Next steps:")
			if cfg.Offline() {
				fmt.Println("  set owner_id in the config, or auth.url and auth.anon_key to sign in")
			} else {
				fmt.Println("  core2 login --email you@example.com")
			}
			fmt.Println("  core2 project create \"My First Project\" --type NEW")
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	return cmd
}

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := wire.Config()
			if err != nil {
				return err
			}
			out := *cfg
			if out.Auth.AnonKey != "" {
				out.Auth.AnonKey = "********"
			}
			data, err := out.YAML()
			if err != nil {
				return err
			}
			fmt.Print(string(data))
			return nil
		},
	})
	return cmd
}
