package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/core2/internal/ports/primary"
	"github.com/example/core2/internal/wire"
)

func credentialCmd(use, short string, run func(cmd *cobra.Command, email, password string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			if email == "" {
				return fmt.Errorf("--email is required")
			}
			password, err := readPassword(cmd)
			if err != nil {
				return err
			}
			return run(cmd, email, password)
		},
	}
	cmd.Flags().String("email", "", "Account email (required)")
	cmd.Flags().String("password", "", "Account password (prompted when omitted)")
	return cmd
}

// LoginCmd returns the login command
func LoginCmd() *cobra.Command {
	return credentialCmd("login", "Sign in with email and password", func(cmd *cobra.Command, email, password string) error {
		adapter, err := wire.SessionAdapter()
		if err != nil {
			return err
		}
		return adapter.Login(cmd.Context(), email, password)
	})
}

// SignupCmd returns the signup command
func SignupCmd() *cobra.Command {
	return credentialCmd("signup", "Create an account", func(cmd *cobra.Command, email, password string) error {
		adapter, err := wire.SessionAdapter()
		if err != nil {
			return err
		}
		return adapter.Signup(cmd.Context(), email, password)
	})
}

// ResetPasswordCmd returns the reset-password command
func ResetPasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Send a password reset email",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			if email == "" {
				return fmt.Errorf("--email is required")
			}
			adapter, err := wire.SessionAdapter()
			if err != nil {
				return err
			}
			return adapter.ResetPassword(cmd.Context(), email)
		},
	}
	cmd.Flags().String("email", "", "Account email (required)")
	return cmd
}

// LogoutCmd returns the logout command
func LogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the saved session",
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.SessionAdapter()
			if err != nil {
				return err
			}
			return adapter.Logout(cmd.Context())
		},
	}
}

// WhoAmICmd returns the whoami command
func WhoAmICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.SessionAdapter()
			if err != nil {
				return err
			}
			if err := adapter.WhoAmI(cmd.Context()); err != nil {
				return err
			}

			watch, _ := cmd.Flags().GetBool("watch")
			if !watch {
				return nil
			}
			sessions, err := wire.SessionService()
			if err != nil {
				return err
			}
			unsubscribe := sessions.Subscribe(func(s *primary.Session) {
				if s == nil {
					fmt.Printf("%s signed out\n", color.New(color.FgYellow).Sprint("!"))
					return
				}
				fmt.Printf("%s session changed: %s\n", color.New(color.FgGreen).Sprint("✓"), s.Email)
			})
			defer unsubscribe()
			fmt.Println("Watching for session changes (Ctrl+C to stop)")
			return sessions.Watch(cmd.Context())
		},
	}
	cmd.Flags().Bool("watch", false, "Keep running and report sign-in and sign-out from other processes")
	return cmd
}
