package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/core2/internal/cli"
	"github.com/example/core2/internal/version"
	"github.com/example/core2/internal/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "core2",
		Short:   "CORE2 - projects, stories, tasks and a daily calendar",
		Version: version.String(),
		Long: `core2 tracks projects grouped by domain, their analysis documents, epics,
user stories and kanban tasks, plus a personal daily calendar and Pomodoro timers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			path, _ := cmd.Flags().GetString("config")
			wire.SetConfigPath(path)
		},
	}
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.core2/config.yaml)")

	// Setup and session
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.ConfigCmd())
	rootCmd.AddCommand(cli.LoginCmd())
	rootCmd.AddCommand(cli.SignupCmd())
	rootCmd.AddCommand(cli.ResetPasswordCmd())
	rootCmd.AddCommand(cli.LogoutCmd())
	rootCmd.AddCommand(cli.WhoAmICmd())

	// Entity commands
	rootCmd.AddCommand(cli.HomeCmd())
	rootCmd.AddCommand(cli.DomainCmd())
	rootCmd.AddCommand(cli.ProjectCmd())
	rootCmd.AddCommand(cli.AnalysisCmd())
	rootCmd.AddCommand(cli.EpicCmd())
	rootCmd.AddCommand(cli.StoryCmd())
	rootCmd.AddCommand(cli.TaskCmd())
	rootCmd.AddCommand(cli.TestLogCmd())

	// Calendar and timers
	rootCmd.AddCommand(cli.DailyCmd())
	rootCmd.AddCommand(cli.CalendarCmd())
	rootCmd.AddCommand(cli.PomodoroCmd())
	rootCmd.AddCommand(cli.VersionCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if closeErr := wire.Close(); closeErr != nil {
		wire.Logger().Warn("failed to close store", "error", closeErr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
