package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/core2/internal/core/pomodoro"
	"github.com/example/core2/internal/tui"
	"github.com/example/core2/internal/version"
	"github.com/example/core2/internal/wire"
)

// HomeCmd returns the home command
func HomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show domains, projects and the stories of the current project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := NewContext(cmd)
			if err != nil {
				return err
			}
			adapter, err := wire.WorkspaceAdapter()
			if err != nil {
				return err
			}
			return adapter.Home(ctx)
		},
	}
}

// PomodoroCmd returns the pomodoro command
func PomodoroCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pomodoro",
		Short: "Run the work and break timers",
		RunE: func(cmd *cobra.Command, args []string) error {
			durations := make(map[pomodoro.Name]time.Duration, len(pomodoro.Names))
			for name, d := range pomodoro.DefaultDurations {
				durations[name] = d
			}
			for flag, name := range map[string]pomodoro.Name{
				"work":  pomodoro.Work,
				"short": pomodoro.ShortBreak,
				"long":  pomodoro.LongBreak,
			} {
				if cmd.Flags().Changed(flag) {
					durations[name], _ = cmd.Flags().GetDuration(flag)
				}
			}
			return tui.RunPomodoro(durations)
		},
	}
	cmd.Flags().Duration("work", pomodoro.DefaultDurations[pomodoro.Work], "Work timer length")
	cmd.Flags().Duration("short", pomodoro.DefaultDurations[pomodoro.ShortBreak], "Short break length")
	cmd.Flags().Duration("long", pomodoro.DefaultDurations[pomodoro.LongBreak], "Long break length")
	return cmd
}

// VersionCmd returns the version command
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	}
}
