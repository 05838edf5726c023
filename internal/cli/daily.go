package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/core2/internal/ports/primary"
	"github.com/example/core2/internal/wire"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Manage calendar entries",
	Long:  "Create, list, and delete the personal daily calendar entries",
}

var dailyCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a calendar entry",
	Long: `Create a calendar entry. Without --start and --end the entry takes
09:00-10:00 on --day (today by default).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		dayFlag, _ := cmd.Flags().GetString("day")
		notes, _ := cmd.Flags().GetString("notes")
		kind, _ := cmd.Flags().GetString("kind")
		start, _ := cmd.Flags().GetString("start")
		end, _ := cmd.Flags().GetString("end")

		day, err := parseDay(dayFlag)
		if err != nil {
			return err
		}
		adapter, err := wire.DailyTaskAdapter()
		if err != nil {
			return err
		}
		return adapter.Create(ctx, primary.CreateDailyTaskRequest{
			Title:   args[0],
			Notes:   notes,
			Kind:    strings.ToUpper(kind),
			Day:     day,
			StartAt: start,
			EndAt:   end,
		})
	},
}

var dailyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List calendar entries of a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		dayFlag, _ := cmd.Flags().GetString("day")
		all, _ := cmd.Flags().GetBool("all")

		var day time.Time
		if !all {
			if day, err = parseDay(dayFlag); err != nil {
				return err
			}
		}
		adapter, err := wire.DailyTaskAdapter()
		if err != nil {
			return err
		}
		return adapter.List(ctx, day)
	},
}

var dailyDeleteCmd = &cobra.Command{
	Use:   "delete [entry-id]",
	Short: "Delete a calendar entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		adapter, err := wire.DailyTaskAdapter()
		if err != nil {
			return err
		}
		return adapter.Delete(ctx, args[0])
	},
}

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the month grid and a day's entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		dayFlag, _ := cmd.Flags().GetString("day")
		day, err := parseDay(dayFlag)
		if err != nil {
			return err
		}
		adapter, err := wire.DailyTaskAdapter()
		if err != nil {
			return err
		}
		return adapter.Calendar(ctx, day)
	},
}

func init() {
	dailyCreateCmd.Flags().String("day", "", "Day YYYY-MM-DD (default today)")
	dailyCreateCmd.Flags().String("notes", "", "Notes")
	dailyCreateCmd.Flags().String("kind", "", "MEETING, PERSONAL, HEALTH, FOCUS or OTHER (default OTHER)")
	dailyCreateCmd.Flags().String("start", "", "Start time")
	dailyCreateCmd.Flags().String("end", "", "End time")

	dailyListCmd.Flags().String("day", "", "Day YYYY-MM-DD (default today)")
	dailyListCmd.Flags().Bool("all", false, "List every entry")

	calendarCmd.Flags().String("day", "", "Selected day YYYY-MM-DD (default today)")

	dailyCmd.AddCommand(dailyCreateCmd)
	dailyCmd.AddCommand(dailyListCmd)
	dailyCmd.AddCommand(dailyDeleteCmd)
}

// DailyCmd returns the daily command
func DailyCmd() *cobra.Command {
	return dailyCmd
}

// CalendarCmd returns the calendar command
func CalendarCmd() *cobra.Command {
	return calendarCmd
}
