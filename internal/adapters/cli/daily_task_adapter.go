package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/example/core2/internal/ports/primary"
)

// DailyTaskAdapter translates CLI operations to DailyTaskService calls.
type DailyTaskAdapter struct {
	service primary.DailyTaskService
	out     io.Writer
}

// NewDailyTaskAdapter creates a new DailyTaskAdapter with the given service.
func NewDailyTaskAdapter(service primary.DailyTaskService, out io.Writer) *DailyTaskAdapter {
	return &DailyTaskAdapter{service: service, out: out}
}

// Create creates a calendar entry.
func (a *DailyTaskAdapter) Create(ctx context.Context, req primary.CreateDailyTaskRequest) error {
	d, err := a.service.CreateDailyTask(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Created entry %s: %s\n", d.ID, d.Title)
	fmt.Fprintf(a.out, "  %s → %s (%s)\n", formatTime(d.StartAt), d.EndAt.Local().Format("15:04"), d.Kind)
	return nil
}

// List prints one day's entries, or every entry when day is zero.
func (a *DailyTaskAdapter) List(ctx context.Context, day time.Time) error {
	var (
		entries []*primary.DailyTask
		err     error
	)
	if day.IsZero() {
		entries, err = a.service.ListDailyTasks(ctx)
	} else {
		entries, err = a.service.ListDay(ctx, day)
	}
	if err != nil {
		return fmt.Errorf("failed to list entries: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No entries found")
		return nil
	}
	writeEntries(a.out, entries)
	return nil
}

func writeEntries(out io.Writer, entries []*primary.DailyTask) {
	fmt.Fprintf(out, "\n%-16s %-5s %-8s %-36s %s\n", "START", "END", "KIND", "ID", "TITLE")
	fmt.Fprintln(out, divider)
	for _, d := range entries {
		fmt.Fprintf(out, "%-16s %-5s %s %-36s %s\n",
			formatTime(d.StartAt), d.EndAt.Local().Format("15:04"), badge(d.Kind, 8), d.ID, d.Title)
	}
	fmt.Fprintln(out)
}

// Calendar prints the month grid around day and that day's entries.
func (a *DailyTaskAdapter) Calendar(ctx context.Context, day time.Time) error {
	view, err := a.service.Calendar(ctx, day)
	if err != nil {
		return fmt.Errorf("failed to load calendar: %w", err)
	}

	fmt.Fprintf(a.out, "\n%s\n", color.New(color.Bold).Sprintf("%s %d", view.Month, view.Year))
	fmt.Fprintln(a.out, "Mo Tu We Th Fr Sa Su")
	selected := view.Selected.Day()
	for _, week := range view.Weeks {
		for i, n := range week {
			if i > 0 {
				fmt.Fprint(a.out, " ")
			}
			switch {
			case n == 0:
				fmt.Fprint(a.out, "  ")
			case n == selected:
				fmt.Fprint(a.out, color.New(color.ReverseVideo).Sprintf("%2d", n))
			default:
				fmt.Fprintf(a.out, "%2d", n)
			}
		}
		fmt.Fprintln(a.out)
	}

	fmt.Fprintf(a.out, "\n%s\n", view.Selected.Format("Monday, 2 January 2006"))
	if len(view.Entries) == 0 {
		fmt.Fprintln(a.out, "No entries found")
	} else {
		writeEntries(a.out, view.Entries)
	}
	return nil
}

// Delete deletes a calendar entry.
func (a *DailyTaskAdapter) Delete(ctx context.Context, dailyTaskID string) error {
	if err := a.service.DeleteDailyTask(ctx, dailyTaskID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Deleted entry %s\n", dailyTaskID)
	return nil
}
