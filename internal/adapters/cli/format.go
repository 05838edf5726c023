// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing, output formatting,
// but delegate business logic to services.
package cli

import (
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/example/core2/internal/core/dailytask"
	"github.com/example/core2/internal/core/project"
	"github.com/example/core2/internal/core/story"
	"github.com/example/core2/internal/core/task"
)

const divider = "────────────────────────────────────────────────────────────────"

const timeLayout = "2006-01-02 15:04"

var statusColors = map[string]color.Attribute{
	task.StatusIcebox:       color.FgCyan,
	task.StatusInProgress:   color.FgYellow,
	task.StatusDiscussion:   color.FgMagenta,
	task.StatusDone:         color.FgGreen,
	story.StatusStart:       color.FgCyan,
	story.StatusTested:      color.FgBlue,
	project.StatusIntel:     color.FgCyan,
	project.StatusDesign:    color.FgMagenta,
	project.StatusExecution: color.FgYellow,
	project.StatusTest:      color.FgBlue,
	project.StatusPaused:    color.FgRed,
	project.StatusArchived:  color.FgHiBlack,
	dailytask.KindMeeting:   color.FgMagenta,
	dailytask.KindPersonal:  color.FgCyan,
	dailytask.KindHealth:    color.FgGreen,
	dailytask.KindFocus:     color.FgYellow,
}

// badge colors a status or kind, padded to width before coloring so columns
// stay aligned.
func badge(status string, width int) string {
	padded := status
	if pad := width - len(status); pad > 0 {
		padded += strings.Repeat(" ", pad)
	}
	attr, ok := statusColors[status]
	if !ok {
		return padded
	}
	return color.New(attr).Sprint(padded)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func formatOptional(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return formatTime(*t)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func checkmark(done bool) string {
	if done {
		return color.New(color.FgGreen).Sprint("✓")
	}
	return color.New(color.FgYellow).Sprint("…")
}
