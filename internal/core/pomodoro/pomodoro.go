// Package pomodoro implements the work / break countdown timers.
package pomodoro

import (
	"fmt"
	"time"
)

// Name identifies one of the timers.
type Name string

const (
	Work       Name = "pomodoro"
	ShortBreak Name = "short"
	LongBreak  Name = "long"
)

// Names lists the timers in display order.
var Names = []Name{Work, ShortBreak, LongBreak}

// DefaultDurations are the full lengths of each timer.
var DefaultDurations = map[Name]time.Duration{
	Work:       25 * time.Minute,
	ShortBreak: 5 * time.Minute,
	LongBreak:  15 * time.Minute,
}

// Step is the amount removed from each running timer per tick.
const Step = time.Second

// Timer is the state of one countdown.
type Timer struct {
	Name      Name
	Total     time.Duration
	Remaining time.Duration
	Running   bool
}

// Finished reports whether the timer reached zero.
func (t Timer) Finished() bool {
	return t.Remaining <= 0
}

// Clock renders the remaining time as MM:SS.
func (t Timer) Clock() string {
	secs := int(t.Remaining / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Set holds the three timers. It is not safe for concurrent use; Driver
// serializes access.
type Set struct {
	timers map[Name]*Timer
}

// NewSet builds timers with the given durations, full and paused.
func NewSet(durations map[Name]time.Duration) *Set {
	s := &Set{timers: make(map[Name]*Timer, len(Names))}
	for _, n := range Names {
		d := durations[n]
		s.timers[n] = &Timer{Name: n, Total: d, Remaining: d}
	}
	return s
}

// Toggle pauses a running timer, or starts a paused one. A finished timer
// restarts from its full duration.
func (s *Set) Toggle(name Name) error {
	t, ok := s.timers[name]
	if !ok {
		return fmt.Errorf("unknown timer %q", name)
	}
	if t.Running {
		t.Running = false
		return nil
	}
	if t.Finished() {
		t.Remaining = t.Total
	}
	t.Running = true
	return nil
}

// Reset stops the timer and refills it.
func (s *Set) Reset(name Name) error {
	t, ok := s.timers[name]
	if !ok {
		return fmt.Errorf("unknown timer %q", name)
	}
	t.Running = false
	t.Remaining = t.Total
	return nil
}

// Tick removes one Step from every running timer, stopping those that reach
// zero.
func (s *Set) Tick() {
	for _, t := range s.timers {
		if !t.Running {
			continue
		}
		t.Remaining -= Step
		if t.Remaining <= 0 {
			t.Remaining = 0
			t.Running = false
		}
	}
}

// AnyRunning reports whether at least one timer is running.
func (s *Set) AnyRunning() bool {
	for _, t := range s.timers {
		if t.Running {
			return true
		}
	}
	return false
}

// Snapshot copies the timers in display order.
func (s *Set) Snapshot() []Timer {
	out := make([]Timer, 0, len(Names))
	for _, n := range Names {
		out = append(out, *s.timers[n])
	}
	return out
}
