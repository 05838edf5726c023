package pomodoro

import (
	"sync"
	"time"
)

// Ticker is the part of time.Ticker the driver uses.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type realTicker struct{ *time.Ticker }

func (t realTicker) C() <-chan time.Time { return t.Ticker.C }

// NewRealTicker wraps time.NewTicker.
func NewRealTicker(d time.Duration) Ticker {
	return realTicker{time.NewTicker(d)}
}

// Driver owns a Set and the single tick loop that advances it. The loop runs
// only while at least one timer is running.
type Driver struct {
	mu        sync.Mutex
	set       *Set
	newTicker func(time.Duration) Ticker
	onChange  func([]Timer)

	stop chan struct{} // non-nil while a loop is active
	done chan struct{}
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithTicker replaces the ticker factory.
func WithTicker(f func(time.Duration) Ticker) DriverOption {
	return func(d *Driver) { d.newTicker = f }
}

// WithOnChange registers a callback run after every toggle, reset and tick.
// It is called without the driver lock held.
func WithOnChange(f func([]Timer)) DriverOption {
	return func(d *Driver) { d.onChange = f }
}

// NewDriver creates a driver over set.
func NewDriver(set *Set, opts ...DriverOption) *Driver {
	d := &Driver{set: set, newTicker: NewRealTicker}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Toggle starts or pauses a timer.
func (d *Driver) Toggle(name Name) error {
	return d.mutate(func() error { return d.set.Toggle(name) })
}

// Reset stops and refills a timer.
func (d *Driver) Reset(name Name) error {
	return d.mutate(func() error { return d.set.Reset(name) })
}

// Snapshot returns the current timers.
func (d *Driver) Snapshot() []Timer {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.set.Snapshot()
}

// Active reports whether the tick loop is running.
func (d *Driver) Active() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stop != nil
}

// Close stops the tick loop and waits for it to exit.
func (d *Driver) Close() {
	d.mu.Lock()
	done := d.stopLoopLocked()
	d.mu.Unlock()
	if done != nil {
		<-done
	}
}

func (d *Driver) mutate(f func() error) error {
	d.mu.Lock()
	if err := f(); err != nil {
		d.mu.Unlock()
		return err
	}
	if d.set.AnyRunning() {
		d.startLoopLocked()
	} else {
		d.stopLoopLocked()
	}
	snap := d.set.Snapshot()
	d.mu.Unlock()

	d.notify(snap)
	return nil
}

func (d *Driver) startLoopLocked() {
	if d.stop != nil {
		return
	}
	stop := make(chan struct{})
	done := make(chan struct{})
	d.stop, d.done = stop, done
	go d.loop(d.newTicker(Step), stop, done)
}

// stopLoopLocked signals the loop to exit and returns its done channel.
func (d *Driver) stopLoopLocked() chan struct{} {
	if d.stop == nil {
		return nil
	}
	close(d.stop)
	done := d.done
	d.stop, d.done = nil, nil
	return done
}

func (d *Driver) loop(t Ticker, stop, done chan struct{}) {
	defer close(done)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C():
			d.mu.Lock()
			if d.stop != stop {
				// Replaced by a newer loop after a pause and restart.
				d.mu.Unlock()
				return
			}
			d.set.Tick()
			snap := d.set.Snapshot()
			last := !d.set.AnyRunning()
			if last {
				d.stop, d.done = nil, nil
			}
			d.mu.Unlock()

			d.notify(snap)
			if last {
				return
			}
		}
	}
}

func (d *Driver) notify(snap []Timer) {
	if d.onChange != nil {
		d.onChange(snap)
	}
}
