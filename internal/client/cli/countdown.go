package cli

import (
	"sync"
	"time"
)

// Countdown drives a pomodoro timer. The ticking goroutine exists only
// while the countdown is running: Pause tears it down and Resume starts a
// fresh one with the remaining time intact. When the remaining time hits
// zero, onDone fires once and the countdown stops.
type Countdown struct {
	mu        sync.Mutex
	remaining time.Duration
	interval  time.Duration
	running   bool
	stop      chan struct{}

	onTick func(remaining time.Duration)
	onDone func()
}

// NewCountdown returns a countdown over total time. Either callback may be
// nil. Callbacks run on the ticker goroutine.
func NewCountdown(total time.Duration, onTick func(time.Duration), onDone func()) *Countdown {
	return &Countdown{
		remaining: total,
		interval:  time.Second,
		onTick:    onTick,
		onDone:    onDone,
	}
}

// Start begins ticking. It is an alias for Resume on a fresh countdown.
func (c *Countdown) Start() { c.Resume() }

// Resume starts a new ticking goroutine unless one is already running or
// the countdown has finished.
func (c *Countdown) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running || c.remaining <= 0 {
		return
	}
	c.running = true
	c.stop = make(chan struct{})
	go c.run(c.stop)
}

// Pause stops the ticking goroutine, keeping the remaining time.
func (c *Countdown) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return
	}
	close(c.stop)
	c.running = false
}

// Remaining reports the time left.
func (c *Countdown) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Running reports whether the countdown is ticking.
func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

func (c *Countdown) run(stop chan struct{}) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			if !c.running {
				// Paused between the tick firing and the lock.
				c.mu.Unlock()
				return
			}
			c.remaining -= c.interval
			rem := c.remaining
			done := rem <= 0
			if done {
				c.running = false
			}
			c.mu.Unlock()

			if c.onTick != nil {
				c.onTick(rem)
			}
			if done {
				if c.onDone != nil {
					c.onDone()
				}
				return
			}

		case <-stop:
			return
		}
	}
}
