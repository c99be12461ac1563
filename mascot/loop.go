package mascot

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrLoopStarted = errors.New("mascot: loop already started")

// Ticker is anything driven by a Loop.
type Ticker interface {
	Tick(elapsedMs float64)
}

// Loop is a host scheduler that ticks a target from its own goroutine.
// Once Stop returns no further tick reaches the target.
type Loop struct {
	target   Ticker
	interval time.Duration

	mu      sync.Mutex
	paused  bool
	started bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewLoop returns a stopped loop ticking target every interval.
func NewLoop(target Ticker, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &Loop{target: target, interval: interval}
}

// Start launches the loop. It stops on its own when ctx is cancelled.
func (l *Loop) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started {
		return ErrLoopStarted
	}
	ctx, cancel := context.WithCancel(ctx)
	l.started = true
	l.cancel = cancel
	l.done = make(chan struct{})
	go l.run(ctx, l.done)
	return nil
}

// Stop cancels the loop and waits for its goroutine to exit. Safe to call
// more than once, and before Start.
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Pause suspends ticking; time spent paused is not delivered on Resume.
func (l *Loop) Pause() {
	l.mu.Lock()
	l.paused = true
	l.mu.Unlock()
}

func (l *Loop) Resume() {
	l.mu.Lock()
	l.paused = false
	l.mu.Unlock()
}

func (l *Loop) Paused() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.paused
}

// Done is closed when the loop goroutine has exited. It is nil before Start.
func (l *Loop) Done() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done
}

func (l *Loop) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			elapsed := now.Sub(last)
			last = now
			if l.Paused() {
				continue
			}
			// a cancel racing the ticker wins
			if ctx.Err() != nil {
				return
			}
			l.target.Tick(float64(elapsed) / float64(time.Millisecond))
		}
	}
}
