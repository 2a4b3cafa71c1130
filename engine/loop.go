package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// Loop drives a fixed-interval step function on its own goroutine.
// Web sessions use it as their tick source; the terminal frontend drives
// its own select loop instead because it multiplexes input polling.
type Loop struct {
	interval time.Duration
	step     func(now time.Time)
	onPanic  func(r any)

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewLoop creates a loop calling step every interval once started
func NewLoop(interval time.Duration, step func(now time.Time), onPanic func(r any)) *Loop {
	return &Loop{
		interval: interval,
		step:     step,
		onPanic:  onPanic,
		stopChan: make(chan struct{}),
	}
}

// Start begins the tick goroutine
func (l *Loop) Start() {
	if l.running.CompareAndSwap(false, true) {
		l.wg.Add(1)
		Go(l.run, l.onPanic)
	}
}

// Stop halts the loop and waits for the goroutine to exit
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		if l.running.CompareAndSwap(true, false) {
			close(l.stopChan)
			l.wg.Wait()
		}
	})
}

// Running reports whether the loop has been started and not stopped
func (l *Loop) Running() bool {
	return l.running.Load()
}

func (l *Loop) run() {
	defer l.wg.Done()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		case now := <-ticker.C:
			l.step(now)
		}
	}
}
