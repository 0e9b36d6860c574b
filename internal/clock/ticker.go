// Package clock provides injectable tickers.
package clock

import "time"

// Ticker delivers ticks on a channel until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type realTicker struct {
	t *time.Ticker
}

// NewTicker returns a Ticker backed by time.Ticker.
func NewTicker(d time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(d)}
}

func (r *realTicker) C() <-chan time.Time { return r.t.C }

func (r *realTicker) Stop() { r.t.Stop() }

// ManualTicker is a Ticker fired by hand, for tests.
type ManualTicker struct {
	ch      chan time.Time
	stopped chan struct{}
}

// NewManualTicker returns a ManualTicker.
func NewManualTicker() *ManualTicker {
	return &ManualTicker{
		ch:      make(chan time.Time),
		stopped: make(chan struct{}),
	}
}

func (m *ManualTicker) C() <-chan time.Time { return m.ch }

// Stop marks the ticker stopped; pending Tick calls return.
func (m *ManualTicker) Stop() {
	select {
	case <-m.stopped:
	default:
		close(m.stopped)
	}
}

// Tick delivers one tick, blocking until it is received or the ticker is stopped.
// It reports whether the tick was delivered.
func (m *ManualTicker) Tick() bool {
	select {
	case m.ch <- time.Now():
		return true
	case <-m.stopped:
		return false
	}
}
