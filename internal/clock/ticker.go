// Package clock provides helpers for time-related operations.
package clock

import "time"

// Ticker delivers ticks at a fixed period. Ticks that elapse while nobody receives are dropped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type ticker struct {
	t *time.Ticker
}

// NewTicker returns a Ticker backed by time.Ticker.
func NewTicker(d time.Duration) Ticker {
	return ticker{t: time.NewTicker(d)}
}

func (t ticker) C() <-chan time.Time {
	return t.t.C
}

func (t ticker) Stop() {
	t.t.Stop()
}
