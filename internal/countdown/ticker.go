package countdown

import (
	"sync"
	"time"
)

// Ticker invokes a callback once per interval until stopped. It exists so
// repeating renders have an explicit teardown path instead of running for
// the life of the process.
type Ticker struct {
	interval time.Duration
	fn       func(now time.Time)

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func NewTicker(interval time.Duration, fn func(now time.Time)) *Ticker {
	return &Ticker{
		interval: interval,
		fn:       fn,
	}
}

// Start begins ticking. Starting an already-running ticker is a no-op.
func (t *Ticker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stop != nil {
		return
	}
	t.stop = make(chan struct{})
	t.done = make(chan struct{})

	go t.run(t.stop, t.done)
}

func (t *Ticker) run(stop, done chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	defer close(done)

	for {
		select {
		case now := <-ticker.C:
			t.fn(now)
		case <-stop:
			return
		}
	}
}

// Stop halts the ticker and waits for any in-flight callback to return.
// Stopping a ticker that was never started is a no-op.
func (t *Ticker) Stop() {
	t.mu.Lock()
	stop, done := t.stop, t.done
	t.stop, t.done = nil, nil
	t.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}
