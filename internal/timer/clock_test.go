package timer

import (
	"sync"
	"time"
)

// fakeClock hands out manually driven tickers and deferred calls.
type fakeClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*fakeTicker
	timers  []*fakeTimer
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) NewTicker(d time.Duration) Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	tk := &fakeTicker{ch: make(chan time.Time)}
	c.tickers = append(c.tickers, tk)
	return tk
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Stopper {
	c.mu.Lock()
	defer c.mu.Unlock()
	tm := &fakeTimer{delay: d, f: f}
	c.timers = append(c.timers, tm)
	return tm
}

func (c *fakeClock) tickerCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tickers)
}

// tick delivers one tick to the newest ticker. It reports false if nobody
// received it.
func (c *fakeClock) tick() bool {
	c.mu.Lock()
	if len(c.tickers) == 0 {
		c.mu.Unlock()
		return false
	}
	tk := c.tickers[len(c.tickers)-1]
	c.now = c.now.Add(time.Second)
	now := c.now
	c.mu.Unlock()

	select {
	case tk.ch <- now:
		return true
	case <-time.After(200 * time.Millisecond):
		return false
	}
}

// pending returns deferred calls that were neither stopped nor fired.
func (c *fakeClock) pending() []*fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []*fakeTimer
	for _, tm := range c.timers {
		if !tm.isDone() {
			out = append(out, tm)
		}
	}
	return out
}

// fire runs every pending deferred call.
func (c *fakeClock) fire() int {
	n := 0
	for _, tm := range c.pending() {
		if tm.run() {
			n++
		}
	}
	return n
}

type fakeTicker struct {
	ch chan time.Time
}

func (t *fakeTicker) C() <-chan time.Time { return t.ch }

func (t *fakeTicker) Stop() {}

type fakeTimer struct {
	mu      sync.Mutex
	delay   time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	wasPending := !t.stopped && !t.fired
	t.stopped = true
	return wasPending
}

func (t *fakeTimer) isDone() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped || t.fired
}

// run invokes the callback even if stopped, to mimic a timer whose
// callback was already in flight; it reports whether it was still pending.
func (t *fakeTimer) run() bool {
	t.mu.Lock()
	wasPending := !t.stopped && !t.fired
	t.fired = true
	f := t.f
	t.mu.Unlock()
	f()
	return wasPending
}
