package rotator

import (
	"sync"
	"time"
)

// DefaultInterval is how long each item stays current before auto-advance.
const DefaultInterval = 4 * time.Second

// Rotator cycles through n items, advancing on a timer and wrapping around
// in both directions. Manual navigation restarts the timer so the item just
// selected gets a full interval on screen.
type Rotator struct {
	mu       sync.Mutex
	count    int
	index    int
	interval time.Duration
	paused   bool
	onChange func(index int)

	ticker *time.Ticker
	done   chan struct{}
	loopWg sync.WaitGroup
}

func New(count int, interval time.Duration, onChange func(index int)) *Rotator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Rotator{
		count:    count,
		interval: interval,
		onChange: onChange,
	}
}

func (r *Rotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

// Start begins auto-advancing. A rotator with fewer than two items never
// advances.
func (r *Rotator) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.count < 2 || r.ticker != nil {
		return
	}

	r.ticker = time.NewTicker(r.interval)
	r.done = make(chan struct{})
	r.loopWg.Add(1)
	go r.loop(r.ticker, r.done)
}

func (r *Rotator) loop(ticker *time.Ticker, done chan struct{}) {
	defer r.loopWg.Done()
	for {
		select {
		case <-ticker.C:
			r.mu.Lock()
			// A tick can slip past the select while Stop holds the
			// lock; it must not advance once done is closed.
			select {
			case <-done:
				r.mu.Unlock()
				return
			default:
			}
			if !r.paused {
				r.advanceLocked(1)
			}
			r.mu.Unlock()
		case <-done:
			return
		}
	}
}

// Stop halts auto-advancing and waits for the advance goroutine to exit.
// onChange never fires after Stop returns.
func (r *Rotator) Stop() {
	r.mu.Lock()
	if r.ticker == nil {
		r.mu.Unlock()
		return
	}
	r.ticker.Stop()
	close(r.done)
	r.ticker = nil
	r.done = nil
	r.mu.Unlock()

	r.loopWg.Wait()
}

// Pause keeps the current item in place without dropping the timer, the
// hover behaviour of the original slider.
func (r *Rotator) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paused = true
}

func (r *Rotator) Resume() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paused = false
}

func (r *Rotator) Next() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.advanceLocked(1)
	r.restartLocked()
}

func (r *Rotator) Previous() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.advanceLocked(-1)
	r.restartLocked()
}

// Go jumps straight to an item, wrapping out-of-range values.
func (r *Rotator) Go(index int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.count == 0 {
		return
	}
	r.index = ((index % r.count) + r.count) % r.count
	r.restartLocked()
	r.notifyLocked()
}

func (r *Rotator) advanceLocked(step int) {
	if r.count == 0 {
		return
	}
	r.index = ((r.index+step)%r.count + r.count) % r.count
	r.notifyLocked()
}

func (r *Rotator) restartLocked() {
	if r.ticker != nil {
		r.ticker.Reset(r.interval)
	}
}

func (r *Rotator) notifyLocked() {
	if r.onChange != nil {
		r.onChange(r.index)
	}
}
