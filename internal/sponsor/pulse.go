package sponsor

import (
	"sync"
	"time"
)

// Pulser fires a cosmetic callback at a fixed interval, independent of
// data and view state. Start clears any previously armed timer before
// arming a new one, so re-arming across re-renders never leaves two
// timers running.
type Pulser struct {
	Interval time.Duration
	Fire     func()

	mu   sync.Mutex
	stop chan struct{}
}

// Start arms the pulse timer, replacing any prior one.
func (p *Pulser) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stop != nil {
		close(p.stop)
	}
	stop := make(chan struct{})
	p.stop = stop

	interval := p.Interval
	if interval <= 0 {
		interval = 15 * time.Second
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if p.Fire != nil {
					p.Fire()
				}
			case <-stop:
				return
			}
		}
	}()
}

// Stop disarms the timer. Safe to call repeatedly.
func (p *Pulser) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop != nil {
		close(p.stop)
		p.stop = nil
	}
}
