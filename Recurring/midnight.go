package Recurring

import (
	"log"
	"sync"
	"time"

	"Momentum/AbstractFunctions"
)

// MidnightReset fires a callback at the start of each local calendar day,
// so stale completion flags do not bleed into the next day. The timer
// re-arms itself after every fire, keeping long-lived sessions correct
// across multiple midnights.
type MidnightReset struct {
	// Now is the clock; overridable in tests.
	Now func() time.Time

	onReset func()

	mu      sync.Mutex
	stopCh  chan struct{}
	running bool
}

// NewMidnightReset creates a reset timer that invokes onReset at each
// local midnight once started.
func NewMidnightReset(onReset func()) *MidnightReset {
	return &MidnightReset{
		Now:     time.Now,
		onReset: onReset,
	}
}

// Start arms the timer for the next local midnight. Calling Start on a
// running timer is a no-op.
func (m *MidnightReset) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return
	}
	m.running = true
	m.stopCh = make(chan struct{})
	go m.run(m.stopCh)
	log.Println("Midnight reset armed")
}

// Stop cancels the pending timer. Safe to call multiple times.
func (m *MidnightReset) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running {
		return
	}
	m.running = false
	close(m.stopCh)
	log.Println("Midnight reset stopped")
}

func (m *MidnightReset) run(stop chan struct{}) {
	for {
		now := m.Now()
		until := AbstractFunctions.NextMidnight(now).Sub(now)
		if until <= 0 {
			until = time.Millisecond
		}
		timer := time.NewTimer(until)
		select {
		case <-stop:
			timer.Stop()
			return
		case <-timer.C:
			m.onReset()
			// loop re-arms for the following midnight
		}
	}
}
