package driver

import "sync"

// gate blocks the run loop while paused.
type gate struct {
	lock   sync.Mutex
	cond   *sync.Cond
	paused bool
}

func newGate() *gate {
	g := &gate{}
	g.cond = sync.NewCond(&g.lock)

	return g
}

func (g *gate) pause() {
	g.lock.Lock()
	defer g.lock.Unlock()

	g.paused = true
}

func (g *gate) resume() {
	g.lock.Lock()
	defer g.lock.Unlock()

	g.paused = false
	g.cond.Broadcast()
}

func (g *gate) isPaused() bool {
	g.lock.Lock()
	defer g.lock.Unlock()

	return g.paused
}

func (g *gate) wait() {
	g.lock.Lock()
	defer g.lock.Unlock()

	for g.paused {
		g.cond.Wait()
	}
}
