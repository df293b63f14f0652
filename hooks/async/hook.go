// usage:
//
//	raw := hookslog.New(slog.Default(), hookslog.Options{
//	    FailureEvery: 10, // sample logs: ~every 10th failure
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	client, _ := nscache.New[Profile](nscache.Options[Profile]{
//	    Namespace: "catalog",
//	    Backend:   backend,
//	    Hooks:     hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/nscache"
)

// Hooks forwards events to inner on worker goroutines.
// Events are dropped when the queue is full or after Close.
type Hooks struct {
	inner nscache.Hooks
	q     chan func()
	wg    sync.WaitGroup

	mu      sync.RWMutex
	closed  bool
	dropped atomic.Uint64
}

var _ nscache.Hooks = (*Hooks)(nil)

func New(inner nscache.Hooks, workers, qlen int) *Hooks {
	if inner == nil {
		inner = nscache.NopHooks{}
	}
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Safe to call more than once.
func (h *Hooks) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	close(h.q)
	h.mu.Unlock()
	h.wg.Wait()
}

// Dropped reports how many events were discarded.
func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		h.dropped.Add(1)
		return
	}
	select {
	case h.q <- f:
	default: // drop
		h.dropped.Add(1)
	}
}

func (h *Hooks) Hit(ns string)  { h.try(func() { h.inner.Hit(ns) }) }
func (h *Hooks) Miss(ns string) { h.try(func() { h.inner.Miss(ns) }) }
func (h *Hooks) KeyHashed(ns string, n int) {
	h.try(func() { h.inner.KeyHashed(ns, n) })
}
func (h *Hooks) Failure(ns string, op nscache.Op, kind nscache.FailureKind, swallowed bool, err error) {
	h.try(func() { h.inner.Failure(ns, op, kind, swallowed, err) })
}
