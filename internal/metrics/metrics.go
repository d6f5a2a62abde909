package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Registry holds the operation counters exposed on /stats.
type Registry struct {
	CartAdds       Counter
	CartRemoves    Counter
	CartLists      Counter
	SessionsMinted Counter
	ProductWrites  Counter
	OptionWrites   Counter
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Snapshot() map[string]uint64 {
	return map[string]uint64{
		"cart_adds":       r.CartAdds.Load(),
		"cart_removes":    r.CartRemoves.Load(),
		"cart_lists":      r.CartLists.Load(),
		"sessions_minted": r.SessionsMinted.Load(),
		"product_writes":  r.ProductWrites.Load(),
		"option_writes":   r.OptionWrites.Load(),
	}
}
