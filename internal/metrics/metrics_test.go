package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	var c Counter

	c.Inc()
	c.Add(4)

	assert.Equal(t, uint64(5), c.Load())
}

func TestCounterConcurrent(t *testing.T) {
	var c Counter
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Inc()
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(50), c.Load())
}

func TestTimer(t *testing.T) {
	timer := StartTimer()
	time.Sleep(5 * time.Millisecond)

	assert.GreaterOrEqual(t, timer.Duration(), 5*time.Millisecond)
}

func TestRegistrySnapshot(t *testing.T) {
	r := NewRegistry()
	r.CartAdds.Inc()
	r.CartAdds.Inc()
	r.CartLists.Inc()

	snap := r.Snapshot()

	assert.Equal(t, uint64(2), snap["cart_adds"])
	assert.Equal(t, uint64(1), snap["cart_lists"])
	assert.Equal(t, uint64(0), snap["cart_removes"])
}
