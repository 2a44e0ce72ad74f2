package metrics

import (
	"sort"
	"sync"
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

var (
	mu       sync.Mutex
	counters = map[string]*Counter{}
)

// NewCounter returns the process-wide counter for the name, creating it
// on first use. Calling it twice with the same name yields the same
// counter, so package-level singletons stay cheap to declare.
func NewCounter(name string) *Counter {
	mu.Lock()
	defer mu.Unlock()

	if c, ok := counters[name]; ok {
		return c
	}
	c := &Counter{}
	counters[name] = c
	return c
}

// Snapshot returns current counter values, sorted by name for stable
// output.
func Snapshot() map[string]uint64 {
	mu.Lock()
	defer mu.Unlock()

	names := make([]string, 0, len(counters))
	for name := range counters {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]uint64, len(names))
	for _, name := range names {
		out[name] = counters[name].Load()
	}
	return out
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
