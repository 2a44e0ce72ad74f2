package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	c := NewCounter("test_counter")
	c.Inc()
	c.Add(4)
	assert.Equal(t, uint64(5), c.Load())
}

func TestNewCounter_SameNameSameCounter(t *testing.T) {
	a := NewCounter("shared")
	b := NewCounter("shared")
	a.Inc()
	assert.Equal(t, uint64(1), b.Load())
}

func TestSnapshot(t *testing.T) {
	NewCounter("snap_a").Add(2)
	NewCounter("snap_b").Inc()

	snap := Snapshot()
	assert.Equal(t, uint64(2), snap["snap_a"])
	assert.Equal(t, uint64(1), snap["snap_b"])
}

func TestTimer(t *testing.T) {
	timer := StartTimer()
	time.Sleep(5 * time.Millisecond)
	assert.GreaterOrEqual(t, timer.Duration(), 5*time.Millisecond)
}
