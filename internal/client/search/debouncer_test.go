package search

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collector struct {
	mu      sync.Mutex
	results []Result[string]
}

func (c *collector) add(r Result[string]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = append(c.results, r)
}

func (c *collector) snapshot() []Result[string] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Result[string](nil), c.results...)
}

func echo(calls *atomic.Int32) Task[string] {
	return func(ctx context.Context, q string) (string, error) {
		calls.Add(1)
		return "results for " + q, nil
	}
}

func TestDebouncer_OnlyLastQueryRuns(t *testing.T) {
	var calls atomic.Int32
	c := &collector{}
	d := New(context.Background(), echo(&calls), c.add, WithDelay(20*time.Millisecond))
	defer d.Stop()

	d.Submit("p")
	d.Submit("pa")
	d.Submit(" pasta ")

	require.Eventually(t, func() bool { return len(c.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(40 * time.Millisecond)

	got := c.snapshot()
	require.Len(t, got, 1)
	assert.Equal(t, "pasta", got[0].Query)
	assert.Equal(t, "results for pasta", got[0].Value)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDebouncer_DropsDuplicates(t *testing.T) {
	var calls atomic.Int32
	c := &collector{}
	d := New(context.Background(), echo(&calls), c.add, WithDelay(10*time.Millisecond))
	defer d.Stop()

	d.Submit("soup")
	require.Eventually(t, func() bool { return len(c.snapshot()) == 1 }, time.Second, 5*time.Millisecond)

	d.Submit("soup ")
	time.Sleep(40 * time.Millisecond)
	assert.Len(t, c.snapshot(), 1)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDebouncer_StaleRunningResultDiscarded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan string, 2)
	task := func(ctx context.Context, q string) (string, error) {
		started <- q
		if q == "slow" {
			<-release
		}
		return q, nil
	}
	c := &collector{}
	d := New(context.Background(), task, c.add, WithDelay(5*time.Millisecond))
	defer d.Stop()

	d.Submit("slow")
	require.Equal(t, "slow", <-started)

	d.Submit("fast")
	require.Equal(t, "fast", <-started)
	require.Eventually(t, func() bool { return len(c.snapshot()) == 1 }, time.Second, 5*time.Millisecond)

	close(release)
	time.Sleep(20 * time.Millisecond)

	got := c.snapshot()
	require.Len(t, got, 1)
	assert.Equal(t, "fast", got[0].Query)
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	var calls atomic.Int32
	c := &collector{}
	d := New(context.Background(), echo(&calls), c.add, WithDelay(20*time.Millisecond))

	d.Submit("late")
	d.Stop()
	d.Submit("after stop")
	time.Sleep(50 * time.Millisecond)

	assert.Empty(t, c.snapshot())
	assert.Zero(t, calls.Load())
}

func TestDebouncer_WaitRunsPending(t *testing.T) {
	var calls atomic.Int32
	c := &collector{}
	d := New(context.Background(), echo(&calls), c.add, WithDelay(10*time.Millisecond))
	defer d.Stop()

	d.Submit("a")
	d.Submit("b")
	d.Wait()

	got := c.snapshot()
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Query)
	assert.Equal(t, int32(1), calls.Load())
}
