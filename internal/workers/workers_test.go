// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanePool_SameKeyKeepsOrder(t *testing.T) {
	p := NewLanePool(context.Background(), 4)

	var mu sync.Mutex
	var order []int
	for i := range 50 {
		require.NoError(t, p.Submit("assets/app.js", func(context.Context) {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		}))
	}
	p.Close()

	require.Len(t, order, 50)
	for i, v := range order {
		assert.Equal(t, i, v)
	}
}

func TestLanePool_SameKeyNeverOverlaps(t *testing.T) {
	p := NewLanePool(context.Background(), 8)

	var running, maxRunning int32
	for range 20 {
		require.NoError(t, p.Submit("snippets/card.liquid", func(context.Context) {
			n := atomic.AddInt32(&running, 1)
			for {
				old := atomic.LoadInt32(&maxRunning)
				if n <= old || atomic.CompareAndSwapInt32(&maxRunning, old, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&running, -1)
		}))
	}
	p.Close()

	assert.Equal(t, int32(1), maxRunning)
}

func TestLanePool_DifferentKeysRunInParallel(t *testing.T) {
	p := NewLanePool(context.Background(), 16)

	// find two keys that hash to different lanes
	first := "assets/a.css"
	second := ""
	for i := range 100 {
		k := fmt.Sprintf("assets/%d.css", i)
		if p.laneIndex(k) != p.laneIndex(first) {
			second = k
			break
		}
	}
	require.NotEmpty(t, second)

	release := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, p.Submit(first, func(context.Context) { <-release }))
	require.NoError(t, p.Submit(second, func(context.Context) { close(started) }))

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("task on an idle lane was blocked by a busy lane")
	}

	close(release)
	p.Close()
}

func TestLanePool_CloseDrainsQueuedTasks(t *testing.T) {
	p := NewLanePool(context.Background(), 2)

	var done int32
	for i := range 30 {
		require.NoError(t, p.Submit(fmt.Sprint(i), func(context.Context) {
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&done, 1)
		}))
	}
	p.Close()

	assert.Equal(t, int32(30), atomic.LoadInt32(&done))
}

func TestLanePool_SubmitAfterClose(t *testing.T) {
	p := NewLanePool(context.Background(), 1)
	p.Close()
	p.Close()

	err := p.Submit("k", func(context.Context) {})
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestLanePool_TasksReceivePoolContext(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "pool")
	p := NewLanePool(ctx, 1)

	var got any
	require.NoError(t, p.Submit("k", func(ctx context.Context) { got = ctx.Value(ctxKey{}) }))
	p.Close()

	assert.Equal(t, "pool", got)
}

func TestNewLanePool_MinimumSize(t *testing.T) {
	p := NewLanePool(context.Background(), 0)
	defer p.Close()

	assert.Equal(t, 1, p.Size())
}

func TestLane_ImplementsWorker(t *testing.T) {
	var _ Worker = (*lane)(nil)
}
