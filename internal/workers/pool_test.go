// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPool_MinimumSize(t *testing.T) {
	assert.Equal(t, 1, NewPool(0).Size())
	assert.Equal(t, 1, NewPool(-3).Size())
	assert.Equal(t, 4, NewPool(4).Size())
}

func TestPool_Do_RunsJob(t *testing.T) {
	p := NewPool(2)
	p.Run()
	defer p.Stop()

	var ran bool
	require.NoError(t, p.Do(func() { ran = true }))
	assert.True(t, ran)
}

func TestPool_Do_BoundsConcurrency(t *testing.T) {
	const size = 3
	p := NewPool(size)
	p.Run()
	defer p.Stop()

	var current, peak atomic.Int32
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.Do(func() {
				n := current.Add(1)
				for {
					old := peak.Load()
					if n <= old || peak.CompareAndSwap(old, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				current.Add(-1)
			})
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak.Load(), int32(size))
	assert.Positive(t, peak.Load())
}

func TestPool_Do_RecoversPanic(t *testing.T) {
	p := NewPool(1)
	p.Run()
	defer p.Stop()

	err := p.Do(func() { panic("boom") })
	require.ErrorIs(t, err, ErrJobPanicked)

	// the goroutine survives the panic
	require.NoError(t, p.Do(func() {}))
}

func TestPool_Do_AfterStop(t *testing.T) {
	p := NewPool(1)
	p.Run()
	p.Stop()

	err := p.Do(func() { t.Error("job must not run after Stop") })
	assert.ErrorIs(t, err, ErrPoolStopped)
}

func TestPool_Stop_WithoutRun(t *testing.T) {
	p := NewPool(2)
	p.Stop()
	p.Stop()

	assert.ErrorIs(t, p.Do(func() {}), ErrPoolStopped)
}

func TestPool_Stop_WaitsForRunningJob(t *testing.T) {
	p := NewPool(1)
	p.Run()

	started := make(chan struct{})
	var finished atomic.Bool
	go func() {
		_ = p.Do(func() {
			close(started)
			time.Sleep(20 * time.Millisecond)
			finished.Store(true)
		})
	}()

	<-started
	p.Stop()
	assert.True(t, finished.Load())
}
