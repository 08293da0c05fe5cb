// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrPoolStopped = errors.New("worker pool is stopped")
	ErrJobPanicked = errors.New("worker pool job panicked")
)

type job struct {
	fn   func()
	done chan struct{}
	err  error
}

// Pool is a fixed-size set of goroutines executing submitted jobs.
//
// Jobs are handed over through an unbuffered channel, so at most size jobs run
// at once and callers queue on Do. A job always runs to completion once a
// goroutine accepted it.
type Pool struct {
	size int
	jobs chan *job
	quit chan struct{}
	wg   sync.WaitGroup

	startOnce sync.Once
	stopOnce  sync.Once
}

// NewPool returns a pool of size goroutines. A size below 1 is treated as 1.
// The pool accepts jobs only after Run.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}

	return &Pool{
		size: size,
		jobs: make(chan *job),
		quit: make(chan struct{}),
	}
}

// Size returns the number of goroutines of the pool.
func (p *Pool) Size() int {
	return p.size
}

// Run starts the pool goroutines. Subsequent calls are no-ops.
func (p *Pool) Run() {
	p.startOnce.Do(func() {
		p.wg.Add(p.size)
		for range p.size {
			go p.loop()
		}
	})
}

// Stop prevents new jobs from being accepted and waits for running jobs to
// finish.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
	})
	p.wg.Wait()
}

// Do runs fn on a pool goroutine and blocks until it returns.
// A panic inside fn is recovered and reported as [ErrJobPanicked].
func (p *Pool) Do(fn func()) error {
	select {
	case <-p.quit:
		return ErrPoolStopped
	default:
	}

	j := &job{fn: fn, done: make(chan struct{})}
	select {
	case p.jobs <- j:
	case <-p.quit:
		return ErrPoolStopped
	}

	<-j.done
	return j.err
}

func (p *Pool) loop() {
	defer p.wg.Done()
	for {
		select {
		case j := <-p.jobs:
			p.exec(j)
		case <-p.quit:
			return
		}
	}
}

func (p *Pool) exec(j *job) {
	defer close(j.done)
	defer func() {
		if r := recover(); r != nil {
			j.err = fmt.Errorf("%w: %v", ErrJobPanicked, r)
		}
	}()

	j.fn()
}
