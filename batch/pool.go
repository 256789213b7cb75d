// Copyright 2026 kdist Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package batch drives many kernel invocations at once: one-to-one pairs,
// one-to-many broadcasts, paired rows, and all-pairs matrices, optionally
// spread across a worker pool.
package batch

import (
	"runtime"
	"sync"
)

// pool is a persistent set of goroutines reused across the parallelFor
// calls within a single driver invocation, then closed. Every driver entry
// point in this package owns exactly one pool for the lifetime of that one
// call; pools are not shared or cached across calls.
type pool struct {
	workers int
	workC   chan func()
	wg      sync.WaitGroup
	once    sync.Once
}

// newPool builds a pool sized for threads. threads == 0 means
// runtime.GOMAXPROCS(0); threads == 1 means run everything on the calling
// goroutine without spawning workers at all.
func newPool(threads int) *pool {
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	p := &pool{workers: threads}
	if threads == 1 {
		return p
	}
	p.workC = make(chan func(), threads*2)
	for i := 0; i < threads; i++ {
		go p.worker()
	}
	return p
}

func (p *pool) worker() {
	for fn := range p.workC {
		fn()
		p.wg.Done()
	}
}

// close shuts the pool's workers down. Safe to call once per pool; the
// driver entry points defer it immediately after newPool.
func (p *pool) close() {
	p.once.Do(func() {
		if p.workC != nil {
			close(p.workC)
		}
	})
}

// parallelFor splits [0, n) into p.workers contiguous chunks and runs fn
// over each chunk, blocking until every chunk completes. With a
// single-worker pool it runs fn(0, n) directly on the calling goroutine.
func (p *pool) parallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p.workC == nil {
		fn(0, n)
		return
	}

	workers := p.workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		start := i * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= n {
			p.wg.Done()
			continue
		}
		p.workC <- func() { fn(start, end) }
	}
	p.wg.Wait()
}
