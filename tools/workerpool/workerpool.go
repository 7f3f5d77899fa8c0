/* workerpool contains code to run a limited number of error handling goroutines concurrently.
 *
 * Copyright 2020 Google LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     https://www.apache.org/licenses/LICENSE-2.0
 *
 *     Unless required by applicable law or agreed to in writing, software
 *     distributed under the License is distributed on an "AS IS" BASIS,
 *     WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *     See the License for the specific language governing permissions and
 *     limitations under the License.
 */
package workerpool

import (
	"fmt"
	"runtime"
	"sync"
)

// MultiErr contains multiple errors.
type MultiErr []error

// Error returns a string representation of the multi error.
func (m MultiErr) Error() string {
	return fmt.Sprint([]error(m))
}

// WorkerPool runs a limited number of error handling goroutines concurrently.
type WorkerPool struct {
	tickets chan struct{}
	wg      sync.WaitGroup
	lock    sync.Mutex
	errs    MultiErr
}

// New returns a new worker pool running at most concurrency jobs at a time.
// A concurrency below 1 means one job per CPU.
func New(concurrency int) *WorkerPool {
	if concurrency < 1 {
		concurrency = runtime.NumCPU()
	}
	return &WorkerPool{
		tickets: make(chan struct{}, concurrency),
	}
}

// Go runs f once a slot is free. Blocks while the pool is full.
func (w *WorkerPool) Go(f func() error) {
	w.tickets <- struct{}{}
	w.wg.Add(1)
	go func() {
		defer func() {
			<-w.tickets
			w.wg.Done()
		}()
		if err := f(); err != nil {
			w.lock.Lock()
			w.errs = append(w.errs, err)
			w.lock.Unlock()
		}
	}()
}

// Wait waits for all submitted jobs to finish and returns their errors, if any.
func (w *WorkerPool) Wait() error {
	w.wg.Wait()
	w.lock.Lock()
	defer w.lock.Unlock()
	if len(w.errs) == 0 {
		return nil
	}
	return w.errs
}

// Each runs f for every index in [0, n) with at most concurrency jobs at a time.
func Each(concurrency, n int, f func(idx int) error) error {
	w := New(concurrency)
	for idx := 0; idx < n; idx++ {
		idx := idx
		w.Go(func() error {
			return f(idx)
		})
	}
	return w.Wait()
}
