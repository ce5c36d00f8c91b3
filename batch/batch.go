// Copyright 2016 CoreOS, Inc
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

// Package batch runs many independent zlib.Decompress calls concurrently
// across a bounded pool of workers, cancelable as a group.
package batch

import (
	"context"

	"github.com/coreos/go-zlib/stop"
)

// Job is one unit of work: decompress produces the bytes to write for a
// single input, or an error to report for it. A Job that also writes its
// own output (to a temp file it then renames into place, say) keeps that
// output consistent even if Run's caller cancels before every Job finishes:
// only Jobs a worker actually completes ever produce a Result.
type Job struct {
	Name       string
	Decompress func() ([]byte, error)
}

// Result pairs a Job's Name with the outcome of running it.
type Result struct {
	Name string
	Data []byte
	Err  error
}

// worker pulls jobs off a shared channel until it's empty or ctx is
// canceled, satisfying stop.Stoppable so a Group can wait for every
// in-flight job to finish before reporting itself stopped.
type worker struct {
	jobs    <-chan Job
	results chan<- Result
	ctx     context.Context
	done    chan struct{}
}

func (w *worker) run() {
	defer close(w.done)
	for {
		select {
		case <-w.ctx.Done():
			return
		case job, ok := <-w.jobs:
			if !ok {
				return
			}
			// select picks at random when ctx is canceled and a job is
			// also ready, so check again before starting the job.
			if w.ctx.Err() != nil {
				return
			}
			data, err := job.Decompress()
			// resultCh is sized to len(jobs), so this send never blocks even
			// if Run's collect loop has already exited on ctx.Done().
			w.results <- Result{Name: job.Name, Data: data, Err: err}
		}
	}
}

// Stop satisfies stop.Stoppable. It does not itself cancel the worker -
// ctx does that - it only reports when the worker has actually exited, so
// a Group can block until every in-flight job is done.
func (w *worker) Stop() <-chan struct{} {
	return w.done
}

// Run fans jobs out across n concurrent workers (n < 1 is treated as 1) and
// returns the Results it collected before it saw ctx canceled. After
// cancellation, a job that has already finished (or finishes while Run
// waits for its worker) may have no Result in the returned slice.
// Each worker runs fully independent decode calls; none shares state with
// another, matching the no-shared-mutable-state rule a single
// zlib.Decompress call already holds to.
//
// If ctx is canceled with jobs still outstanding, no new job is started,
// but a job already being decompressed runs to completion before its
// worker stops - Run never abandons a job mid-decode. Cancellation is the
// caller's job, typically by deriving ctx from signal.NotifyContext and
// wiring SIGINT/SIGTERM to it.
func Run(ctx context.Context, jobs []Job, n int) []Result {
	if n < 1 {
		n = 1
	}
	if n > len(jobs) {
		n = len(jobs)
	}
	if n == 0 {
		return nil
	}

	jobCh := make(chan Job, len(jobs))
	for _, j := range jobs {
		jobCh <- j
	}
	close(jobCh)

	resultCh := make(chan Result, len(jobs))
	group := stop.NewGroup()

	for i := 0; i < n; i++ {
		w := &worker{jobs: jobCh, results: resultCh, ctx: ctx, done: make(chan struct{})}
		group.Add(w)
		go w.run()
	}

	results := make([]Result, 0, len(jobs))
collect:
	for len(results) < len(jobs) {
		select {
		case r := <-resultCh:
			results = append(results, r)
		case <-ctx.Done():
			break collect
		}
	}

	// Waits for every worker to actually exit, including one still
	// finishing the job it had in flight when ctx was canceled.
	<-group.Stop()
	return results
}
