// Package search scans seed spaces in parallel for seeds matching a
// predicate. Every worker owns the generators it builds, so no generator or
// cache is ever shared between goroutines.
package search

import (
	"context"
	"fmt"
	"iter"
	"reflect"
	"sync"
)

// Match is a seed that satisfied the predicate of a search.
type Match struct {
	Seed int64
	// Worker is the index of the worker that evaluated the seed.
	Worker int
}

// PredicateError is yielded when a predicate fails or panics. It ends the
// partition of the worker it occurred in; other workers continue.
type PredicateError struct {
	Seed   int64
	Worker int
	Err    error
}

// Error ...
func (e *PredicateError) Error() string {
	return fmt.Sprintf("predicate failed for seed %d on worker %d: %v", e.Seed, e.Worker, e.Err)
}

// Unwrap ...
func (e *PredicateError) Unwrap() error {
	return e.Err
}

// Engine runs searches. It holds no state between searches and may run
// several at once.
type Engine struct {
	conf Config
}

// New creates an Engine using the configuration passed.
func New(conf Config) *Engine {
	return &Engine{conf: conf.withDefaults()}
}

// Config returns the configuration of the Engine with defaults applied.
func (e *Engine) Config() Config {
	return e.conf
}

type result struct {
	m   Match
	err error
}

// Search returns the seeds of space matching pred. Nothing is evaluated
// until the sequence is ranged over, and each range starts the search anew.
// Matches of one worker arrive in increasing seed order; matches of
// different workers are interleaved. Breaking out of the loop or cancelling
// ctx stops every worker before Search returns. A cancelled ctx is yielded
// as an error once.
func (e *Engine) Search(ctx context.Context, space Space, pred Predicate) iter.Seq2[Match, error] {
	return func(yield func(Match, error) bool) {
		if _, err := e.conf.generator(0).New(); err != nil {
			yield(Match{}, err)
			return
		}
		parent := ctx
		ctx, cancel := context.WithCancel(parent)
		n := e.conf.Workers
		chans := make([]chan result, n)
		var wg sync.WaitGroup
		defer func() {
			cancel()
			wg.Wait()
		}()
		for i := range n {
			chans[i] = make(chan result, e.conf.Buffer)
			wg.Add(1)
			go func() {
				defer wg.Done()
				e.work(ctx, i, space.Partition(i, n), pred, chans[i])
			}()
		}
		e.conf.Log.Debug("Started search.", "workers", n, "buffer", e.conf.Buffer)

		cases := make([]reflect.SelectCase, 0, n+1)
		cases = append(cases, reflect.SelectCase{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(ctx.Done())})
		for _, c := range chans {
			cases = append(cases, reflect.SelectCase{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(c)})
		}
		for len(cases) > 1 {
			i, v, ok := reflect.Select(cases)
			if i == 0 {
				yield(Match{}, parent.Err())
				return
			}
			if !ok {
				cases = append(cases[:i], cases[i+1:]...)
				continue
			}
			r := v.Interface().(result)
			if !yield(r.m, r.err) {
				return
			}
		}
		// Workers may all have stopped before the cancellation was seen.
		if err := parent.Err(); err != nil {
			yield(Match{}, err)
		}
	}
}

// work evaluates the seeds of one partition and sends matches to out, which
// it closes when done.
func (e *Engine) work(ctx context.Context, worker int, seeds iter.Seq[int64], pred Predicate, out chan<- result) {
	defer close(out)
	log := e.conf.Log.With("worker", worker)
	log.Debug("Worker started.")

	var evaluated int
	for seed := range seeds {
		if ctx.Err() != nil {
			break
		}
		ok, err := e.evaluate(seed, pred)
		evaluated++
		e.conf.Metrics.IncEvaluated(worker)
		var r result
		switch {
		case err != nil:
			e.conf.Metrics.IncFailed(worker)
			r.err = &PredicateError{Seed: seed, Worker: worker, Err: err}
		case ok:
			e.conf.Metrics.IncMatched(worker)
			r.m = Match{Seed: seed, Worker: worker}
		default:
			continue
		}
		if !e.send(ctx, worker, out, r) || r.err != nil {
			break
		}
	}
	log.Debug("Worker stopped.", "evaluated", evaluated)
}

// send hands r to the consumer, stalling while the buffer is full. It
// returns false if ctx was cancelled first.
func (e *Engine) send(ctx context.Context, worker int, out chan<- result, r result) bool {
	select {
	case out <- r:
		return true
	default:
	}
	e.conf.Metrics.IncBackpressure(worker)
	select {
	case out <- r:
		return true
	case <-ctx.Done():
		return false
	}
}

// evaluate runs pred for seed, turning a panic into an error.
func (e *Engine) evaluate(seed int64, pred Predicate) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok, err = false, fmt.Errorf("panic: %v", r)
		}
	}()
	return pred(&Candidate{seed: seed, conf: e.conf})
}
