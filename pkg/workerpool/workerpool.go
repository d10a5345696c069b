// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Process runs a worker pool over the provided work items, invoking process for each.
// The first error cancels the shared context, calls onCancel and is returned once all workers exit.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
	onCancel func(),
) error {
	if workerCount < 1 {
		workerCount = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan T, workerCount)
	errs := make(chan error, workerCount)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-tasks:
					if !ok {
						return
					}
					if err := process(ctx, item); err != nil {
						select {
						case errs <- err:
						default:
						}
						if onCancel != nil {
							onCancel()
						}
						cancel()
						return
					}
				}
			}
		}()
	}

	go func() {
		defer close(tasks)
		for _, item := range items {
			select {
			case <-ctx.Done():
				return
			case tasks <- item:
			}
		}
	}()

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return err
		}
	}

	return ctx.Err()
}

// Result carries the outcome of processing a single item in Batches.
type Result[T, R any] struct {
	Item  T
	Value R
	Err   error
}

// Batches processes items in consecutive groups of batchSize. Items inside a group run concurrently and
// the next group starts only after the whole group finished, so at most batchSize calls are in flight.
// A failing item never affects its siblings. Once ctx is done, items of groups that have not started yet
// are reported with ctx.Err() without being processed.
//
// Results are returned in input order.
func Batches[T, R any](
	ctx context.Context,
	batchSize int,
	items []T,
	process func(context.Context, T) (R, error),
) []Result[T, R] {
	if batchSize < 1 {
		batchSize = 1
	}
	results := make([]Result[T, R], len(items))

	for start := 0; start < len(items); start += batchSize {
		end := start + batchSize
		if end > len(items) {
			end = len(items)
		}

		if err := ctx.Err(); err != nil {
			for i := start; i < len(items); i++ {
				results[i] = Result[T, R]{Item: items[i], Err: err}
			}
			return results
		}

		wg := sync.WaitGroup{}
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				value, err := process(ctx, items[i])
				results[i] = Result[T, R]{Item: items[i], Value: value, Err: err}
			}(i)
		}
		wg.Wait()
	}

	return results
}
