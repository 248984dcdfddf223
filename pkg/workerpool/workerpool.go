// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Each runs process for every item on up to workerCount goroutines, passing
// the item position along. Items are independent: process has no error
// return, so one item never stops the others. Feeding stops once ctx is
// done, and ctx.Err() is returned after the in-flight items finish.
func Each[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(ctx context.Context, index int, item T),
) error {
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}

	type task struct {
		index int
		item  T
	}
	tasks := make(chan task, workerCount)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				process(ctx, t.index, t.item)
			}
		}()
	}

feed:
	for i, item := range items {
		select {
		case <-ctx.Done():
			break feed
		case tasks <- task{index: i, item: item}:
		}
	}
	close(tasks)
	wg.Wait()

	return ctx.Err()
}
