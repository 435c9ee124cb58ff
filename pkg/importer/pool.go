package importer

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// forEach feeds indices of a batch of size n to a pool of workers that call
// fn for every index. An error returned by fn or a cancelled context stops
// feeding, workers finish their current calls and forEach returns the
// first error.
func forEach(
	ctx context.Context,
	workersNum, n int,
	fn func(ctx context.Context, idx int) error,
) error {
	if workersNum <= 0 {
		workersNum = 1
	}
	chIn := make(chan int)
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(chIn)
		for i := range n {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			case chIn <- i:
			}
		}
		return nil
	})

	for range workersNum {
		g.Go(func() error {
			for idx := range chIn {
				if err := fn(gCtx, idx); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}
