package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/dskvich/synonym-voice-bot/pkg/logger"
)

type Worker interface {
	Name() string
	Start(context.Context) error
}

// Group runs workers side by side until ctx is done. The first worker to
// fail, by error or panic, stops the rest.
type Group []Worker

func (g Group) Start(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	runCtx, cancelFn := context.WithCancel(ctx)
	defer cancelFn()

	var (
		wg        sync.WaitGroup
		firstOnce sync.Once
	)
	errCh := make(chan error, len(g))
	wg.Add(len(g))
	for _, w := range g {
		go func(w Worker) {
			defer wg.Done()
			if err := startWorker(runCtx, w); err != nil {
				firstOnce.Do(func() {
					slog.Error("Worker failed, stopping the group", "name", w.Name(), logger.Err(err))
				})
				errCh <- fmt.Errorf("%s: %w", w.Name(), err)
				cancelFn()
			}
		}(w)
	}

	<-runCtx.Done()
	wg.Wait()

	var err error
	close(errCh)
	for workerErr := range errCh {
		err = multierror.Append(err, workerErr)
	}
	return err
}

func startWorker(ctx context.Context, w Worker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return w.Start(ctx)
}
