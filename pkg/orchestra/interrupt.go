package orchestra

import (
	"context"
	"os"
)

// InterruptHandler cancels ctx once a signal arrives on ch. Demos notice
// the cancellation between entries.
func InterruptHandler(ctx context.Context, cancel context.CancelFunc, ch chan os.Signal) {
	logger := loggerFrom(ctx)
	select {
	case sig := <-ch:
		logger.Warnf("received %s, stopping after the current entry", sig)
		cancel()
	case <-ctx.Done():
	}
}
