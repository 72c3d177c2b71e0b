package common

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// WithInterrupt creates a context that is cancelled when SIGINT or
// SIGTERM is received, so an in-flight API call is abandoned on Ctrl-C.
// The returned cleanup function must be called when done.
func WithInterrupt(parent context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	cleanup := func() {
		signal.Stop(sigChan)
		cancel()
	}

	return ctx, cleanup
}
