//go:build !windows

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/san-kum/colourpush/internal/dynamo"
)

// notifyToggle flips the loop between running and paused on every SIGUSR1.
func notifyToggle(ctx context.Context, loop *dynamo.Loop, logger *zap.Logger) func() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGUSR1)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-sigs:
				loop.Toggle()
			case <-ctx.Done():
				return
			case <-done:
				return
			}
		}
	}()

	logger.Debug("send SIGUSR1 to pause or resume", zap.Int("pid", os.Getpid()))
	return func() {
		signal.Stop(sigs)
		close(done)
	}
}
