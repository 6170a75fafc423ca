//go:build windows

package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/san-kum/colourpush/internal/dynamo"
)

// notifyToggle is a no-op: there is no SIGUSR1 on windows.
func notifyToggle(ctx context.Context, loop *dynamo.Loop, logger *zap.Logger) func() {
	logger.Debug("pause toggling by signal is not available on windows")
	return func() {}
}
