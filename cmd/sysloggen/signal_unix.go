//go:build !windows
// +build !windows

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ginuerzh/sysloggen"
	"github.com/go-log/log"
)

func notifyContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

// progressHandler logs the counters of engine on SIGUSR1 until ctx is done.
func progressHandler(ctx context.Context, engine *sysloggen.Engine) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGUSR1)
	defer signal.Stop(ch)

	for {
		select {
		case <-ch:
			p := engine.Progress()
			log.Logf("[engine] progress: attempted %d, sent %d, skipped %d, failed %d",
				p.Attempted, p.Sent, p.Skipped, p.Failed)
		case <-ctx.Done():
			return
		}
	}
}
