package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/ginuerzh/sysloggen"
)

func notifyContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt)
}

func progressHandler(ctx context.Context, engine *sysloggen.Engine) {}
