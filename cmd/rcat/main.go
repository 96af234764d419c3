package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// After the first interrupt the default handler is restored, so a second
	// one kills the process even if a write to stdout is blocked.
	go func() {
		<-ctx.Done()
		stop()
	}()

	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
