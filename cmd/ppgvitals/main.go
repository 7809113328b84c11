// Command ppgvitals estimates blood-oxygen saturation and heart rate from
// recorded pulse-oximeter data.
//
// Usage:
//
//	ppgvitals estimate [flags] <file>
//	ppgvitals simulate [flags]
//	ppgvitals window [flags] [window-name ...]
//	ppgvitals version
//
// Examples:
//
//	ppgvitals estimate recording.csv
//	ppgvitals estimate --format fifo --batch 100 dump.bin
//	ppgvitals simulate --bpm 84 --spo2 95 -o json
//	ppgvitals estimate --nats-url nats://127.0.0.1:4222 recording.csv
package main

import (
	"context"
	"fmt"
	"os"
	ossignal "os/signal"
	"syscall"
)

func main() {
	ctx, stop := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(newApp()).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
