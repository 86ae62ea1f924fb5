package sysloggen

import (
	"fmt"
	"io"
	"math"
	"time"
)

// RunResult is the outcome of a run.
type RunResult struct {
	TotalMessages int64 // planned
	Attempted     int64 // loop iterations executed, equals TotalMessages unless cancelled
	Sent          int64
	Skipped       int64 // invalid source address or socket setup failure
	Failed        int64 // transmission errors
	Elapsed       time.Duration
	// Throughput is messages per second, +Inf when it is undefined.
	Throughput float64
}

// Summarize computes the throughput of count messages over elapsed.
// The throughput is undefined (+Inf) if nothing was sent or no time elapsed.
func Summarize(count int64, elapsed time.Duration) RunResult {
	r := RunResult{
		TotalMessages: count,
		Attempted:     count,
		Elapsed:       elapsed,
		Throughput:    math.Inf(1),
	}
	if count > 0 && elapsed > 0 {
		r.Throughput = float64(count) / elapsed.Seconds()
	}
	return r
}

// ThroughputDefined reports whether Throughput holds a real rate.
func (r RunResult) ThroughputDefined() bool {
	return !math.IsInf(r.Throughput, 0) && !math.IsNaN(r.Throughput)
}

// WriteSummary writes the end of run report.
func (r RunResult) WriteSummary(w io.Writer, dst string, source string) error {
	var err error
	printf := func(format string, a ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, a...)
		}
	}

	if r.Attempted != r.TotalMessages {
		printf("Sent %d of %d messages to %s (interrupted).\n", r.Attempted, r.TotalMessages, dst)
	} else {
		printf("Sent %d messages to %s.\n", r.TotalMessages, dst)
	}
	if source != "" {
		printf("Using source IP: %s\n", source)
	}
	if r.Skipped > 0 || r.Failed > 0 {
		printf("Skipped: %d, failed: %d\n", r.Skipped, r.Failed)
	}
	printf("Time taken: %g seconds\n", r.Elapsed.Seconds())
	if r.ThroughputDefined() {
		printf("Messages per second: %.2f\n", r.Throughput)
	} else {
		printf("Messages per second: undefined\n")
	}
	return err
}
