package sysloggen

import (
	"fmt"
	"log"
	"os"

	golog "github.com/go-log/log"
)

func init() {
	log.SetFlags(log.LstdFlags)
}

// SetLogger sets the logger used by the package.
func SetLogger(logger golog.Logger) {
	golog.DefaultLogger = logger
}

// LogLogger uses the standard log package as the logger.
// The output goes to stderr so that stdout only carries records and the summary.
type LogLogger struct {
}

// NewLogLogger creates a LogLogger writing to stderr.
func NewLogLogger() *LogLogger {
	log.SetOutput(os.Stderr)
	return &LogLogger{}
}

// Log uses the standard log library log.Output
func (l *LogLogger) Log(v ...interface{}) {
	log.Output(3, fmt.Sprintln(v...))
}

// Logf uses the standard log library log.Output
func (l *LogLogger) Logf(format string, v ...interface{}) {
	log.Output(3, fmt.Sprintf(format, v...))
}

// NopLogger is a dummy logger that discards the log outputs
type NopLogger struct {
}

// Log does nothing
func (l *NopLogger) Log(v ...interface{}) {
}

// Logf does nothing
func (l *NopLogger) Logf(format string, v ...interface{}) {
}
