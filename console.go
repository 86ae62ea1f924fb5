package sysloggen

import (
	"io"
	"sync"
)

// Output receives the wire text of every record just before it is transmitted.
type Output interface {
	WriteRecord(record []byte) error
}

// ConsoleOutput writes one "Sending: <record>" line per record.
// It is safe for concurrent use; every record is written with a single Write call.
type ConsoleOutput struct {
	w  io.Writer
	mu sync.Mutex
}

const consolePrefix = "Sending: "

// NewConsoleOutput creates a ConsoleOutput writing to w.
func NewConsoleOutput(w io.Writer) *ConsoleOutput {
	return &ConsoleOutput{w: w}
}

func (c *ConsoleOutput) WriteRecord(record []byte) error {
	line := make([]byte, 0, len(consolePrefix)+len(record)+1)
	line = append(line, consolePrefix...)
	line = append(line, record...)
	if len(record) == 0 || record[len(record)-1] != '\n' {
		line = append(line, '\n')
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.w.Write(line)
	return err
}

type discardOutput struct{}

func (discardOutput) WriteRecord([]byte) error { return nil }

// DiscardOutput drops every record.
var DiscardOutput Output = discardOutput{}
