package sysloggen

import (
	"strconv"
	"time"
)

// RFC 3164 header fields of every generated record.
const (
	Facility = 1 // user-level messages
	Severity = 3 // error
	Priority = Facility*8 + Severity

	Tag             = "sysloggen"
	DefaultHostname = "myhost"
)

// BodyLength is the length of a randomly generated message body.
const BodyLength = 50

// Alphabet is the set of bytes a random body is drawn from.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz "

// TimestampLayout is the legacy BSD syslog timestamp, e.g. "Jul  2 10:18:14".
const TimestampLayout = "Jan _2 15:04:05"

// FormatTimestamp formats t in the local time zone of the process.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}

// Record is a single log record. It is built for one send and then dropped.
type Record struct {
	Priority  int
	Timestamp string
	Hostname  string
	Tag       string
	Body      string
}

// AppendTo appends the wire form of the record to b:
//
//	<PRI>TIMESTAMP HOSTNAME TAG: BODY\n
func (r Record) AppendTo(b []byte) []byte {
	b = append(b, '<')
	b = strconv.AppendInt(b, int64(r.Priority), 10)
	b = append(b, '>')
	b = append(b, r.Timestamp...)
	b = append(b, ' ')
	b = append(b, r.Hostname...)
	b = append(b, ' ')
	b = append(b, r.Tag...)
	b = append(b, ':', ' ')
	b = append(b, r.Body...)
	return append(b, '\n')
}

// Bytes returns the wire form of the record.
func (r Record) Bytes() []byte {
	n := len(r.Timestamp) + len(r.Hostname) + len(r.Tag) + len(r.Body) + 10
	return r.AppendTo(make([]byte, 0, n))
}

func (r Record) String() string {
	return string(r.Bytes())
}
