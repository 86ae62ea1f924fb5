package sysloggen

import "errors"

const (
	Version = "1.0.0"
)

// Debug enables verbose logging of every per-send fault.
var Debug bool

var (
	// DefaultPort is the conventional syslog UDP port.
	DefaultPort = 514

	// DefaultStrategy is the source address rotation strategy.
	DefaultStrategy = "random"
)

var (
	ErrInvalidDestination = errors.New("invalid destination address")
	ErrInvalidSource      = errors.New("invalid source address")
	ErrSocket             = errors.New("socket setup failed")
	ErrTransmit           = errors.New("transmit failed")
	ErrInvalidPlan        = errors.New("invalid dispatch plan")
	ErrMutuallyExclusive  = errors.New("-s and -S options cannot be used together")
)
