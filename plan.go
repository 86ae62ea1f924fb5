package sysloggen

import (
	"fmt"
	"net"
	"time"
)

// DispatchPlan describes one run: where to send, how much and how it is split.
type DispatchPlan struct {
	Destination    *net.UDPAddr
	TotalMessages  int64
	WorkerCount    int
	PerWorkerQuota []int64
	// SourceAddress is the fixed source, ignored when the source pool is not empty.
	SourceAddress  string
	InterSendDelay time.Duration
}

// ParseDestination parses a numeric IP address and a port.
// Host names are not resolved.
func ParseDestination(addr string, port int) (*net.UDPAddr, error) {
	ip := net.ParseIP(addr)
	if ip == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDestination, addr)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("%w: port %d out of range", ErrInvalidDestination, port)
	}
	return &net.UDPAddr{IP: ip, Port: port}, nil
}

// Partition splits total into workers quotas. Every worker gets total/workers
// and the last one also gets the remainder, so the quotas always sum to total.
func Partition(total int64, workers int) ([]int64, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: worker count must be positive, got %d", ErrInvalidPlan, workers)
	}
	if total < 0 {
		return nil, fmt.Errorf("%w: message count must not be negative, got %d", ErrInvalidPlan, total)
	}

	quotas := make([]int64, workers)
	per := total / int64(workers)
	for i := range quotas {
		quotas[i] = per
	}
	quotas[workers-1] += total % int64(workers)
	return quotas, nil
}

// NewPlan creates a validated plan.
func NewPlan(dst *net.UDPAddr, total int64, workers int, source string, delay time.Duration) (*DispatchPlan, error) {
	plan := &DispatchPlan{
		Destination:    dst,
		TotalMessages:  total,
		WorkerCount:    workers,
		SourceAddress:  source,
		InterSendDelay: delay,
	}
	quotas, err := Partition(total, workers)
	if err != nil {
		return nil, err
	}
	plan.PerWorkerQuota = quotas
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

// Validate checks the plan invariants.
func (p *DispatchPlan) Validate() error {
	if p.Destination == nil || p.Destination.IP == nil {
		return ErrInvalidDestination
	}
	if len(p.PerWorkerQuota) != p.WorkerCount {
		return fmt.Errorf("%w: %d quotas for %d workers", ErrInvalidPlan, len(p.PerWorkerQuota), p.WorkerCount)
	}
	var sum int64
	for _, q := range p.PerWorkerQuota {
		if q < 0 {
			return fmt.Errorf("%w: negative quota %d", ErrInvalidPlan, q)
		}
		sum += q
	}
	if sum != p.TotalMessages {
		return fmt.Errorf("%w: quotas sum to %d, want %d", ErrInvalidPlan, sum, p.TotalMessages)
	}
	if p.InterSendDelay < 0 {
		return fmt.Errorf("%w: negative delay %s", ErrInvalidPlan, p.InterSendDelay)
	}
	return nil
}
