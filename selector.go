package sysloggen

import (
	"math/rand"
)

// Selector picks one entry from a pool.
// A Selector is owned by a single worker and is not safe for concurrent use.
type Selector interface {
	Select(items []string) string
	String() string
}

// NewSelector creates a Selector for the named strategy.
// Unknown strategies fall back to random selection.
func NewSelector(strategy string, rng *rand.Rand) Selector {
	switch strategy {
	case "round":
		return &RoundRobinSelector{}
	case "random":
		fallthrough
	default:
		return &RandomSelector{rng: rng}
	}
}

// RandomSelector selects an entry uniformly at random.
type RandomSelector struct {
	rng *rand.Rand
}

// NewRandomSelector creates a RandomSelector drawing from rng.
func NewRandomSelector(rng *rand.Rand) *RandomSelector {
	return &RandomSelector{rng: rng}
}

// Select selects an entry from items.
func (s *RandomSelector) Select(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[s.rng.Intn(len(items))]
}

func (s *RandomSelector) String() string {
	return "random"
}

// RoundRobinSelector selects entries in order, wrapping around at the end.
type RoundRobinSelector struct {
	count uint64
}

// Select selects an entry from items.
func (s *RoundRobinSelector) Select(items []string) string {
	if len(items) == 0 {
		return ""
	}
	item := items[int(s.count%uint64(len(items)))]
	s.count++
	return item
}

func (s *RoundRobinSelector) String() string {
	return "round"
}
