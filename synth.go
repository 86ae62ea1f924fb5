package sysloggen

import (
	"math/rand"
	"time"
)

// Synthesizer builds log records from the content pools.
// Each worker owns its Synthesizer; the random source is never shared.
type Synthesizer struct {
	pools *ContentPools
	rng   *rand.Rand
	pick  *RandomSelector
	now   func() time.Time
}

// NewSynthesizer creates a Synthesizer reading pools and drawing from rng.
func NewSynthesizer(pools *ContentPools, rng *rand.Rand) *Synthesizer {
	return &Synthesizer{
		pools: pools,
		rng:   rng,
		pick:  NewRandomSelector(rng),
		now:   time.Now,
	}
}

// Synthesize returns a new record stamped with the current time.
func (s *Synthesizer) Synthesize() Record {
	var body string
	if msgs := s.pools.Messages(); len(msgs) > 0 {
		body = s.pick.Select(msgs)
	} else {
		body = s.randomString(BodyLength)
	}

	hostname := DefaultHostname
	if hosts := s.pools.Hostnames(); len(hosts) > 0 {
		hostname = s.pick.Select(hosts)
	}

	return Record{
		Priority:  Priority,
		Timestamp: FormatTimestamp(s.now()),
		Hostname:  hostname,
		Tag:       Tag,
		Body:      body,
	}
}

func (s *Synthesizer) randomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = Alphabet[s.rng.Intn(len(Alphabet))]
	}
	return string(b)
}
