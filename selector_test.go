package sysloggen

import (
	"math/rand"
	"testing"
)

func TestRoundSelector(t *testing.T) {
	items := []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"}
	s := NewSelector("round", rand.New(rand.NewSource(1)))
	t.Log(s.String())

	if item := s.Select(nil); item != "" {
		t.Error("unexpected item", item)
	}
	for i := 0; i <= 2*len(items); i++ {
		item := s.Select(items)
		if item != items[i%len(items)] {
			t.Error("unexpected item", item)
		}
	}
}

func TestRandomSelector(t *testing.T) {
	items := []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"}
	s := NewSelector("random", rand.New(rand.NewSource(1)))
	t.Log(s.String())

	if item := s.Select(nil); item != "" {
		t.Error("unexpected item", item)
	}
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		item := s.Select(items)
		if item == "" {
			t.Error("unexpected item", item)
		}
		seen[item] = true
	}
	if len(seen) != len(items) {
		t.Errorf("expected all %d items selected, got %v", len(items), seen)
	}
}

func TestUnknownSelector(t *testing.T) {
	s := NewSelector("fifo", rand.New(rand.NewSource(1)))
	if s.String() != "random" {
		t.Error("unexpected strategy", s.String())
	}
}
