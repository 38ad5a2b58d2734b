package core

import (
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	now := time.Unix(0, 0)
	fs := NewFixedStep(10).WithClock(func() time.Time { return now })

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	now = now.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half an interval should not step")
	}
	now = now.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full interval should step")
	}
}

func TestFixedStepDropsBacklog(t *testing.T) {
	now := time.Unix(0, 0)
	fs := NewFixedStep(10).WithClock(func() time.Time { return now })
	fs.ShouldStep()

	now = now.Add(time.Second)
	steps := 0
	for fs.ShouldStep() {
		steps++
		if steps > 10 {
			break
		}
	}
	if steps != 2 {
		t.Fatalf("expected backlog capped to 2 steps, got %d", steps)
	}
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("unexpected interval %v", fs.Interval())
	}
}
