package core

import (
	"testing"
	"time"
)

func TestThrottleAcceptsAtInterval(t *testing.T) {
	th := NewThrottle(10)
	if th.Interval() != 100*time.Millisecond {
		t.Fatalf("interval = %v, want 100ms", th.Interval())
	}
	if th.Due(50 * time.Millisecond) {
		t.Fatal("tick before first interval should be skipped")
	}
	if !th.Due(100 * time.Millisecond) {
		t.Fatal("tick at first interval should be accepted")
	}
	if th.Due(150 * time.Millisecond) {
		t.Fatal("tick half an interval later should be skipped")
	}
	if !th.Due(230 * time.Millisecond) {
		t.Fatal("tick past the interval should be accepted")
	}
	if th.Last() != 230*time.Millisecond {
		t.Fatalf("last = %v, want 230ms", th.Last())
	}
	th.Reset()
	if th.Last() != 0 {
		t.Fatal("reset should forget the last tick")
	}
}

func TestThrottleDefaultFPS(t *testing.T) {
	for _, fps := range []int{0, -3} {
		if got := NewThrottle(fps).Interval(); got != time.Second/DefaultFPS {
			t.Fatalf("fps %d: interval = %v", fps, got)
		}
	}
}
