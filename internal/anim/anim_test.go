package anim

import (
	"math"
	"testing"
	"time"
)

func TestSwayStaysWithinAmplitude(t *testing.T) {
	s := NewSway()
	s.Start()
	for i := 0; i < 600; i++ {
		s.Advance(16 * time.Millisecond)
		x, z := s.Angles()
		if x < 0 || x > s.AmplitudeX+1e-9 {
			t.Fatalf("step %d: angleX %v outside [0, %v]", i, x, s.AmplitudeX)
		}
		if math.Abs(z) > s.AmplitudeZ+1e-9 {
			t.Fatalf("step %d: angleZ %v outside ±%v", i, z, s.AmplitudeZ)
		}
	}
}

func TestSwayStopFreezesInPlace(t *testing.T) {
	s := NewSway()
	s.Start()
	s.Advance(1300 * time.Millisecond)
	x1, z1 := s.Angles()
	if x1 == 0 {
		t.Fatal("sway did not move")
	}

	s.Stop()
	s.Advance(3 * time.Second)
	x2, z2 := s.Angles()
	if x1 != x2 || z1 != z2 {
		t.Errorf("angles moved after stop: (%v,%v) vs (%v,%v)", x1, z1, x2, z2)
	}

	// Restarting resumes from the frozen pose rather than resetting.
	s.Start()
	s.Advance(time.Millisecond)
	x3, _ := s.Angles()
	if math.Abs(x3-x2) > 0.01 {
		t.Errorf("restart snapped the cape: %v -> %v", x2, x3)
	}
}

func TestSwayLoops(t *testing.T) {
	s := NewSway()
	s.Start()
	s.Advance(s.Period / 4)
	x1, _ := s.Angles()
	s.Advance(s.Period)
	x2, _ := s.Angles()
	if math.Abs(x1-x2) > 1e-9 {
		t.Errorf("one full period changed the pose: %v vs %v", x1, x2)
	}
}

func TestEaseInOutSine(t *testing.T) {
	if got := easeInOutSine(0); math.Abs(got) > 1e-12 {
		t.Errorf("ease(0) = %v, want 0", got)
	}
	if got := easeInOutSine(1); math.Abs(got-1) > 1e-12 {
		t.Errorf("ease(1) = %v, want 1", got)
	}
	if got := easeInOutSine(0.5); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("ease(0.5) = %v, want 0.5", got)
	}
	// Eased motion starts slower than linear.
	if got := easeInOutSine(0.1); got >= 0.1 {
		t.Errorf("ease(0.1) = %v, want < 0.1", got)
	}
}

func TestSpin(t *testing.T) {
	s := NewSpin()
	s.RPM = 60 // one revolution per second
	s.Advance(250 * time.Millisecond)
	if got := s.Angle(); math.Abs(got-math.Pi/2) > 1e-9 {
		t.Errorf("quarter turn = %v, want %v", got, math.Pi/2)
	}
	s.Advance(time.Second)
	if got := s.Angle(); math.Abs(got-math.Pi/2) > 1e-9 {
		t.Errorf("angle after full extra turn = %v, want %v (wrapped)", got, math.Pi/2)
	}
	s.Stop()
	s.Advance(time.Second)
	if got := s.Angle(); math.Abs(got-math.Pi/2) > 1e-9 {
		t.Errorf("angle moved while stopped: %v", got)
	}
}
