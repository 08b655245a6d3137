// Package anim drives the declarative looping transforms owned by the
// hosting render loop: the cape sway and the turntable spin. The build
// pipeline only starts and stops them.
package anim

import (
	"math"
	"time"
)

// Sway is the periodic cape oscillation: an eased rotation on two axes
// that loops until disabled. Stopping freezes the current angles in
// place; there is no snap back to a rest pose.
type Sway struct {
	// AmplitudeX lifts the cape backward around the shoulder pivot.
	AmplitudeX float64 // radians
	// AmplitudeZ rolls it gently side to side.
	AmplitudeZ float64 // radians
	Period     time.Duration

	phase   float64 // seconds into the current cycle
	running bool
	angleX  float64
	angleZ  float64
}

// NewSway returns a sway with the default cloth motion.
func NewSway() *Sway {
	return &Sway{
		AmplitudeX: deg(12),
		AmplitudeZ: deg(4),
		Period:     5 * time.Second,
	}
}

func deg(d float64) float64 { return d * math.Pi / 180 }

// Start resumes the oscillation from wherever it last stopped.
func (s *Sway) Start() { s.running = true }

// Stop freezes the sway at its current angles.
func (s *Sway) Stop() { s.running = false }

// Running reports whether Advance moves the cape.
func (s *Sway) Running() bool { return s.running }

// Angles returns the current pivot rotation (around X and Z).
func (s *Sway) Angles() (x, z float64) { return s.angleX, s.angleZ }

// Advance steps the oscillation by dt. A no-op while stopped.
func (s *Sway) Advance(dt time.Duration) {
	if !s.running || s.Period <= 0 {
		return
	}
	s.phase += dt.Seconds()
	period := s.Period.Seconds()
	p := math.Mod(s.phase, period) / period

	// Triangle phase 0→1→0 with ease-in-out at both turning points, so
	// the cloth accelerates and decelerates instead of snapping.
	u := 2 * p
	if u > 1 {
		u = 2 - u
	}
	e := easeInOutSine(u)

	s.angleX = s.AmplitudeX * e
	s.angleZ = s.AmplitudeZ * (2*e - 1)
}

// easeInOutSine maps linear progress 0..1 to eased progress 0..1.
func easeInOutSine(t float64) float64 {
	return 0.5 - 0.5*math.Cos(math.Pi*t)
}
