package anim

import (
	"math"
	"time"
)

// Spin is the continuous turntable rotation used by the viewer.
type Spin struct {
	// RPM is full revolutions per minute.
	RPM float64

	angle   float64
	running bool
}

// NewSpin returns a slow display turntable.
func NewSpin() *Spin {
	return &Spin{RPM: 6, running: true}
}

func (s *Spin) Start()        { s.running = true }
func (s *Spin) Stop()         { s.running = false }
func (s *Spin) Running() bool { return s.running }

// Angle returns the current yaw in radians.
func (s *Spin) Angle() float64 { return s.angle }

// Advance steps the rotation by dt. A no-op while stopped.
func (s *Spin) Advance(dt time.Duration) {
	if !s.running {
		return
	}
	s.angle = math.Mod(s.angle+2*math.Pi*s.RPM/60*dt.Seconds(), 2*math.Pi)
}
