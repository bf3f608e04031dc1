package models

import (
	"math"

	"github.com/golangdaddy/sunsetdrive/controls"
)

// Driving constants, in world units per tick
const (
	MaxSpeed     = 200.0
	Acceleration = 0.1
	Deceleration = 0.3
	Handling     = 0.3

	// SteerStep scales Handling into the per-tick nudge of the steering target
	SteerStep = 0.125
	// SteerSmoothing is the fraction of the remaining gap X closes each tick
	SteerSmoothing = 0.025
)

// Vehicle is the player's car as seen by the simulation
type Vehicle struct {
	Position float64 // World z travelled, kept in [0, track length)
	Speed    float64 // In [0, MaxSpeed]
	X        float64 // Lateral offset as a fraction of the road half-width
	TargetX  float64 // Steering target for X, in [-1, 1]
}

// Update integrates one tick of input. trackLength is the loop length the
// position wraps at.
func (v *Vehicle) Update(in controls.State, trackLength float64) {
	switch {
	case in.Accelerate:
		v.Speed = math.Min(v.Speed+Acceleration, MaxSpeed)
	case in.Brake:
		v.Speed = math.Max(0, v.Speed-Deceleration*2)
	default:
		v.Speed = math.Max(0, v.Speed-Deceleration)
	}

	// steering only bites while moving
	if v.Speed > 0 {
		if in.Left {
			v.TargetX -= Handling * SteerStep
		}
		if in.Right {
			v.TargetX += Handling * SteerStep
		}
		v.TargetX = math.Max(-1, math.Min(1, v.TargetX))
		v.X += (v.TargetX - v.X) * SteerSmoothing
	}

	v.Position += v.Speed
	if v.Position >= trackLength {
		v.Position -= trackLength
	}
}

// SpeedKMH is the displayed speed. The demo treats one unit per tick as
// 3.6 km/h.
func (v *Vehicle) SpeedKMH() int {
	return int(math.Floor(v.Speed*3.6 + 0.5))
}

// SpeedFraction is Speed relative to MaxSpeed, in [0, 1]
func (v *Vehicle) SpeedFraction() float64 {
	return v.Speed / MaxSpeed
}
