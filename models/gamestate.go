package models

import (
	"time"

	"github.com/golangdaddy/sunsetdrive/controls"
	"github.com/golangdaddy/sunsetdrive/road"
	"github.com/google/uuid"
)

// GameState is the complete state of a drive in progress. It lives in memory
// only; nothing is saved between runs.
type GameState struct {
	// Metadata
	SessionID string    // Unique id for this run, attached to log lines
	StartedAt time.Time // When the drive began

	// Simulation
	Track    *road.Track
	Vehicle  Vehicle
	Ticks    int64   // Number of integrated ticks
	Odometer float64 // Total distance driven, never wrapped
}

// NewGameState creates a fresh state on a newly built track
func NewGameState() *GameState {
	return &GameState{
		SessionID: uuid.NewString(),
		StartedAt: time.Now(),
		Track:     road.ResetTrack(),
	}
}

// Update integrates one tick of input
func (gs *GameState) Update(in controls.State) {
	gs.Vehicle.Update(in, gs.Track.Length())
	gs.Odometer += gs.Vehicle.Speed
	gs.Ticks++
}

// Reset puts the vehicle back at the start of a rebuilt track
func (gs *GameState) Reset() {
	gs.Track = road.ResetTrack()
	gs.Vehicle = Vehicle{}
	gs.Ticks = 0
	gs.Odometer = 0
}
