// Package controls turns raw input into the held/not-held driving state the
// vehicle reads each tick.
package controls

// State is the set of driving inputs held during a tick
type State struct {
	Accelerate bool
	Brake      bool
	Left       bool
	Right      bool
}

// Source yields the control state for the current tick
type Source interface {
	Poll() State
}

// Idle is a Source that never presses anything
type Idle struct{}

// Poll implements Source.
func (Idle) Poll() State { return State{} }
