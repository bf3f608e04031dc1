package controls

import "github.com/hajimehoshi/ebiten/v2"

// Action is a driving input a key can be bound to
type Action int

const (
	ActionNone Action = iota
	ActionAccelerate
	ActionBrake
	ActionLeft
	ActionRight
)

// actionForKey maps a key to its driving action. Arrow keys and WASD are both
// bound.
func actionForKey(key ebiten.Key) Action {
	switch key {
	case ebiten.KeyArrowUp, ebiten.KeyW:
		return ActionAccelerate
	case ebiten.KeyArrowDown, ebiten.KeyS:
		return ActionBrake
	case ebiten.KeyArrowLeft, ebiten.KeyA:
		return ActionLeft
	case ebiten.KeyArrowRight, ebiten.KeyD:
		return ActionRight
	default:
		return ActionNone
	}
}

var boundKeys = []ebiten.Key{
	ebiten.KeyArrowUp, ebiten.KeyW,
	ebiten.KeyArrowDown, ebiten.KeyS,
	ebiten.KeyArrowLeft, ebiten.KeyA,
	ebiten.KeyArrowRight, ebiten.KeyD,
}

// Keyboard reads the held keys from ebiten. Must be polled from Update.
type Keyboard struct {
	pressed func(ebiten.Key) bool
}

// NewKeyboard creates a keyboard source backed by ebiten.IsKeyPressed
func NewKeyboard() *Keyboard {
	return &Keyboard{pressed: ebiten.IsKeyPressed}
}

// Poll implements Source.
func (k *Keyboard) Poll() State {
	var s State
	for _, key := range boundKeys {
		if !k.pressed(key) {
			continue
		}
		s.apply(actionForKey(key))
	}
	return s
}

func (s *State) apply(a Action) {
	switch a {
	case ActionAccelerate:
		s.Accelerate = true
	case ActionBrake:
		s.Brake = true
	case ActionLeft:
		s.Left = true
	case ActionRight:
		s.Right = true
	}
}
