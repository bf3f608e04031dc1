package controls

import (
	"fmt"
	"strconv"
	"strings"
)

// Step holds a control state for a number of ticks
type Step struct {
	Ticks int
	State State
}

// Script replays a fixed list of steps, one tick per Poll. Once the steps run
// out it returns the zero State.
type Script struct {
	steps []Step
	step  int
	tick  int
}

// NewScript creates a script from steps
func NewScript(steps ...Step) *Script {
	return &Script{steps: steps}
}

// Poll implements Source.
func (s *Script) Poll() State {
	if s.Done() {
		return State{}
	}
	s.tick++
	return s.steps[s.step].State
}

// Done reports whether every step has been replayed. Steps with no ticks
// left are skipped.
func (s *Script) Done() bool {
	for s.step < len(s.steps) && s.tick >= s.steps[s.step].Ticks {
		s.step++
		s.tick = 0
	}
	return s.step >= len(s.steps)
}

// Total returns the number of ticks the script covers
func (s *Script) Total() int {
	n := 0
	for _, st := range s.steps {
		n += st.Ticks
	}
	return n
}

// ParseScript reads a script of the form "up+left:120,down:30,idle:10".
// Each step names the held inputs joined by '+' followed by a tick count.
// Recognised inputs are up, down, left, right and idle.
func ParseScript(src string) (*Script, error) {
	var steps []Step
	for _, part := range strings.Split(src, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		keys, count, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("step %q: missing tick count", part)
		}
		ticks, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil {
			return nil, fmt.Errorf("step %q: invalid tick count: %w", part, err)
		}
		if ticks < 0 {
			return nil, fmt.Errorf("step %q: negative tick count %d", part, ticks)
		}

		var st State
		for _, k := range strings.Split(keys, "+") {
			switch strings.ToLower(strings.TrimSpace(k)) {
			case "up", "accelerate":
				st.Accelerate = true
			case "down", "brake":
				st.Brake = true
			case "left":
				st.Left = true
			case "right":
				st.Right = true
			case "idle", "":
			default:
				return nil, fmt.Errorf("step %q: unknown input %q", part, k)
			}
		}
		steps = append(steps, Step{Ticks: ticks, State: st})
	}
	return NewScript(steps...), nil
}
