package replay

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Recorder collects the input applied on every tick.
type Recorder struct {
	inputs []core.UserInput
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends one tick's input. Quit never reaches the simulation and is dropped.
func (r *Recorder) Record(in core.UserInput) {
	if in == core.InputQuit {
		return
	}
	r.inputs = append(r.inputs, in)
}

// Inputs returns a copy of the recorded inputs.
func (r *Recorder) Inputs() []core.UserInput {
	out := make([]core.UserInput, len(r.inputs))
	copy(out, r.inputs)
	return out
}

// Len returns the number of recorded ticks.
func (r *Recorder) Len() int {
	return len(r.inputs)
}

// Encoded returns the recorded inputs in storage form.
func (r *Recorder) Encoded() string {
	return Encode(r.inputs)
}

// Script feeds recorded inputs back one tick at a time.
type Script struct {
	inputs []core.UserInput
	pos    int
}

// NewScript creates a script over the given inputs.
func NewScript(inputs []core.UserInput) *Script {
	return &Script{inputs: inputs}
}

// Next returns the input for the next tick, or false once exhausted.
func (s *Script) Next() (core.UserInput, bool) {
	if s.pos >= len(s.inputs) {
		return core.InputNone, false
	}
	in := s.inputs[s.pos]
	s.pos++
	return in, true
}

// Remaining returns the number of ticks left.
func (s *Script) Remaining() int {
	return len(s.inputs) - s.pos
}
