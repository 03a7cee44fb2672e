package replay

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestRecorderDropsQuit(t *testing.T) {
	r := NewRecorder()
	r.Record(core.InputUp)
	r.Record(core.InputQuit)
	r.Record(core.InputNone)

	if r.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", r.Len())
	}
	if got := r.Encoded(); got != "1U1." {
		t.Errorf("Encoded() = %q, expected %q", got, "1U1.")
	}
}

func TestRecorderInputsIsCopy(t *testing.T) {
	r := NewRecorder()
	r.Record(core.InputLeft)

	inputs := r.Inputs()
	inputs[0] = core.InputRight

	if r.Inputs()[0] != core.InputLeft {
		t.Error("Inputs() should return a copy")
	}
}

func TestScript(t *testing.T) {
	s := NewScript([]core.UserInput{core.InputLeft, core.InputUp})

	if s.Remaining() != 2 {
		t.Errorf("Remaining() = %d, expected 2", s.Remaining())
	}

	for _, want := range []core.UserInput{core.InputLeft, core.InputUp} {
		got, ok := s.Next()
		if !ok || got != want {
			t.Errorf("Next() = %v, %v; expected %v, true", got, ok, want)
		}
	}

	if in, ok := s.Next(); ok || in != core.InputNone {
		t.Errorf("Exhausted Next() = %v, %v; expected None, false", in, ok)
	}
	if s.Remaining() != 0 {
		t.Errorf("Remaining() = %d, expected 0", s.Remaining())
	}
}
