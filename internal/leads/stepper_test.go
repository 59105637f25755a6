package leads

import "testing"

func TestStepperClampsAtOne(t *testing.T) {
	tests := []struct {
		name string
		ops  string
		want int
	}{
		{name: "decrement at floor", ops: "-", want: 1},
		{name: "up then down twice", ops: "+--", want: 1},
		{name: "three up", ops: "+++", want: 4},
		{name: "mixed", ops: "++-+--", want: 1},
		{name: "three up five down", ops: "+++-----", want: 1},
		{name: "ends above floor", ops: "++-+-", want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStepper(1)
			for _, op := range tt.ops {
				if op == '+' {
					s.Increment()
				} else {
					s.Decrement()
				}
			}
			if s.Value() != tt.want {
				t.Errorf("got %d, want %d", s.Value(), tt.want)
			}
		})
	}
}

func TestStepperFromValue(t *testing.T) {
	for in, want := range map[int]int{-3: 1, 0: 1, 1: 1, 7: 7} {
		if got := NewStepper(in).Value(); got != want {
			t.Errorf("NewStepper(%d) = %d, want %d", in, got, want)
		}
	}
	s := NewStepper(1)
	if s.Prev() != 1 || s.Next() != 2 || !s.AtMin() {
		t.Error("unexpected neighbours at the floor")
	}
	if s.Value() != 1 {
		t.Error("Next and Prev must not modify the stepper")
	}
}
