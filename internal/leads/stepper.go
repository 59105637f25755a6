package leads

// MinQuantity is the smallest quantity a quote can ask for.
const MinQuantity = 1

// Stepper is the quantity control of the quote form. It never goes below
// MinQuantity.
type Stepper struct {
	value int
}

// NewStepper starts at v, clamped to MinQuantity.
func NewStepper(v int) Stepper {
	if v < MinQuantity {
		v = MinQuantity
	}
	return Stepper{value: v}
}

func (s Stepper) Value() int { return s.value }

func (s *Stepper) Increment() { s.value++ }

func (s *Stepper) Decrement() {
	if s.value > MinQuantity {
		s.value--
	}
}

// Next is the value after one increment.
func (s Stepper) Next() int {
	s.Increment()
	return s.value
}

// Prev is the value after one decrement.
func (s Stepper) Prev() int {
	s.Decrement()
	return s.value
}

// AtMin reports whether decrementing would have no effect.
func (s Stepper) AtMin() bool { return s.value <= MinQuantity }
