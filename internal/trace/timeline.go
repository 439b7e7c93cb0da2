package trace

// Timeline is the recorded step sequence of one algorithm run together with
// every array state it produces. states[0] is the snapshot before any step and
// states[i+1] the snapshot after steps[i], so len(states) == len(steps)+1.
//
// A timeline is built by AddStep and then navigated; the two phases do not
// interleave. Navigation moves a cursor in [-1, Len()-1], where -1 means
// "before the first step".
type Timeline struct {
	initial []int
	steps   []Step
	states  []ArrayState
	cursor  int
}

func New(initial []int) *Timeline {
	return &Timeline{
		initial: cloneInts(initial),
		steps:   make([]Step, 0),
		states:  []ArrayState{NewArrayState(initial)},
		cursor:  -1,
	}
}

// AddStep applies step to a copy of the latest state and records both.
func (t *Timeline) AddStep(step Step) {
	next := t.states[len(t.states)-1].Clone()
	next.Values = next.ApplyStep(step, next.Values)
	next.UpdateAnnotations(step)

	t.states = append(t.states, next)
	t.steps = append(t.steps, step)
}

func (t *Timeline) StepForward() bool {
	if t.cursor < len(t.steps)-1 {
		t.cursor++
		return true
	}
	return false
}

func (t *Timeline) StepBackward() bool {
	if t.cursor > -1 {
		t.cursor--
		return true
	}
	return false
}

// SetPosition moves the cursor to pos. Positions outside [-1, Len()-1] are
// rejected and leave the cursor where it was.
func (t *Timeline) SetPosition(pos int) bool {
	if !t.validPosition(pos) {
		return false
	}
	t.cursor = pos
	return true
}

func (t *Timeline) Reset() { t.cursor = -1 }

// CurrentState returns a copy of the state visible at the cursor.
func (t *Timeline) CurrentState() (ArrayState, bool) {
	return t.StateAt(t.cursor)
}

func (t *Timeline) CurrentStep() (Step, bool) {
	return t.StepAt(t.cursor)
}

// Progress is (cursor+1)/Len(), or 0 for a timeline without steps.
func (t *Timeline) Progress() float64 {
	if len(t.steps) == 0 {
		return 0.0
	}
	return float64(t.cursor+1) / float64(len(t.steps))
}

// StateAt returns a copy of the state visible when the cursor is at pos,
// without moving the cursor.
func (t *Timeline) StateAt(pos int) (ArrayState, bool) {
	idx := pos + 1
	if idx < 0 || idx >= len(t.states) {
		return ArrayState{}, false
	}
	return t.states[idx].Clone(), true
}

func (t *Timeline) StepAt(pos int) (Step, bool) {
	if pos < 0 || pos >= len(t.steps) {
		return Step{}, false
	}
	return t.steps[pos], true
}

func (t *Timeline) FinalState() ArrayState {
	return t.states[len(t.states)-1].Clone()
}

func (t *Timeline) Cursor() int         { return t.cursor }
func (t *Timeline) Len() int            { return len(t.steps) }
func (t *Timeline) AtEnd() bool         { return t.cursor == len(t.steps)-1 }
func (t *Timeline) InitialArray() []int { return cloneInts(t.initial) }

// Steps returns the recorded steps. Steps are immutable, so only the slice
// header is copied.
func (t *Timeline) Steps() []Step {
	out := make([]Step, len(t.steps))
	copy(out, t.steps)
	return out
}

// States returns deep copies of every recorded state, initial snapshot first.
func (t *Timeline) States() []ArrayState {
	out := make([]ArrayState, len(t.states))
	for i, s := range t.states {
		out[i] = s.Clone()
	}
	return out
}

func (t *Timeline) validPosition(pos int) bool {
	return pos >= -1 && pos < len(t.steps)
}
