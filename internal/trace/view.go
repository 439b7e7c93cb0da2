package trace

// View is an independent cursor over a finished timeline. Several views may
// read one timeline concurrently as long as nobody calls AddStep on it.
type View struct {
	tl     *Timeline
	cursor int
}

func (t *Timeline) NewView() *View {
	return &View{tl: t, cursor: -1}
}

func (v *View) StepForward() bool {
	if v.cursor < v.tl.Len()-1 {
		v.cursor++
		return true
	}
	return false
}

func (v *View) StepBackward() bool {
	if v.cursor > -1 {
		v.cursor--
		return true
	}
	return false
}

func (v *View) SetPosition(pos int) bool {
	if !v.tl.validPosition(pos) {
		return false
	}
	v.cursor = pos
	return true
}

func (v *View) Reset()                           { v.cursor = -1 }
func (v *View) Cursor() int                      { return v.cursor }
func (v *View) CurrentState() (ArrayState, bool) { return v.tl.StateAt(v.cursor) }
func (v *View) CurrentStep() (Step, bool)        { return v.tl.StepAt(v.cursor) }

func (v *View) Progress() float64 {
	if v.tl.Len() == 0 {
		return 0.0
	}
	return float64(v.cursor+1) / float64(v.tl.Len())
}
