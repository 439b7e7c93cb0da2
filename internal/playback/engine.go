package playback

import (
	"github.com/san-kum/sortscope/internal/trace"
)

// Renderer draws one array state. step is nil at the initial snapshot.
type Renderer interface {
	Render(state trace.ArrayState, step *trace.Step)
	Clear()
}

// Engine keeps a Renderer in sync with a Controller's cursor.
type Engine struct {
	*Controller
	renderer Renderer
}

func NewEngine(r Renderer, opts ...Option) *Engine {
	e := &Engine{
		Controller: NewController(opts...),
		renderer:   r,
	}
	e.Listen(Listener{Position: e.renderer.Render})
	return e
}

// Load rewinds tl, hands it to the controller and draws the initial snapshot.
func (e *Engine) Load(tl *trace.Timeline) {
	e.Controller.Load(tl)
	e.Controller.Reset()
}

func (e *Engine) Redraw() {
	state, step, ok := e.State()
	if !ok {
		return
	}
	e.renderer.Clear()
	e.renderer.Render(state, step)
}
