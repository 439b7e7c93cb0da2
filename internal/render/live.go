package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/san-kum/sortscope/internal/trace"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// Live redraws each frame in place. A frame is composed off screen and
// written in one call.
type Live struct {
	w       io.Writer
	title   string
	buf     bytes.Buffer
	console *Console
	frames  int
}

func NewLive(w io.Writer, title string, explain func(trace.Step) string) *Live {
	l := &Live{w: w, title: title}
	l.console = NewConsole(&l.buf, explain)
	return l
}

func (l *Live) Render(state trace.ArrayState, step *trace.Step) {
	l.buf.Reset()
	l.buf.WriteString(clearScreen)
	fmt.Fprintf(&l.buf, "  %s  frame %d\n", l.title, l.frames)
	l.console.Render(state, step)
	l.buf.WriteString("\n")
	l.console.Legend()
	l.frames++

	l.w.Write(l.buf.Bytes())
}

func (l *Live) Clear() {
	fmt.Fprint(l.w, clearScreen)
}

func (l *Live) Frames() int { return l.frames }

func (l *Live) Start() { fmt.Fprint(l.w, hideCursor) }
func (l *Live) Stop()  { fmt.Fprint(l.w, showCursor) }
