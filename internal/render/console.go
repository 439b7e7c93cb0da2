package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/san-kum/sortscope/internal/trace"
)

const ruleWidth = 50

var roleColors = map[trace.Role]*color.Color{
	trace.RoleSorted:      color.New(color.FgHiGreen),
	trace.RolePivot:       color.New(color.FgHiYellow),
	trace.RoleComparing:   color.New(color.FgHiRed),
	trace.RoleHighlighted: color.New(color.FgHiBlue),
	trace.RoleIdle:        color.New(color.FgWhite),
}

// Console prints array states as coloured cells, one frame per call.
type Console struct {
	w       io.Writer
	explain func(trace.Step) string
	rule    string
}

// NewConsole writes frames to w. explain, when non-nil, supplies the text
// shown under each step; otherwise the step's own explanation is used.
func NewConsole(w io.Writer, explain func(trace.Step) string) *Console {
	return &Console{
		w:       w,
		explain: explain,
		rule:    strings.Repeat("=", ruleWidth),
	}
}

func (c *Console) Render(state trace.ArrayState, step *trace.Step) {
	fmt.Fprintf(c.w, "\n%s\nArray Visualization:\n%s\n", c.rule, c.rule)

	for i, v := range state.Values {
		roleColors[state.Role(i)].Fprintf(c.w, "[%2d]", v)
		fmt.Fprint(c.w, " ")
	}
	fmt.Fprintf(c.w, "\n%s\n", c.rule)

	if step != nil {
		fmt.Fprintf(c.w, "%s %v", step.Kind(), step.Indices())
		if text := c.text(*step); text != "" {
			fmt.Fprintf(c.w, ": %s", text)
		}
		fmt.Fprintln(c.w)
	}
	fmt.Fprintf(c.w, "Step: %d remaining\n", len(state.Values)-len(state.SortedIndices))
}

func (c *Console) Clear() {
	fmt.Fprint(c.w, "\033[H\033[2J")
}

// Legend describes the cell colours.
func (c *Console) Legend() {
	for _, r := range []trace.Role{trace.RoleSorted, trace.RolePivot, trace.RoleComparing, trace.RoleHighlighted, trace.RoleIdle} {
		roleColors[r].Fprintf(c.w, "[##]")
		fmt.Fprintf(c.w, " %s  ", r)
	}
	fmt.Fprintln(c.w)
}

func (c *Console) text(step trace.Step) string {
	if c.explain != nil {
		return c.explain(step)
	}
	return step.Explanation()
}
