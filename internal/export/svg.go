package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/sortscope/internal/trace"
)

var roleFill = map[trace.Role]string{
	trace.RoleSorted:      "#00ff88",
	trace.RolePivot:       "#ffcc00",
	trace.RoleComparing:   "#ff4444",
	trace.RoleHighlighted: "#3399ff",
	trace.RoleIdle:        "#cccccc",
}

// StateToSVG draws one array state as a bar chart, bars coloured by role.
func StateToSVG(state trace.ArrayState, width, height int) string {
	n := len(state.Values)
	if n == 0 || width <= 0 || height <= 0 {
		return ""
	}

	lo, hi := 0, 0
	for _, v := range state.Values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := float64(hi - lo)
	if span == 0 {
		span = 1
	}

	slot := float64(width) / float64(n)
	gap := slot * 0.1
	usable := float64(height) * 0.9
	// Bars grow from the zero line so negative values hang below it.
	zero := float64(height) - (float64(-lo)/span)*usable - float64(height)*0.05

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for i, v := range state.Values {
		h := float64(v) / span * usable
		y := zero - h
		if h < 0 {
			y, h = zero, -h
		}
		x := float64(i)*slot + gap/2
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"><title>[%d] %d</title></rect>
`, x, y, slot-gap, h, roleFill[state.Role(i)], i, v))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// TimelineToSVG renders every state of a run, one file body per position
// starting with the initial snapshot.
func TimelineToSVG(tl *trace.Timeline, width, height int) []string {
	states := tl.States()
	frames := make([]string, len(states))
	for i, s := range states {
		frames[i] = StateToSVG(s, width, height)
	}
	return frames
}
