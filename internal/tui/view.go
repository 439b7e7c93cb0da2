package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortscope/internal/render"
	"github.com/san-kum/sortscope/internal/trace"
)

const (
	barHeight   = 12
	chartHeight = 6
	barGlyph    = "█"
)

func (m Model) View() string {
	if m.screen == screenMenu {
		return m.menuView()
	}
	return m.playerView()
}

func (m Model) menuView() string {
	s := m.styles
	var algs, presets strings.Builder

	algs.WriteString(s.title.Render("ALGORITHM") + "\n")
	for i, info := range m.infos {
		line := fmt.Sprintf("%-12s %s", info.Name, s.muted.Render(info.Complexity.Average))
		algs.WriteString(m.menuLine(line, i == m.algIdx, m.focus == columnAlgorithms) + "\n")
	}

	presets.WriteString(s.title.Render("INPUT") + "\n")
	for i, name := range m.presets {
		line := name
		if i == m.preIdx {
			if p, ok := presetDescription(name); ok {
				line += "  " + s.muted.Render(p)
			}
		}
		presets.WriteString(m.menuLine(line, i == m.preIdx, m.focus == columnPresets) + "\n")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		s.panel.Render(algs.String()),
		"  ",
		s.panel.Render(presets.String()),
	)

	var b strings.Builder
	b.WriteString(s.title.Render("sortscope") + "\n")
	b.WriteString(body + "\n")

	if len(m.infos) > 0 {
		if ov, ok := m.explainer.Overview(m.infos[m.algIdx].Key); ok {
			b.WriteString(s.explanation.Render(ov.Strategy) + "\n")
		}
	}
	if m.err != nil {
		b.WriteString(s.errText.Render("error: "+m.err.Error()) + "\n")
	}
	b.WriteString("\n" + m.help.View(menuKeys(m.keys)))
	return b.String()
}

func (m Model) menuLine(text string, selected, focused bool) string {
	switch {
	case selected && focused:
		return m.styles.selected.Render("▸ " + text)
	case selected:
		return m.styles.value.Render("• " + text)
	}
	return m.styles.muted.Render("  " + text)
}

func (m Model) playerView() string {
	s := m.styles
	tl := m.timeline
	state, _ := tl.CurrentState()
	step, hasStep := tl.CurrentStep()

	name := m.key
	if alg, err := m.registry.Get(m.key); err == nil {
		name = alg.Info().Name
	}

	var b strings.Builder
	b.WriteString(s.title.Render("sortscope · "+name) + "\n")
	b.WriteString(s.panel.Render(m.bars(state)) + "\n")

	if m.showChart {
		if chart := render.ValuesChart(state.Values, max(10, min(m.width-12, 60)), chartHeight, ""); chart != "" {
			b.WriteString(s.muted.Render(chart) + "\n")
		}
	}

	explanation := "Initial array. Press space to play."
	if hasStep {
		explanation = m.explainer.Explain(step, m.key)
	} else if tl.Len() == 0 {
		explanation = "Nothing to sort."
	}
	b.WriteString(s.explanation.Render(explanation) + "\n\n")

	status := s.paused.Render("❚❚ paused")
	if m.playing {
		status = s.playing.Render("▶ playing")
	}
	b.WriteString(status + "  ")
	b.WriteString(s.label.Render("Step") + s.value.Render(fmt.Sprintf("%d/%d", tl.Cursor()+1, tl.Len())) + "  ")
	b.WriteString(s.label.Render("Speed") + s.value.Render(fmt.Sprintf("%.2fx (%s)", m.speed, m.Delay())) + "\n")
	if hasStep {
		b.WriteString(s.label.Render("Last step") + s.value.Render(step.String()) + "\n")
	}
	b.WriteString(m.progress.ViewAs(tl.Progress()) + "\n")
	b.WriteString(m.legend() + "\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// bars draws one vertical bar per element scaled to the largest magnitude,
// with value labels underneath.
func (m Model) bars(state trace.ArrayState) string {
	n := len(state.Values)
	if n == 0 {
		return m.styles.muted.Render("(empty)")
	}

	cell := 2
	peak := 1
	for _, v := range state.Values {
		cell = max(cell, len(strconv.Itoa(v))+1)
		peak = max(peak, abs(v))
	}

	heights := make([]int, n)
	for i, v := range state.Values {
		heights[i] = max(1, abs(v)*barHeight/peak)
	}

	var b strings.Builder
	for row := barHeight; row >= 1; row-- {
		for i := range state.Values {
			glyph := " "
			if heights[i] >= row {
				glyph = barGlyph
			}
			b.WriteString(m.styles.roles[state.Role(i)].Render(strings.Repeat(glyph, cell-1)) + " ")
		}
		b.WriteString("\n")
	}
	for i, v := range state.Values {
		b.WriteString(m.styles.roles[state.Role(i)].Render(fmt.Sprintf("%*d", cell-1, v)) + " ")
	}
	return b.String()
}

func (m Model) legend() string {
	roles := []trace.Role{trace.RoleComparing, trace.RolePivot, trace.RoleHighlighted, trace.RoleSorted, trace.RoleIdle}
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = m.styles.roles[r].Render(barGlyph + " " + r.String())
	}
	return strings.Join(parts, "  ")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
