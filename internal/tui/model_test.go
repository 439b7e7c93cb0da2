package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/sortscope/internal/algorithms"
	"github.com/san-kum/sortscope/internal/config"
	"github.com/san-kum/sortscope/internal/playback"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	var next tea.Model = m
	for _, msg := range msgs {
		next, cmd = next.Update(msg)
	}
	return next.(Model), cmd
}

func playerModel(t *testing.T, values ...int) Model {
	t.Helper()
	m := NewModel(algorithms.NewRegistry(), Options{
		Algorithm: "bubble",
		Input:     config.InputConfig{Values: values},
		BaseDelay: 100 * time.Millisecond,
		SkipMenu:  true,
	})
	if m.Timeline() == nil {
		t.Fatalf("expected a recorded run, got error %v", m.Err())
	}
	return m
}

func TestMenuStartsRun(t *testing.T) {
	m := NewModel(algorithms.NewRegistry(), Options{
		Algorithm: "merge",
		Input:     config.InputConfig{Preset: "classic"},
	})
	if m.screen != screenMenu {
		t.Fatalf("expected menu screen")
	}
	if m.infos[m.algIdx].Key != "merge" {
		t.Errorf("expected merge selected, got %s", m.infos[m.algIdx].Key)
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenPlayer {
		t.Fatalf("expected player screen, got error %v", m.Err())
	}
	if m.key != "merge" {
		t.Errorf("expected merge run, got %s", m.key)
	}
	got := m.Timeline().InitialArray()
	want := []int{5, 4, 3, 2, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if m.Timeline().Cursor() != -1 {
		t.Errorf("expected cursor -1, got %d", m.Timeline().Cursor())
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewModel(algorithms.NewRegistry(), Options{Algorithm: "bubble"})

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.algIdx != len(m.infos)-1 {
		t.Errorf("expected wrap to last algorithm, got %d", m.algIdx)
	}

	before := m.preIdx
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyDown})
	if m.focus != columnPresets {
		t.Errorf("expected presets focus")
	}
	if m.preIdx != wrap(before+1, len(m.presets)) {
		t.Errorf("expected preset %d, got %d", wrap(before+1, len(m.presets)), m.preIdx)
	}
}

func TestManualNavigation(t *testing.T) {
	m := playerModel(t, 5, 4, 3, 2, 1)
	tl := m.Timeline()
	last := tl.Len() - 1

	tests := []struct {
		key  tea.KeyMsg
		want int
	}{
		{runes("l"), 0},
		{tea.KeyMsg{Type: tea.KeyRight}, 1},
		{runes("h"), 0},
		{runes("h"), -1},
		{runes("h"), -1},
		{runes("]"), 9},
		{runes("["), -1},
		{runes("G"), last},
		{runes("l"), last},
		{runes("g"), -1},
	}

	for i, tt := range tests {
		m, _ = press(m, tt.key)
		if tl.Cursor() != tt.want {
			t.Errorf("step %d (%s): expected cursor %d, got %d", i, tt.key, tt.want, tl.Cursor())
		}
	}
}

func TestPlayAdvancesOnTick(t *testing.T) {
	m := playerModel(t, 3, 1, 2)

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.Playing() || cmd == nil {
		t.Fatalf("expected playing with a tick scheduled")
	}

	m, cmd = press(m, tickMsg{gen: m.gen})
	if m.Timeline().Cursor() != 0 {
		t.Errorf("expected cursor 0, got %d", m.Timeline().Cursor())
	}
	if cmd == nil {
		t.Errorf("expected next tick")
	}

	stale := m.gen - 1
	m, _ = press(m, tickMsg{gen: stale})
	if m.Timeline().Cursor() != 0 {
		t.Errorf("expected stale tick ignored, got cursor %d", m.Timeline().Cursor())
	}

	for m.Playing() {
		m, _ = press(m, tickMsg{gen: m.gen})
	}
	if !m.Timeline().AtEnd() {
		t.Errorf("expected playback to stop at the end")
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.Playing() || m.Timeline().Cursor() != -1 {
		t.Errorf("expected replay from the start, got cursor %d", m.Timeline().Cursor())
	}
}

func TestStepKeyPausesPlayback(t *testing.T) {
	m := playerModel(t, 3, 1, 2)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeySpace})
	gen := m.gen
	m, _ = press(m, runes("l"))
	if m.Playing() {
		t.Errorf("expected manual step to pause")
	}

	m, _ = press(m, tickMsg{gen: gen})
	if m.Timeline().Cursor() != 0 {
		t.Errorf("expected pending tick dropped, got cursor %d", m.Timeline().Cursor())
	}
}

func TestSpeedClamp(t *testing.T) {
	m := playerModel(t, 2, 1)

	for range 20 {
		m, _ = press(m, runes("+"))
	}
	if m.Speed() != playback.MaxSpeed {
		t.Errorf("expected %.1f, got %.2f", playback.MaxSpeed, m.Speed())
	}
	if m.Delay() != 20*time.Millisecond {
		t.Errorf("expected 20ms, got %s", m.Delay())
	}

	for range 20 {
		m, _ = press(m, runes("-"))
	}
	if m.Speed() != playback.MinSpeed {
		t.Errorf("expected %.1f, got %.2f", playback.MinSpeed, m.Speed())
	}
}

func TestThemeCycle(t *testing.T) {
	m := playerModel(t, 2, 1)
	if m.theme.Name != DefaultThemeName {
		t.Fatalf("expected default theme, got %s", m.theme.Name)
	}

	for _, want := range ThemeNames()[1:] {
		m, _ = press(m, runes("t"))
		if m.theme.Name != want {
			t.Errorf("expected %s, got %s", want, m.theme.Name)
		}
	}
	m, _ = press(m, runes("t"))
	if m.theme.Name != ThemeNames()[0] {
		t.Errorf("expected wrap to %s, got %s", ThemeNames()[0], m.theme.Name)
	}
}

func TestMenuKeyReturns(t *testing.T) {
	m := playerModel(t, 2, 1)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeySpace}, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.Playing() {
		t.Errorf("expected paused menu")
	}
}

func TestQuit(t *testing.T) {
	m := playerModel(t, 2, 1)
	_, cmd := press(m, runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg")
	}
}

func TestView(t *testing.T) {
	m := playerModel(t, 3, 1, 2)
	m, _ = press(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.View()
	for _, want := range []string{"Bubble Sort", "Step", "0/", "Initial array"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}

	m, _ = press(m, runes("l"), runes("c"))
	view = m.View()
	if !strings.Contains(view, "1/") {
		t.Errorf("expected step counter 1/N")
	}
	if !strings.Contains(view, "Last step") {
		t.Errorf("expected last step line")
	}

	menu := NewModel(algorithms.NewRegistry(), Options{}).View()
	for _, want := range []string{"ALGORITHM", "INPUT", "Quick Sort", "classic"} {
		if !strings.Contains(menu, want) {
			t.Errorf("expected menu to contain %q", want)
		}
	}
}

func TestEmptyRun(t *testing.T) {
	m := NewModel(algorithms.NewRegistry(), Options{
		Input:    config.InputConfig{Preset: "random", Size: 0, Min: 1, Max: 9},
		SkipMenu: true,
	})
	if m.Timeline() == nil {
		t.Fatalf("expected run, got error %v", m.Err())
	}
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeySpace})
	if m.Playing() || cmd != nil {
		t.Errorf("expected no playback for an empty run")
	}
	if !strings.Contains(m.View(), "Nothing to sort") {
		t.Errorf("expected empty run message")
	}
}

func TestGetThemeFallback(t *testing.T) {
	if GetTheme("nope").Name != DefaultThemeName {
		t.Errorf("expected fallback to %s", DefaultThemeName)
	}
	if GetTheme("ocean").Name != "ocean" {
		t.Errorf("expected ocean")
	}
}
