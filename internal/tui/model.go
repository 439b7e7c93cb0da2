package tui

import (
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/sortscope/internal/algorithms"
	"github.com/san-kum/sortscope/internal/config"
	"github.com/san-kum/sortscope/internal/playback"
	"github.com/san-kum/sortscope/internal/trace"
)

const (
	jumpSize    = 10
	speedFactor = 1.5
)

type screen int

const (
	screenMenu screen = iota
	screenPlayer
)

type column int

const (
	columnAlgorithms column = iota
	columnPresets
)

// tickMsg advances playback. Ticks from an older play session carry a stale
// gen and are dropped.
type tickMsg struct{ gen int }

type Options struct {
	Algorithm string
	Input     config.InputConfig
	Speed     float64
	BaseDelay time.Duration
	Theme     string
	// SkipMenu starts straight in the player with Algorithm and Input.
	SkipMenu  bool
}

// Model is the interactive player: a selection menu followed by a step
// viewer over one recorded run.
type Model struct {
	registry  *algorithms.Registry
	explainer *algorithms.Explainer
	keys      keyMap
	help      help.Model
	progress  progress.Model
	theme     Theme
	styles    styles

	screen  screen
	focus   column
	infos   []algorithms.Info
	presets []string
	algIdx  int
	preIdx  int
	input   config.InputConfig

	key       string
	timeline  *trace.Timeline
	playing   bool
	gen       int
	speed     float64
	baseDelay time.Duration
	showChart bool

	width, height int
	err           error
}

func NewModel(registry *algorithms.Registry, opts Options) Model {
	theme := GetTheme(opts.Theme)
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = playback.DefaultBaseDelay
	}
	if opts.Speed == 0 {
		opts.Speed = config.DefaultSpeed
	}

	m := Model{
		registry:  registry,
		explainer: algorithms.NewExplainer(),
		keys:      newKeyMap(),
		help:      help.New(),
		theme:     theme,
		styles:    newStyles(theme),
		infos:     registry.Infos(),
		presets:   config.ListPresets(),
		input:     opts.Input,
		speed:     playback.ClampSpeed(opts.Speed),
		baseDelay: opts.BaseDelay,
		showChart: true,
		width:     80,
		height:    24,
	}
	m.progress = newProgress(theme)

	if i := slices.IndexFunc(m.infos, func(in algorithms.Info) bool { return in.Key == opts.Algorithm }); i >= 0 {
		m.algIdx = i
	}
	preset := opts.Input.Preset
	if preset == "" {
		preset = config.DefaultPreset
	}
	if i := slices.Index(m.presets, preset); i >= 0 {
		m.preIdx = i
	}

	if opts.SkipMenu {
		m.start()
	}
	return m
}

func newProgress(t Theme) progress.Model {
	return progress.New(progress.WithGradient(string(t.Primary), string(t.Accent)))
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.progress.Width = max(10, min(msg.Width-4, 60))
		return m, nil

	case tickMsg:
		if msg.gen != m.gen || !m.playing || m.timeline == nil {
			return m, nil
		}
		m.timeline.StepForward()
		if m.timeline.AtEnd() {
			m.playing = false
			return m, nil
		}
		return m, m.tick()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.screen == screenMenu {
			return m.updateMenu(msg)
		}
		return m.updatePlayer(msg)
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.move(1)
	case key.Matches(msg, m.keys.Switch):
		m.focus = 1 - m.focus
	case key.Matches(msg, m.keys.Theme):
		m.cycleTheme()
	case key.Matches(msg, m.keys.Select):
		m.start()
	}
	return m, nil
}

func (m *Model) move(delta int) {
	if m.focus == columnAlgorithms {
		m.algIdx = wrap(m.algIdx+delta, len(m.infos))
		return
	}
	m.preIdx = wrap(m.preIdx+delta, len(m.presets))
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return (i%n + n) % n
}

// start records a run for the selected algorithm and preset and switches to
// the player. Explicit input values win over the preset.
func (m *Model) start() {
	m.err = nil
	if len(m.infos) == 0 {
		m.err = algorithms.ErrUnknownAlgorithm
		return
	}
	alg, err := m.registry.Get(m.infos[m.algIdx].Key)
	if err != nil {
		m.err = err
		return
	}

	input := m.input
	if len(m.presets) > 0 {
		input.Preset = m.presets[m.preIdx]
	}
	values, err := input.Resolve()
	if err != nil {
		m.err = err
		return
	}

	m.key = alg.Info().Key
	m.timeline = alg.Execute(values)
	m.playing = false
	m.gen++
	m.screen = screenPlayer
}

func (m Model) updatePlayer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tl := m.timeline
	switch {
	case key.Matches(msg, m.keys.Play):
		if m.playing {
			m.pause()
			return m, nil
		}
		if tl.Len() == 0 {
			return m, nil
		}
		if tl.AtEnd() {
			tl.Reset()
		}
		m.playing = true
		m.gen++
		return m, m.tick()
	case key.Matches(msg, m.keys.Forward):
		m.pause()
		tl.StepForward()
	case key.Matches(msg, m.keys.Backward):
		m.pause()
		tl.StepBackward()
	case key.Matches(msg, m.keys.JumpBack):
		m.pause()
		tl.SetPosition(max(-1, tl.Cursor()-jumpSize))
	case key.Matches(msg, m.keys.JumpFwd):
		m.pause()
		tl.SetPosition(min(tl.Len()-1, tl.Cursor()+jumpSize))
	case key.Matches(msg, m.keys.Start), key.Matches(msg, m.keys.Reset):
		m.pause()
		tl.Reset()
	case key.Matches(msg, m.keys.End):
		m.pause()
		tl.SetPosition(tl.Len() - 1)
	case key.Matches(msg, m.keys.Faster):
		m.speed = playback.ClampSpeed(m.speed * speedFactor)
	case key.Matches(msg, m.keys.Slower):
		m.speed = playback.ClampSpeed(m.speed / speedFactor)
	case key.Matches(msg, m.keys.Chart):
		m.showChart = !m.showChart
	case key.Matches(msg, m.keys.Theme):
		m.cycleTheme()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Menu):
		m.pause()
		m.screen = screenMenu
	}
	return m, nil
}

func (m *Model) pause() {
	if m.playing {
		m.playing = false
		m.gen++
	}
}

func (m *Model) cycleTheme() {
	m.theme = NextTheme(m.theme)
	m.styles = newStyles(m.theme)
	width := m.progress.Width
	m.progress = newProgress(m.theme)
	m.progress.Width = width
}

// Delay is the wait between automatic steps at the current speed.
func (m Model) Delay() time.Duration {
	return time.Duration(float64(m.baseDelay) / m.speed)
}

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.Delay(), func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m Model) Timeline() *trace.Timeline { return m.timeline }
func (m Model) Playing() bool             { return m.playing }
func (m Model) Speed() float64            { return m.speed }
func (m Model) Err() error                { return m.err }

func presetDescription(name string) (string, bool) {
	p, ok := config.GetPreset(name)
	return p.Description, ok
}
