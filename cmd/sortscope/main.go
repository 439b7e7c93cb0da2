package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortscope/internal/algorithms"
	"github.com/san-kum/sortscope/internal/automation"
	"github.com/san-kum/sortscope/internal/config"
	"github.com/san-kum/sortscope/internal/export"
	"github.com/san-kum/sortscope/internal/playback"
	"github.com/san-kum/sortscope/internal/render"
	"github.com/san-kum/sortscope/internal/server"
	"github.com/san-kum/sortscope/internal/trace"
	"github.com/san-kum/sortscope/internal/tui"
)

var (
	configFile string
	logLevel   string
	logFormat  string

	// Input selection
	values  string
	preset  string
	size    int
	minVal  int
	maxVal  int
	seed    int64
	verbose bool

	// Playback
	speed    float64
	delayMs  int
	theme    string
	fromFile string
	live     bool

	// run
	showSteps bool
	showPlot  bool

	// export
	outPath string
	format  string
	svgDir  string

	// compare
	htmlPath string

	// sweep
	sweepFrom   int
	sweepTo     int
	sweepPoints int

	// serve
	addr     string
	runCache int

	cfg    *config.Config
	logger *slog.Logger
)

const (
	plotWidth  = 60
	plotHeight = 10
	svgWidth   = 800
	svgHeight  = 300
)

func main() {
	registry := algorithms.NewRegistry()

	rootCmd := &cobra.Command{
		Use:               "sortscope",
		Short:             "step-by-step sorting algorithm visualizer",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(registry, cmd, nil)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", config.DefaultLogFormat, "log format (text|json)")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "record a run and print its summary",
		Args:  cobra.MaximumNArgs(1),
		RunE:  bind(registry, runAlgorithm),
	}
	inputFlags(runCmd)
	runCmd.Flags().BoolVar(&showSteps, "steps", false, "print every step")
	runCmd.Flags().BoolVar(&showPlot, "plot", false, "plot initial and final arrays")

	playCmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "animate a run in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  bind(registry, playAlgorithm),
	}
	inputFlags(playCmd)
	playbackFlags(playCmd)
	playCmd.Flags().StringVar(&fromFile, "from", "", "replay an exported run instead of recording one")
	playCmd.Flags().BoolVar(&live, "live", true, "redraw frames in place")

	tuiCmd := &cobra.Command{
		Use:   "tui [algorithm]",
		Short: "interactive player",
		Args:  cobra.MaximumNArgs(1),
		RunE:  bind(registry, runTUI),
	}
	inputFlags(tuiCmd)
	playbackFlags(tuiCmd)
	tuiCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "theme ("+strings.Join(tui.ThemeNames(), "|")+")")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the HTTP API and web player",
		Args:  cobra.NoArgs,
		RunE:  bind(registry, serve),
	}
	serveCmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address")
	serveCmd.Flags().IntVar(&runCache, "run-cache", config.DefaultRunCache, "number of runs kept in memory")
	serveCmd.Flags().Int64Var(&seed, "seed", 0, "random seed for generated arrays (0 = clock)")

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list available algorithms",
		Args:  cobra.NoArgs,
		RunE:  bind(registry, listAlgorithms),
	}
	algorithmsCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "include strategy overviews")

	exportCmd := &cobra.Command{
		Use:   "export [algorithm]",
		Short: "record a run and write it as a document",
		Args:  cobra.MaximumNArgs(1),
		RunE:  bind(registry, exportRun),
	}
	inputFlags(exportCmd)
	exportCmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")
	exportCmd.Flags().StringVar(&format, "format", "", "json|yaml|zst (default from extension)")
	exportCmd.Flags().StringVar(&svgDir, "svg", "", "also write one SVG frame per state into this directory")

	compareCmd := &cobra.Command{
		Use:   "compare [algorithm...]",
		Short: "run several algorithms on the same input",
		RunE:  bind(registry, compareAlgorithms),
	}
	inputFlags(compareCmd)
	compareCmd.Flags().StringVar(&htmlPath, "html", "", "write an HTML bar chart to this file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list input presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Printf("  %-14s %s\n", p.Name, p.Description)
			}
			return nil
		},
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted list of recordings from a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE:  bind(registry, runScenario),
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [algorithm]",
		Short: "measure step counts over growing input sizes",
		Args:  cobra.MaximumNArgs(1),
		RunE:  bind(registry, runSweep),
	}
	sweepCmd.Flags().StringVar(&preset, "preset", config.DefaultPreset, "input preset")
	sweepCmd.Flags().IntVar(&sweepFrom, "from", 5, "smallest size")
	sweepCmd.Flags().IntVar(&sweepTo, "to", 50, "largest size")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 10, "number of sizes")
	sweepCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = clock)")
	sweepCmd.Flags().BoolVar(&showPlot, "plot", false, "plot total steps against size")

	rootCmd.AddCommand(runCmd, playCmd, tuiCmd, serveCmd, algorithmsCmd, exportCmd, compareCmd, presetsCmd, scenarioCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// bind hands the registry built in main to a command handler.
func bind(registry *algorithms.Registry, fn func(*algorithms.Registry, *cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return fn(registry, cmd, args)
	}
}

func inputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&values, "values", "", "comma separated input, e.g. 3,1,2")
	cmd.Flags().StringVar(&preset, "preset", config.DefaultPreset, "input preset ("+strings.Join(config.ListPresets(), "|")+")")
	cmd.Flags().IntVar(&size, "size", config.DefaultSize, "generated array size")
	cmd.Flags().IntVar(&minVal, "min", config.DefaultMin, "smallest generated value")
	cmd.Flags().IntVar(&maxVal, "max", config.DefaultMax, "largest generated value")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = clock)")
}

func playbackFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&speed, "speed", config.DefaultSpeed, "speed multiplier (0.1 to 5)")
	cmd.Flags().IntVar(&delayMs, "delay", config.DefaultDelayMs, "base delay between steps in ms")
}

// setup loads layered config and builds the logger. Flags given on the
// command line override config values.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.LoadLayered(configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = logFormat
	}
	logger, err = newLogger(cfg.Log)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}

func newLogger(lc config.LogConfig) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(lc.Level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", lc.Level, err)
	}
	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
}

// resolveInput starts from the configured input and applies changed flags.
func resolveInput(cmd *cobra.Command) (config.InputConfig, error) {
	in := cfg.Input
	flags := cmd.Flags()
	if flags.Changed("values") {
		parsed, err := config.ParseValues(values)
		if err != nil {
			return in, err
		}
		in.Values = parsed
	}
	if flags.Changed("preset") {
		in.Preset = preset
		if !flags.Changed("values") {
			in.Values = nil
		}
	}
	if flags.Changed("size") {
		in.Size = size
	}
	if flags.Changed("min") {
		in.Min = minVal
	}
	if flags.Changed("max") {
		in.Max = maxVal
	}
	if flags.Changed("seed") {
		in.Seed = seed
	}
	if err := in.Validate(); err != nil {
		return in, err
	}
	if _, ok := config.GetPreset(in.Preset); !ok && in.Preset != "" && len(in.Values) == 0 {
		return in, fmt.Errorf("%w: %s (available: %v)", config.ErrUnknownPreset, in.Preset, config.ListPresets())
	}
	return in, nil
}

func algorithmKey(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Algorithm
}

func playbackOptions(cmd *cobra.Command) (float64, time.Duration) {
	s, d := cfg.Playback.Speed, cfg.Playback.DelayMs
	if cmd.Flags().Changed("speed") {
		s = speed
	}
	if cmd.Flags().Changed("delay") {
		d = delayMs
	}
	return s, time.Duration(d) * time.Millisecond
}

// record executes one algorithm over the resolved input.
func record(registry *algorithms.Registry, cmd *cobra.Command, key string) (algorithms.Algorithm, *trace.Timeline, error) {
	alg, err := registry.Get(key)
	if err != nil {
		return nil, nil, err
	}
	in, err := resolveInput(cmd)
	if err != nil {
		return nil, nil, err
	}
	arr, err := in.Resolve()
	if err != nil {
		return nil, nil, err
	}

	start := time.Now()
	tl := alg.Execute(arr)
	logger.Debug("run recorded", "algorithm", alg.Info().Key, "size", len(arr), "steps", tl.Len(), "elapsed", time.Since(start))
	return alg, tl, nil
}

func explainFor(key string) func(trace.Step) string {
	explainer := algorithms.NewExplainer()
	return func(s trace.Step) string { return explainer.Explain(s, key) }
}

func runAlgorithm(registry *algorithms.Registry, cmd *cobra.Command, args []string) error {
	alg, tl, err := record(registry, cmd, algorithmKey(args))
	if err != nil {
		return err
	}
	info := alg.Info()
	final := tl.FinalState()

	fmt.Printf("%s\n", info.Name)
	fmt.Printf("  input:  %v\n", tl.InitialArray())
	fmt.Printf("  sorted: %v\n\n", final.Values)

	if showSteps {
		fmt.Println(render.StepTable(tl.Steps(), explainFor(info.Key)))
		fmt.Println()
	}
	fmt.Println(render.SummaryTable([]render.Row{{Algorithm: info, Summary: trace.Summarize(tl)}}))

	if showPlot && tl.Len() > 0 {
		fmt.Println()
		fmt.Println(render.ValuesChart(tl.InitialArray(), plotWidth, plotHeight, "input"))
		fmt.Println()
		fmt.Println(render.ValuesChart(final.Values, plotWidth, plotHeight, "sorted"))
	}
	return nil
}

func playAlgorithm(registry *algorithms.Registry, cmd *cobra.Command, args []string) error {
	var (
		key string
		tl  *trace.Timeline
	)
	if fromFile != "" {
		doc, err := export.FromFile(fromFile)
		if err != nil {
			return fmt.Errorf("read %s: %w", fromFile, err)
		}
		if tl, err = doc.Timeline(); err != nil {
			return fmt.Errorf("replay %s: %w", fromFile, err)
		}
		key = doc.Algorithm
	} else {
		alg, recorded, err := record(registry, cmd, algorithmKey(args))
		if err != nil {
			return err
		}
		key, tl = alg.Info().Key, recorded
	}

	var renderer playback.Renderer
	explain := explainFor(key)
	if live {
		l := render.NewLive(os.Stdout, key, explain)
		l.Start()
		defer l.Stop()
		renderer = l
	} else {
		console := render.NewConsole(os.Stdout, explain)
		console.Legend()
		renderer = console
	}

	s, d := playbackOptions(cmd)
	engine := playback.NewEngine(renderer,
		playback.WithSpeed(s),
		playback.WithBaseDelay(d),
		playback.WithLogger(logger),
	)
	engine.Load(tl)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := engine.Play(ctx); err != nil {
		return err
	}
	engine.Wait()

	summary := trace.Summarize(tl)
	fmt.Printf("\n%d steps, %d comparisons, %d writes\n", summary.Total, summary.Comparisons(), summary.Writes())
	return nil
}

func runTUI(registry *algorithms.Registry, cmd *cobra.Command, args []string) error {
	in, err := resolveInput(cmd)
	if err != nil {
		return err
	}
	s, d := playbackOptions(cmd)

	themeName := cfg.Playback.Theme
	if cmd.Flags().Changed("theme") {
		themeName = theme
	}

	model := tui.NewModel(registry, tui.Options{
		Algorithm: algorithmKey(args),
		Input:     in,
		Speed:     s,
		BaseDelay: d,
		Theme:     themeName,
		SkipMenu:  len(args) > 0,
	})
	if err := model.Err(); err != nil {
		return err
	}

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func serve(registry *algorithms.Registry, cmd *cobra.Command, args []string) error {
	listen, cache := cfg.Server.Addr, cfg.Server.RunCache
	if cmd.Flags().Changed("addr") {
		listen = addr
	}
	if cmd.Flags().Changed("run-cache") {
		cache = runCache
	}
	s := cfg.Input.Seed
	if cmd.Flags().Changed("seed") {
		s = seed
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(registry, server.Options{RunCache: cache, Seed: s, Logger: logger})
	return srv.ListenAndServe(ctx, listen)
}

func listAlgorithms(registry *algorithms.Registry, cmd *cobra.Command, args []string) error {
	fmt.Println(render.AlgorithmTable(registry.Infos()))
	if !verbose {
		return nil
	}

	explainer := algorithms.NewExplainer()
	for _, info := range registry.Infos() {
		ov, ok := explainer.Overview(info.Key)
		if !ok {
			continue
		}
		fmt.Printf("\n%s\n", info.Name)
		fmt.Printf("  strategy:    %s\n", ov.Strategy)
		fmt.Printf("  key idea:    %s\n", ov.KeyIdea)
		fmt.Printf("  when to use: %s\n", ov.WhenToUse)
	}
	return nil
}

func exportRun(registry *algorithms.Registry, cmd *cobra.Command, args []string) error {
	alg, tl, err := record(registry, cmd, algorithmKey(args))
	if err != nil {
		return err
	}
	key := alg.Info().Key
	doc := export.Build(tl, key, algorithms.NewExplainer())

	var f export.Format
	if format != "" {
		if f, err = export.ParseFormat(format); err != nil {
			return err
		}
	}

	if outPath == "" {
		if f == "" {
			f = export.FormatJSON
		}
		if err := export.Write(os.Stdout, doc, f); err != nil {
			return err
		}
	} else {
		if err := export.ToFile(outPath, doc, f); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		logger.Info("run exported", "algorithm", key, "path", outPath, "steps", tl.Len())
	}

	if svgDir != "" {
		return writeFrames(svgDir, key, tl)
	}
	return nil
}

func writeFrames(dir, key string, tl *trace.Timeline) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for i, frame := range export.TimelineToSVG(tl, svgWidth, svgHeight) {
		if frame == "" {
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("%s_%04d.svg", key, i))
		if err := os.WriteFile(path, []byte(frame), 0o644); err != nil {
			return err
		}
	}
	logger.Info("frames written", "dir", dir, "frames", tl.Len()+1)
	return nil
}

func compareAlgorithms(registry *algorithms.Registry, cmd *cobra.Command, args []string) error {
	in, err := resolveInput(cmd)
	if err != nil {
		return err
	}
	arr, err := in.Resolve()
	if err != nil {
		return err
	}

	runs, err := algorithms.NewEnsemble(registry, args...).Run(cmd.Context(), arr)
	if err != nil {
		return err
	}
	rows := make([]render.Row, len(runs))
	for i, r := range runs {
		rows[i] = render.Row{Algorithm: r.Info, Summary: trace.Summarize(r.Timeline)}
	}

	fmt.Printf("input: %v\n\n", arr)
	fmt.Println(render.SummaryTable(rows))

	if htmlPath == "" {
		return nil
	}
	file, err := os.Create(htmlPath)
	if err != nil {
		return err
	}
	if err := render.CompareChart(file, rows); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	logger.Info("chart written", "path", htmlPath)
	return nil
}

func runScenario(registry *algorithms.Registry, cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}

	results, err := automation.RunScenario(cmd.Context(), scenario, registry, logger)
	rows := make([]render.Row, len(results))
	for i, r := range results {
		rows[i] = render.Row{Algorithm: r.Algorithm, Summary: r.Summary}
		if r.Path != "" {
			fmt.Printf("saved %s -> %s\n", r.Algorithm.Key, r.Path)
		}
	}
	if len(rows) > 0 {
		fmt.Println(render.SummaryTable(rows))
	}
	return err
}

func runSweep(registry *algorithms.Registry, cmd *cobra.Command, args []string) error {
	results, err := automation.RunSweep(cmd.Context(), &automation.SizeSweep{
		Algorithm: algorithmKey(args),
		Preset:    preset,
		MinSize:   sweepFrom,
		MaxSize:   sweepTo,
		NumSteps:  sweepPoints,
		Seed:      seed,
	}, registry)
	if err != nil {
		return err
	}

	totals := make([]int, len(results))
	points := make([]render.SizePoint, len(results))
	for i, r := range results {
		totals[i] = r.Summary.Total
		points[i] = render.SizePoint{Size: r.Size, Summary: r.Summary}
	}
	fmt.Println(render.SweepTable(points))

	if showPlot {
		fmt.Println()
		fmt.Println(render.ValuesChart(totals, plotWidth, plotHeight, "steps by size"))
	}
	return nil
}
