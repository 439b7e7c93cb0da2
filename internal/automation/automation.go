package automation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortscope/internal/algorithms"
	"github.com/san-kum/sortscope/internal/config"
	"github.com/san-kum/sortscope/internal/export"
	"github.com/san-kum/sortscope/internal/trace"
)

var ErrInvalidSweep = errors.New("automation: invalid sweep")

// Scenario is a scripted list of runs.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep records one algorithm over one input. Unset input fields take
// the package defaults.
type ScenarioStep struct {
	Algorithm string             `yaml:"algorithm"`
	Input     config.InputConfig `yaml:"input"`
	SaveAs    string             `yaml:"save_as"`
	Format    string             `yaml:"format"`
}

type Result struct {
	Algorithm algorithms.Info
	Timeline  *trace.Timeline
	Summary   trace.Summary
	// Path is where the run was exported, empty when not saved.
	Path      string
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// RunScenario executes the steps in order and stops at the first failure,
// returning the results gathered so far.
func RunScenario(ctx context.Context, scenario *Scenario, registry *algorithms.Registry, logger *slog.Logger) ([]Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	explainer := algorithms.NewExplainer()
	results := make([]Result, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		logger.Info("running scenario step", "scenario", scenario.Name, "step", i+1, "of", len(scenario.Steps), "algorithm", step.Algorithm)

		alg, err := registry.Get(step.Algorithm)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		values, err := withDefaults(step.Input).Resolve()
		if err != nil {
			return results, fmt.Errorf("step %d input: %w", i+1, err)
		}

		tl := alg.Execute(values)
		info := alg.Info()
		info.Key = step.Algorithm
		res := Result{Algorithm: info, Timeline: tl, Summary: trace.Summarize(tl)}

		if step.SaveAs != "" {
			var format export.Format
			if step.Format != "" {
				if format, err = export.ParseFormat(step.Format); err != nil {
					return results, fmt.Errorf("step %d: %w", i+1, err)
				}
			}
			doc := export.Build(tl, step.Algorithm, explainer)
			if err := export.ToFile(step.SaveAs, doc, format); err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
			res.Path = step.SaveAs
		}

		results = append(results, res)
	}

	return results, nil
}

func withDefaults(in config.InputConfig) config.InputConfig {
	if in.Preset == "" {
		in.Preset = config.DefaultPreset
	}
	if in.Size == 0 && len(in.Values) == 0 {
		in.Size = config.DefaultSize
	}
	if in.Min == 0 && in.Max == 0 {
		in.Min, in.Max = config.DefaultMin, config.DefaultMax
	}
	return in
}

// SizeSweep records one algorithm over growing inputs of one preset.
type SizeSweep struct {
	Algorithm string
	Preset    string
	MinSize   int
	MaxSize   int
	NumSteps  int
	Seed      int64
}

type SweepResult struct {
	Size    int
	Summary trace.Summary
}

// RunSweep executes the sweep with sizes spread evenly over
// [MinSize, MaxSize].
func RunSweep(ctx context.Context, sweep *SizeSweep, registry *algorithms.Registry) ([]SweepResult, error) {
	if sweep.NumSteps < 1 || sweep.MinSize < 0 || sweep.MaxSize < sweep.MinSize {
		return nil, fmt.Errorf("%w: sizes %d..%d over %d steps", ErrInvalidSweep, sweep.MinSize, sweep.MaxSize, sweep.NumSteps)
	}

	alg, err := registry.Get(sweep.Algorithm)
	if err != nil {
		return nil, err
	}

	results := make([]SweepResult, 0, sweep.NumSteps)
	for i := 0; i < sweep.NumSteps; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		size := sweep.MinSize
		if sweep.NumSteps > 1 {
			size += i * (sweep.MaxSize - sweep.MinSize) / (sweep.NumSteps - 1)
		}

		in := withDefaults(config.InputConfig{Preset: sweep.Preset, Size: size, Seed: sweep.Seed})
		in.Size = size
		values, err := in.Resolve()
		if err != nil {
			return nil, err
		}

		results = append(results, SweepResult{
			Size:    size,
			Summary: trace.Summarize(alg.Execute(values)),
		})
	}

	return results, nil
}
