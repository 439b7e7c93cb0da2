package export

import (
	"errors"
	"fmt"

	"github.com/san-kum/sortscope/internal/algorithms"
	"github.com/san-kum/sortscope/internal/trace"
)

var ErrMalformedStep = errors.New("export: malformed step")

// Document is the serialised form of one recorded run.
type Document struct {
	Algorithm    string             `json:"algorithm" yaml:"algorithm"`
	InitialArray []int              `json:"initial_array" yaml:"initial_array"`
	Steps        []StepRecord       `json:"steps" yaml:"steps"`
	ArrayStates  []trace.ArrayState `json:"array_states" yaml:"array_states"`
	Summary      trace.Summary      `json:"summary" yaml:"summary"`
}

type StepRecord struct {
	Type        trace.Kind     `json:"type" yaml:"type"`
	Indices     []int          `json:"indices" yaml:"indices"`
	Values      []int          `json:"values" yaml:"values"`
	Explanation string         `json:"explanation" yaml:"explanation"`
	Metadata    map[string]any `json:"metadata" yaml:"metadata"`
}

// Build captures tl without moving its cursor. Blank explanations are filled
// from explainer when it is non-nil.
func Build(tl *trace.Timeline, algorithm string, explainer *algorithms.Explainer) *Document {
	steps := tl.Steps()
	doc := &Document{
		Algorithm:    algorithm,
		InitialArray: tl.InitialArray(),
		Steps:        make([]StepRecord, len(steps)),
		ArrayStates:  tl.States(),
		Summary:      trace.Summarize(tl),
	}
	for i, s := range steps {
		if explainer != nil {
			s = s.WithExplanation(explainer.Explain(s, algorithm))
		}
		doc.Steps[i] = Record(s)
	}
	return doc
}

func Record(s trace.Step) StepRecord {
	return StepRecord{
		Type:        s.Kind(),
		Indices:     s.Indices(),
		Values:      s.Values(),
		Explanation: s.Explanation(),
		Metadata:    s.Metadata(),
	}
}

// Step rebuilds the recorded step, checking that its shape matches its type.
// Merge ranges must be non-negative and adjacent.
func (r StepRecord) Step() (trace.Step, error) {
	return r.build(-1)
}

// build is Step with merge ranges also bounded by an array of size n. A
// negative n leaves the upper bound unchecked.
func (r StepRecord) build(n int) (trace.Step, error) {
	for _, idx := range r.Indices {
		if idx < 0 {
			return trace.Step{}, fmt.Errorf("%w: negative index %d in %s", ErrMalformedStep, idx, r.Type)
		}
	}

	switch r.Type {
	case trace.KindCompare, trace.KindSwap:
		if len(r.Indices) != 2 {
			return trace.Step{}, r.arity(2)
		}
		if r.Type == trace.KindCompare {
			return trace.Compare(r.Indices[0], r.Indices[1], r.Explanation), nil
		}
		return trace.Swap(r.Indices[0], r.Indices[1], r.Explanation), nil
	case trace.KindOverwrite:
		if len(r.Indices) != 1 || len(r.Values) != 1 {
			return trace.Step{}, fmt.Errorf("%w: overwrite needs one index and one value", ErrMalformedStep)
		}
		return trace.Overwrite(r.Indices[0], r.Values[0], r.Explanation), nil
	case trace.KindPivot:
		if len(r.Indices) != 1 {
			return trace.Step{}, r.arity(1)
		}
		return trace.Pivot(r.Indices[0], r.Explanation), nil
	case trace.KindMarkSorted:
		return trace.MarkSortedSet(r.Indices, r.Explanation), nil
	case trace.KindHighlight:
		return trace.HighlightSet(r.Indices, r.Explanation), nil
	case trace.KindClearHighlight:
		return trace.ClearHighlightSet(r.Indices, r.Explanation), nil
	case trace.KindMerge:
		left, lok := rangeOf(r.Metadata[trace.MetaLeftRange])
		right, rok := rangeOf(r.Metadata[trace.MetaRightRange])
		if !lok || !rok {
			return trace.Step{}, fmt.Errorf("%w: merge without ranges", ErrMalformedStep)
		}
		if left.Start < 0 || left.Start > left.End || left.End != right.Start || right.Start > right.End {
			return trace.Step{}, fmt.Errorf("%w: merge ranges %v and %v are not adjacent", ErrMalformedStep, left, right)
		}
		if n >= 0 && right.End > n {
			return trace.Step{}, fmt.Errorf("%w: merge range %v beyond array of %d", ErrMalformedStep, right, n)
		}
		return trace.Merge(left, right, r.Explanation), nil
	}
	return trace.Step{}, fmt.Errorf("%w: unknown type %d", ErrMalformedStep, r.Type)
}

func (r StepRecord) arity(n int) error {
	return fmt.Errorf("%w: %s needs %d indices, got %d", ErrMalformedStep, r.Type, n, len(r.Indices))
}

// Timeline replays the document's steps onto its initial array. The result
// is rebuilt from steps, so ArrayStates in the document are not trusted.
func (d *Document) Timeline() (*trace.Timeline, error) {
	tl := trace.New(d.InitialArray)
	for i, rec := range d.Steps {
		s, err := rec.build(len(d.InitialArray))
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		for _, idx := range s.Indices() {
			if s.IsMutating() && idx >= len(d.InitialArray) {
				return nil, fmt.Errorf("step %d: %w: index %d out of range", i, ErrMalformedStep, idx)
			}
		}
		tl.AddStep(s)
	}
	return tl, nil
}

func rangeOf(v any) (trace.Range, bool) {
	switch r := v.(type) {
	case trace.Range:
		return r, true
	case []int:
		if len(r) == 2 {
			return trace.Range{Start: r[0], End: r[1]}, true
		}
	case []any:
		if len(r) != 2 {
			return trace.Range{}, false
		}
		start, ok1 := toInt(r[0])
		end, ok2 := toInt(r[1])
		if ok1 && ok2 {
			return trace.Range{Start: start, End: end}, true
		}
	}
	return trace.Range{}, false
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), n == float64(int(n))
	}
	return 0, false
}
