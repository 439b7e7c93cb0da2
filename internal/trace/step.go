package trace

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind identifies the operation a Step records.
type Kind uint8

const (
	KindCompare Kind = iota
	KindSwap
	KindOverwrite
	KindMarkSorted
	KindHighlight
	KindClearHighlight
	KindPivot
	KindMerge
)

var kindNames = [...]string{
	KindCompare:        "compare",
	KindSwap:           "swap",
	KindOverwrite:      "overwrite",
	KindMarkSorted:     "mark_sorted",
	KindHighlight:      "highlight",
	KindClearHighlight: "clear_highlight",
	KindPivot:          "pivot",
	KindMerge:          "merge",
}

// Kinds lists every step kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindCompare, KindSwap, KindOverwrite, KindMarkSorted, KindHighlight, KindClearHighlight, KindPivot, KindMerge}
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind maps a wire name such as "mark_sorted" back to its Kind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Range is a half-open index interval [Start, End).
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int { return r.End - r.Start }

func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{r.Start, r.End})
}

func (r *Range) UnmarshalJSON(b []byte) error {
	var pair [2]int
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	r.Start, r.End = pair[0], pair[1]
	return nil
}

func (r Range) MarshalYAML() (interface{}, error) {
	return []int{r.Start, r.End}, nil
}

const (
	MetaLeftRange  = "left_range"
	MetaRightRange = "right_range"
)

// Step is one recorded operation. The zero value is a compare with no indices
// and should not be used; build steps with the per-kind constructors.
type Step struct {
	kind        Kind
	indices     []int
	values      []int
	explanation string
	metadata    map[string]any
}

func Compare(i, j int, explanation ...string) Step {
	return newStep(KindCompare, []int{i, j}, nil, nil, explanation)
}

func Swap(i, j int, explanation ...string) Step {
	return newStep(KindSwap, []int{i, j}, nil, nil, explanation)
}

func Overwrite(i, value int, explanation ...string) Step {
	return newStep(KindOverwrite, []int{i}, []int{value}, nil, explanation)
}

func MarkSorted(indices ...int) Step {
	return newStep(KindMarkSorted, indices, nil, nil, nil)
}

func MarkSortedSet(indices []int, explanation ...string) Step {
	return newStep(KindMarkSorted, indices, nil, nil, explanation)
}

func Highlight(indices ...int) Step {
	return newStep(KindHighlight, indices, nil, nil, nil)
}

func HighlightSet(indices []int, explanation ...string) Step {
	return newStep(KindHighlight, indices, nil, nil, explanation)
}

func ClearHighlight(indices ...int) Step {
	return newStep(KindClearHighlight, indices, nil, nil, nil)
}

func ClearHighlightSet(indices []int, explanation ...string) Step {
	return newStep(KindClearHighlight, indices, nil, nil, explanation)
}

func Pivot(i int, explanation ...string) Step {
	return newStep(KindPivot, []int{i}, nil, nil, explanation)
}

// Merge records the merge of two adjacent sorted runs. Its indices span
// left.Start up to right.End; the split point is kept in the metadata.
func Merge(left, right Range, explanation ...string) Step {
	return newStep(KindMerge, Span(left.Start, right.End), nil, map[string]any{
		MetaLeftRange:  left,
		MetaRightRange: right,
	}, explanation)
}

// Span returns the indices start, start+1, ..., end-1.
func Span(start, end int) []int {
	if end <= start {
		return []int{}
	}
	out := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, i)
	}
	return out
}

func newStep(kind Kind, indices, values []int, metadata map[string]any, explanation []string) Step {
	for _, idx := range indices {
		if idx < 0 {
			panic(&StepError{Kind: kind, Indices: indices, Wrapped: ErrNegativeIndex})
		}
	}
	s := Step{
		kind:     kind,
		indices:  cloneInts(indices),
		values:   cloneInts(values),
		metadata: metadata,
	}
	if len(explanation) > 0 {
		s.explanation = explanation[0]
	}
	if s.metadata == nil {
		s.metadata = map[string]any{}
	}
	return s
}

func (s Step) Kind() Kind           { return s.kind }
func (s Step) Indices() []int       { return cloneInts(s.indices) }
func (s Step) Values() []int        { return cloneInts(s.values) }
func (s Step) Explanation() string  { return s.explanation }
func (s Step) NumIndices() int      { return len(s.indices) }
func (s Step) Index(i int) int      { return s.indices[i] }
func (s Step) HasExplanation() bool { return s.explanation != "" }
func (s Step) IsMutating() bool     { return s.kind == KindSwap || s.kind == KindOverwrite }

func (s Step) Metadata() map[string]any {
	out := make(map[string]any, len(s.metadata))
	for k, v := range s.metadata {
		out[k] = v
	}
	return out
}

// MergeRanges returns the two sub-ranges of a merge step.
func (s Step) MergeRanges() (left, right Range, ok bool) {
	if s.kind != KindMerge {
		return Range{}, Range{}, false
	}
	left, lok := s.metadata[MetaLeftRange].(Range)
	right, rok := s.metadata[MetaRightRange].(Range)
	return left, right, lok && rok
}

// WithExplanation returns a copy of s carrying the given explanation.
func (s Step) WithExplanation(explanation string) Step {
	s.explanation = explanation
	return s
}

func (s Step) String() string {
	var b strings.Builder
	b.WriteString(s.kind.String())
	b.WriteString(fmt.Sprint(s.indices))
	if len(s.values) > 0 {
		b.WriteString("=")
		b.WriteString(fmt.Sprint(s.values))
	}
	if s.explanation != "" {
		b.WriteString(" ")
		b.WriteString(s.explanation)
	}
	return b.String()
}

type stepJSON struct {
	Type        Kind           `json:"type"`
	Indices     []int          `json:"indices"`
	Values      []int          `json:"values"`
	Explanation string         `json:"explanation"`
	Metadata    map[string]any `json:"metadata"`
}

func (s Step) MarshalJSON() ([]byte, error) {
	return json.Marshal(stepJSON{
		Type:        s.kind,
		Indices:     nonNil(s.indices),
		Values:      nonNil(s.values),
		Explanation: s.explanation,
		Metadata:    s.metadata,
	})
}

func cloneInts(in []int) []int {
	out := make([]int, len(in))
	copy(out, in)
	return out
}

func nonNil(in []int) []int {
	if in == nil {
		return []int{}
	}
	return in
}
