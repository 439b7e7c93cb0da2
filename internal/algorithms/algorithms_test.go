package algorithms

import (
	"slices"
	"strings"
	"testing"

	"github.com/san-kum/sortscope/internal/trace"
)

func kinds(tl *trace.Timeline) []trace.Kind {
	out := make([]trace.Kind, 0, tl.Len())
	for _, s := range tl.Steps() {
		out = append(out, s.Kind())
	}
	return out
}

func TestBubbleSmall(t *testing.T) {
	tl := Bubble{}.Execute([]int{3, 1, 2})

	if got := tl.FinalState().Values; !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("expected [1 2 3], got %v", got)
	}

	first, ok := tl.StepAt(0)
	if !ok || first.Kind() != trace.KindHighlight {
		t.Errorf("expected first step highlight, got %v", first)
	}

	want := []trace.Kind{
		trace.KindHighlight, trace.KindCompare, trace.KindSwap, trace.KindCompare, trace.KindSwap,
		trace.KindMarkSorted, trace.KindClearHighlight,
		trace.KindHighlight, trace.KindCompare, trace.KindMarkSorted, trace.KindClearHighlight,
		trace.KindMarkSorted,
	}
	if got := kinds(tl); !slices.Equal(got, want) {
		t.Errorf("unexpected step sequence:\n got %v\nwant %v", got, want)
	}
}

func TestBubbleStopsEarlyOnSortedInput(t *testing.T) {
	tl := Bubble{}.Execute([]int{1, 2, 3, 4})

	highlights := 0
	for _, s := range tl.Steps() {
		if s.Kind() == trace.KindHighlight {
			highlights++
		}
		if s.Kind() == trace.KindSwap {
			t.Errorf("sorted input should not swap: %v", s)
		}
	}
	if highlights != 1 {
		t.Errorf("expected a single pass, got %d", highlights)
	}

	last, _ := tl.StepAt(tl.Len() - 1)
	if last.Kind() != trace.KindMarkSorted || !slices.Equal(last.Indices(), []int{0}) {
		t.Errorf("expected final mark_sorted [0], got %v", last)
	}
}

func TestQuickSmall(t *testing.T) {
	tl := Quick{}.Execute([]int{3, 1, 2})

	if got := tl.FinalState().Values; !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("expected [1 2 3], got %v", got)
	}

	want := []trace.Kind{
		trace.KindPivot, trace.KindCompare, trace.KindCompare, trace.KindSwap, trace.KindSwap, trace.KindMarkSorted,
	}
	if got := kinds(tl); !slices.Equal(got, want) {
		t.Errorf("unexpected step sequence:\n got %v\nwant %v", got, want)
	}
}

func TestQuickSkipsNoOpSwaps(t *testing.T) {
	tl := Quick{}.Execute([]int{1, 2, 3})
	for _, s := range tl.Steps() {
		if s.Kind() == trace.KindSwap && s.Index(0) == s.Index(1) {
			t.Errorf("swap with identical indices recorded: %v", s)
		}
	}
}

func TestQuickEmpty(t *testing.T) {
	tl := Quick{}.Execute([]int{})

	if tl.Len() != 0 {
		t.Errorf("expected no steps, got %d", tl.Len())
	}
	states := tl.States()
	if len(states) != 1 {
		t.Fatalf("expected 1 state, got %d", len(states))
	}
	if !states[0].Equal(trace.NewArrayState([]int{})) {
		t.Errorf("expected empty initial snapshot, got %+v", states[0])
	}
}

func TestMergeReversedFive(t *testing.T) {
	tl := Merge{}.Execute([]int{5, 4, 3, 2, 1})

	if got := tl.FinalState().Values; !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
		t.Errorf("expected sorted values, got %v", got)
	}

	merges := 0
	for _, s := range tl.Steps() {
		if s.Kind() == trace.KindMerge {
			merges++
		}
	}
	if merges != 4 {
		t.Errorf("expected 4 merge steps, got %d", merges)
	}

	steps := tl.Steps()
	tail := steps[len(steps)-5:]
	for i, s := range tail {
		if s.Kind() != trace.KindMarkSorted || !slices.Equal(s.Indices(), []int{i}) {
			t.Errorf("tail step %d: expected mark_sorted [%d], got %v", i, i, s)
		}
	}
}

func TestMergeStepRanges(t *testing.T) {
	tl := Merge{}.Execute([]int{2, 1, 3})

	var ranges [][2]trace.Range
	for _, s := range tl.Steps() {
		if l, r, ok := s.MergeRanges(); ok {
			ranges = append(ranges, [2]trace.Range{l, r})
		}
	}
	want := [][2]trace.Range{
		{{Start: 0, End: 1}, {Start: 1, End: 2}},
		{{Start: 0, End: 2}, {Start: 2, End: 3}},
	}
	if !slices.Equal(ranges, want) {
		t.Errorf("merge ranges = %v, want %v", ranges, want)
	}
}

func TestMergeTiesFavourLeft(t *testing.T) {
	tl := Merge{}.Execute([]int{7, 7})

	want := []trace.Kind{
		trace.KindHighlight, trace.KindMerge, trace.KindCompare, trace.KindOverwrite, trace.KindOverwrite,
		trace.KindClearHighlight, trace.KindMarkSorted, trace.KindMarkSorted,
	}
	if got := kinds(tl); !slices.Equal(got, want) {
		t.Fatalf("unexpected step sequence:\n got %v\nwant %v", got, want)
	}

	rest, _ := tl.StepAt(4)
	if !strings.HasPrefix(rest.Explanation(), "Copying remaining") {
		t.Errorf("tie should place the left element first and copy the right remainder, got %q", rest.Explanation())
	}
}

func TestExecuteDoesNotMutateInput(t *testing.T) {
	for _, alg := range []Algorithm{Bubble{}, Quick{}, Merge{}} {
		input := []int{9, 3, 7, 1}
		tl := alg.Execute(input)
		if !slices.Equal(input, []int{9, 3, 7, 1}) {
			t.Errorf("%s mutated input: %v", alg.Info().Name, input)
		}
		if tl.Cursor() != -1 {
			t.Errorf("%s moved the cursor: %d", alg.Info().Name, tl.Cursor())
		}
	}
}

func TestTrivialInputs(t *testing.T) {
	tests := []struct {
		name  string
		input []int
	}{
		{"nil", nil},
		{"empty", []int{}},
		{"single", []int{42}},
	}

	for _, alg := range []Algorithm{Bubble{}, Quick{}, Merge{}} {
		for _, tt := range tests {
			t.Run(alg.Info().Key+"/"+tt.name, func(t *testing.T) {
				tl := alg.Execute(tt.input)
				if len(tl.States()) != tl.Len()+1 {
					t.Errorf("states=%d steps=%d", len(tl.States()), tl.Len())
				}
				if tl.Len() > 5 {
					t.Errorf("expected trivially few steps, got %d", tl.Len())
				}
			})
		}
	}
}
