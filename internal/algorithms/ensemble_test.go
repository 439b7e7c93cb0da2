package algorithms

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func TestEnsembleRunsEveryAlgorithm(t *testing.T) {
	input := []int{5, 2, 8, 1, 9, 3}
	runs, err := NewEnsemble(NewRegistry()).Run(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	for i, key := range []string{"bubble", "merge", "quick"} {
		if runs[i].Info.Key != key {
			t.Errorf("run %d: expected %s, got %s", i, key, runs[i].Info.Key)
		}
		if got := runs[i].Timeline.FinalState().Values; !slices.Equal(got, []int{1, 2, 3, 5, 8, 9}) {
			t.Errorf("%s: expected sorted output, got %v", key, got)
		}
	}
	if !slices.Equal(input, []int{5, 2, 8, 1, 9, 3}) {
		t.Errorf("expected input untouched, got %v", input)
	}
}

func TestEnsembleSubset(t *testing.T) {
	runs, err := NewEnsemble(NewRegistry(), "quick").Run(context.Background(), []int{2, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 1 || runs[0].Info.Name != "Quick Sort" {
		t.Errorf("expected one quick sort run, got %+v", runs)
	}
}

func TestEnsembleErrors(t *testing.T) {
	_, err := NewEnsemble(NewRegistry(), "bubble", "bogo").Run(context.Background(), []int{1})
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewEnsemble(NewRegistry()).Run(ctx, []int{2, 1})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
